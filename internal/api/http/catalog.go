package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lumioapp/lumio-site-manager/internal/catalog"
	"github.com/lumioapp/lumio-site-manager/internal/entity"
	"github.com/lumioapp/lumio-site-manager/internal/markup"
)

// articleResponse is an article widened with the rendered HTML body and the
// related list, served on the detail endpoint only.
type articleResponse struct {
	entity.Article
	ContentHtml string           `json:"contentHtml"`
	Related     []entity.Article `json:"related"`
}

func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := atoiDefault(q.Get("page"), 1)
	pageSize := atoiDefault(q.Get("pageSize"), 0)

	f := &catalog.Filter{
		Category:   q.Get("category"),
		Tag:        q.Get("tag"),
		AuthorId:   atoiDefault(q.Get("author"), 0),
		Search:     q.Get("search"),
		ExcludeIds: parseIntList(q.Get("excludeIds")),
		SortBy:     catalog.ParseSortField(q.Get("sortBy")),
		SortOrder:  catalog.SortOrder(q.Get("sortOrder")),
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}

	respondJSON(r.Context(), w, http.StatusOK, s.catalog.List(r.Context(), page, pageSize, f))
}

func (s *Server) featuredArticles(w http.ResponseWriter, r *http.Request) {
	limit := atoiDefault(r.URL.Query().Get("limit"), 3)
	respondJSON(r.Context(), w, http.StatusOK, s.catalog.Featured(r.Context(), limit))
}

func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	a, ok := s.catalog.GetBySlug(r.Context(), slug)
	if !ok {
		respondError(r.Context(), w, http.StatusNotFound, "Article not found", "", "")
		return
	}

	resp := articleResponse{
		Article:     *a,
		ContentHtml: markup.Render(a.Content),
		Related:     s.catalog.Related(r.Context(), a.Id, 3),
	}
	respondJSON(r.Context(), w, http.StatusOK, resp)
}

func (s *Server) relatedArticles(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	a, ok := s.catalog.GetBySlug(r.Context(), slug)
	if !ok {
		respondError(r.Context(), w, http.StatusNotFound, "Article not found", "", "")
		return
	}

	limit := atoiDefault(r.URL.Query().Get("limit"), 3)
	respondJSON(r.Context(), w, http.StatusOK, s.catalog.Related(r.Context(), a.Id, limit))
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, s.catalog.Categories(r.Context()))
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, s.catalog.Tags(r.Context()))
}

func (s *Server) listAuthors(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, s.catalog.Authors(r.Context()))
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// parseIntList parses a comma-separated id list, dropping malformed entries.
func parseIntList(s string) []int {
	if s == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
