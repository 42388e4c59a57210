// Package catalog exposes the build-time-fixed article set through a
// filtering, pagination and related-article ranking façade. All operations
// run synchronously over in-memory data, the context parameters exist for
// symmetry with a future remote backend.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/lumioapp/lumio-site-manager/internal/entity"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Service holds the immutable article catalog. Construct once at startup
// and share, all methods are read-only and safe for concurrent use.
type Service struct {
	articles   []entity.Article
	byId       map[int]*entity.Article
	bySlug     map[string]*entity.Article
	authors    []entity.Author
	categories []entity.ArticleCategory
	tags       []entity.ArticleTag
	catSlugs   map[int]string
	tagSlugs   map[int]string
}

// New indexes the given data set. Only published articles become publicly
// reachable, drafts are dropped at construction.
func New(
	articles []entity.Article,
	authors []entity.Author,
	categories []entity.ArticleCategory,
	tags []entity.ArticleTag,
) *Service {
	s := &Service{
		byId:       make(map[int]*entity.Article),
		bySlug:     make(map[string]*entity.Article),
		authors:    authors,
		categories: categories,
		tags:       tags,
		catSlugs:   make(map[int]string),
		tagSlugs:   make(map[int]string),
	}

	for _, c := range categories {
		s.catSlugs[c.Id] = c.Slug
	}
	for _, t := range tags {
		s.tagSlugs[t.Id] = t.Slug
	}

	for _, a := range articles {
		if a.Status != entity.ArticleStatusPublished {
			continue
		}
		s.articles = append(s.articles, a)
	}
	for i := range s.articles {
		a := &s.articles[i]
		s.byId[a.Id] = a
		s.bySlug[a.Slug] = a
	}

	return s
}

// List returns one page of published articles matching the filter. It never
// fails for well-formed or malformed input: negative pages are clamped and
// out-of-range pages yield an empty slice with HasMore false.
func (s *Service) List(ctx context.Context, page, pageSize int, f *Filter) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	matched := s.filter(f)
	s.sortArticles(matched, f)

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Articles:   matched[start:end],
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

func (s *Service) filter(f *Filter) []entity.Article {
	out := make([]entity.Article, 0, len(s.articles))
	if f == nil {
		f = &Filter{}
	}

	var search string
	if f.Search != "" {
		search = strings.ToLower(f.Search)
	}

	exclude := make(map[int]struct{}, len(f.ExcludeIds))
	for _, id := range f.ExcludeIds {
		exclude[id] = struct{}{}
	}

	for _, a := range s.articles {
		if _, skip := exclude[a.Id]; skip {
			continue
		}
		if f.Category != "" && s.catSlugs[a.CategoryId] != f.Category {
			continue
		}
		if f.Tag != "" && !s.hasTag(a, f.Tag) {
			continue
		}
		if f.AuthorId != 0 && a.AuthorId != f.AuthorId {
			continue
		}
		if f.Featured != nil && a.Featured != *f.Featured {
			continue
		}
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *Service) hasTag(a entity.Article, slug string) bool {
	for _, id := range a.TagIds {
		if s.tagSlugs[id] == slug {
			return true
		}
	}
	return false
}

func matchesSearch(a entity.Article, search string) bool {
	return strings.Contains(strings.ToLower(a.Title), search) ||
		strings.Contains(strings.ToLower(a.Summary), search) ||
		strings.Contains(strings.ToLower(a.Content), search)
}

func (s *Service) sortArticles(articles []entity.Article, f *Filter) {
	sortBy := SortPublishedAt
	order := SortDesc
	if f != nil && f.SortBy != "" {
		sortBy = f.SortBy
		order = f.SortOrder
		if order == "" {
			order = SortAsc
		}
	}

	less := func(a, b entity.Article) bool {
		switch sortBy {
		case SortTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortReadingTime:
			return a.ReadingMinutes < b.ReadingMinutes
		case SortUpdatedAt:
			au, bu := a.PublishedAt, b.PublishedAt
			if a.UpdatedAt != nil {
				au = *a.UpdatedAt
			}
			if b.UpdatedAt != nil {
				bu = *b.UpdatedAt
			}
			return au.Before(bu)
		default:
			return a.PublishedAt.Before(b.PublishedAt)
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if order == SortDesc {
			return less(articles[j], articles[i])
		}
		return less(articles[i], articles[j])
	})
}

// GetBySlug returns the published article with the given slug, or false
// when it does not exist. A missing slug is an absence, never an error.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, bool) {
	a, ok := s.bySlug[slug]
	return a, ok
}

// Featured returns up to limit published featured articles, newest first.
func (s *Service) Featured(ctx context.Context, limit int) []entity.Article {
	featured := true
	p := s.List(ctx, 1, clampLimit(limit), &Filter{Featured: &featured})
	return p.Articles
}

// Related returns up to limit articles topically adjacent to the given one.
// An explicit related-id declaration wins and is returned in declared order,
// otherwise candidates sharing the category or at least one tag are ranked
// by shared-tag count descending with stable ties. The source article is
// never included.
func (s *Service) Related(ctx context.Context, id, limit int) []entity.Article {
	src, ok := s.byId[id]
	if !ok {
		return nil
	}
	limit = clampLimit(limit)

	if len(src.RelatedIds) > 0 {
		out := make([]entity.Article, 0, len(src.RelatedIds))
		for _, rid := range src.RelatedIds {
			if rid == src.Id {
				continue
			}
			if a, ok := s.byId[rid]; ok {
				out = append(out, *a)
			}
			if len(out) == limit {
				break
			}
		}
		return out
	}

	srcTags := make(map[int]struct{}, len(src.TagIds))
	for _, tid := range src.TagIds {
		srcTags[tid] = struct{}{}
	}

	type candidate struct {
		article    entity.Article
		sharedTags int
	}
	var candidates []candidate
	for _, a := range s.articles {
		if a.Id == src.Id {
			continue
		}
		shared := 0
		for _, tid := range a.TagIds {
			if _, ok := srcTags[tid]; ok {
				shared++
			}
		}
		if a.CategoryId != src.CategoryId && shared == 0 {
			continue
		}
		candidates = append(candidates, candidate{article: a, sharedTags: shared})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sharedTags > candidates[j].sharedTags
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]entity.Article, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.article)
	}
	return out
}

// Categories returns the full static category list.
func (s *Service) Categories(ctx context.Context) []entity.ArticleCategory {
	return s.categories
}

// Tags returns the full static tag list.
func (s *Service) Tags(ctx context.Context) []entity.ArticleTag {
	return s.tags
}

// Authors returns the full static author list.
func (s *Service) Authors(ctx context.Context) []entity.Author {
	return s.authors
}

func clampLimit(limit int) int {
	if limit < 1 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
