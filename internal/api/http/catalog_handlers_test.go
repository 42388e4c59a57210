package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumioapp/lumio-site-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListArticles(t *testing.T) {
	h := newTestServer(nil, nil)

	w := doGet(t, h, "/api/articles")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Articles   []entity.Article `json:"articles"`
		TotalCount int              `json:"totalCount"`
		Page       int              `json:"page"`
		HasMore    bool             `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 6, page.TotalCount)
	assert.Equal(t, 1, page.Page)

	// newest published first
	require.NotEmpty(t, page.Articles)
	assert.Equal(t, "pricing-your-first-brand-deal", page.Articles[0].Slug)

	// drafts never appear
	for _, a := range page.Articles {
		assert.NotEqual(t, "creator-story-draft", a.Slug)
	}
}

func TestListArticles_QueryParams(t *testing.T) {
	h := newTestServer(nil, nil)

	w := doGet(t, h, "/api/articles?category=guides")
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.TotalCount)

	w = doGet(t, h, "/api/articles?page=1&pageSize=2")
	var paged struct {
		Articles []entity.Article `json:"articles"`
		HasMore  bool             `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paged))
	assert.Len(t, paged.Articles, 2)
	assert.True(t, paged.HasMore)

	w = doGet(t, h, "/api/articles?sortBy=title&sortOrder=asc")
	var sorted struct {
		Articles []entity.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sorted))
	require.NotEmpty(t, sorted.Articles)
	assert.Equal(t, "creator-story-rhea", sorted.Articles[0].Slug)

	// malformed numbers fall back to defaults instead of failing
	w = doGet(t, h, "/api/articles?page=banana&pageSize=-5")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListArticles_AuthorParam(t *testing.T) {
	h := newTestServer(nil, nil)

	w := doGet(t, h, "/api/articles?author=1")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Articles []entity.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Articles, 3)
	for _, a := range page.Articles {
		assert.Equal(t, 1, a.AuthorId)
	}
}

func TestListArticles_ExcludeIds(t *testing.T) {
	// the featured rail drops what it already shows from the main list
	h := newTestServer(nil, nil)

	w := doGet(t, h, "/api/articles?excludeIds=5,6")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Articles   []entity.Article `json:"articles"`
		TotalCount int              `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 4, page.TotalCount)
	for _, a := range page.Articles {
		assert.NotContains(t, []int{5, 6}, a.Id)
	}

	// malformed entries are dropped, valid ones still apply
	w = doGet(t, h, "/api/articles?excludeIds=5,banana,6")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 4, page.TotalCount)
}

func TestGetArticle(t *testing.T) {
	h := newTestServer(nil, nil)

	w := doGet(t, h, "/api/articles/why-were-building-lumio")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slug        string           `json:"slug"`
		ContentHtml string           `json:"contentHtml"`
		Related     []entity.Article `json:"related"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "why-were-building-lumio", resp.Slug)
	assert.Contains(t, resp.ContentHtml, "<h1>Why We&#39;re Building Lumio</h1>")
	assert.NotEmpty(t, resp.Related)
	for _, rel := range resp.Related {
		assert.NotEqual(t, resp.Slug, rel.Slug)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	h := newTestServer(nil, nil)

	for _, slug := range []string{"no-such-article", "creator-story-draft"} {
		w := doGet(t, h, "/api/articles/"+slug)
		assert.Equal(t, http.StatusNotFound, w.Code, "slug: %s", slug)

		var resp apiError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Article not found", resp.Error)
	}
}

func TestRelatedArticles_ExplicitDeclaration(t *testing.T) {
	h := newTestServer(nil, nil)

	w := doGet(t, h, "/api/articles/state-of-creator-partnerships-2025/related")
	require.Equal(t, http.StatusOK, w.Code)

	var related []entity.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &related))
	require.Len(t, related, 2)
	assert.Equal(t, 2, related[0].Id)
	assert.Equal(t, 1, related[1].Id)
}

func TestFeaturedArticles(t *testing.T) {
	h := newTestServer(nil, nil)

	w := doGet(t, h, "/api/articles/featured?limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var featured []entity.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	require.Len(t, featured, 2)
	for _, a := range featured {
		assert.True(t, a.Featured, "article %d", a.Id)
	}
}

func TestReferenceEndpoints(t *testing.T) {
	h := newTestServer(nil, nil)

	for path, wantLen := range map[string]int{
		"/api/categories": 4,
		"/api/tags":       6,
		"/api/authors":    3,
	} {
		w := doGet(t, h, path)
		require.Equal(t, http.StatusOK, w.Code, path)

		var items []json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items), path)
		assert.Len(t, items, wantLen, path)
	}
}

func TestCatalogEndpoints_WorkWithoutDatabase(t *testing.T) {
	// The catalog is static, a missing database must not affect reads.
	h := newTestServer(nil, nil)

	for i, path := range []string{"/api/articles", "/api/articles/inside-the-waitlist", "/api/categories"} {
		w := doGet(t, h, path)
		assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("#%d %s", i, path))
	}
}
