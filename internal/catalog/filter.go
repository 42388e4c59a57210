package catalog

import "github.com/lumioapp/lumio-site-manager/internal/entity"

// SortField selects the ordering key for List.
type SortField string

const (
	SortTitle       SortField = "title"
	SortReadingTime SortField = "readingTime"
	SortPublishedAt SortField = "publishedAt"
	SortUpdatedAt   SortField = "updatedAt"
)

// SortOrder selects the ordering direction for List.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortField maps a query string value to a SortField, empty when
// unrecognized so callers fall back to the default ordering.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortTitle, SortReadingTime, SortPublishedAt, SortUpdatedAt:
		return SortField(s)
	}
	return ""
}

// Filter narrows the article set before pagination. Zero values mean
// "no constraint".
type Filter struct {
	Category   string
	Tag        string
	AuthorId   int
	Featured   *bool
	Search     string
	ExcludeIds []int
	SortBy     SortField
	SortOrder  SortOrder
}

// Page is one slice of the filtered result set together with the counts the
// listing UI needs.
type Page struct {
	Articles   []entity.Article `json:"articles"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	HasMore    bool             `json:"hasMore"`
}
