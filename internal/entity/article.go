package entity

import "time"

// ArticleStatus is the publication status of an article. Only published
// articles are ever publicly visible.
type ArticleStatus string

const (
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusDraft     ArticleStatus = "draft"
)

// Image describes a hero or inline image with accessibility metadata.
type Image struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// SEO carries optional per-article overrides for meta tags.
type SEO struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Article is a static catalog entry. The set is fixed at build time and
// never mutated at runtime.
type Article struct {
	Id             int           `json:"id"`
	Title          string        `json:"title"`
	Slug           string        `json:"slug"`
	Summary        string        `json:"summary"`
	Content        string        `json:"content"`
	PublishedAt    time.Time     `json:"publishedAt"`
	UpdatedAt      *time.Time    `json:"updatedAt,omitempty"`
	Hero           Image         `json:"hero"`
	AuthorId       int           `json:"authorId"`
	CategoryId     int           `json:"categoryId"`
	TagIds         []int         `json:"tagIds,omitempty"`
	ReadingMinutes int           `json:"readingMinutes"`
	Featured       bool          `json:"featured"`
	Status         ArticleStatus `json:"status"`
	SEO            *SEO          `json:"seo,omitempty"`
	RelatedIds     []int         `json:"relatedIds,omitempty"`
}

// Author is an immutable reference entity.
type Author struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Bio  string `json:"bio,omitempty"`
}

// ArticleCategory is an immutable reference entity. Every article belongs
// to exactly one category.
type ArticleCategory struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// ArticleTag is an immutable reference entity. Articles carry zero or more
// tags, order irrelevant.
type ArticleTag struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
