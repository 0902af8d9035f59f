// Copyright (c) 2026 Randfin. All rights reserved.

// Package article manages the editorial content library: tax guides,
// property explainers, and investing articles surfaced on the public site.
package article

import "time"

// Article is one editorial piece.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`

	// Category is the slug of the owning taxonomy entry. It is a plain
	// string rather than a foreign key: deleting a category orphans the
	// article instead of cascading.
	Category string `json:"category"`

	Author        string  `json:"author"`
	IsPublished   bool    `json:"is_published"`
	FeaturedImage *string `json:"featured_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated article search.
type Filter struct {
	Query    string // ILIKE search against title and excerpt
	Category string // exact category slug
	// Published filters on publication state; nil means both.
	Published *bool
}

// Global field names for validation
const (
	FieldTitle         = "title"
	FieldSlug          = "slug"
	FieldExcerpt       = "excerpt"
	FieldContent       = "content"
	FieldCategory      = "category"
	FieldAuthor        = "author"
	FieldFeaturedImage = "featured_image"
)
