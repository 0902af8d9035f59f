// Copyright (c) 2026 Randfin. All rights reserved.

// Package schema declares table and column name registries used by the
// Postgres repositories. Keeping identifiers here means a rename touches
// one file instead of every query string.
package schema

// ContentCategoryTable represents the 'content.category' table
type ContentCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ContentCategory is the schema definition for content.category
var ContentCategory = ContentCategoryTable{
	Table:       "content.category",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
