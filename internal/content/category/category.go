// Copyright (c) 2026 Randfin. All rights reserved.

// Package category manages the article taxonomy for the content library.
package category

import "time"

// Category is one article grouping (e.g. "Tax", "Property", "Investing").
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeleteReport is returned when a category is removed. Articles keep their
// category slug as-is, so the report tells the admin how many articles are
// now pointing at a taxonomy entry that no longer exists.
type DeleteReport struct {
	OrphanedArticles int `json:"orphaned_articles"`
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
)
