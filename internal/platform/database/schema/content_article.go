// Copyright (c) 2026 Randfin. All rights reserved.

package schema

// ContentArticleTable represents the 'content.article' table
type ContentArticleTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	Category      string
	Author        string
	IsPublished   string
	FeaturedImage string
	CreatedAt     string
	UpdatedAt     string
}

// ContentArticle is the schema definition for content.article
var ContentArticle = ContentArticleTable{
	Table:         "content.article",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	Excerpt:       "excerpt",
	Content:       "content",
	Category:      "category",
	Author:        "author",
	IsPublished:   "ispublished",
	FeaturedImage: "featuredimage",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}
