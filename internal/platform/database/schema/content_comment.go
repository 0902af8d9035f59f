// Copyright (c) 2026 Randfin. All rights reserved.

package schema

// ContentCommentTable represents the 'content.comment' table
type ContentCommentTable struct {
	Table      string
	ID         string
	PostSlug   string
	ParentID   string
	AuthorName string
	Body       string
	Likes      string
	IsDeleted  string
	CreatedAt  string
	UpdatedAt  string
}

// ContentComment is the schema definition for content.comment
var ContentComment = ContentCommentTable{
	Table:      "content.comment",
	ID:         "id",
	PostSlug:   "postslug",
	ParentID:   "parentid",
	AuthorName: "authorname",
	Body:       "body",
	Likes:      "likes",
	IsDeleted:  "isdeleted",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
