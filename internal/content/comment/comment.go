// Copyright (c) 2026 Randfin. All rights reserved.

/*
Package comment implements the engagement layer: threaded reader comments
on articles with like counters.

# Threading model

Replies nest exactly one level deep. A comment either has a nil ParentID
(top-level) or points at a top-level comment; replying to a reply is
rejected. This keeps the read path a single query plus an in-memory group-by
instead of a recursive CTE.

# Likes

Anyone can like a comment, no account required. Each client IP counts once
per comment within the dedup window; the window lives in Redis so repeated
taps don't inflate the counter.
*/
package comment

import "time"

// Comment is one reader comment on an article.
type Comment struct {
	ID string `json:"id"`

	// PostSlug identifies the article since comments attach to the public slug,
	// not the article row.
	PostSlug string `json:"post_slug"`

	// ParentID is nil for a top-level comment.
	ParentID *string `json:"parent_id"`

	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
	Likes      int    `json:"likes"`

	// IsDeleted marks a moderated comment. The row survives so replies keep
	// their anchor; the body is blanked before it leaves the API.
	IsDeleted bool `json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Replies is populated on top-level comments in threaded listings.
	Replies []*Comment `json:"replies,omitempty"`
}

// LikeResult reports the outcome of a like action.
type LikeResult struct {
	CommentID string `json:"comment_id"`
	Likes     int    `json:"likes"`

	// Counted is false when this client already liked the comment within
	// the dedup window; the counter was left untouched.
	Counted bool `json:"counted"`
}

// Sort orders for a threaded listing. Applied to top-level comments;
// replies always read oldest-first.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"

	// SortTop is the legacy dashboard token for SortPopular.
	SortTop = "top"
)

// redactedBody replaces the body of a moderated comment in API output.
const redactedBody = "[removed]"

// Global field names for validation
const (
	FieldPostSlug   = "postSlug"
	FieldParentID   = "parent_id"
	FieldAuthorName = "author_name"
	FieldBody       = "body"
)
