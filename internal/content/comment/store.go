// Copyright (c) 2026 Randfin. All rights reserved.

package comment

import "context"

type Repository interface {
	// ListByPost returns every comment on a post, replies included,
	// oldest first. Threading happens in the service.
	ListByPost(context context.Context, postSlug string) ([]*Comment, error)
	Get(context context.Context, id string) (*Comment, error)
	Create(context context.Context, c *Comment) error
	// IncrementLikes bumps the counter and returns the new value.
	IncrementLikes(context context.Context, id string) (int, error)
	// SoftDelete marks a comment moderated. Returns dberr.ErrNotFound if the
	// comment does not exist or is already deleted.
	SoftDelete(context context.Context, id string) error
}

// LikeRegistry remembers which client already liked which comment, for the
// duration of the dedup window.
type LikeRegistry interface {
	// Register records a (comment, client) pair. The first call within the
	// window returns true; repeats return false.
	Register(context context.Context, commentID, clientKey string) (bool, error)
}
