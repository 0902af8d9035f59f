// Copyright (c) 2026 Randfin. All rights reserved.

package comment

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/validate"
)

type Service struct {
	repo   Repository
	likes  LikeRegistry
	logger *slog.Logger
}

func NewService(repo Repository, likes LikeRegistry, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		likes:  likes,
		logger: logger,
	}
}

// ListThread returns the one-level comment tree for a post in the requested
// order. Moderated comments keep their slot (replies need the anchor) but
// their author and body are redacted.
func (service *Service) ListThread(context context.Context, postSlug, sortOrder string) ([]*Comment, error) {
	validator := &validate.Validator{}
	validator.Required(FieldPostSlug, postSlug)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	flat, err := service.repo.ListByPost(context, postSlug)
	if err != nil {
		return nil, err
	}

	return assembleThread(flat, sortOrder), nil
}

func (service *Service) CreateComment(context context.Context, comment *Comment) error {
	comment.AuthorName = strings.TrimSpace(comment.AuthorName)
	comment.Body = strings.TrimSpace(comment.Body)

	validator := &validate.Validator{}
	validator.Required(FieldPostSlug, comment.PostSlug).Slug(FieldPostSlug, comment.PostSlug)
	validator.Required(FieldAuthorName, comment.AuthorName).MaxLen(FieldAuthorName, comment.AuthorName, 100)
	validator.Required(FieldBody, comment.Body).MaxLen(FieldBody, comment.Body, 4000)
	if comment.ParentID != nil {
		validator.UUID(FieldParentID, *comment.ParentID)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if comment.ParentID != nil {
		parent, err := service.repo.Get(context, *comment.ParentID)
		if err != nil {
			return err
		}
		if parent.ParentID != nil {
			return apperr.Unprocessable("Replies can only be made to top-level comments")
		}
		if parent.PostSlug != comment.PostSlug {
			return apperr.Unprocessable("Parent comment belongs to a different post")
		}
	}

	if err := service.repo.Create(context, comment); err != nil {
		return err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", comment.ID),
		slog.String("post_slug", comment.PostSlug),
		slog.Bool("is_reply", comment.ParentID != nil),
	)
	return nil
}

// Like counts one like from clientKey (the caller's IP). A repeat within
// the dedup window is not an error; the result reports Counted=false and
// the unchanged total.
func (service *Service) Like(context context.Context, id, clientKey string) (LikeResult, error) {
	comment, err := service.repo.Get(context, id)
	if err != nil {
		return LikeResult{}, err
	}
	if comment.IsDeleted {
		return LikeResult{}, apperr.NotFound("Comment")
	}

	first, err := service.likes.Register(context, id, clientKey)
	if err != nil {
		return LikeResult{}, err
	}

	if !first {
		return LikeResult{CommentID: id, Likes: comment.Likes, Counted: false}, nil
	}

	total, err := service.repo.IncrementLikes(context, id)
	if err != nil {
		return LikeResult{}, err
	}

	return LikeResult{CommentID: id, Likes: total, Counted: true}, nil
}

// DeleteComment moderates a comment away. Repeating the call returns the
// repository's not-found error.
func (service *Service) DeleteComment(context context.Context, id string) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted", slog.String("comment_id", id))
	return nil
}

// assembleThread groups replies under their parents and applies the sort
// order to the top level. Replies stay oldest-first.
func assembleThread(flat []*Comment, sortOrder string) []*Comment {
	byID := make(map[string]*Comment, len(flat))
	topLevel := make([]*Comment, 0, len(flat))

	for _, c := range flat {
		redact(c)
		byID[c.ID] = c
		if c.ParentID == nil {
			topLevel = append(topLevel, c)
		}
	}

	for _, c := range flat {
		if c.ParentID == nil {
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}

	switch sortOrder {
	case SortOldest:
		sort.SliceStable(topLevel, func(i, j int) bool {
			return topLevel[i].CreatedAt.Before(topLevel[j].CreatedAt)
		})
	case SortPopular, SortTop:
		sort.SliceStable(topLevel, func(i, j int) bool {
			return topLevel[i].Likes > topLevel[j].Likes
		})
	default: // SortNewest
		sort.SliceStable(topLevel, func(i, j int) bool {
			return topLevel[i].CreatedAt.After(topLevel[j].CreatedAt)
		})
	}

	return topLevel
}

func redact(c *Comment) {
	if c.IsDeleted {
		c.AuthorName = ""
		c.Body = redactedBody
	}
}
