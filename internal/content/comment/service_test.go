// Copyright (c) 2026 Randfin. All rights reserved.

package comment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/content/comment"
	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/dberr"
	"github.com/randfin/randfin/pkg/pointer"
	"github.com/randfin/randfin/pkg/uuidv7"
)

// fakeRepository is an in-memory Repository.
type fakeRepository struct {
	comments map[string]*comment.Comment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{comments: map[string]*comment.Comment{}}
}

func (f *fakeRepository) ListByPost(_ context.Context, postSlug string) ([]*comment.Comment, error) {
	var out []*comment.Comment
	for _, c := range f.comments {
		if c.PostSlug == postSlug {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeRepository) Get(_ context.Context, id string) (*comment.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, c *comment.Comment) error {
	c.ID = uuidv7.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	clone := *c
	f.comments[c.ID] = &clone
	return nil
}

func (f *fakeRepository) IncrementLikes(_ context.Context, id string) (int, error) {
	c, ok := f.comments[id]
	if !ok || c.IsDeleted {
		return 0, dberr.ErrNotFound
	}
	c.Likes++
	return c.Likes, nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	c, ok := f.comments[id]
	if !ok || c.IsDeleted {
		return dberr.ErrNotFound
	}
	c.IsDeleted = true
	return nil
}

// fakeLikeRegistry remembers (comment, client) pairs.
type fakeLikeRegistry struct {
	seen map[string]bool
}

func newFakeLikeRegistry() *fakeLikeRegistry {
	return &fakeLikeRegistry{seen: map[string]bool{}}
}

func (f *fakeLikeRegistry) Register(_ context.Context, commentID, clientKey string) (bool, error) {
	key := commentID + "|" + clientKey
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func newService(repo *fakeRepository, likes *fakeLikeRegistry) *comment.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return comment.NewService(repo, likes, logger)
}

// seed creates a comment directly in the fake with a controlled timestamp.
func seed(repo *fakeRepository, postSlug string, parentID *string, likes int, createdAt time.Time) *comment.Comment {
	c := &comment.Comment{
		ID:         uuidv7.New(),
		PostSlug:   postSlug,
		ParentID:   parentID,
		AuthorName: "Thandi",
		Body:       "test comment",
		Likes:      likes,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	repo.comments[c.ID] = c
	return c
}

/*
TestCreateComment_Validation rejects missing fields and malformed input.
*/
func TestCreateComment_Validation(t *testing.T) {
	service := newService(newFakeRepository(), newFakeLikeRegistry())

	tests := []struct {
		name  string
		input comment.Comment
	}{
		{"missing_post_slug", comment.Comment{AuthorName: "A", Body: "b"}},
		{"missing_author", comment.Comment{PostSlug: "tax-guide", Body: "b"}},
		{"missing_body", comment.Comment{PostSlug: "tax-guide", AuthorName: "A"}},
		{"malformed_parent_id", comment.Comment{
			PostSlug: "tax-guide", AuthorName: "A", Body: "b",
			ParentID: pointer.To("not-a-uuid"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			err := service.CreateComment(context.Background(), &input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestCreateComment_OneReplyLevel allows replying to a top-level comment and
rejects replying to a reply.
*/
func TestCreateComment_OneReplyLevel(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, newFakeLikeRegistry())

	parent := seed(repo, "tax-guide", nil, 0, time.Now())

	reply := comment.Comment{
		PostSlug: "tax-guide", AuthorName: "Sipho", Body: "agreed",
		ParentID: pointer.To(parent.ID),
	}
	require.NoError(t, service.CreateComment(context.Background(), &reply))

	replyToReply := comment.Comment{
		PostSlug: "tax-guide", AuthorName: "Lerato", Body: "me too",
		ParentID: pointer.To(reply.ID),
	}
	err := service.CreateComment(context.Background(), &replyToReply)
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)
}

/*
TestCreateComment_ParentOnDifferentPost rejects cross-post replies.
*/
func TestCreateComment_ParentOnDifferentPost(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, newFakeLikeRegistry())

	parent := seed(repo, "tax-guide", nil, 0, time.Now())

	reply := comment.Comment{
		PostSlug: "vat-explainer", AuthorName: "Sipho", Body: "agreed",
		ParentID: pointer.To(parent.ID),
	}
	err := service.CreateComment(context.Background(), &reply)
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)
}

/*
TestListThread_AssemblyAndSort builds the one-level tree and honors the
sort order on top-level comments; replies stay oldest-first.
*/
func TestListThread_AssemblyAndSort(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, newFakeLikeRegistry())

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := seed(repo, "tax-guide", nil, 5, base)
	newer := seed(repo, "tax-guide", nil, 2, base.Add(time.Hour))
	seed(repo, "tax-guide", pointer.To(older.ID), 0, base.Add(2*time.Hour))
	seed(repo, "other-post", nil, 0, base)

	t.Run("newest_default", func(t *testing.T) {
		thread, err := service.ListThread(context.Background(), "tax-guide", "")
		require.NoError(t, err)
		require.Len(t, thread, 2)
		assert.Equal(t, newer.ID, thread[0].ID)
		assert.Equal(t, older.ID, thread[1].ID)
	})

	t.Run("oldest", func(t *testing.T) {
		thread, err := service.ListThread(context.Background(), "tax-guide", comment.SortOldest)
		require.NoError(t, err)
		assert.Equal(t, older.ID, thread[0].ID)
	})

	t.Run("popular", func(t *testing.T) {
		thread, err := service.ListThread(context.Background(), "tax-guide", comment.SortPopular)
		require.NoError(t, err)
		assert.Equal(t, older.ID, thread[0].ID) // 5 likes beats 2
	})

	t.Run("top_is_popular", func(t *testing.T) {
		thread, err := service.ListThread(context.Background(), "tax-guide", comment.SortTop)
		require.NoError(t, err)
		assert.Equal(t, older.ID, thread[0].ID)
	})

	t.Run("replies_attach_to_parent", func(t *testing.T) {
		thread, err := service.ListThread(context.Background(), "tax-guide", comment.SortOldest)
		require.NoError(t, err)
		require.Len(t, thread[0].Replies, 1)
		assert.Empty(t, thread[1].Replies)
	})
}

/*
TestListThread_RedactsModerated blanks the author and body of a soft-deleted
comment while keeping its slot for replies.
*/
func TestListThread_RedactsModerated(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, newFakeLikeRegistry())

	parent := seed(repo, "tax-guide", nil, 0, time.Now())
	seed(repo, "tax-guide", pointer.To(parent.ID), 0, time.Now().Add(time.Minute))

	require.NoError(t, service.DeleteComment(context.Background(), parent.ID))

	thread, err := service.ListThread(context.Background(), "tax-guide", comment.SortOldest)
	require.NoError(t, err)
	require.Len(t, thread, 1)

	assert.True(t, thread[0].IsDeleted)
	assert.Empty(t, thread[0].AuthorName)
	assert.Equal(t, "[removed]", thread[0].Body)
	assert.Len(t, thread[0].Replies, 1)
}

/*
TestLike_DedupPerClient counts the first like per client and leaves the
counter untouched on repeats; a different client counts again.
*/
func TestLike_DedupPerClient(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, newFakeLikeRegistry())

	target := seed(repo, "tax-guide", nil, 0, time.Now())

	first, err := service.Like(context.Background(), target.ID, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, first.Counted)
	assert.Equal(t, 1, first.Likes)

	repeat, err := service.Like(context.Background(), target.ID, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, repeat.Counted)
	assert.Equal(t, 1, repeat.Likes)

	other, err := service.Like(context.Background(), target.ID, "198.51.100.9")
	require.NoError(t, err)
	assert.True(t, other.Counted)
	assert.Equal(t, 2, other.Likes)
}

/*
TestLike_DeletedComment returns not-found for a moderated target.
*/
func TestLike_DeletedComment(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, newFakeLikeRegistry())

	target := seed(repo, "tax-guide", nil, 0, time.Now())
	require.NoError(t, service.DeleteComment(context.Background(), target.ID))

	_, err := service.Like(context.Background(), target.ID, "203.0.113.7")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestDeleteComment_Repeat makes the second delete a clean not-found.
*/
func TestDeleteComment_Repeat(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, newFakeLikeRegistry())

	target := seed(repo, "tax-guide", nil, 0, time.Now())

	require.NoError(t, service.DeleteComment(context.Background(), target.ID))

	err := service.DeleteComment(context.Background(), target.ID)
	require.ErrorIs(t, err, dberr.ErrNotFound)
}
