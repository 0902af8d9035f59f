// Copyright (c) 2026 Randfin. All rights reserved.

package article_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/content/article"
	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/dberr"
	"github.com/randfin/randfin/pkg/pointer"
	"github.com/randfin/randfin/pkg/uuidv7"
)

// fakeRepository records the last filter it was asked to list with.
type fakeRepository struct {
	articles   map[string]*article.Article
	lastFilter article.Filter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{articles: map[string]*article.Article{}}
}

func (f *fakeRepository) ListArticles(_ context.Context, filter article.Filter, _, _ int) ([]*article.Article, int, error) {
	f.lastFilter = filter
	var out []*article.Article
	for _, a := range f.articles {
		if filter.Published != nil && a.IsPublished != *filter.Published {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepository) GetArticle(_ context.Context, id string) (*article.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *fakeRepository) GetArticleBySlug(_ context.Context, slug string) (*article.Article, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			clone := *a
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) CreateArticle(_ context.Context, a *article.Article) error {
	a.ID = uuidv7.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	clone := *a
	f.articles[a.ID] = &clone
	return nil
}

func (f *fakeRepository) UpdateArticle(_ context.Context, a *article.Article) error {
	if _, ok := f.articles[a.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *a
	f.articles[a.ID] = &clone
	return nil
}

func (f *fakeRepository) DeleteArticle(_ context.Context, id string) error {
	if _, ok := f.articles[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.articles, id)
	return nil
}

func newService(repo *fakeRepository) *article.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return article.NewService(repo, logger)
}

func draft(title, categorySlug string) article.Article {
	return article.Article{
		Title:    title,
		Content:  "body",
		Category: categorySlug,
		Author:   "Ayanda Nkosi",
	}
}

/*
TestCreateArticle_DerivesSlug slugifies the title when no slug is given.
*/
func TestCreateArticle_DerivesSlug(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := draft("How Transfer Duty Works in 2026", "property")
	require.NoError(t, service.CreateArticle(context.Background(), &input))

	assert.Equal(t, "how-transfer-duty-works-in-2026", input.Slug)
	assert.NotEmpty(t, input.ID)
}

/*
TestCreateArticle_Validation rejects incomplete or malformed input.
*/
func TestCreateArticle_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	tests := []struct {
		name   string
		mutate func(*article.Article)
	}{
		{"missing_title", func(a *article.Article) { a.Title = "" }},
		{"missing_content", func(a *article.Article) { a.Content = "" }},
		{"missing_category", func(a *article.Article) { a.Category = "" }},
		{"category_not_a_slug", func(a *article.Article) { a.Category = "Not A Slug" }},
		{"missing_author", func(a *article.Article) { a.Author = "" }},
		{"bad_featured_image", func(a *article.Article) {
			a.FeaturedImage = pointer.To("not a url")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := draft("Title", "tax")
			tt.mutate(&input)

			err := service.CreateArticle(context.Background(), &input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestListPublished_ForcesPublishedFilter overrides whatever the caller put in
the filter so drafts never reach the public site.
*/
func TestListPublished_ForcesPublishedFilter(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	published := draft("Published", "tax")
	published.IsPublished = true
	require.NoError(t, service.CreateArticle(context.Background(), &published))

	hidden := draft("Draft", "tax")
	require.NoError(t, service.CreateArticle(context.Background(), &hidden))

	// Caller asks for drafts; the service overrides it.
	out, total, err := service.ListPublished(context.Background(),
		article.Filter{Published: pointer.To(false)}, 20, 0)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Published)
	assert.True(t, *repo.lastFilter.Published)
	assert.Equal(t, 1, total)
	require.Len(t, out, 1)
	assert.Equal(t, "published", out[0].Slug)
}

/*
TestUpdateArticle_UsesPathID takes the identity from the URL, not the body.
*/
func TestUpdateArticle_UsesPathID(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := draft("Original", "tax")
	require.NoError(t, service.CreateArticle(context.Background(), &input))

	update := draft("Renamed", "tax")
	update.ID = "spoofed-id"
	require.NoError(t, service.UpdateArticle(context.Background(), input.ID, &update))

	stored, err := service.GetArticle(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
}
