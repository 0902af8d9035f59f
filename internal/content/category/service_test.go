// Copyright (c) 2026 Randfin. All rights reserved.

package category_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/content/category"
	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/dberr"
	"github.com/randfin/randfin/pkg/uuidv7"
)

// fakeRepository is an in-memory Repository with a per-slug article count.
type fakeRepository struct {
	categories     map[string]*category.Category
	articlesBySlug map[string]int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories:     map[string]*category.Category{},
		articlesBySlug: map[string]int{},
	}
}

func (f *fakeRepository) ListCategories(_ context.Context) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range f.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeRepository) GetCategory(_ context.Context, id string) (*category.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeRepository) CreateCategory(_ context.Context, c *category.Category) error {
	for _, existing := range f.categories {
		if existing.Slug == c.Slug {
			return apperr.Conflict("A category with this slug already exists")
		}
	}
	c.ID = uuidv7.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeRepository) UpdateCategory(_ context.Context, c *category.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *c
	f.categories[c.ID] = &clone
	return nil
}

func (f *fakeRepository) DeleteCategory(_ context.Context, id string) (string, error) {
	c, ok := f.categories[id]
	if !ok {
		return "", dberr.ErrNotFound
	}
	delete(f.categories, id)
	return c.Slug, nil
}

func (f *fakeRepository) CountArticlesByCategorySlug(_ context.Context, slug string) (int, error) {
	return f.articlesBySlug[slug], nil
}

func newService(repo *fakeRepository) *category.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return category.NewService(repo, logger)
}

/*
TestCreateCategory_DerivesSlug slugifies the name when no slug is given and
keeps an explicit slug when one is.
*/
func TestCreateCategory_DerivesSlug(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	t.Run("derived_from_name", func(t *testing.T) {
		input := category.Category{Name: "Tax & Retirement"}
		require.NoError(t, service.CreateCategory(context.Background(), &input))
		assert.Equal(t, "tax-retirement", input.Slug)
		assert.NotEmpty(t, input.ID)
	})

	t.Run("explicit_slug_kept", func(t *testing.T) {
		input := category.Category{Name: "Property", Slug: "property-guides"}
		require.NoError(t, service.CreateCategory(context.Background(), &input))
		assert.Equal(t, "property-guides", input.Slug)
	})
}

/*
TestCreateCategory_Validation rejects missing names, malformed slugs and
oversized descriptions.
*/
func TestCreateCategory_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	longDescription := make([]byte, 501)
	for i := range longDescription {
		longDescription[i] = 'x'
	}

	tests := []struct {
		name  string
		input category.Category
	}{
		{"missing_name", category.Category{Slug: "tax"}},
		{"bad_slug", category.Category{Name: "Tax", Slug: "Not A Slug!"}},
		{"long_description", category.Category{Name: "Tax", Description: string(longDescription)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			err := service.CreateCategory(context.Background(), &input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestDeleteCategory_ReportsOrphans deletes the category and counts articles
still referencing its slug, without touching the articles.
*/
func TestDeleteCategory_ReportsOrphans(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := category.Category{Name: "Investing"}
	require.NoError(t, service.CreateCategory(context.Background(), &input))
	repo.articlesBySlug["investing"] = 3

	report, err := service.DeleteCategory(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, report.OrphanedArticles)

	_, err = service.GetCategory(context.Background(), input.ID)
	require.ErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestDeleteCategory_Missing surfaces the repository's not-found error.
*/
func TestDeleteCategory_Missing(t *testing.T) {
	service := newService(newFakeRepository())

	_, err := service.DeleteCategory(context.Background(), uuidv7.New())
	require.ErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestUpdateCategory_NormalizesInput trims whitespace and re-derives the slug
when it is blanked.
*/
func TestUpdateCategory_NormalizesInput(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := category.Category{Name: "Loans"}
	require.NoError(t, service.CreateCategory(context.Background(), &input))

	update := category.Category{Name: "  Home Loans  "}
	require.NoError(t, service.UpdateCategory(context.Background(), input.ID, &update))

	stored, err := service.GetCategory(context.Background(), input.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home Loans", stored.Name)
	assert.Equal(t, "home-loans", stored.Slug)
}
