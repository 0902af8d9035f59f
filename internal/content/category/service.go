// Copyright (c) 2026 Randfin. All rights reserved.

package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/randfin/randfin/internal/platform/validate"
	slugpkg "github.com/randfin/randfin/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.GetCategory(context, id)
}

func (service *Service) CreateCategory(context context.Context, category *Category) error {
	normalize(category)

	if err := validateCategory(category); err != nil {
		return err
	}

	if err := service.repo.CreateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)
	return nil
}

func (service *Service) UpdateCategory(context context.Context, id string, category *Category) error {
	category.ID = id
	normalize(category)

	if err := validateCategory(category); err != nil {
		return err
	}

	if err := service.repo.UpdateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.String("category_id", id))
	return nil
}

// DeleteCategory removes a category and reports how many articles still
// reference its slug. The articles themselves are untouched.
func (service *Service) DeleteCategory(context context.Context, id string) (DeleteReport, error) {
	slug, err := service.repo.DeleteCategory(context, id)
	if err != nil {
		return DeleteReport{}, err
	}

	orphans, err := service.repo.CountArticlesByCategorySlug(context, slug)
	if err != nil {
		return DeleteReport{}, err
	}

	service.logger.Warn("category_deleted",
		slog.String("category_id", id),
		slog.Int("orphaned_articles", orphans),
	)
	return DeleteReport{OrphanedArticles: orphans}, nil
}

// normalize trims inputs and derives a slug from the name when none is given.
func normalize(category *Category) {
	category.Name = strings.TrimSpace(category.Name)
	category.Slug = strings.TrimSpace(category.Slug)
	category.Description = strings.TrimSpace(category.Description)

	if category.Slug == "" {
		category.Slug = slugpkg.From(category.Name)
	}
}

func validateCategory(category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 100)
	validator.Required(FieldSlug, category.Slug).Slug(FieldSlug, category.Slug).MaxLen(FieldSlug, category.Slug, 100)
	validator.MaxLen(FieldDescription, category.Description, 500)
	return validator.Err()
}
