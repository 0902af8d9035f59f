// Copyright (c) 2026 Randfin. All rights reserved.

package article

import (
	"context"
	"log/slog"
	"strings"

	"github.com/randfin/randfin/internal/platform/validate"
	"github.com/randfin/randfin/pkg/pointer"
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

func (service *Service) ListArticles(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	return service.repo.ListArticles(context, filter, limit, offset)
}

// ListPublished is the public-site listing: published articles only,
// regardless of what the filter says.
func (service *Service) ListPublished(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	filter.Published = pointer.To(true)
	return service.repo.ListArticles(context, filter, limit, offset)
}

func (service *Service) GetArticle(context context.Context, id string) (*Article, error) {
	return service.repo.GetArticle(context, id)
}

func (service *Service) GetArticleBySlug(context context.Context, slug string) (*Article, error) {
	return service.repo.GetArticleBySlug(context, slug)
}

func (service *Service) CreateArticle(context context.Context, article *Article) error {
	normalize(article)

	if err := validateArticle(article); err != nil {
		return err
	}

	if err := service.repo.CreateArticle(context, article); err != nil {
		return err
	}

	service.logger.Info("article_created",
		slog.String("article_id", article.ID),
		slog.String("slug", article.Slug),
		slog.Bool("published", article.IsPublished),
	)
	return nil
}

func (service *Service) UpdateArticle(context context.Context, id string, article *Article) error {
	article.ID = id
	normalize(article)

	if err := validateArticle(article); err != nil {
		return err
	}

	if err := service.repo.UpdateArticle(context, article); err != nil {
		return err
	}

	service.logger.Info("article_updated", slog.String("article_id", id))
	return nil
}

func (service *Service) DeleteArticle(context context.Context, id string) error {
	if err := service.repo.DeleteArticle(context, id); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.String("article_id", id))
	return nil
}

func normalize(article *Article) {
	article.Title = strings.TrimSpace(article.Title)
	article.Slug = strings.TrimSpace(article.Slug)
	article.Author = strings.TrimSpace(article.Author)
	article.Category = strings.TrimSpace(article.Category)

	if article.Slug == "" {
		article.Slug = slugpkg.From(article.Title)
	}
}

func validateArticle(article *Article) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, article.Title).MaxLen(FieldTitle, article.Title, 300)
	validator.Required(FieldSlug, article.Slug).Slug(FieldSlug, article.Slug).MaxLen(FieldSlug, article.Slug, 300)
	validator.MaxLen(FieldExcerpt, article.Excerpt, 1000)
	validator.Required(FieldContent, article.Content)
	validator.Required(FieldCategory, article.Category).Slug(FieldCategory, article.Category)
	validator.Required(FieldAuthor, article.Author).MaxLen(FieldAuthor, article.Author, 150)

	if article.FeaturedImage != nil && *article.FeaturedImage != "" {
		validator.URL(FieldFeaturedImage, *article.FeaturedImage)
	}

	return validator.Err()
}
