// Copyright (c) 2026 Randfin. All rights reserved.

package category

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategory(context context.Context, id string) (*Category, error)
	CreateCategory(context context.Context, c *Category) error
	UpdateCategory(context context.Context, c *Category) error
	DeleteCategory(context context.Context, id string) (slug string, err error)
	CountArticlesByCategorySlug(context context.Context, slug string) (int, error)
}
