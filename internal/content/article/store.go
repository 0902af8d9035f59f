// Copyright (c) 2026 Randfin. All rights reserved.

package article

import "context"

type Repository interface {
	ListArticles(context context.Context, f Filter, limit, offset int) ([]*Article, int, error)
	GetArticle(context context.Context, id string) (*Article, error)
	GetArticleBySlug(context context.Context, slug string) (*Article, error)
	CreateArticle(context context.Context, a *Article) error
	UpdateArticle(context context.Context, a *Article) error
	DeleteArticle(context context.Context, id string) error
}
