// Copyright (c) 2026 Randfin. All rights reserved.

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/middleware"
	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/sec"
	"github.com/randfin/randfin/pkg/pagination"
	"github.com/randfin/randfin/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the dashboard CRUD surface. The caller mounts
// this under the admin tree behind authentication.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createArticle)
		editorRoute.Put("/{id}", handler.updateArticle)

		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteArticle)
	})
}

// RegisterPublicRoutes mounts the read-only site surface: published
// articles only, addressed by slug.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.getPublishedBySlug)
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := filterFromRequest(request)

	articles, total, err := handler.service.ListArticles(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.GetArticle(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input Article
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateArticle(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	var input Article
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateArticle(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteArticle(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := filterFromRequest(request)

	articles, total, err := handler.service.ListPublished(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPublishedBySlug(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.GetArticleBySlug(request.Context(), requestutil.ID(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Drafts are invisible on the public surface.
	if !article.IsPublished {
		respond.Error(writer, request, apperr.NotFound("Article"))
		return
	}

	respond.OK(writer, article)
}

func filterFromRequest(request *http.Request) Filter {
	filter := Filter{
		Query:    request.URL.Query().Get("q"),
		Category: request.URL.Query().Get("category"),
	}

	switch request.URL.Query().Get("published") {
	case "true":
		filter.Published = pointer.To(true)
	case "false":
		filter.Published = pointer.To(false)
	}

	return filter
}
