// Copyright (c) 2026 Randfin. All rights reserved.

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/randfin/randfin/internal/platform/middleware"
	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the category management routes. The group is mounted
// under the admin tree; listing stays readable by any authenticated editor,
// destructive operations require admin.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createCategory)
		editorRoute.Put("/{id}", handler.updateCategory)

		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteCategory)
	})
}

// RegisterPublicRoutes mounts the read-only listing used by the public site
// to render category navigation.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategory(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCategory(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.DeleteCategory(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}
