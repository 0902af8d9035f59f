// Copyright (c) 2026 Randfin. All rights reserved.

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/randfin/randfin/internal/platform/middleware"
	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
	"github.com/randfin/randfin/internal/platform/sec"
	"github.com/randfin/randfin/internal/platform/validate"
	"github.com/randfin/randfin/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the media library routes under the admin tree.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listFiles)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.uploadFile)
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{name}", handler.deleteFile)
	})
}

func (handler *Handler) listFiles(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	files, total, err := handler.service.ListFiles(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, files, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// uploadFile accepts a multipart form with a single "file" part.
func (handler *Handler) uploadFile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := request.ParseMultipartForm(MaxUploadBytes); err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldFile, "A multipart file upload is required"))
		return
	}

	part, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldFile, "A multipart file upload is required"))
		return
	}
	defer part.Close()

	file, err := handler.service.Upload(
		request.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		claims.Username,
		part,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, file)
}

func (handler *Handler) deleteFile(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteFile(request.Context(), requestutil.Param(request, "name")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
