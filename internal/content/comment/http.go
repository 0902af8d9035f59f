// Copyright (c) 2026 Randfin. All rights reserved.

package comment

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

// RegisterPublicRoutes mounts the reader-facing comment surface.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listThread)
	router.Post("/", handler.createComment)
	router.Post("/{id}/like", handler.likeComment)
}

// RegisterAdminRoutes mounts the moderation surface. Mounted behind
// authentication by the caller.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteComment)
}

func (handler *Handler) listThread(writer http.ResponseWriter, request *http.Request) {
	postSlug := request.URL.Query().Get("postSlug")
	sortOrder := request.URL.Query().Get("sort")

	thread, err := handler.service.ListThread(request.Context(), postSlug, sortOrder)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The widget renders an empty thread, not a null.
	if thread == nil {
		thread = []*Comment{}
	}
	respond.OK(writer, thread)
}

// createRequest is the JSON body for POST /comments.
type createRequest struct {
	PostSlug   string  `json:"postSlug"`
	ParentID   *string `json:"parent_id"`
	AuthorName string  `json:"author_name"`
	Body       string  `json:"body"`
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	var body createRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment := Comment{
		PostSlug:   body.PostSlug,
		ParentID:   body.ParentID,
		AuthorName: body.AuthorName,
		Body:       body.Body,
	}

	if err := handler.service.CreateComment(request.Context(), &comment); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, comment)
}

func (handler *Handler) likeComment(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Like(request.Context(), requestutil.ID(request, "id"), middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteComment(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
