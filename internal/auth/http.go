// Copyright (c) 2026 Randfin. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/randfin/randfin/internal/platform/middleware"
	requestutil "github.com/randfin/randfin/internal/platform/request"
	"github.com/randfin/randfin/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.With(middleware.RequireAuth).Get("/me", handler.me)
}

// loginRequest is the JSON body for POST /auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var body loginRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.service.Login(request.Context(), body.Username, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

// refreshRequest is the JSON body for POST /auth/refresh and /auth/logout.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var body refreshRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.service.Refresh(request.Context(), body.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var body refreshRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), body.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}
