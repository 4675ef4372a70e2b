// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/padrocha/blog-api/internal/platform/constants"
	"github.com/padrocha/blog-api/internal/platform/middleware"
	requestutil "github.com/padrocha/blog-api/internal/platform/request"
	"github.com/padrocha/blog-api/internal/platform/respond"
	"github.com/padrocha/blog-api/internal/platform/sec"
	"github.com/padrocha/blog-api/internal/platform/validate"
	"github.com/padrocha/blog-api/pkg/pagination"
)

// Handler implements the publishing HTTP endpoints.
type Handler struct {
	postService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{postService: service}
}

// Routes returns a [chi.Router] with the publishing routes.
//
// # Endpoints
//   - GET    /        : Paginated list, newest first. Public.
//   - GET    /{slug}  : Single entry by slug. Public.
//   - POST   /        : Create (WRITE holders).
//   - PUT    /{id}    : Edit (EDIT holders).
//   - DELETE /{id}    : Remove (ADMIN holders).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{slug}", handler.getBySlug)

	router.With(middleware.RequirePermission(sec.PermissionWrite)).
		Post("/", handler.create)
	router.With(middleware.RequirePermission(sec.PermissionEdit)).
		Put("/{id}", handler.update)
	router.With(middleware.RequirePermission(sec.PermissionAdmin)).
		Delete("/{id}", handler.remove)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequestLimit(request, constants.PostPageSize)

	posts, meta, err := handler.postService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, meta)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	entrySlug := requestutil.Param(request, "slug")

	v := &validate.Validator{}
	if err := v.Required("slug", entrySlug).Slug("slug", entrySlug).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.postService.GetBySlug(request.Context(), entrySlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

type createRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Content     string   `json:"content"`
	TagIDs      []string `json:"tag_ids"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.postService.Create(request.Context(), authorID, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		TagIDs:      input.TagIDs,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

type updateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	TagIDs      []string `json:"tag_ids"`
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.postService.Update(request.Context(), id, UpdateInput{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		TagIDs:      input.TagIDs,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.postService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
