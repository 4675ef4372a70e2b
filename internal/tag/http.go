// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package tag

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

type Handler struct {
	tagService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{tagService: service}
}

// Routes returns a [chi.Router] with the tag routes.
//
// # Endpoints
//   - GET  /        : All labels, name-sorted. Public.
//   - GET  /page    : Paginated labels. Public.
//   - GET  /{slug}  : Single label by slug. Public.
//   - POST /        : Create (EDIT holders).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAll)
	router.Get("/page", handler.listPage)
	router.Get("/{slug}", handler.getBySlug)

	router.With(middleware.RequirePermission(sec.PermissionEdit)).
		Post("/", handler.create)

	return router
}

type createRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	label, err := handler.tagService.Create(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, label)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.tagService.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) listPage(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequestLimit(request, constants.TagPageSize)

	tags, meta, err := handler.tagService.ListPage(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, tags, meta)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	labelSlug := requestutil.Param(request, "slug")

	v := &validate.Validator{}
	if err := v.Required("slug", labelSlug).Slug("slug", labelSlug).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	label, err := handler.tagService.GetBySlug(request.Context(), labelSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, label)
}
