// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package like

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/padrocha/blog-api/internal/platform/middleware"
	requestutil "github.com/padrocha/blog-api/internal/platform/request"
	"github.com/padrocha/blog-api/internal/platform/respond"
	"github.com/padrocha/blog-api/internal/platform/validate"
)

type Handler struct {
	likeService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{likeService: service}
}

// Routes returns a [chi.Router] with the reaction routes, mounted under a
// post-scoped prefix ("/{postID}/...").
//
// # Endpoints
//   - GET  /{postID}/count : Active like counter. Public.
//   - GET  /{postID}       : Caller's reaction state. Authenticated.
//   - POST /{postID}       : Flip the caller's reaction. Authenticated.
//
// The user is always the authenticated caller; a request body naming someone
// else's account is not a thing this API supports.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{postID}/count", handler.count)

	router.Group(func(authenticated chi.Router) {
		authenticated.Use(middleware.RequireIdentity)
		authenticated.Get("/{postID}", handler.get)
		authenticated.Post("/{postID}", handler.toggle)
	})

	return router
}

func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	postID, err := postIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reaction, err := handler.likeService.Toggle(request.Context(), postID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reaction)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	postID, err := postIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reaction, err := handler.likeService.Get(request.Context(), postID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reaction)
}

func (handler *Handler) count(writer http.ResponseWriter, request *http.Request) {
	postID, err := postIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.likeService.Count(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"post_id": postID, "count": count})
}

func postIDParam(request *http.Request) (string, error) {
	postID := requestutil.Param(request, "postID")

	v := &validate.Validator{}
	if err := v.UUID("postID", postID).Err(); err != nil {
		return "", err
	}
	return postID, nil
}
