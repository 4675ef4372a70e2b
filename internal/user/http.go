// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/padrocha/blog-api/internal/platform/middleware"
	requestutil "github.com/padrocha/blog-api/internal/platform/request"
	"github.com/padrocha/blog-api/internal/platform/respond"
	"github.com/padrocha/blog-api/internal/platform/sec"
	"github.com/padrocha/blog-api/internal/platform/validate"
)

// Handler implements account-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (registration, login)
// plus profile reads. It contains NO business logic or database queries.
type Handler struct {
	userService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{userService: service}
}

// Routes returns a [chi.Router] configured with account routes.
//
// # Endpoints
//   - POST /register  : Creates a new account (GRANT or ADMIN holders only).
//   - POST /login     : Authenticates and returns a bearer credential.
//   - GET  /          : Returns the authenticated caller's profile.
//   - GET  /{nickname}: Returns a public profile by nickname.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Enrollment is an administrative act, not an open signup form. Only
	// principals already holding GRANT or ADMIN may mint new accounts.
	router.With(
		middleware.RequirePermission(sec.PermissionGrant, sec.PermissionAdmin),
	).Post("/register", handler.register)

	router.Post("/login", handler.login)

	router.With(middleware.RequireIdentity).Get("/", handler.profile)
	router.Get("/{nickname}", handler.profileByNickname)

	return router
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	Nickname string   `json:"nickname"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
	ImageURL *string  `json:"image_url"`
}

// register handles POST /api/v1/users/register requests.
//
// # Returns
//   - Writes HTTP 201 Created on success with the freshly issued credential.
//   - Writes HTTP 400 Bad Request if validation or the roles bundle fails.
//   - Writes HTTP 409 Conflict if the nickname or email is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	// Fast-fail on the obviously empty cases; the service layer performs
	// the full validator chain and the roles bundle check.
	if input.Nickname == "" {
		respond.Error(writer, request, validate.RequiredError("nickname", "is required"))
		return
	}
	if input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("password", "is required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	token, err := handler.userService.Register(request.Context(), RegisterInput{
		Nickname: input.Nickname,
		Email:    input.Email,
		Password: input.Password,
		Roles:    input.Roles,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, map[string]any{"token": token})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// login handles POST /api/v1/users/login requests.
//
// # Returns
//   - Writes HTTP 200 OK on success with the bearer credential.
//   - Writes HTTP 401 Unauthorized for bad credentials.
//   - Writes HTTP 404 Not Found for unknown nicknames.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Nickname == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("nickname/password", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	token, err := handler.userService.Login(request.Context(), LoginInput{
		Nickname: input.Nickname,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, map[string]any{"token": token})
}

// profile handles GET /api/v1/users requests for the authenticated caller.
//
// The identity in context was freshly re-verified against the user store by
// the session guard, so the profile lookup here never serves a deleted or
// demoted account.
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.userService.ProfileByID(request.Context(), identity.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// profileByNickname handles GET /api/v1/users/{nickname} requests.
func (handler *Handler) profileByNickname(writer http.ResponseWriter, request *http.Request) {
	nickname := requestutil.Param(request, "nickname")

	v := &validate.Validator{}
	if err := v.Required("nickname", nickname).MaxLen("nickname", nickname, 32).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.userService.ProfileByNickname(request.Context(), nickname)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
