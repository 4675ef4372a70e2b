// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package middleware

import (
	"context"
	"net/http"

	"github.com/padrocha/blog-api/internal/platform/apperr"
	"github.com/padrocha/blog-api/internal/platform/constants"
	"github.com/padrocha/blog-api/internal/platform/ctxutil"
	"github.com/padrocha/blog-api/internal/platform/respond"
	"github.com/padrocha/blog-api/internal/platform/sec"
)

// Authorizer defines the interface needed to resolve credentials in middleware.
//
// # Why an interface?
//
// Defining Authorizer here decouples the middleware from [sec.Guard],
// allowing tests to inject a stub without a token service or user store.
type Authorizer interface {
	Authorize(ctx context.Context, authorizationHeader string) (*sec.Identity, error)
}

// Authenticate runs the session guard against the Authorization header.
//
// # Flow
//  1. If the header is absent, the request proceeds as anonymous; protected
//     routes reject it downstream via [RequireIdentity].
//  2. Otherwise the guard runs its full protocol: extraction, signature
//     verification, live identity re-resolution, and consistency checks.
//  3. Any rejection terminates the request with the guard's own error code
//     and status (400, 409, or 423).
//  4. On success the freshly resolved [*sec.Identity] is injected into the
//     request context for downstream use.
func Authenticate(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Guard Protocol ─────────────────────────────────────────────
			identity, err := authorizer.Authorize(request.Context(), authHeader)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireIdentity blocks requests that did not authenticate.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.MissingCredential())
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequirePermission blocks requests whose identity holds none of the given
// permissions.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically
// implies [RequireIdentity] so you don't need to mount both.
//
// # Semantics
//
// The check is ANY-match per [sec.Role.Includes]: listing several permissions
// admits a principal holding any one of them.
func RequirePermission(permissions ...sec.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if identity == nil {
				respond.Error(writer, request, apperr.MissingCredential())
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !identity.Role.Includes(permissions...) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
