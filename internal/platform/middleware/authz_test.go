// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrocha/blog-api/internal/platform/apperr"
	"github.com/padrocha/blog-api/internal/platform/ctxutil"
	"github.com/padrocha/blog-api/internal/platform/middleware"
	"github.com/padrocha/blog-api/internal/platform/sec"
)

// stubAuthorizer returns a canned identity or error for every request.
type stubAuthorizer struct {
	identity *sec.Identity
	err      error
	header   string
}

func (stub *stubAuthorizer) Authorize(_ context.Context, header string) (*sec.Identity, error) {
	stub.header = header
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.identity, nil
}

// echoIdentity records the identity visible to the downstream handler.
func echoIdentity(captured **sec.Identity) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*captured = ctxutil.GetIdentity(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate_InjectsIdentity verifies a successful guard run threads the
resolved identity into the request context.
*/
func TestAuthenticate_InjectsIdentity(t *testing.T) {
	authorizer := &stubAuthorizer{identity: &sec.Identity{ID: "u1", Nickname: "ana", Role: sec.DefaultRole}}

	var seen *sec.Identity
	handler := middleware.Authenticate(authorizer)(echoIdentity(&seen))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "bearer: some.token.value")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "bearer: some.token.value", authorizer.header)
	require.NotNil(t, seen)
	assert.Equal(t, "ana", seen.Nickname)
}

/*
TestAuthenticate_AnonymousPassThrough verifies requests without a header are
not sent through the guard at all.
*/
func TestAuthenticate_AnonymousPassThrough(t *testing.T) {
	authorizer := &stubAuthorizer{err: apperr.MalformedCredential(nil)}

	var seen *sec.Identity
	handler := middleware.Authenticate(authorizer)(echoIdentity(&seen))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, authorizer.header)
	assert.Nil(t, seen)
}

/*
TestAuthenticate_StatusMapping verifies each guard rejection maps to its
documented HTTP status.
*/
func TestAuthenticate_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		guardError error
		wantStatus int
	}{
		{"missing_credential", apperr.MissingCredential(), http.StatusBadRequest},
		{"malformed_credential", apperr.MalformedCredential(nil), http.StatusConflict},
		{"stale_identity", apperr.StaleIdentity(nil), http.StatusLocked},
		{"credential_out_of_date", apperr.CredentialOutOfDate(), http.StatusLocked},
		{"credential_expired", apperr.CredentialExpired(), http.StatusLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorizer := &stubAuthorizer{err: tt.guardError}

			var seen *sec.Identity
			handler := middleware.Authenticate(authorizer)(echoIdentity(&seen))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Authorization", `"whatever"`)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Nil(t, seen)
		})
	}
}

/*
TestRequireIdentity verifies anonymous requests are rejected on protected routes.
*/
func TestRequireIdentity(t *testing.T) {
	var seen *sec.Identity
	handler := middleware.RequireIdentity(echoIdentity(&seen))

	// Anonymous → 400 MissingCredential
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Authenticated → pass
	identity := &sec.Identity{ID: "u1", Nickname: "ana", Role: sec.DefaultRole}
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request = request.WithContext(ctxutil.WithIdentity(request.Context(), identity))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, identity, seen)
}

/*
TestRequirePermission verifies the ANY-match gate over the resolved identity.
*/
func TestRequirePermission(t *testing.T) {
	editOnly, err := sec.Encode([]sec.Permission{sec.PermissionEdit})
	require.NoError(t, err)

	readOnly, err := sec.Encode([]sec.Permission{sec.PermissionRead})
	require.NoError(t, err)

	gate := middleware.RequirePermission(
		sec.PermissionWrite, sec.PermissionEdit, sec.PermissionGrant, sec.PermissionAdmin,
	)

	tests := []struct {
		name       string
		identity   *sec.Identity
		wantStatus int
	}{
		{"anonymous", nil, http.StatusBadRequest},
		{"holds_one_of_required", &sec.Identity{ID: "u1", Role: editOnly}, http.StatusOK},
		{"holds_none", &sec.Identity{ID: "u2", Role: readOnly}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *sec.Identity
			handler := gate(echoIdentity(&seen))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				request = request.WithContext(ctxutil.WithIdentity(request.Context(), tt.identity))
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
