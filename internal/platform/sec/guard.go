// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package sec

import (
	"context"
	"strings"
	"time"

	"github.com/padrocha/blog-api/internal/platform/apperr"
)

// Identity is the authenticated principal attached to a request after the
// guard accepts it. It mirrors the stored account minus the password, which
// the [IdentityStore] projection contract excludes.
type Identity struct {
	ID       string `json:"identifier"`
	Nickname string `json:"nickname"`
	Role     Role   `json:"role"`
}

// IdentityStore is the user-lookup capability the guard consumes.
//
// # Why an interface?
//
// The guard never owns identity state; it only reads it. Defining the
// contract here decouples the guard from the storage implementation and lets
// tests inject an in-memory store and a fixed clock.
type IdentityStore interface {
	// FindByID resolves a stored identity by its stable identifier. The
	// password field must be excluded from the projection. Implementations
	// return an error for both lookup failures and missing accounts; the
	// guard does not distinguish and never retries.
	FindByID(ctx context.Context, id string) (*Identity, error)
}

// Guard authenticates bearer credentials against live stored state.
//
// # Protocol
//
// The token is self-contained, but every request still pays a fresh identity
// lookup specifically to catch role or nickname changes that happened after
// issuance. That trade of pure statelessness for safety against stale
// authorization is the defining property of the protocol. There is no
// revocation list: a credential cannot be invalidated before its natural
// expiry. Known limitation; a short-lived deny-list is the designated
// extension point if that ever becomes necessary.
type Guard struct {
	tokens *TokenService
	store  IdentityStore
	now    func() time.Time
}

// NewGuard constructs a Guard over the given verifier and identity store.
func NewGuard(tokens *TokenService, store IdentityStore, now func() time.Time) *Guard {
	if now == nil {
		now = time.Now
	}
	return &Guard{tokens: tokens, store: store, now: now}
}

// Authorize runs the full verification protocol for one request and returns
// the freshly resolved identity on success.
//
// # Flow
//  1. Extract the credential from the authorization header value.
//  2. Verify signature and structure against the process secret.
//  3. Re-fetch the identity the token references from the store.
//  4. Accept only if the stored role integer and nickname still equal the
//     token's embedded values and the expiry is strictly in the future.
//
// Every rejection is one of the [apperr] credential errors, each terminal
// for the current request.
func (guard *Guard) Authorize(ctx context.Context, authorizationHeader string) (*Identity, error) {
	// ── 1. Credential Extraction ──────────────────────────────────────────

	token, ok := ExtractToken(authorizationHeader)
	if !ok {
		return nil, apperr.MissingCredential()
	}

	// ── 2. Signature Verification ─────────────────────────────────────────

	claims, err := guard.tokens.Verify(token)
	if err != nil {
		return nil, apperr.MalformedCredential(err)
	}

	// ── 3. Identity Resolution ────────────────────────────────────────────

	identity, err := guard.store.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, apperr.StaleIdentity(err)
	}

	// ── 4. Consistency & Expiry ───────────────────────────────────────────

	// The live record must still match what the token was minted with.
	// A divergence means roles were re-granted or the account was renamed
	// after issuance, and the credential no longer speaks for the account.
	if identity.Role != claims.Role || identity.Nickname != claims.Nickname {
		return nil, apperr.CredentialOutOfDate()
	}

	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(guard.now()) {
		return nil, apperr.CredentialExpired()
	}

	// iat/exp were single-use verification artifacts; only the resolved
	// identity travels forward from here.
	return identity, nil
}

// ExtractToken pulls the raw credential out of an Authorization header value.
//
// # Accepted Shapes
//
// Two legacy header shapes are recognized, and both must keep working for
// compatibility with existing clients:
//
//	Authorization: bearer: <token>
//	Authorization: "<token>"
//
// Extraction strips quote characters and takes the last space-separated
// segment. Consolidating onto a single shape is an open follow-up; it is
// unclear whether any live client still sends the quoted form.
func ExtractToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "bearer: ") && !strings.Contains(header, `"`) {
		return "", false
	}

	stripped := strings.Map(func(r rune) rune {
		if r == '\'' || r == '"' {
			return -1
		}
		return r
	}, header)

	parts := strings.Split(stripped, " ")
	token := parts[len(parts)-1]
	if token == "" {
		return "", false
	}

	return token, true
}
