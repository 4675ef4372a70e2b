// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

// Package sec provides cryptographic primitives, the permission lattice, and
// bearer-credential management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, Role encoding, JWT
// signing, the session guard) from the domain logic. It acts as an
// Infrastructure service injected into the Application layer.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued credential remains valid.
//
// The window is fixed rather than configurable; making it per-deployment is a
// known extension point.
const TokenTTL = 30 * 24 * time.Hour

// AuthClaims is the payload embedded inside an issued credential.
//
// # Wire Format
//
// Tokens travel as standard header.payload.signature base64url segments with
// JSON fields `sub`, `nickname`, `role`, `iat`, `exp`. The role is carried as
// its packed integer so the guard can compare it against live stored state
// with a single equality check.
type AuthClaims struct {
	jwt.RegisteredClaims

	Nickname string `json:"nickname"`
	Role     Role   `json:"role"`
}

// TokenService issues and verifies HS256-signed credentials using the
// process-wide secret.
//
// # Concurrency
//
// The secret is read-only after construction, so a single TokenService may be
// shared by unlimited simultaneous requests without synchronization.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService from the process secret.
//
// An empty secret is a misconfiguration: the caller must treat the returned
// error as fatal at startup, never as a per-request condition.
func NewTokenService(secret string, now func() time.Time) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret is not configured")
	}
	if now == nil {
		now = time.Now
	}

	return &TokenService{secret: []byte(secret), now: now}, nil
}

// Issue builds and signs a credential for the given identity.
//
// The payload carries issued-at = now and expiry = now + [TokenTTL]. The
// returned string is opaque to callers; only [TokenService.Verify] can open it.
func (service *TokenService) Issue(userID, nickname string, role Role) (string, error) {
	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(TokenTTL)),
		},
		Nickname: nickname,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and structural validity of a credential string.
//
// # Expiry
//
// Claim timestamps are deliberately NOT validated here: the session guard owns
// the expiry decision so that an expired-but-genuine credential is classified
// as expired, never as malformed.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return service.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}
