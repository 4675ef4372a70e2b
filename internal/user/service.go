// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/padrocha/blog-api/internal/platform/apperr"
	"github.com/padrocha/blog-api/internal/platform/sec"
	"github.com/padrocha/blog-api/internal/platform/validate"
	"github.com/padrocha/blog-api/pkg/slice"
	"github.com/padrocha/blog-api/pkg/uuidv7"
)

// TokenIssuer defines the contract for minting bearer credentials.
type TokenIssuer interface {
	// Issue creates a signed credential for the given identity.
	Issue(userID, nickname string, role sec.Role) (string, error)
}

// Service implements account registration, login, and profile use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	repository Repository
	tokens     TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(repository Repository, tokens TokenIssuer) *Service {
	return &Service{repository: repository, tokens: tokens}
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Nickname string
	Email    string
	Password string
	// Roles is the raw client-supplied permission bundle. Empty means the
	// default READ|WRITE grant.
	Roles    []string
	ImageURL *string
}

// Register validates, hashes, and persists a brand new account, returning a
// freshly issued credential for it.
//
// # Business Rules
//   - Nicknames are stored lowercase and must be unique.
//   - The roles bundle is validated against the permission lattice BEFORE
//     encoding; an invalid bundle is a client error, never stored state.
//   - Only principals holding GRANT or ADMIN reach this path (enforced at
//     the route gate).
func (service *Service) Register(ctx context.Context, input RegisterInput) (string, error) {
	// ── 1. Input Validation ───────────────────────────────────────────────

	nickname := strings.ToLower(strings.TrimSpace(input.Nickname))

	v := &validate.Validator{}
	err := v.
		Required("nickname", nickname).
		MinLen("nickname", nickname, 3).
		MaxLen("nickname", nickname, 32).
		Email("email", input.Email).
		MinLen("password", input.Password, 8).
		Err()
	if err != nil {
		return "", err
	}

	// ── 2. Roles Bundle ───────────────────────────────────────────────────

	role := sec.DefaultRole
	if len(input.Roles) > 0 {
		if !sec.IsValidBundle(input.Roles) {
			return "", sec.ErrInvalidPermissionName
		}

		permissions := slice.Map(input.Roles, func(name string) sec.Permission {
			return sec.Permission(name)
		})

		role, err = sec.Encode(permissions)
		if err != nil {
			return "", err
		}
	}

	// ── 3. Security ───────────────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return "", fmt.Errorf("user_service_hash_failed: %w", err)
	}

	// ── 4. Persistence & Token Issuance ───────────────────────────────────

	account := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Nickname:     nickname,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashedPassword,
		ImageURL:     input.ImageURL,
		Role:         role,
	}

	if err := service.repository.Create(ctx, account); err != nil {
		return "", err
	}

	token, err := service.tokens.Issue(account.ID, account.Nickname, account.Role)
	if err != nil {
		return "", fmt.Errorf("user_service_token_issue_failed: %w", err)
	}

	return token, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Nickname string
	Password string
}

// Login validates credentials and issues a bearer credential.
//
// # Flow
//  1. Lookup account by nickname.
//  2. Verify password hash using bcrypt.
//  3. Issue the 30-day credential embedding the packed role integer.
func (service *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	if input.Nickname == "" || input.Password == "" {
		return "", validate.RequiredError("nickname/password", "are required")
	}

	account, err := service.repository.FindByNickname(ctx, strings.ToLower(input.Nickname))
	if err != nil {
		return "", err
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return "", apperr.Unauthorized("Unauthorized")
	}

	token, err := service.tokens.Issue(account.ID, account.Nickname, account.Role)
	if err != nil {
		return "", fmt.Errorf("user_service_token_issue_failed: %w", err)
	}

	return token, nil
}

// ProfileByID returns the client-facing profile for an account ID.
func (service *Service) ProfileByID(ctx context.Context, id string) (*Profile, error) {
	account, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProfile(account)
}

// ProfileByNickname returns the client-facing profile for a nickname.
func (service *Service) ProfileByNickname(ctx context.Context, nickname string) (*Profile, error) {
	account, err := service.repository.FindByNickname(ctx, strings.ToLower(nickname))
	if err != nil {
		return nil, err
	}
	return NewProfile(account)
}
