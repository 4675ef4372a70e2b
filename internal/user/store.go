// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package user

import (
	"context"

	"github.com/padrocha/blog-api/internal/platform/sec"
)

// Repository defines the data access contract for user accounts.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresRepository]).
type Repository interface {
	// FindByID returns the account with the given ID. The password hash is
	// excluded from the projection: callers of this lookup never need it.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByNickname returns the account with the given nickname, password
	// hash included — this is the login path's credential check source.
	//
	// Returns [apperr.NotFound] if the nickname is unknown.
	FindByNickname(ctx context.Context, nickname string) (*User, error)

	// Create persists a brand-new account.
	//
	// Returns [apperr.Conflict] if a unique constraint (email/nickname) fails.
	Create(ctx context.Context, user *User) error
}

// IdentityStore adapts [Repository] to the session guard's lookup contract.
//
// The guard wants a [*sec.Identity], not the full account row; this adapter
// keeps the projection (and the password exclusion) in one place.
type IdentityStore struct {
	repository Repository
}

// NewIdentityStore wraps a Repository for consumption by [sec.NewGuard].
func NewIdentityStore(repository Repository) *IdentityStore {
	return &IdentityStore{repository: repository}
}

// FindByID implements [sec.IdentityStore].
func (store *IdentityStore) FindByID(ctx context.Context, id string) (*sec.Identity, error) {
	account, err := store.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.Identity(), nil
}
