// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

// Package user defines the account entity and its authentication use cases.
//
// # Architecture
//
// The entity carries the packed role integer exactly as stored; decoding to
// permission names happens only at the presentation edge so that corrupted
// role state is detected (never masked) on the way out.
package user

import (
	"time"

	"github.com/padrocha/blog-api/internal/platform/sec"
	"github.com/padrocha/blog-api/pkg/slice"
)

// User represents a registered account of the blog platform.
//
// # Rules
//   - Nickname is unique and lowercase.
//   - Email is unique and validated.
//   - PasswordHash is generated via bcrypt exclusively via the Service and is
//     never serialized.
//   - Role is the packed permission integer; new accounts default to READ|WRITE.
type User struct {
	ID           string    `json:"identifier"`
	Nickname     string    `json:"nickname"`
	Email        string    `json:"email"`
	ImageURL     *string   `json:"image_url,omitempty"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"-"` // Exposed only as decoded permission names.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity projects the account into the guard's identity shape.
func (u *User) Identity() *sec.Identity {
	return &sec.Identity{
		ID:       u.ID,
		Nickname: u.Nickname,
		Role:     u.Role,
	}
}

// Profile is the client-facing view of an account.
//
// The role integer is replaced by the decoded permission names, mirroring how
// the account was granted them in the first place.
type Profile struct {
	Identifier string    `json:"identifier"`
	Nickname   string    `json:"nickname"`
	Email      string    `json:"email"`
	ImageURL   *string   `json:"image_url,omitempty"`
	Roles      []string  `json:"roles"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewProfile builds a [Profile] from a stored account.
//
// Decoding fails if the stored integer carries unassigned permission bits;
// that failure is surfaced, not masked, because it means stored state is
// corrupt.
func NewProfile(u *User) (*Profile, error) {
	permissions, err := sec.Decode(u.Role)
	if err != nil {
		return nil, err
	}

	roles := slice.Map(permissions, func(p sec.Permission) string { return string(p) })

	return &Profile{
		Identifier: u.ID,
		Nickname:   u.Nickname,
		Email:      u.Email,
		ImageURL:   u.ImageURL,
		Roles:      roles,
		CreatedAt:  u.CreatedAt,
	}, nil
}
