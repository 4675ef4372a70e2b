// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package sec

import (
	"net/http"

	"github.com/padrocha/blog-api/internal/platform/apperr"
)

// Codec-level failures. Both classify client-supplied data problems and are
// always recoverable by rejecting the specific request.
var (
	// ErrInvalidPermissionName rejects an input set naming a permission
	// outside the lattice.
	ErrInvalidPermissionName = &apperr.AppError{
		Code:       "INVALID_PERMISSION_NAME",
		Message:    "Roles bundle not supported",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrUnknownPermissionBits rejects an integer carrying a bit with no
	// assigned lattice position.
	ErrUnknownPermissionBits = &apperr.AppError{
		Code:       "UNKNOWN_PERMISSION_BITS",
		Message:    "Role value carries unassigned permission bits",
		HTTPStatus: http.StatusBadRequest,
	}
)

// # Permission Lattice

// Permission is a named capability drawn from the fixed, closed set below.
type Permission string

const (
	// Read published content
	PermissionRead Permission = "READ"

	// Publish new content
	PermissionWrite Permission = "WRITE"

	// Modify existing content
	PermissionEdit Permission = "EDIT"

	// Register accounts and assign roles
	PermissionGrant Permission = "GRANT"

	// Unrestricted system access
	PermissionAdmin Permission = "ADMIN"
)

// Role is the packed integer representation of a permission set: the bitwise
// OR of each member's bit value.
type Role int

// Bit positions are assigned once and never reused. Adding a permission means
// picking the next unused bit and appending it to the table below.
const (
	bitRead  Role = 1 << iota // 1
	bitWrite                  // 2
	bitEdit                   // 4
	bitGrant                  // 8
	bitAdmin                  // 16
)

// knownBits is the mask of every assigned bit position. Any bit outside this
// mask does not correspond to a lattice entry.
const knownBits = bitRead | bitWrite | bitEdit | bitGrant | bitAdmin

// DefaultRole is the permission set granted to newly registered accounts.
const DefaultRole = bitRead | bitWrite

// permissionBits is the single source of truth for the permission-to-bit
// mapping, keyed in lattice order.
var permissionBits = [...]struct {
	name Permission
	bit  Role
}{
	{PermissionRead, bitRead},
	{PermissionWrite, bitWrite},
	{PermissionEdit, bitEdit},
	{PermissionGrant, bitGrant},
	{PermissionAdmin, bitAdmin},
}

// AllPermissions returns the ordered permission lattice.
func AllPermissions() []Permission {
	permissions := make([]Permission, 0, len(permissionBits))
	for _, entry := range permissionBits {
		permissions = append(permissions, entry.name)
	}
	return permissions
}

// Bit returns the bit value assigned to the permission, and whether the
// permission is a member of the lattice.
func (p Permission) Bit() (Role, bool) {
	for _, entry := range permissionBits {
		if entry.name == p {
			return entry.bit, true
		}
	}
	return 0, false
}

// # Role Codec

// Encode packs a set of permission names into its integer representation.
//
// It fails with [ErrInvalidPermissionName] if any input names a permission
// outside the lattice, so malformed client-supplied role lists are rejected
// before they can corrupt stored state.
func Encode(permissions []Permission) (Role, error) {
	var role Role
	for _, permission := range permissions {
		bit, ok := permission.Bit()
		if !ok {
			return 0, ErrInvalidPermissionName
		}
		role |= bit
	}
	return role, nil
}

// Decode unpacks a role integer into the permission names whose bits are set.
//
// Bits outside the lattice fail with [ErrUnknownPermissionBits] rather than
// being silently masked: an unassigned bit in stored state means the state is
// corrupt, and masking it would hide that.
func Decode(role Role) ([]Permission, error) {
	if role&^knownBits != 0 {
		return nil, ErrUnknownPermissionBits
	}

	permissions := make([]Permission, 0, len(permissionBits))
	for _, entry := range permissionBits {
		if role&entry.bit != 0 {
			permissions = append(permissions, entry.name)
		}
	}
	return permissions, nil
}

// IsValidBundle reports whether every element of a raw client-supplied role
// list names a lattice permission.
//
// # Usage
//
// Called as a pre-check before [Encode] so malformed input surfaces as a
// client error instead of reaching the storage layer.
func IsValidBundle(names []string) bool {
	for _, name := range names {
		if _, ok := Permission(name).Bit(); !ok {
			return false
		}
	}
	return true
}

// # Capability Check

// Includes reports whether the role grants at least one of the required
// permissions.
//
// # ANY-Match Semantics
//
// The check is a permissive union, not an intersection: a caller requiring
// {WRITE, EDIT, GRANT, ADMIN} is satisfied by a principal holding only EDIT.
// Every authorization gate in the router relies on this behavior.
func (r Role) Includes(required ...Permission) bool {
	for _, permission := range required {
		bit, ok := permission.Bit()
		if !ok {
			continue
		}
		if r&bit != 0 {
			return true
		}
	}
	return false
}
