// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

// Package schema centralizes table and column identifiers so store queries
// never drift from the migration files.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Nickname     string
	Email        string
	PasswordHash string
	ImageURL     string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Nickname:     "nickname",
	Email:        "email",
	PasswordHash: "passwordhash",
	ImageURL:     "imageurl",
	Role:         "role",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
