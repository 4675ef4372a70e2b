// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrocha/blog-api/internal/platform/apperr"
	"github.com/padrocha/blog-api/internal/platform/sec"
)

// memoryRepository is an in-memory Repository for service tests.
type memoryRepository struct {
	byID       map[string]*User
	byNickname map[string]*User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		byID:       make(map[string]*User),
		byNickname: make(map[string]*User),
	}
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	account, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	// The real store excludes the password hash from this projection.
	clone := *account
	clone.PasswordHash = ""
	return &clone, nil
}

func (r *memoryRepository) FindByNickname(_ context.Context, nickname string) (*User, error) {
	account, ok := r.byNickname[nickname]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *account
	return &clone, nil
}

func (r *memoryRepository) Create(_ context.Context, account *User) error {
	if _, ok := r.byNickname[account.Nickname]; ok {
		return apperr.Conflict("Nickname already taken")
	}
	clone := *account
	r.byID[account.ID] = &clone
	r.byNickname[account.Nickname] = &clone
	return nil
}

// recordingIssuer captures the identity the service asks a token for.
type recordingIssuer struct {
	lastUserID   string
	lastNickname string
	lastRole     sec.Role
}

func (i *recordingIssuer) Issue(userID, nickname string, role sec.Role) (string, error) {
	i.lastUserID = userID
	i.lastNickname = nickname
	i.lastRole = role
	return "signed-token", nil
}

func newServiceFixture() (*Service, *memoryRepository, *recordingIssuer) {
	repository := newMemoryRepository()
	issuer := &recordingIssuer{}
	return NewService(repository, issuer), repository, issuer
}

/*
TestRegister_DefaultsToReadWrite verifies that an empty roles bundle yields the
READ|WRITE default grant and that the issued credential embeds it.
*/
func TestRegister_DefaultsToReadWrite(t *testing.T) {
	service, repository, issuer := newServiceFixture()

	token, err := service.Register(context.Background(), RegisterInput{
		Nickname: "Padrocha",
		Email:    "contact@padrocha.dev",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, sec.DefaultRole, issuer.lastRole)

	// Nicknames are normalized to lowercase before storage.
	account, ok := repository.byNickname["padrocha"]
	require.True(t, ok, "account should be stored under the lowercase nickname")
	assert.Equal(t, sec.DefaultRole, account.Role)
	assert.NotEmpty(t, account.ID)
	assert.NotEqual(t, "correct-horse", account.PasswordHash, "password must be stored hashed")
}

/*
TestRegister_EncodesExplicitBundle verifies that a client-supplied bundle is
validated and packed into the stored role integer.
*/
func TestRegister_EncodesExplicitBundle(t *testing.T) {
	service, repository, issuer := newServiceFixture()

	_, err := service.Register(context.Background(), RegisterInput{
		Nickname: "editor",
		Email:    "editor@padrocha.dev",
		Password: "correct-horse",
		Roles:    []string{"READ", "EDIT"},
	})

	require.NoError(t, err)

	expected, encodeErr := sec.Encode([]sec.Permission{sec.PermissionRead, sec.PermissionEdit})
	require.NoError(t, encodeErr)

	assert.Equal(t, expected, repository.byNickname["editor"].Role)
	assert.Equal(t, expected, issuer.lastRole)
}

/*
TestRegister_RejectsUnknownPermissionName verifies that a bundle naming a
permission outside the lattice is rejected before anything is stored.
*/
func TestRegister_RejectsUnknownPermissionName(t *testing.T) {
	service, repository, _ := newServiceFixture()

	_, err := service.Register(context.Background(), RegisterInput{
		Nickname: "intruder",
		Email:    "intruder@padrocha.dev",
		Password: "correct-horse",
		Roles:    []string{"READ", "SUDO"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrInvalidPermissionName)
	assert.Empty(t, repository.byNickname, "nothing may be persisted on rejection")
}

/*
TestRegister_ValidatesInput exercises the boundary rules for account fields.
*/
func TestRegister_ValidatesInput(t *testing.T) {
	testCases := []struct {
		name  string
		input RegisterInput
	}{
		{
			name:  "empty nickname",
			input: RegisterInput{Email: "a@b.dev", Password: "correct-horse"},
		},
		{
			name:  "nickname too short",
			input: RegisterInput{Nickname: "ab", Email: "a@b.dev", Password: "correct-horse"},
		},
		{
			name:  "invalid email",
			input: RegisterInput{Nickname: "valid", Email: "not-an-email", Password: "correct-horse"},
		},
		{
			name:  "password too short",
			input: RegisterInput{Nickname: "valid", Email: "a@b.dev", Password: "short"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, _, _ := newServiceFixture()

			_, err := service.Register(context.Background(), testCase.input)

			require.Error(t, err)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

/*
TestRegister_DuplicateNicknameConflicts verifies the uniqueness error surfaces
as a 409 Conflict.
*/
func TestRegister_DuplicateNicknameConflicts(t *testing.T) {
	service, _, _ := newServiceFixture()

	input := RegisterInput{
		Nickname: "padrocha",
		Email:    "contact@padrocha.dev",
		Password: "correct-horse",
	}

	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

/*
TestLogin_Succeeds verifies the happy path: stored hash matches, credential is
issued for the stored identity.
*/
func TestLogin_Succeeds(t *testing.T) {
	service, _, issuer := newServiceFixture()

	_, err := service.Register(context.Background(), RegisterInput{
		Nickname: "Padrocha",
		Email:    "contact@padrocha.dev",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), LoginInput{
		Nickname: "PADROCHA", // Lookup is case-insensitive.
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "padrocha", issuer.lastNickname)
}

/*
TestLogin_UnknownNickname verifies a missing account maps to 404 Not Found,
mirroring the lookup semantics of the repository.
*/
func TestLogin_UnknownNickname(t *testing.T) {
	service, _, _ := newServiceFixture()

	_, err := service.Login(context.Background(), LoginInput{
		Nickname: "ghost",
		Password: "whatever-8",
	})

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

/*
TestLogin_WrongPassword verifies a hash mismatch maps to 401 Unauthorized
without leaking whether the nickname exists.
*/
func TestLogin_WrongPassword(t *testing.T) {
	service, _, _ := newServiceFixture()

	_, err := service.Register(context.Background(), RegisterInput{
		Nickname: "padrocha",
		Email:    "contact@padrocha.dev",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), LoginInput{
		Nickname: "padrocha",
		Password: "wrong-horse",
	})

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

/*
TestProfile_DecodesRoles verifies the presentation projection replaces the
packed integer with the decoded permission names.
*/
func TestProfile_DecodesRoles(t *testing.T) {
	service, _, issuer := newServiceFixture()

	_, err := service.Register(context.Background(), RegisterInput{
		Nickname: "padrocha",
		Email:    "contact@padrocha.dev",
		Password: "correct-horse",
		Roles:    []string{"READ", "WRITE", "ADMIN"},
	})
	require.NoError(t, err)

	profile, err := service.ProfileByID(context.Background(), issuer.lastUserID)
	require.NoError(t, err)

	assert.Equal(t, []string{"READ", "WRITE", "ADMIN"}, profile.Roles)
	assert.Equal(t, "padrocha", profile.Nickname)

	// Same projection reachable by nickname.
	byNickname, err := service.ProfileByNickname(context.Background(), "padrocha")
	require.NoError(t, err)
	assert.Equal(t, profile.Identifier, byNickname.Identifier)
}

/*
TestProfile_SurfacesCorruptRole verifies that a stored role carrying unassigned
bits fails the profile projection instead of being silently masked.
*/
func TestProfile_SurfacesCorruptRole(t *testing.T) {
	service, repository, _ := newServiceFixture()

	corrupt := &User{ID: "u-1", Nickname: "corrupt", Email: "c@p.dev", Role: sec.Role(1 << 9)}
	repository.byID[corrupt.ID] = corrupt
	repository.byNickname[corrupt.Nickname] = corrupt

	_, err := service.ProfileByID(context.Background(), corrupt.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrUnknownPermissionBits)
}
