// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrocha/blog-api/internal/platform/sec"
)

// issuedAt is a fixed instant injected as the clock in token tests.
var issuedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

/*
TestTokenService_RequiresSecret verifies that an absent secret is refused at
construction time, the startup-fatal path.
*/
func TestTokenService_RequiresSecret(t *testing.T) {
	_, err := sec.NewTokenService("", nil)
	require.Error(t, err)
}

/*
TestTokenService_IssueVerifyRoundTrip checks that an issued credential opens
back into the same identity, role, and timestamps.
*/
func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", fixedClock(issuedAt))
	require.NoError(t, err)

	token, err := service.Issue("u1", "ana", sec.DefaultRole)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "ana", claims.Nickname)
	assert.Equal(t, sec.DefaultRole, claims.Role)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(sec.TokenTTL).Unix(), claims.ExpiresAt.Unix())
}

/*
TestTokenService_VerifyRejectsWrongSecret verifies a token signed elsewhere
does not verify.
*/
func TestTokenService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := sec.NewTokenService("secret-a", fixedClock(issuedAt))
	require.NoError(t, err)

	verifier, err := sec.NewTokenService("secret-b", fixedClock(issuedAt))
	require.NoError(t, err)

	token, err := issuer.Issue("u1", "ana", sec.DefaultRole)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

/*
TestTokenService_VerifyRejectsGarbage verifies structural failures surface as
errors rather than empty claims.
*/
func TestTokenService_VerifyRejectsGarbage(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", fixedClock(issuedAt))
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.Verify(raw)
		assert.Error(t, err)
	}
}

/*
TestTokenService_VerifyKeepsExpiredTokens verifies that verification does NOT
reject on expiry; the session guard owns that decision so expired credentials
classify distinctly from malformed ones.
*/
func TestTokenService_VerifyKeepsExpiredTokens(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", fixedClock(issuedAt.Add(-2*sec.TokenTTL)))
	require.NoError(t, err)

	token, err := service.Issue("u1", "ana", sec.DefaultRole)
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Time.Before(issuedAt))
}
