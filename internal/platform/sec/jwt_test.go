// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/platform/sec"
)

const testSecret = "unit-test-secret"

func newService(t *testing.T, ttl time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "inkpress.app", ttl)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies issue → verify preserves all claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newService(t, time.Hour)

	token, err := service.Issue("user-123", sec.KindUser, sec.RoleMember)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.PrincipalID)
	assert.Equal(t, sec.KindUser, claims.Kind)
	assert.Equal(t, sec.RoleMember, claims.Role)
	assert.Equal(t, "inkpress.app", claims.Issuer)
}

/*
TestTokenService_AdminKind verifies the kind tag distinguishes admin tokens.
*/
func TestTokenService_AdminKind(t *testing.T) {
	service := newService(t, time.Hour)

	token, err := service.Issue("admin-1", sec.KindAdmin, sec.RoleAdmin)
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sec.KindAdmin, claims.Kind)
	assert.Equal(t, sec.RoleAdmin, claims.Role)
}

/*
TestTokenService_UnknownKind ensures tokens cannot carry an arbitrary kind.
*/
func TestTokenService_UnknownKind(t *testing.T) {
	service := newService(t, time.Hour)

	_, err := service.Issue("user-123", sec.PrincipalKind("robot"), sec.RoleMember)
	assert.Error(t, err)
}

/*
TestTokenService_Expired verifies that expired tokens fail with ErrTokenExpired.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newService(t, time.Millisecond)

	token, err := service.Issue("user-123", sec.KindUser, sec.RoleMember)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = service.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_Tampered verifies that signature mismatches are rejected.
*/
func TestTokenService_Tampered(t *testing.T) {
	service := newService(t, time.Hour)

	token, err := service.Issue("user-123", sec.KindUser, sec.RoleMember)
	require.NoError(t, err)

	// Flip the last byte of the signature
	last := "x"
	if token[len(token)-1] == 'x' {
		last = "y"
	}
	tampered := token[:len(token)-1] + last

	_, err = service.Verify(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_Empty verifies that the empty string never verifies.
*/
func TestTokenService_Empty(t *testing.T) {
	service := newService(t, time.Hour)

	_, err := service.Verify("")
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_WrongSecret verifies that a token minted with one key
never verifies against another.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuing := newService(t, time.Hour)

	verifying, err := sec.NewTokenService("a-completely-different-secret", "inkpress.app", time.Hour)
	require.NoError(t, err)

	token, err := issuing.Issue("user-123", sec.KindUser, sec.RoleMember)
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestNewTokenService_Validation checks constructor argument guarding.
*/
func TestNewTokenService_Validation(t *testing.T) {
	_, err := sec.NewTokenService("", "inkpress.app", time.Hour)
	assert.Error(t, err)

	_, err = sec.NewTokenService(testSecret, "inkpress.app", 0)
	assert.Error(t, err)
}
