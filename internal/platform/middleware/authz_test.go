// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/platform/constants"
	"github.com/taibuivan/inkpress/internal/platform/ctxutil"
	"github.com/taibuivan/inkpress/internal/platform/middleware"
	"github.com/taibuivan/inkpress/internal/platform/sec"
)

// stubVerifier maps token strings to canned claims for deterministic tests.
type stubVerifier struct {
	claims map[string]*sec.AuthClaims
	err    error
}

func (s *stubVerifier) Verify(tokenStr string) (*sec.AuthClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	if claims, ok := s.claims[tokenStr]; ok {
		return claims, nil
	}
	return nil, sec.ErrTokenInvalid
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		called = true
		writer.WriteHeader(http.StatusOK)
	}), &called
}

func userClaims() *sec.AuthClaims {
	return &sec.AuthClaims{PrincipalID: "user-1", Kind: sec.KindUser, Role: sec.RoleMember}
}

func adminClaims() *sec.AuthClaims {
	return &sec.AuthClaims{PrincipalID: "admin-1", Kind: sec.KindAdmin, Role: sec.RoleAdmin}
}

/*
TestExtractToken_Precedence verifies that the Authorization header wins over
the session cookie when both are present.
*/
func TestExtractToken_Precedence(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer header-token")
	request.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: "cookie-token"})

	token, err := middleware.ExtractToken(request)
	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

/*
TestExtractToken_CookieFallback verifies the cookie is used when no header is set.
*/
func TestExtractToken_CookieFallback(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: "cookie-token"})

	token, err := middleware.ExtractToken(request)
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

/*
TestExtractToken_MalformedHeader verifies that a broken Authorization header
errors instead of silently falling through to the cookie.
*/
func TestExtractToken_MalformedHeader(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "NotBearer")
	request.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: "cookie-token"})

	_, err := middleware.ExtractToken(request)
	assert.Error(t, err)
}

/*
TestExtractToken_Anonymous verifies that no token means empty string, no error.
*/
func TestExtractToken_Anonymous(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	token, err := middleware.ExtractToken(request)
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestAuthenticate_InjectsPrincipal verifies that a valid token produces a
resolved principal in the request context.
*/
func TestAuthenticate_InjectsPrincipal(t *testing.T) {
	verifier := &stubVerifier{claims: map[string]*sec.AuthClaims{"good": userClaims()}}

	var seen *sec.AuthClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetPrincipal(request.Context())
	})

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(inner).ServeHTTP(recorder, request)

	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.PrincipalID)
	assert.Equal(t, sec.KindUser, seen.Kind)
}

/*
TestAuthenticate_AnonymousPassesThrough verifies requests without a token
proceed with no principal.
*/
func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	verifier := &stubVerifier{}
	inner, called := okHandler()

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(inner).ServeHTTP(recorder, request)

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestAuthenticate_InvalidToken verifies that a bad token is rejected with 401.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{}
	inner, called := okHandler()

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer bad")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(verifier)(inner).ServeHTTP(recorder, request)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestRequireAuth verifies the authenticated gate for both outcomes.
*/
func TestRequireAuth(t *testing.T) {
	t.Run("anonymous_rejected", func(t *testing.T) {
		inner, called := okHandler()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		middleware.RequireAuth(inner).ServeHTTP(recorder, request)

		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("user_allowed", func(t *testing.T) {
		inner, called := okHandler()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), userClaims()))
		recorder := httptest.NewRecorder()

		middleware.RequireAuth(inner).ServeHTTP(recorder, request)

		assert.True(t, *called)
	})
}

/*
TestRequireAdmin verifies the admin gate distinguishes 401 from 403.

A missing token is 401; a proven User identity on an admin route is 403.
*/
func TestRequireAdmin(t *testing.T) {
	t.Run("anonymous_401", func(t *testing.T) {
		inner, called := okHandler()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		middleware.RequireAdmin(inner).ServeHTTP(recorder, request)

		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("user_403", func(t *testing.T) {
		inner, called := okHandler()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), userClaims()))
		recorder := httptest.NewRecorder()

		middleware.RequireAdmin(inner).ServeHTTP(recorder, request)

		assert.False(t, *called)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin_allowed", func(t *testing.T) {
		inner, called := okHandler()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), adminClaims()))
		recorder := httptest.NewRecorder()

		middleware.RequireAdmin(inner).ServeHTTP(recorder, request)

		assert.True(t, *called)
	})

	t.Run("kind_without_role_403", func(t *testing.T) {
		// A token claiming admin kind but a non-admin role must not pass.
		inner, called := okHandler()
		claims := &sec.AuthClaims{PrincipalID: "x", Kind: sec.KindAdmin, Role: sec.RoleMember}
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), claims))
		recorder := httptest.NewRecorder()

		middleware.RequireAdmin(inner).ServeHTTP(recorder, request)

		assert.False(t, *called)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
