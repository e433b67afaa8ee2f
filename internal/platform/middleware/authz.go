// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package middleware provides the HTTP middleware chain for the Inkpress API server.
//
// # Authentication Model
//
// One token, one extraction path, one resolved principal. Every gate reads
// the bearer token through [ExtractToken] (Authorization header first, then
// the token cookie) and every gate publishes the result under the same
// context key. The token carries its principal kind, so resolution never
// consults a store.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/constants"
	"github.com/taibuivan/inkpress/internal/platform/ctxutil"
	"github.com/taibuivan/inkpress/internal/platform/respond"
	"github.com/taibuivan/inkpress/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the token
// service implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenStr string) (*sec.AuthClaims, error)
}

// ExtractToken locates a bearer token on the request.
//
// # Precedence
//
//  1. 'Authorization: Bearer <token>' header.
//  2. The 'token' cookie set at signin.
//
// An empty string means no token was presented. A malformed Authorization
// header is reported as an error rather than silently falling through to
// the cookie, so clients learn about their broken header immediately.
func ExtractToken(request *http.Request) (string, error) {
	authHeader := request.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", apperr.Unauthorized("Invalid authorization format")
		}
		return parts[1], nil
	}

	cookie, err := request.Cookie(constants.TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", nil
	}
	return cookie.Value, nil
}

// Authenticate extracts and verifies the bearer token, if any.
//
// # Flow
//  1. Locate a token via [ExtractToken] (header wins over cookie).
//  2. If absent, the request proceeds as anonymous.
//  3. If present, verify signature, expiry, and kind tag via [TokenVerifier].
//  4. Inject the resolved [*sec.AuthClaims] into the request context.
//
// Routes that require identity stack [RequireAuth] or [RequireAdmin] on top.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, err := ExtractToken(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, sec.ErrTokenExpired) {
					respond.Error(writer, request, apperr.Unauthorized("Token has expired"))
					return
				}
				respond.Error(writer, request, apperr.Unauthorized("Invalid token"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Both User and
// Admin principals pass; handlers read the kind when it matters (e.g. when
// stamping authorship or deciding moderation defaults).
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		if principal == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin blocks requests whose principal is not an administrator.
//
// # Flow
//  1. No principal in context → 401 (missing or invalid token).
//  2. Principal present but kind != Admin, or role tag != "admin" → 403.
//
// A valid User token therefore yields 403, not 401: the caller proved who
// they are, they just are not allowed here.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())

		// ── 1. Authentication Check ───────────────────────────────────────
		if principal == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		// ── 2. Authorization Check ────────────────────────────────────────
		if principal.Kind != sec.KindAdmin || principal.Role != sec.RoleAdmin {
			respond.Error(writer, request, apperr.Forbidden("Access denied: Admin only"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
