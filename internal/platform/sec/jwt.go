// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces (TokenIssuer, TokenVerifier).
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT bearer token.
//
// # Why a kind tag?
//
// User and Admin ids are assigned independently by their stores, so an id
// alone cannot be resolved safely: a User id that happens to equal an Admin
// id would be misattributed. Embedding the PrincipalKind at issuance removes
// the lookup-order dependency entirely — the resolver reads the tag instead
// of probing stores.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	PrincipalID string        `json:"uid"`
	Kind        PrincipalKind `json:"knd"`
	Role        string        `json:"rol"`
}

// Sentinel verification errors, distinguishable with [errors.Is].
var (
	// ErrTokenExpired indicates a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid covers malformed tokens, signature mismatches, and
	// tokens whose claims fail validation.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// TokenService handles generation and verification of JWT tokens using HS256.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new TokenService signing with the given secret.
//
// The secret is injected explicitly from configuration; there is no
// environment fallback here. Config rejects the insecure development
// default outside development mode before this constructor is ever reached.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("sec: token ttl must be positive, got %s", ttl)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed bearer token for the given principal.
//
// The kind tag is fixed at issuance and cannot be changed without
// invalidating the signature.
func (service *TokenService) Issue(principalID string, kind PrincipalKind, role string) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("sec: unknown principal kind %q", kind)
	}

	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		PrincipalID: principalID,
		Kind:        kind,
		Role:        role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string.
//
// It returns [ErrTokenExpired] for expired tokens and [ErrTokenInvalid] for
// everything else that fails verification (empty string, tampered payload,
// wrong signing key, missing kind tag).
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	// Tokens minted before the kind tag existed carry no kind. They are
	// rejected rather than resolved by store probing.
	if !claims.Kind.Valid() {
		return nil, fmt.Errorf("%w: missing principal kind", ErrTokenInvalid)
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (service *TokenService) TTL() time.Duration {
	return service.ttl
}
