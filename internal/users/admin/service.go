// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package admin implements the administrator identity system.

Administrators moderate member-submitted content (story and company
verification) and manage the editorial surfaces (blogs, interviews,
categories, site details). Their tokens carry the admin kind tag plus the
fixed "admin" role, and both are required by the admin gate.
*/
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/sec"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

// TokenIssuer defines the contract for generating bearer tokens.
type TokenIssuer interface {
	Issue(principalID string, kind sec.PrincipalKind, role string) (string, error)
	TTL() time.Duration
}

// Service implements administrator identity use cases.
type Service struct {
	repository  Repository
	tokenIssuer TokenIssuer
	logger      *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(repository Repository, tokenIssuer TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		repository:  repository,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// RegisterInput holds the data required to enroll a new administrator.
type RegisterInput struct {
	Name        string
	PhoneNumber string
	Email       string
	Password    string
}

// Session pairs the administrator with a freshly issued bearer token.
type Session struct {
	Admin     *Admin    `json:"admin"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

/*
Register validates, hashes, and persists a new administrator account.

Description: Duplicate detection runs against email OR phone number in a
single lookup, matching how admin login resolves identifiers. The role tag
is always stamped to "admin" regardless of input.

Returns:
  - *Session: Created administrator plus bearer token
  - error: Duplicate (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Session, error) {

	// Verify identity uniqueness across both contact channels.
	if _, err := service.repository.FindByEmailOrPhone(context, input.Email); err == nil {
		return nil, apperr.Duplicate("Admin already exists")
	}
	if _, err := service.repository.FindByEmailOrPhone(context, input.PhoneNumber); err == nil {
		return nil, apperr.Duplicate("Admin already exists")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	newAdmin := &Admin{
		ID:          uuidv7.New(),
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Password:    hashedPassword,
		Role:        sec.RoleAdmin,
	}

	if err := service.repository.Create(context, newAdmin); err != nil {
		return nil, err
	}

	service.logger.Info("admin_registered", slog.String("admin_id", newAdmin.ID))

	return service.newSession(newAdmin)
}

/*
Login authenticates an administrator by email or phone number.

Description: A missing account and a wrong password both map to the same
Unauthorized error so the endpoint cannot be used to probe which
administrators exist.
*/
func (service *Service) Login(context context.Context, emailOrPhone, password string) (*Session, error) {

	account, err := service.repository.FindByEmailOrPhone(context, emailOrPhone)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if !sec.CheckPasswordHash(password, account.Password) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	service.logger.Info("admin_logged_in", slog.String("admin_id", account.ID))

	return service.newSession(account)
}

// newSession issues an admin-kind token for the account and assembles a session.
func (service *Service) newSession(account *Admin) (*Session, error) {
	token, err := service.tokenIssuer.Issue(account.ID, sec.KindAdmin, account.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &Session{
		Admin:     account,
		Token:     token,
		ExpiresAt: time.Now().Add(service.tokenIssuer.TTL()),
	}, nil
}
