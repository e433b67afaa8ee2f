// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user implements the member-facing identity system.

It handles signup, credential verification and the member CRUD surface used
by the admin dashboard. Tokens are stateless bearer JWTs tagged with the
principal kind, so a member token can never be replayed against admin-only
endpoints even when the underlying ids collide across stores.

Architecture:

  - Service: Orchestrates business logic (Signup, Signin, member CRUD).
  - Repository: Abstracted interface over the users.account table.
  - Security: Bcrypt password hashing, HS256 kind-tagged JWTs.
*/
package user

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
	// Issue creates a signed, kind-tagged JWT for the given principal.
	Issue(principalID string, kind sec.PrincipalKind, role string) (string, error)

	// TTL reports the configured token lifetime.
	TTL() time.Duration
}

// Service implements member identity use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or signin logic must be reviewed before merging.
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

// # Signup Flow

// SignupInput holds the data required to enroll a new member.
type SignupInput struct {
	Name        string
	PhoneNumber string
	Email       string
	Password    string
}

// Session pairs the hydrated principal with a freshly issued bearer token.
type Session struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

/*
Signup validates, hashes, and persists a brand new member account.

Description: Enrollment of a new member, with duplicate identity detection
on both email and phone number before the insert.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *Session: Created principal plus bearer token
  - error: Duplicate (if identity exists) or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*Session, error) {

	// Verify email uniqueness. Return a client-safe Duplicate error.
	if _, err := service.repository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Duplicate("User already exists")
	}

	// Verify phone number uniqueness.
	if _, err := service.repository.FindByPhoneNumber(context, input.PhoneNumber); err == nil {
		return nil, apperr.Duplicate("User already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	newUser := &User{
		ID:          uuidv7.New(),
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Password:    hashedPassword,
	}

	if err := service.repository.Create(context, newUser); err != nil {
		return nil, err
	}

	service.logger.Info("user_signed_up", slog.String("user_id", newUser.ID))

	return service.newSession(newUser)
}

/*
Signin authenticates a member by email or phone number.

Description: The identifier is matched against email first, then phone
number. A missing account and a wrong password both map to the same
Unauthorized error so the endpoint cannot be used to probe registrations.

Parameters:
  - context: context.Context
  - identifier: string (email or phone number)
  - password: string (plaintext)

Returns:
  - *Session: Principal plus bearer token
  - error: apperr.Unauthorized on any credential mismatch
*/
func (service *Service) Signin(context context.Context, identifier, password string) (*Session, error) {

	account, err := service.repository.FindByLogin(context, identifier)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if !sec.CheckPasswordHash(password, account.Password) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	service.logger.Info("user_signed_in", slog.String("user_id", account.ID))

	return service.newSession(account)
}

// # Member CRUD

// ListUsers returns a filtered, paginated page of members plus the total count.
func (service *Service) ListUsers(context context.Context, filter Filter, limit, offset int) ([]*User, int, error) {
	return service.repository.List(context, filter, limit, offset)
}

// GetUser retrieves a single member by id.
func (service *Service) GetUser(context context.Context, id string) (*User, error) {
	return service.repository.FindByID(context, id)
}

// UpdateInput holds the mutable fields for a member update.
//
// Password is optional: when empty the stored hash is kept.
type UpdateInput struct {
	Name        string
	PhoneNumber string
	Email       string
	Password    string
}

/*
UpdateUser overwrites a member's profile fields.

Description: The last write wins; concurrent updates are not detected.
A non-empty password is re-hashed before storage.
*/
func (service *Service) UpdateUser(context context.Context, id string, input UpdateInput) (*User, error) {

	account, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.PhoneNumber = input.PhoneNumber
	account.Email = input.Email

	if input.Password != "" {
		hashedPassword, err := sec.HashPassword(input.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		account.Password = hashedPassword
	}

	if err := service.repository.Update(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("user_updated", slog.String("user_id", account.ID))
	return account, nil
}

// DeleteUser removes a member record permanently.
//
// Content owned by the member keeps its dangling owner reference; there is
// no cascade.
func (service *Service) DeleteUser(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("user_deleted", slog.String("user_id", id))
	return nil
}

// newSession issues a kind-tagged token for the account and assembles a session.
func (service *Service) newSession(account *User) (*Session, error) {
	token, err := service.tokenIssuer.Issue(account.ID, sec.KindUser, sec.RoleMember)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &Session{
		User:      account,
		Token:     token,
		ExpiresAt: time.Now().Add(service.tokenIssuer.TTL()),
	}, nil
}
