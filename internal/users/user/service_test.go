// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/sec"
	"github.com/taibuivan/inkpress/internal/users/user"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	users map[string]*user.User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[string]*user.User{}}
}

func (f *fakeRepository) Create(_ context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) FindByPhoneNumber(_ context.Context, phoneNumber string) (*user.User, error) {
	for _, u := range f.users {
		if u.PhoneNumber == phoneNumber {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) FindByLogin(ctx context.Context, identifier string) (*user.User, error) {
	if u, err := f.FindByEmail(ctx, identifier); err == nil {
		return u, nil
	}
	return f.FindByPhoneNumber(ctx, identifier)
}

func (f *fakeRepository) List(_ context.Context, filter user.Filter, limit, offset int) ([]*user.User, int, error) {
	all := make([]*user.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, len(all), nil
}

func (f *fakeRepository) Update(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperr.NotFound("User")
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(f.users, id)
	return nil
}

// fakeIssuer returns a predictable token without signing anything.
type fakeIssuer struct{}

func (fakeIssuer) Issue(principalID string, kind sec.PrincipalKind, role string) (string, error) {
	return "token-for-" + principalID, nil
}

func (fakeIssuer) TTL() time.Duration { return time.Hour }

func newService() (*user.Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return user.NewService(repo, fakeIssuer{}, logger), repo
}

func signupInput() user.SignupInput {
	return user.SignupInput{
		Name:        "Tai Bui Van",
		Email:       "tai@example.com",
		PhoneNumber: "+84901234567",
		Password:    "correct horse battery staple",
	}
}

func TestSignup_CreatesSession(t *testing.T) {
	service, repo := newService()

	session, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	assert.NotEmpty(t, session.User.ID)
	assert.Equal(t, "token-for-"+session.User.ID, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

	stored := repo.users[session.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse battery staple", stored.Password, "password must be hashed")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	service, _ := newService()

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	second := signupInput()
	second.PhoneNumber = "+84907654321"
	_, err = service.Signup(context.Background(), second)
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE", apperr.As(err).Code)
}

func TestSignup_DuplicatePhone(t *testing.T) {
	service, _ := newService()

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	second := signupInput()
	second.Email = "other@example.com"
	_, err = service.Signup(context.Background(), second)
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE", apperr.As(err).Code)
}

func TestSignin_ByEmailAndPhone(t *testing.T) {
	service, _ := newService()

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	byEmail, err := service.Signin(context.Background(), "tai@example.com", "correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, byEmail.Token)

	byPhone, err := service.Signin(context.Background(), "+84901234567", "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, byEmail.User.ID, byPhone.User.ID)
}

func TestSignin_WrongPassword(t *testing.T) {
	service, _ := newService()

	_, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	_, err = service.Signin(context.Background(), "tai@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func TestSignin_UnknownIdentifier(t *testing.T) {
	service, _ := newService()

	_, err := service.Signin(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, err)

	// Same error as a wrong password, so the endpoint cannot probe
	// which identifiers are registered.
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func TestUpdateUser_RehashesNonEmptyPassword(t *testing.T) {
	service, repo := newService()

	session, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)
	oldHash := repo.users[session.User.ID].Password

	_, err = service.UpdateUser(context.Background(), session.User.ID, user.UpdateInput{
		Name:        "Renamed",
		Email:       "tai@example.com",
		PhoneNumber: "+84901234567",
		Password:    "a brand new password",
	})
	require.NoError(t, err)

	assert.NotEqual(t, oldHash, repo.users[session.User.ID].Password)
	assert.Equal(t, "Renamed", repo.users[session.User.ID].Name)
}

func TestUpdateUser_KeepsHashWhenPasswordEmpty(t *testing.T) {
	service, repo := newService()

	session, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)
	oldHash := repo.users[session.User.ID].Password

	_, err = service.UpdateUser(context.Background(), session.User.ID, user.UpdateInput{
		Name:        "Renamed",
		Email:       "tai@example.com",
		PhoneNumber: "+84901234567",
	})
	require.NoError(t, err)

	assert.Equal(t, oldHash, repo.users[session.User.ID].Password)
}
