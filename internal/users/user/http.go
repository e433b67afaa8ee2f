// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user provides the HTTP delivery layer for member identity management.

It implements the gateway for the member lifecycle — from account creation to
session cookie management and the admin-facing member directory.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Issues the bearer token both in the body and as an HttpOnly cookie.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package user

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkpress/internal/platform/constants"
	"github.com/taibuivan/inkpress/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkpress/internal/platform/request"
	"github.com/taibuivan/inkpress/internal/platform/respond"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements member identity HTTP endpoints.
type Handler struct {
	userService  *Service
	secureCookie bool
}

// NewHandler constructs a new [Handler] with its service dependency.
//
// secureCookie must be true in production so the token cookie is only sent
// over TLS.
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{userService: service, secureCookie: secureCookie}
}

// Routes returns a [chi.Router] configured with member identity routes.
//
// # Endpoints
//   - POST /auth/signup : Creates a new member account and starts a session.
//   - POST /auth/signin : Authenticates by email or phone.
//   - POST /auth/logout : Clears the session cookie.
//   - GET  /            : Admin-only paginated member directory.
//   - GET  /{id}        : Public member profile.
//   - PUT  /{id}        : Admin-only profile update.
//   - DELETE /{id}      : Admin-only account removal.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/auth/signup", handler.signup)
	router.Post("/auth/signin", handler.signin)
	router.Post("/auth/logout", handler.logout)
	router.Get("/{id}", handler.getUser)

	// Admin endpoints
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listUsers)
		adminRoute.Put("/{id}", handler.updateUser)
		adminRoute.Delete("/{id}", handler.deleteUser)
	})

	return router
}

// # Request Payloads

type signupRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

/*
Signup handles the creation of a new member account.

POST /api/v1/users/auth/signup

Description: Validates input, checks for identity duplicates, persists a new
member and starts a session (token in body plus HttpOnly cookie).

Request:
  - Body: signupRequest (Name, PhoneNumber, Email, Password)

Response:
  - 201: Session: Created member plus bearer token
  - 400: ErrInvalidJSON / ErrValidation / ErrDuplicate
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 200).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPhoneNumber, input.PhoneNumber).
		Phone(FieldPhoneNumber, input.PhoneNumber).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.userService.Signup(request.Context(), SignupInput{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Password:    input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, session)
	respond.Created(writer, session)
}

/*
Signin authenticates a member and establishes a session.

POST /api/v1/users/auth/signin

Description: Verifies credentials (email or phone number plus password),
issues a kind-tagged bearer token and injects the session cookie.

Request:
  - Body: signinRequest (Email, Password)

Response:
  - 200: Session: Member profile plus bearer token
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) signin(writer http.ResponseWriter, request *http.Request) {
	var input signinRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldIdentifier, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.userService.Signin(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, session)
	respond.OK(writer, session)
}

/*
Logout clears the session cookie.

POST /api/v1/users/auth/logout

Description: Tokens are stateless and never revoked server-side; logging out
simply expires the cookie on the client.

Response:
  - 204: No Content
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.NoContent(writer)
}

/*
ListUsers returns the paginated member directory.

GET /api/v1/users?page=&limit=&search=

Response:
  - 200: []User with pagination meta
  - 401/403: missing or non-admin principal
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Search: request.URL.Query().Get("search"),
	}

	users, total, err := handler.userService.ListUsers(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	account, err := handler.userService.GetUser(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	var input updateUserRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPhoneNumber, input.PhoneNumber).
		Phone(FieldPhoneNumber, input.PhoneNumber)

	if input.Password != "" {
		validator.MinLen(FieldPassword, input.Password, 8)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.userService.UpdateUser(request.Context(), requestutil.ID(request, "id"), UpdateInput{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Password:    input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	if err := handler.userService.DeleteUser(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// setSessionCookie mirrors the bearer token into an HttpOnly cookie so
// browser clients authenticate without storing the token in script-readable
// storage. API clients keep using the Authorization header, which takes
// precedence during extraction.
func (handler *Handler) setSessionCookie(writer http.ResponseWriter, session *Session) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
