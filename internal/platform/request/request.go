// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/constants"
	"github.com/taibuivan/inkpress/internal/platform/ctxutil"
	"github.com/taibuivan/inkpress/internal/platform/sec"
	"github.com/taibuivan/inkpress/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Principal extracts the authenticated principal claims from the request context.

Returns nil if the request is not authenticated.
*/
func Principal(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetPrincipal(request.Context())
}

/*
RequiredPrincipal ensures the request is authenticated and returns the claims.

Returns:
  - *sec.AuthClaims: The authenticated principal claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredPrincipal(request *http.Request) (*sec.AuthClaims, error) {

	// Get principal claims
	claims := ctxutil.GetPrincipal(request.Context())

	// If the request is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredPrincipalID returns the ID of the currently authenticated principal.

Returns:
  - string: Principal UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredPrincipalID(request *http.Request) (string, error) {

	// Get principal claims
	claims, err := RequiredPrincipal(request)

	// If the request is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return claims.PrincipalID, nil
}

/*
FormFile parses a multipart form and returns the named file part.

The form is limited to constants.MaxUploadMemory in memory; the file itself
must not exceed constants.MaxUploadBytes.

Returns:
  - []byte: The file contents
  - string: The original filename
  - error: apperr.ValidationError if the part is missing or too large
*/
func FormFile(request *http.Request, name string) ([]byte, string, error) {

	// 1. Parse the multipart form
	if err := request.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		return nil, "", apperr.ValidationError("Invalid multipart form")
	}

	// 2. Retrieve the named file part
	file, header, err := request.FormFile(name)
	if err != nil {
		return nil, "", apperr.ValidationError("Missing file field: " + name)
	}
	defer func(file multipart.File) {
		_ = file.Close()
	}(file)

	// 3. Enforce the upload size limit
	if header.Size > constants.MaxUploadBytes {
		return nil, "", apperr.ValidationError("File exceeds the maximum upload size")
	}

	// 4. Read the file contents
	data, err := io.ReadAll(io.LimitReader(file, constants.MaxUploadBytes+1))
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	if int64(len(data)) > constants.MaxUploadBytes {
		return nil, "", apperr.ValidationError("File exceeds the maximum upload size")
	}

	return data, header.Filename, nil
}

/*
FormValue parses a multipart form and returns the named text field.

Returns an empty string when the field is absent.
*/
func FormValue(request *http.Request, name string) string {
	_ = request.ParseMultipartForm(constants.MaxUploadMemory)
	return request.FormValue(name)
}
