// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import "time"

// User represents a registered member who can author stories and list a company.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Password    string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated user search.
type Filter struct {
	Search string // Case-insensitive match against name, email and phone number
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldPassword    = "password"
	FieldIdentifier  = "identifier"
)
