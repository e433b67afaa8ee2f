// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import "time"

// Admin represents a platform administrator.
//
// Administrators live in their own identity store with an id space
// independent from members; the role tag is fixed to "admin" at creation.
type Admin struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Password    string    `json:"-"` // bcrypt hash, never serialized
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhoneNumber  = "phone_number"
	FieldPassword     = "password"
	FieldEmailOrPhone = "email_or_phone"
)
