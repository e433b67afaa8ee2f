// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import "context"

// Repository defines the storage contract for User principals.
//
// # Identity Scope
//
// IDs returned here are only meaningful within the user store; the admin
// store keeps its own id space and the two are never cross-queried.
type Repository interface {
	// Create persists a new user record.
	Create(context context.Context, user *User) error

	// FindByID retrieves a user by primary key.
	FindByID(context context.Context, id string) (*User, error)

	// FindByEmail retrieves a user by exact email match.
	FindByEmail(context context.Context, email string) (*User, error)

	// FindByPhoneNumber retrieves a user by exact phone number match.
	FindByPhoneNumber(context context.Context, phoneNumber string) (*User, error)

	// FindByLogin matches the identifier against email OR phone number.
	// The first match wins.
	FindByLogin(context context.Context, identifier string) (*User, error)

	// List returns a filtered, paginated page of users plus the total count.
	List(context context.Context, filter Filter, limit, offset int) ([]*User, int, error)

	// Update overwrites the mutable fields of an existing user.
	Update(context context.Context, user *User) error

	// Delete removes a user record permanently.
	Delete(context context.Context, id string) error
}
