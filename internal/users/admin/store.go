// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import "context"

// Repository defines the storage contract for Admin principals.
type Repository interface {
	// Create persists a new administrator record.
	Create(context context.Context, admin *Admin) error

	// FindByID retrieves an administrator by primary key.
	FindByID(context context.Context, id string) (*Admin, error)

	// FindByEmailOrPhone matches the identifier against email OR phone
	// number. The first match wins.
	FindByEmailOrPhone(context context.Context, identifier string) (*Admin, error)
}
