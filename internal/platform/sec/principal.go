// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Principal Kinds

// PrincipalKind distinguishes the two identity stores a bearer token can
// belong to. The kind is chosen at token issuance and travels inside the
// token itself, so the resolver never has to guess which store an id came
// from. Ids are assigned independently per kind and are not globally unique.
type PrincipalKind string

const (
	// KindUser is a registered member of the platform.
	KindUser PrincipalKind = "user"

	// KindAdmin is a platform administrator.
	KindAdmin PrincipalKind = "admin"
)

// Valid reports whether the kind is one of the two known principal kinds.
func (k PrincipalKind) Valid() bool {
	return k == KindUser || k == KindAdmin
}

// # Roles

const (
	// RoleAdmin is the role tag stamped on every administrator record.
	// The admin gate requires both KindAdmin and this role.
	RoleAdmin = "admin"

	// RoleMember is the default role for standard registered users.
	RoleMember = "member"
)
