// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package sec

// Role classifies an authenticated principal's authority level.
//
// Token issuance lives in the foundation's identity service; this API only
// verifies tokens and enforces roles on the content-management surface.
type Role string

const (
	// RoleAdmin may create and update every record kind.
	RoleAdmin Role = "admin"

	// RoleEditor may create and update records but not manage categories.
	RoleEditor Role = "editor"
)

// IsValid reports whether r is a recognised [Role] value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	}
	return false
}
