// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named permission grouping, unique by name. Roles are shared:
// many users reference the same role record.
type Role struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Well-known role names. Authorization checks are plain set membership over
// these strings; nothing stops an operator from defining additional roles.
const (
	RoleUser       = "ROLE_USER"
	RoleManager    = "ROLE_MANAGER"
	RoleAdmin      = "ROLE_ADMIN"
	RoleSuperAdmin = "ROLE_SUPER_ADMIN"
)
