package repository

import (
	"context"
	"errors"

	"userhub/internal/domain/entity"
)

// ErrRoleNotFound is a domain-specific error returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines the standard operations for role persistence.
type RoleRepository interface {
	// FindByName retrieves a single role by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// Create persists a new role entity.
	Create(ctx context.Context, role *entity.Role) error
}
