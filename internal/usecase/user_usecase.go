// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"userhub/internal/domain/entity"
)

// --- Input DTOs ---

// SaveUserInput defines the data required to create a new user.
type SaveUserInput struct {
	Username string
	Name     string
	Password string
}

// SaveRoleInput defines the data required to create a new role.
type SaveRoleInput struct {
	Name string
}

// AddRoleToUserInput defines the data required to assign a role to a user.
type AddRoleToUserInput struct {
	Username string
	RoleName string
}

// UserUsecase defines the interface for user and role management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// ListUsers retrieves all users with their assigned roles.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser retrieves a single user by username.
	GetUser(ctx context.Context, username string) (*entity.User, error)

	// SaveUser hashes the supplied password and persists a new user.
	SaveUser(ctx context.Context, input *SaveUserInput) (*entity.User, error)

	// SaveRole persists a new role.
	SaveRole(ctx context.Context, input *SaveRoleInput) (*entity.Role, error)

	// AddRoleToUser assigns an existing role to an existing user.
	// Assigning a role the user already holds is a no-op.
	AddRoleToUser(ctx context.Context, input *AddRoleToUserInput) error
}
