// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by username, including the
	// assigned roles.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List retrieves all users with their assigned roles.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity; the store assigns the ID.
	Create(ctx context.Context, user *entity.User) error

	// AddRole appends a role to the user's assignment list. Assigning a role
	// the user already holds is a no-op.
	AddRole(ctx context.Context, user *entity.User, role *entity.Role) error
}
