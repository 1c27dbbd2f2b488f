// Package repository provides testify mocks for the domain repository
// interfaces, used by the use case tests.
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"userhub/internal/domain/entity"
	"userhub/internal/domain/repository"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted when
// the test finishes.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) AddRole(ctx context.Context, user *entity.User, role *entity.Role) error {
	args := m.Called(ctx, user, role)

	return args.Error(0)
}

// MockRoleRepository is a testify mock for repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

// NewMockRoleRepository creates a mock whose expectations are asserted when
// the test finishes.
func NewMockRoleRepository(t *testing.T) *MockRoleRepository {
	m := &MockRoleRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if role, ok := args.Get(0).(*entity.Role); ok {
		return role, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	args := m.Called(ctx, role)

	return args.Error(0)
}

// MockTransactionManager is a testify mock for repository.TransactionManager.
// When Factory is set, Execute runs the callback against it so the
// transactional path exercises the same repository mocks and the callback's
// error propagates the way a real transaction would.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

// NewMockTransactionManager creates a mock whose expectations are asserted
// when the test finishes.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if m.Factory != nil {
		return fn(m.Factory)
	}

	return args.Error(0)
}

// MockRepositoryFactory hands out the configured mocks as
// transaction-scoped repositories.
type MockRepositoryFactory struct {
	UserRepo repository.UserRepository
	RoleRepo repository.RoleRepository
}

func (f *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *MockRepositoryFactory) NewRoleRepository() repository.RoleRepository {
	return f.RoleRepo
}
