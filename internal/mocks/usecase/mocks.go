// Package usecase provides testify mocks for the usecase interfaces,
// used by the HTTP handler tests.
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"userhub/internal/domain/entity"
	"userhub/internal/usecase"
)

// MockAuthUsecase is a testify mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock whose expectations are asserted when the
// test finishes.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	args := m.Called(ctx, input)
	if pair, ok := args.Get(0).(*usecase.TokenPairOutput); ok {
		return pair, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	args := m.Called(ctx, input)
	if pair, ok := args.Get(0).(*usecase.TokenPairOutput); ok {
		return pair, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock whose expectations are asserted when the
// test finishes.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) SaveUser(ctx context.Context, input *usecase.SaveUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) SaveRole(ctx context.Context, input *usecase.SaveRoleInput) (*entity.Role, error) {
	args := m.Called(ctx, input)
	if role, ok := args.Get(0).(*entity.Role); ok {
		return role, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) AddRoleToUser(ctx context.Context, input *usecase.AddRoleToUserInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}
