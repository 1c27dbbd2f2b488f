// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/domain/service"
	"userhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roleRepo:  params.RoleRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers retrieves all users with their assigned roles.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser retrieves a single user by username.
func (srv *userService) GetUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no such username")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// SaveUser hashes the supplied password and persists a new user. The user
// starts with no roles; assignment is a separate operation.
func (srv *userService) SaveUser(ctx context.Context, input *usecase.SaveUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Saving new user", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User saved", slog.String("username", newUser.Username), slog.Any("userID", newUser.ID))

	return newUser, nil
}

// SaveRole persists a new role.
func (srv *userService) SaveRole(ctx context.Context, input *usecase.SaveRoleInput) (*entity.Role, error) {
	srv.log(ctx).Info("Saving new role", slog.String("role", input.Name))

	newRole := &entity.Role{Name: input.Name}
	if err := srv.roleRepo.Create(ctx, newRole); err != nil {
		srv.log(ctx).Warn("Failed to create role", slog.String("role", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create role")
	}

	return newRole, nil
}

// AddRoleToUser assigns an existing role to an existing user. The lookups and
// the join-table insert run in one transaction so the assignment cannot
// reference a user or role deleted in between.
func (srv *userService) AddRoleToUser(ctx context.Context, input *usecase.AddRoleToUserInput) error {
	srv.log(ctx).Info("Assigning role to user", slog.String("username", input.Username), slog.String("role", input.RoleName))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		roleRepo := repoFactory.NewRoleRepository()

		user, err := userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no such username")
			}

			return errors.Wrap(err, "failed to find user")
		}

		role, err := roleRepo.FindByName(ctx, input.RoleName)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return errors.Wrap(domainerrors.ErrRoleNotFound, "no such role")
			}

			return errors.Wrap(err, "failed to find role")
		}

		if err := userRepo.AddRole(ctx, user, role); err != nil {
			return errors.Wrap(err, "failed to assign role")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to assign role", slog.String("username", input.Username), slog.String("role", input.RoleName), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Role assigned", slog.String("username", input.Username), slog.String("role", input.RoleName))

	return nil
}
