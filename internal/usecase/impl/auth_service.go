// Package impl contains the application-specific business rules implementations.
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

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates the credentials and mints an access/refresh token pair.
// Unknown username and wrong password both surface as ErrInvalidCredentials;
// only the log distinguishes them. Store failures stay infrastructure errors
// so an outage is never reported as a bad login.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed: unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	principal := &entity.Principal{
		Username: user.Username,
		Roles:    user.RoleNames(),
	}

	pair, err := srv.issuePair(principal, input.Issuer)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login successful", slog.String("username", user.Username))

	return pair, nil
}

// Refresh verifies the refresh token and mints a fresh access token. Roles
// come from the store, not from the token: the refresh token carries none.
// The same refresh token string is echoed back; refresh tokens are not
// rotated in this design.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	claims, err := srv.tokenService.Verify(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh failed: token verification", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify refresh token")
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Refresh failed: subject no longer exists", slog.String("username", claims.Subject))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to look up user during refresh")
	}

	principal := &entity.Principal{
		Username: user.Username,
		Roles:    user.RoleNames(),
	}

	accessToken, err := srv.tokenService.IssueAccessToken(principal, input.Issuer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Token refreshed", slog.String("username", user.Username))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
	}, nil
}

func (srv *authService) issuePair(principal *entity.Principal, issuer string) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(principal, issuer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(principal, issuer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
