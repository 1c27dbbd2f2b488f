package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/domain/service"
	mockRepo "userhub/internal/mocks/repository"
	mockSvc "userhub/internal/mocks/service"
	"userhub/internal/usecase"
)

const testIssuer = "http://localhost:8080/api/login"

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func testUser(username string, roleNames ...string) *entity.User {
	roles := make([]entity.Role, 0, len(roleNames))
	for _, name := range roleNames {
		roles = append(roles, entity.Role{Name: name})
	}

	return &entity.User{
		Username:     username,
		Name:         "Test User",
		PasswordHash: "$2a$10$hashedpassword",
		Roles:        roles,
	}
}

// principalWith matches a principal by username and exact role sequence.
func principalWith(username string, roles ...string) any {
	return mock.MatchedBy(func(p *entity.Principal) bool {
		return p.Username == username && assert.ObjectsAreEqual(roles, p.Roles)
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := testUser("alice", entity.RoleAdmin, entity.RoleUser)
	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "Password123!", user.PasswordHash).Return(true)
	fx.tokenService.On("IssueAccessToken", principalWith("alice", entity.RoleAdmin, entity.RoleUser), testIssuer).
		Return("access-token", nil)
	fx.tokenService.On("IssueRefreshToken", principalWith("alice", entity.RoleAdmin, entity.RoleUser), testIssuer).
		Return("refresh-token", nil)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
		Issuer:   testIssuer,
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
		Issuer:   testIssuer,
	})

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := testUser("alice", entity.RoleUser)
	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
		Issuer:   testIssuer,
	})

	require.Error(t, err)
	assert.Nil(t, pair)
	// Wrong password and unknown username surface as the same error, so the
	// response cannot reveal which field was wrong.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_StoreFailureIsNotCredentialFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	storeErr := errors.New("connection refused")
	fx.userRepo.On("FindByUsername", ctx, "alice").Return(nil, storeErr)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "Password123!",
		Issuer:   testIssuer,
	})

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(err, storeErr))
}

func TestAuthService_Login_NoRoles(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := testUser("newbie")
	fx.userRepo.On("FindByUsername", ctx, "newbie").Return(user, nil)
	fx.hasher.On("Check", "Password123!", user.PasswordHash).Return(true)
	fx.tokenService.On("IssueAccessToken", principalWith("newbie"), testIssuer).
		Return("access-token", nil)
	fx.tokenService.On("IssueRefreshToken", principalWith("newbie"), testIssuer).
		Return("refresh-token", nil)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "newbie",
		Password: "Password123!",
		Issuer:   testIssuer,
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	}
	fx.tokenService.On("Verify", "refresh-token").Return(claims, nil)

	// Roles granted after the refresh token was issued must appear on the new
	// access token: they come from the store, not from the token.
	user := testUser("alice", entity.RoleUser, entity.RoleManager)
	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.tokenService.On("IssueAccessToken", principalWith("alice", entity.RoleUser, entity.RoleManager), testIssuer).
		Return("new-access-token", nil)

	pair, err := fx.service.Refresh(ctx, &usecase.RefreshInput{
		RefreshToken: "refresh-token",
		Issuer:       testIssuer,
	})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", pair.AccessToken)
	// The same refresh token is echoed back; no rotation.
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Verify", "bad-token").
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("signature mismatch"))

	pair, err := fx.service.Refresh(ctx, &usecase.RefreshInput{
		RefreshToken: "bad-token",
		Issuer:       testIssuer,
	})

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Verify", "stale-token").
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("token is past its expiry"))

	pair, err := fx.service.Refresh(ctx, &usecase.RefreshInput{
		RefreshToken: "stale-token",
		Issuer:       testIssuer,
	})

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAuthService_Refresh_SubjectNoLongerExists(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "deleted-user"},
	}
	fx.tokenService.On("Verify", "refresh-token").Return(claims, nil)
	fx.userRepo.On("FindByUsername", ctx, "deleted-user").Return(nil, repository.ErrUserNotFound)

	pair, err := fx.service.Refresh(ctx, &usecase.RefreshInput{
		RefreshToken: "refresh-token",
		Issuer:       testIssuer,
	})

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
