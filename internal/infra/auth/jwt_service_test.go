package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhub/config"
	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/errors"
)

const testIssuer = "http://localhost:8080/api/login"

func createTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SigningSecret:   "test-signing-secret",
			AccessTokenTTL:  10 * time.Minute,
			RefreshTokenTTL: 30 * time.Minute,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := createTestJWTService(t)

	principal := &entity.Principal{
		Username: "alice",
		Roles:    []string{entity.RoleAdmin, entity.RoleUser},
	}

	tokenString, err := svc.IssueAccessToken(principal, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	// Role order must survive the round trip.
	assert.Equal(t, []string{entity.RoleAdmin, entity.RoleUser}, claims.Roles)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 10*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_RefreshTokenCarriesNoRoles(t *testing.T) {
	svc := createTestJWTService(t)

	principal := &entity.Principal{
		Username: "alice",
		Roles:    []string{entity.RoleAdmin},
	}

	tokenString, err := svc.IssueRefreshToken(principal, testIssuer)
	require.NoError(t, err)

	claims, err := svc.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Empty(t, claims.Roles)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 30*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_VerifyIsIdempotent(t *testing.T) {
	svc := createTestJWTService(t)

	principal := &entity.Principal{Username: "alice", Roles: []string{entity.RoleUser}}
	tokenString, err := svc.IssueAccessToken(principal, testIssuer)
	require.NoError(t, err)

	first, err := svc.Verify(tokenString)
	require.NoError(t, err)

	second, err := svc.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJWTService_DistinctTokensPerIssuance(t *testing.T) {
	svc := createTestJWTService(t)
	base := time.Now()
	svc.now = func() time.Time { return base }

	principal := &entity.Principal{Username: "alice", Roles: []string{entity.RoleUser}}

	tokenA, err := svc.IssueAccessToken(principal, testIssuer)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Second) }
	tokenB, err := svc.IssueAccessToken(principal, testIssuer)
	require.NoError(t, err)

	assert.NotEqual(t, tokenA, tokenB)

	// Both verify independently.
	svc.now = func() time.Time { return base.Add(2 * time.Second) }
	_, err = svc.Verify(tokenA)
	assert.NoError(t, err)
	_, err = svc.Verify(tokenB)
	assert.NoError(t, err)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := createTestJWTService(t)
	base := time.Now()
	svc.now = func() time.Time { return base }

	principal := &entity.Principal{Username: "alice", Roles: []string{entity.RoleUser}}
	tokenString, err := svc.IssueAccessToken(principal, testIssuer)
	require.NoError(t, err)

	// Still valid just before expiry.
	svc.now = func() time.Time { return base.Add(10*time.Minute - time.Second) }
	_, err = svc.Verify(tokenString)
	require.NoError(t, err)

	// Rejected once past expiry, and distinguishable from a malformed token.
	svc.now = func() time.Time { return base.Add(10*time.Minute + time.Second) }
	_, err = svc.Verify(tokenString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc := createTestJWTService(t)

	principal := &entity.Principal{Username: "alice", Roles: []string{entity.RoleUser}}
	tokenString, err := svc.IssueAccessToken(principal, testIssuer)
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	tampered := tokenString[:len(tokenString)-1]
	if tokenString[len(tokenString)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := createTestJWTService(t)

	otherCfg := &config.Config{
		Auth: &config.AuthConfig{
			SigningSecret:   "a-different-secret",
			AccessTokenTTL:  10 * time.Minute,
			RefreshTokenTTL: 30 * time.Minute,
		},
	}
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	principal := &entity.Principal{Username: "alice", Roles: []string{entity.RoleUser}}
	tokenString, err := other.IssueAccessToken(principal, testIssuer)
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_UnexpectedSigningMethodRejected(t *testing.T) {
	svc := createTestJWTService(t)

	// Same secret, different HMAC variant. Verification pins HS256.
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString(svc.secret)
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := createTestJWTService(t)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tokenString)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	}
}

func TestJWTService_Durations(t *testing.T) {
	svc := createTestJWTService(t)

	assert.Equal(t, 10*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, 30*time.Minute, svc.RefreshTokenDuration())
}
