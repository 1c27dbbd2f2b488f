// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userhub/config"
	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"
	"userhub/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard: three base64url segments signed with HMAC-SHA256 under a
// single process-wide secret, so any conformant client can consume the tokens.
type jwtService struct {
	secret     []byte        // Shared signing key, constant for the process lifetime.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SigningSecret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.Auth.SigningSecret),
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		now:        time.Now,
	}, nil
}

// IssueAccessToken mints a short-lived token carrying the principal's roles
// as a claim, order preserved.
func (s *jwtService) IssueAccessToken(principal *entity.Principal, issuer string) (string, error) {
	return s.sign(principal.Username, issuer, s.accessTTL, principal.Roles)
}

// IssueRefreshToken mints a longer-lived token without a roles claim. Roles
// are re-derived from the store on refresh so a stale assignment never
// outlives the access token that carried it.
func (s *jwtService) IssueRefreshToken(principal *entity.Principal, issuer string) (string, error) {
	return s.sign(principal.Username, issuer, s.refreshTTL, nil)
}

// Verify validates the token's signature and expiry and returns its claims.
// Verification is stateless and idempotent; no store or cache is consulted.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token is past its expiry")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	return claims, nil
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// sign builds and signs a claims bundle. Two tokens issued for the same
// principal at different instants differ in iat/exp and verify independently.
func (s *jwtService) sign(subject, issuer string, ttl time.Duration, roles []string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
