package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userhub/internal/domain/entity"
)

// Claims is the verified payload of a signed token. Roles is nil for refresh
// tokens; refresh deliberately re-derives roles from the store so a stale
// assignment never propagates through a token.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Principal rebuilds the request-scoped identity carried by the claims.
func (c *Claims) Principal() *entity.Principal {
	return &entity.Principal{
		Username: c.Subject,
		Roles:    c.Roles,
	}
}

// TokenService defines the interface for issuing and verifying signed tokens.
// Implementations are stateless: trust is entirely cryptographic plus an
// expiry check, with no store lookup on the verification path.
type TokenService interface {
	// IssueAccessToken mints a short-lived token carrying the principal's
	// identity and role claims. The issuer string is caller-supplied,
	// typically the serving endpoint's own URL.
	IssueAccessToken(principal *entity.Principal, issuer string) (string, error)

	// IssueRefreshToken mints a longer-lived token carrying identity only.
	IssueRefreshToken(principal *entity.Principal, issuer string) (string, error)

	// Verify validates the token's signature and expiry and returns its
	// claims. It fails with domainerrors.ErrTokenExpired when the token is
	// past its expiry and domainerrors.ErrTokenInvalid for anything else.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
