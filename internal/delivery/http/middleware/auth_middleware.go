package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/delivery/http/response"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"
	"userhub/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Routes that must stay open (login, token refresh, health) simply do not
// mount it; everything else is rejected without a valid bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate is the core middleware function that validates the JWT access
// token. A missing Authorization header is rejected outright rather than
// falling through to a later route check: unauthenticated access to a
// protected route must not depend on every route remembering to declare a
// role requirement.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := BearerToken(c)
		if err != nil {
			return response.AuthFailure(c, http.StatusForbidden, domainerrors.ErrMissingToken.Message())
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			m.logger.Warn("Token verification failed",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)

			return response.AuthFailure(c, http.StatusForbidden, authFailureMessage(err))
		}

		principal := claims.Principal()

		// Expose the principal both on the echo context and on the request's
		// context.Context so the service layer sees it without any
		// framework dependency.
		deliverycontext.SetPrincipal(c, principal)
		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the authenticated
// principal has a specific role. It must be used AFTER the Authenticate
// middleware; the check is plain set membership over the roles claim.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return response.AuthFailure(c, http.StatusForbidden, domainerrors.ErrForbidden.Message())
			}

			if !principal.HasRole(requiredRole) {
				m.logger.Warn("Role requirement not met",
					slog.String("username", principal.Username),
					slog.String("requiredRole", requiredRole),
				)

				return response.AuthFailure(c, http.StatusForbidden, "required role is missing: "+requiredRole)
			}

			return next(c)
		}
	}
}

// BearerToken extracts the bearer token from the Authorization header.
// It fails with ErrMissingToken when the header is absent or not in
// bearer form.
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrMissingToken.WrapMessage("authorization header is absent")
	}

	tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
	if tokenString == authHeader || tokenString == "" {
		return "", domainerrors.ErrMissingToken.WrapMessage("authorization header is not a bearer token")
	}

	return tokenString, nil
}

// authFailureMessage maps a verification error to the message exposed in the
// error header and body. Expiry is distinguished from everything else so
// clients know when to hit the refresh endpoint.
func authFailureMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return domainerrors.ErrTokenInvalid.Message()
}
