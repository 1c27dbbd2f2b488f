package context

import (
	"context"

	"github.com/labstack/echo/v4"

	"userhub/internal/domain/entity"
)

// GetPrincipal extracts the authenticated principal from echo.Context.
// It returns nil when the request did not pass authentication.
func GetPrincipal(c echo.Context) *entity.Principal {
	if p, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok {
		return p
	}

	return nil
}

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, p *entity.Principal) {
	c.Set(string(KeyPrincipal), p)
}

// GetPrincipalFromContext extracts the authenticated principal from a
// standard context.Context. The principal is passed explicitly through the
// call chain; nothing here relies on goroutine-local state.
func GetPrincipalFromContext(ctx context.Context) *entity.Principal {
	if p, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return p
	}

	return nil
}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, p)
}
