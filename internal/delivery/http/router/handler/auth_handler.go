// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"userhub/internal/delivery/http/middleware"
	"userhub/internal/delivery/http/response"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/errors"
	"userhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for the login and token refresh handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// loginRequest is the form-encoded login body.
type loginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// Login handles the credential login request. The response body is the bare
// {access_token, refresh_token} object; it is part of the wire contract and
// not wrapped in the standard envelope.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Issuer:   requestURL(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Refresh handles the token refresh request. The refresh token arrives as a
// bearer header; an absent header is its own failure kind, distinct from a
// token that fails verification.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken, err := middleware.BearerToken(c)
	if err != nil {
		return response.AuthFailure(c, http.StatusForbidden, domainerrors.ErrMissingToken.Message())
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: refreshToken,
		Issuer:       requestURL(c),
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			// Verification failures and a vanished subject all surface
			// uniformly as forbidden on this endpoint.
			return response.AuthFailure(c, http.StatusForbidden, appErr.Message())
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// requestURL rebuilds the absolute URL the request was served on. It is used
// as the issuer claim of minted tokens, matching what clients see.
func requestURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host + c.Request().URL.Path
}
