package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "userhub/internal/delivery/context"
	"userhub/internal/delivery/http/response"
	"userhub/internal/errors"
	"userhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user and role management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type saveUserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required"`
}

type saveRoleRequest struct {
	Name string `json:"name" validate:"required"`
}

type addRoleToUserRequest struct {
	Username string `json:"username" validate:"required"`
	RoleName string `json:"role_name" validate:"required"`
}

// ListUsers handles the request to list all users with their roles.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "users retrieved")
}

// SaveUser handles the request to create a new user. The password is hashed
// by the use case; the stored hash never appears in the response.
func (h *UserHandler) SaveUser(c echo.Context) error {
	var req saveUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.SaveUser(c.Request().Context(), &usecase.SaveUserInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, requestURL(c), user, "user created")
}

// SaveRole handles the request to create a new role.
func (h *UserHandler) SaveRole(c echo.Context) error {
	var req saveRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.SaveRole(c.Request().Context(), &usecase.SaveRoleInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, requestURL(c), role, "role created")
}

// AddRoleToUser handles the request to assign an existing role to a user.
func (h *UserHandler) AddRoleToUser(c echo.Context) error {
	var req addRoleToUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid role assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.AddRoleToUser(c.Request().Context(), &usecase.AddRoleToUserInput{
		Username: req.Username,
		RoleName: req.RoleName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "role assigned")
}

// Me handles the request for the authenticated principal's own record.
func (h *UserHandler) Me(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Forbidden(c, "FORBIDDEN", "no authenticated principal")
	}

	user, err := h.uc.GetUser(c.Request().Context(), principal.Username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "profile retrieved")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "service is healthy")
}
