package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"docshelf_app_echo/internal/services"
)

// UserHandler exposes the resolved current user.
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the signed-in user, including the inbox and home folder ids
// the client needs for navigation.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.users.CurrentUser(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
