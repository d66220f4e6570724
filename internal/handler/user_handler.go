package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"closet/internal/service"
)

// UserHandler exposes the stylist's assigned user listing.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListAssigned godoc
// @Summary List users assigned to the calling stylist
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListAssigned(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	users, err := h.userService.ListAssigned(c.Request().Context(), caller)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetAssigned godoc
// @Summary Get one assigned user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetAssigned(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	userID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetAssigned(c.Request().Context(), caller, userID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
