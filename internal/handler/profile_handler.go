package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"closet/internal/service"
)

// ProfileHandler handles the caller's own profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest is the full profile form; optional fields are replaced
// wholesale on save.
type ProfileRequest struct {
	Height          *int             `json:"height,omitempty"`
	Weight          *int             `json:"weight,omitempty"`
	Age             *int             `json:"age,omitempty"`
	BodyType        *string          `json:"body_type,omitempty"`
	PersonalColor   *string          `json:"personal_color,omitempty"`
	ProfileImageURL *string          `json:"profile_image_url,omitempty"`
	StylePreference *string          `json:"style_preference,omitempty"`
	Concerns        *string          `json:"concerns,omitempty"`
	Goals           *string          `json:"goals,omitempty"`
	Budget          *decimal.Decimal `json:"budget,omitempty"`
	Lifestyle       *string          `json:"lifestyle,omitempty"`
	IsPublic        *bool            `json:"is_public,omitempty"`
}

// Get godoc
// @Summary Get the caller's profile with completion percentage
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ProfileView
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.profileService.Get(c.Request().Context(), caller.UserID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Upsert godoc
// @Summary Save the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "Profile data"
// @Success 200 {object} service.ProfileView
// @Failure 400 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	view, err := h.profileService.Upsert(c.Request().Context(), caller.UserID, service.UpdateProfileInput{
		Height:          req.Height,
		Weight:          req.Weight,
		Age:             req.Age,
		BodyType:        req.BodyType,
		PersonalColor:   req.PersonalColor,
		ProfileImageURL: req.ProfileImageURL,
		StylePreference: req.StylePreference,
		Concerns:        req.Concerns,
		Goals:           req.Goals,
		Budget:          req.Budget,
		Lifestyle:       req.Lifestyle,
		IsPublic:        req.IsPublic,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
