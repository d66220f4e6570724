package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"closet/internal/service"
)

// OutfitHandler handles outfit endpoints.
type OutfitHandler struct {
	outfitService service.OutfitService
}

// NewOutfitHandler creates a new outfit handler.
func NewOutfitHandler(outfitService service.OutfitService) *OutfitHandler {
	return &OutfitHandler{outfitService: outfitService}
}

// OutfitRequest represents outfit content for create and update. A zero
// TargetUserID on create means the caller's own wardrobe.
type OutfitRequest struct {
	TargetUserID   uint    `json:"target_user_id,omitempty"`
	Title          string  `json:"title" validate:"required"`
	ItemIDs        []uint  `json:"item_ids"`
	StylistComment *string `json:"stylist_comment,omitempty"`
	Tips           *string `json:"tips,omitempty"`
	StylingAdvice  *string `json:"styling_advice,omitempty"`
}

func (r *OutfitRequest) toInput() service.OutfitInput {
	return service.OutfitInput{
		Title:          r.Title,
		ItemIDs:        r.ItemIDs,
		StylistComment: r.StylistComment,
		Tips:           r.Tips,
		StylingAdvice:  r.StylingAdvice,
	}
}

// Create godoc
// @Summary Create an outfit, for self or for an assigned user
// @Tags outfits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OutfitRequest true "Outfit data"
// @Success 200 {object} model.Outfit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /outfits [post]
func (h *OutfitHandler) Create(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req OutfitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	targetUserID := req.TargetUserID
	if targetUserID == 0 {
		targetUserID = caller.UserID
	}

	outfit, err := h.outfitService.Create(c.Request().Context(), caller, targetUserID, req.toInput())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, outfit)
}

// Update godoc
// @Summary Update an outfit the caller authored
// @Tags outfits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outfit ID"
// @Param request body OutfitRequest true "Outfit data"
// @Success 200 {object} model.Outfit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /outfits/{id} [put]
func (h *OutfitHandler) Update(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	outfitID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req OutfitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outfit, err := h.outfitService.Update(c.Request().Context(), caller, outfitID, req.toInput())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, outfit)
}

// Delete godoc
// @Summary Delete an outfit the caller authored
// @Tags outfits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outfit ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /outfits/{id} [delete]
func (h *OutfitHandler) Delete(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	outfitID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.outfitService.Delete(c.Request().Context(), caller, outfitID); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "outfit deleted"})
}

// Get godoc
// @Summary Get an outfit with its items and author
// @Tags outfits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outfit ID"
// @Success 200 {object} model.Outfit
// @Failure 404 {object} errors.ErrorResponse
// @Router /outfits/{id} [get]
func (h *OutfitHandler) Get(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	outfitID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	outfit, err := h.outfitService.Get(c.Request().Context(), caller, outfitID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, outfit)
}

// ListSelf godoc
// @Summary List outfits made for the caller, any author
// @Tags outfits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Outfit
// @Failure 401 {object} errors.ErrorResponse
// @Router /outfits [get]
func (h *OutfitHandler) ListSelf(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	outfits, err := h.outfitService.ListForUser(c.Request().Context(), caller.UserID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, outfits)
}

// ListMine godoc
// @Summary List outfits the calling stylist authored
// @Tags outfits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Outfit
// @Failure 403 {object} errors.ErrorResponse
// @Router /outfits/mine [get]
func (h *OutfitHandler) ListMine(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	outfits, err := h.outfitService.ListMine(c.Request().Context(), caller)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, outfits)
}
