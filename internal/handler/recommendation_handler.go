package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"closet/internal/model"
	"closet/internal/service"
)

// RecommendationHandler handles purchase recommendation endpoints.
type RecommendationHandler struct {
	recService service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(recService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recService: recService}
}

// RecommendationRequest represents recommendation content for create and edit.
type RecommendationRequest struct {
	TargetUserID uint    `json:"target_user_id,omitempty"`
	ItemType     string  `json:"item_type" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Reason       string  `json:"reason" validate:"required"`
	ProductURL   *string `json:"product_url,omitempty"`
	Priority     string  `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
}

// UpdateRecommendationStatusRequest represents a user status transition.
type UpdateRecommendationStatusRequest struct {
	Status        string  `json:"status" validate:"required"`
	DeclineReason *string `json:"decline_reason,omitempty"`
}

func (r *RecommendationRequest) toInput() service.RecommendationInput {
	return service.RecommendationInput{
		ItemType:    r.ItemType,
		Description: r.Description,
		Reason:      r.Reason,
		ProductURL:  r.ProductURL,
		Priority:    model.RecommendationPriority(r.Priority),
	}
}

// Create godoc
// @Summary Issue a purchase recommendation to an assigned user
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecommendationRequest true "Recommendation data"
// @Success 200 {object} model.PurchaseRecommendation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recommendations [post]
func (h *RecommendationHandler) Create(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.recService.Create(c.Request().Context(), caller, req.TargetUserID, req.toInput())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// Edit godoc
// @Summary Edit a recommendation the caller issued; resets status to PENDING
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recommendation ID"
// @Param request body RecommendationRequest true "Recommendation data"
// @Success 200 {object} model.PurchaseRecommendation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recommendations/{id} [put]
func (h *RecommendationHandler) Edit(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	recID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.recService.Edit(c.Request().Context(), caller, recID, req.toInput())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// Delete godoc
// @Summary Delete a recommendation the caller issued
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recommendation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /recommendations/{id} [delete]
func (h *RecommendationHandler) Delete(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	recID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.recService.Delete(c.Request().Context(), caller, recID); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "recommendation deleted"})
}

// UpdateStatus godoc
// @Summary Advance a recommendation's status as its target user
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recommendation ID"
// @Param request body UpdateRecommendationStatusRequest true "New status"
// @Success 200 {object} model.PurchaseRecommendation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recommendations/{id}/status [patch]
func (h *RecommendationHandler) UpdateStatus(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	recID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateRecommendationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.recService.UpdateStatus(c.Request().Context(), caller, recID, model.RecommendationStatus(req.Status), req.DeclineReason)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// ListSelf godoc
// @Summary List recommendations issued to the caller
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PurchaseRecommendation
// @Failure 401 {object} errors.ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) ListSelf(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	recs, err := h.recService.ListForUser(c.Request().Context(), caller.UserID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

// ListIssued godoc
// @Summary List recommendations the calling stylist issued
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PurchaseRecommendation
// @Failure 403 {object} errors.ErrorResponse
// @Router /recommendations/issued [get]
func (h *RecommendationHandler) ListIssued(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	recs, err := h.recService.ListIssued(c.Request().Context(), caller)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}
