package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"closet/internal/model"
	"closet/internal/service"
)

// EvaluationHandler handles stylist item evaluation endpoints.
type EvaluationHandler struct {
	evalService service.EvaluationService
}

// NewEvaluationHandler creates a new evaluation handler.
func NewEvaluationHandler(evalService service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evalService: evalService}
}

// UpsertEvaluationRequest represents a stylist verdict on an item.
type UpsertEvaluationRequest struct {
	Evaluation string `json:"evaluation" validate:"required"`
	Comment    string `json:"comment"`
}

// Upsert godoc
// @Summary Create or overwrite the caller's evaluation of an item
// @Tags evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body UpsertEvaluationRequest true "Verdict"
// @Success 200 {object} model.ItemEvaluation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id}/evaluation [put]
func (h *EvaluationHandler) Upsert(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpsertEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eval, err := h.evalService.Upsert(c.Request().Context(), caller, itemID, model.EvaluationVerdict(req.Evaluation), req.Comment)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, eval)
}

// ListForItem godoc
// @Summary List evaluations of an item
// @Tags evaluations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {array} model.ItemEvaluation
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id}/evaluations [get]
func (h *EvaluationHandler) ListForItem(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	evals, err := h.evalService.ListForItem(c.Request().Context(), caller, itemID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, evals)
}
