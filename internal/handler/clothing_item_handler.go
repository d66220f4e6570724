package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"closet/internal/model"
	"closet/internal/service"
)

// ClothingItemHandler handles wardrobe endpoints.
type ClothingItemHandler struct {
	itemService service.ClothingItemService
}

// NewClothingItemHandler creates a new clothing item handler.
func NewClothingItemHandler(itemService service.ClothingItemService) *ClothingItemHandler {
	return &ClothingItemHandler{itemService: itemService}
}

// CreateItemRequest represents a new clothing item.
type CreateItemRequest struct {
	ImageURL     string     `json:"image_url" validate:"required"`
	Category     string     `json:"category" validate:"required"`
	Color        string     `json:"color" validate:"required"`
	Brand        *string    `json:"brand,omitempty"`
	Description  *string    `json:"description,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
}

// TransitionRequest names a status action on an item.
type TransitionRequest struct {
	Action string `json:"action" validate:"required"`
}

// Create godoc
// @Summary Add a clothing item to the caller's wardrobe
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item data"
// @Success 200 {object} model.ClothingItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ClothingItemHandler) Create(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.Create(c.Request().Context(), caller.UserID, service.CreateItemInput{
		ImageURL:     req.ImageURL,
		Category:     model.ItemCategory(req.Category),
		Color:        req.Color,
		Brand:        req.Brand,
		Description:  req.Description,
		PurchaseDate: req.PurchaseDate,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// List godoc
// @Summary List the caller's clothing items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param status query string false "Status filter (default ACTIVE)"
// @Success 200 {array} model.ClothingItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ClothingItemHandler) List(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var category *model.ItemCategory
	if v := c.QueryParam("category"); v != "" {
		cat := model.ItemCategory(v)
		category = &cat
	}
	var status *model.ItemStatus
	if v := c.QueryParam("status"); v != "" {
		st := model.ItemStatus(v)
		status = &st
	}

	items, err := h.itemService.List(c.Request().Context(), caller.UserID, category, status)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListForUser godoc
// @Summary List an assigned user's active items (stylist view)
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param category query string false "Category filter"
// @Success 200 {array} model.ClothingItem
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/items [get]
func (h *ClothingItemHandler) ListForUser(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	targetUserID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var category *model.ItemCategory
	if v := c.QueryParam("category"); v != "" {
		cat := model.ItemCategory(v)
		category = &cat
	}

	items, err := h.itemService.ListForStylist(c.Request().Context(), caller, targetUserID, category)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get one of the caller's clothing items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} model.ClothingItem
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ClothingItemHandler) Get(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	item, err := h.itemService.Get(c.Request().Context(), caller.UserID, itemID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Transition godoc
// @Summary Apply a status action to a clothing item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body TransitionRequest true "Action"
// @Success 200 {object} model.ClothingItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id}/transition [post]
func (h *ClothingItemHandler) Transition(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}
	itemID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.Transition(c.Request().Context(), caller.UserID, itemID, model.ItemAction(req.Action))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
