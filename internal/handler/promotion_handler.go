package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"reservabar/internal/errors"
	"reservabar/internal/model"
	"reservabar/internal/service"
)

// PromotionHandler bundles promotion handlers. Browsing is public; writes are
// admin only.
type PromotionHandler struct {
	svc service.PromotionService
}

// NewPromotionHandler creates a handler layer.
func NewPromotionHandler(svc service.PromotionService) *PromotionHandler {
	return &PromotionHandler{svc: svc}
}

// PromotionRequest represents a promotion create/update payload.
type PromotionRequest struct {
	Name               string    `json:"name" validate:"required"`
	Description        string    `json:"description"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	EndDate            time.Time `json:"end_date" validate:"required"`
	DiscountPercentage int       `json:"discount_percentage" validate:"omitempty,min=0,max=100"`
	Code               string    `json:"code"`
}

// ListPromotions godoc
// @Summary List promotions
// @Tags promotions
// @Produce json
// @Success 200 {array} model.Promotion
// @Router /promotions [get]
func (h *PromotionHandler) ListPromotions(c echo.Context) error {
	promotions, err := h.svc.ListPromotions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, promotions)
}

// GetPromotion godoc
// @Summary Get promotion by id
// @Tags promotions
// @Produce json
// @Param id path int true "Promotion ID"
// @Success 200 {object} model.Promotion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /promotions/{id} [get]
func (h *PromotionHandler) GetPromotion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	promotion, err := h.svc.GetPromotion(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, promotion)
}

// CreatePromotion godoc
// @Summary Create a promotion (admin only)
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PromotionRequest true "Promotion data"
// @Success 201 {object} model.Promotion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /promotions [post]
func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin {
		return forbidden()
	}

	var req PromotionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	promotion := &model.Promotion{
		Name:               req.Name,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		DiscountPercentage: req.DiscountPercentage,
		Code:               req.Code,
	}

	created, err := h.svc.CreatePromotion(c.Request().Context(), promotion)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdatePromotion godoc
// @Summary Update a promotion (admin only)
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Param request body PromotionRequest true "Promotion data"
// @Success 200 {object} model.Promotion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /promotions/{id} [put]
func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin {
		return forbidden()
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req PromotionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	promotion := &model.Promotion{
		ID:                 uint(id),
		Name:               req.Name,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		DiscountPercentage: req.DiscountPercentage,
		Code:               req.Code,
	}

	updated, err := h.svc.UpdatePromotion(c.Request().Context(), promotion)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeletePromotion godoc
// @Summary Delete a promotion (admin only)
// @Tags promotions
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin {
		return forbidden()
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeletePromotion(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
