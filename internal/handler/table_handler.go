package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"reservabar/internal/errors"
	"reservabar/internal/model"
	"reservabar/internal/service"
)

// TableHandler bundles table management handlers. Reads are open to any
// authenticated user; writes are admin only.
type TableHandler struct {
	svc service.TableService
}

// NewTableHandler creates a handler layer.
func NewTableHandler(svc service.TableService) *TableHandler {
	return &TableHandler{svc: svc}
}

// TableRequest represents a table create/update payload.
type TableRequest struct {
	TableNumber string `json:"table_number" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	IsAvailable *bool  `json:"is_available"`
	Location    string `json:"location"`
}

// CreateTable godoc
// @Summary Create a table (admin only)
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TableRequest true "Table data"
// @Success 201 {object} model.Table
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /tables [post]
func (h *TableHandler) CreateTable(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin {
		return forbidden()
	}

	var req TableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	table := &model.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		IsAvailable: true,
		Location:    req.Location,
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}

	created, err := h.svc.CreateTable(c.Request().Context(), table)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetTable godoc
// @Summary Get table by id
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Param id path int true "Table ID"
// @Success 200 {object} model.Table
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tables/{id} [get]
func (h *TableHandler) GetTable(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	table, err := h.svc.GetTable(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, table)
}

// ListTables godoc
// @Summary List tables
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Table
// @Failure 401 {object} errors.ErrorResponse
// @Router /tables [get]
func (h *TableHandler) ListTables(c echo.Context) error {
	tables, err := h.svc.ListTables(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tables)
}

// UpdateTable godoc
// @Summary Update a table (admin only)
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Table ID"
// @Param request body TableRequest true "Table data"
// @Success 200 {object} model.Table
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tables/{id} [put]
func (h *TableHandler) UpdateTable(c echo.Context) error {
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

	var req TableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	table := &model.Table{
		ID:          uint(id),
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		IsAvailable: true,
		Location:    req.Location,
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}

	updated, err := h.svc.UpdateTable(c.Request().Context(), table)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTable godoc
// @Summary Delete a table (admin only)
// @Tags tables
// @Security BearerAuth
// @Param id path int true "Table ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tables/{id} [delete]
func (h *TableHandler) DeleteTable(c echo.Context) error {
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
	if err := h.svc.DeleteTable(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
