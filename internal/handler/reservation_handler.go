package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"reservabar/internal/auth"
	"reservabar/internal/errors"
	"reservabar/internal/model"
	"reservabar/internal/service"
)

// ReservationHandler bundles reservation handlers. Ownership checks reuse the
// per-target access policy keyed on the reservation's owner.
type ReservationHandler struct {
	svc service.ReservationService
}

// NewReservationHandler creates a handler layer.
func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// CreateReservationRequest represents a reservation creation payload.
type CreateReservationRequest struct {
	TableID         uint      `json:"table_id" validate:"required"`
	ReservationTime time.Time `json:"reservation_time" validate:"required"`
	NumGuests       int       `json:"num_guests" validate:"required,min=1"`
	SpecialRequests string    `json:"special_requests"`
}

// CreateReservation godoc
// @Summary Create a reservation for the authenticated user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReservationRequest true "Reservation data"
// @Success 201 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reservation := &model.Reservation{
		UserID:          actor.ID,
		TableID:         req.TableID,
		ReservationTime: req.ReservationTime,
		NumGuests:       req.NumGuests,
		SpecialRequests: req.SpecialRequests,
	}

	created, err := h.svc.CreateReservation(c.Request().Context(), reservation)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// ListReservations godoc
// @Summary List reservations (own for clients, all for admins)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reservation
// @Failure 401 {object} errors.ErrorResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var reservations []model.Reservation
	if actor.Role == model.RoleAdmin {
		reservations, err = h.svc.ListReservations(c.Request().Context())
	} else {
		reservations, err = h.svc.ListReservationsByUser(c.Request().Context(), actor.ID)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reservations)
}

// GetReservation godoc
// @Summary Get reservation by id
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	reservation, err := h.svc.GetReservation(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if d := auth.Authorize(actor, auth.ActionReadUser, reservation.UserID); !d.Allow {
		return forbidden()
	}
	return c.JSON(http.StatusOK, reservation)
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	reservation, err := h.svc.GetReservation(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if d := auth.Authorize(actor, auth.ActionDeleteUser, reservation.UserID); !d.Allow {
		return forbidden()
	}

	if err := h.svc.CancelReservation(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
