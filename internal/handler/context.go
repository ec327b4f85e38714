package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
)

// currentUser returns the identity the auth middleware resolved for this
// request. Routes outside the secured group have no identity at all.
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get("user").(*model.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	return user, nil
}

// forbidden builds the standard 403 response. Kept distinct from 401: the
// caller is known, the action is not allowed.
func forbidden() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
		Error: apperrors.ErrForbidden.Error(),
		Code:  "FORBIDDEN",
	})
}
