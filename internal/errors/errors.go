package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair is wrong.
	// Unknown email and bad password collapse into this single value.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUnauthenticated is returned when no valid identity backs a request.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when a valid identity is not permitted an action.
	ErrForbidden = errors.New("not permitted")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrTableNotFound is returned when a table is not found.
	ErrTableNotFound = errors.New("table not found")
	// ErrReservationNotFound is returned when a reservation is not found.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrPromotionNotFound is returned when a promotion is not found.
	ErrPromotionNotFound = errors.New("promotion not found")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrTableNumberTaken is returned when creating a table with a used number.
	ErrTableNumberTaken = errors.New("table number already in use")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Authentication failures
// (401) and authorization failures (403) are kept distinct on purpose.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTH_FAILED")
	case ErrUnauthenticated:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrTableNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TABLE_NOT_FOUND")
	case ErrReservationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RESERVATION_NOT_FOUND")
	case ErrPromotionNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROMOTION_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrTableNumberTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "TABLE_NUMBER_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
