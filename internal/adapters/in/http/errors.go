package http

import (
	"errors"
	"net/http"

	"wastetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// dataResponse is the success envelope.
type dataResponse struct {
	Data any `json:"data"`
}

// errorResponse is the error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// writeData writes the success envelope with the given status.
func writeData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, dataResponse{Data: data})
}

// writeError classifies an application error into a status code and a
// client-safe message. Typed errors expose their reason; anything
// unclassified becomes an opaque 500.
func writeError(ctx echo.Context, err error) error {
	status, message := classify(err)
	return ctx.JSON(status, errorResponse{Error: message})
}

// writeErrorMessage writes an error envelope with an explicit message,
// for endpoints whose contract fixes the exact wording.
func writeErrorMessage(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, errorResponse{Error: message})
}

func classify(err error) (int, string) {
	var (
		authnErr    *errs.AuthenticationError
		authzErr    *errs.AuthorizationError
		conflictErr *errs.ConflictError
		invalidErr  *errs.ValueIsInvalidError
	)

	switch {
	case errors.As(err, &authnErr):
		return http.StatusUnauthorized, authnErr.Reason
	case errors.As(err, &authzErr):
		return http.StatusForbidden, authzErr.Reason
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Reason
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest, invalidErr.ParamName
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
