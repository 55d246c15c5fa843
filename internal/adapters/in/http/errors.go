package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// statusFor maps application errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrNoStopsAssigned):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, route.ErrRouteIsFinished),
		errors.Is(err, route.ErrRouteIsNotInProgress):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPersistenceTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes err as an Error body. Internal failures are logged and their
// details are kept out of the response.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()

	switch code {
	case http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("path", ctx.Path()), slog.Any("error", err))
		message = "Internal server error"
	case http.StatusServiceUnavailable:
		s.logger.WarnContext(ctx.Request().Context(), "storage busy",
			slog.String("path", ctx.Path()), slog.Any("error", err))
		message = "Storage is busy, retry the request"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
