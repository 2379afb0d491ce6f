package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/pkg/errs"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps domain error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPolicyViolation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusFor(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		message = http.StatusText(status)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, ErrorResponse{Code: status, Message: message})
	}
	if writeErr != nil {
		s.logger.Error("write error response", "error", writeErr)
	}
}

// committed strips ErrEventsNotPublished: the change is stored, so the
// request succeeds and the publish failure is only logged.
func (s *Server) committed(c echo.Context, err error) error {
	if err != nil && errors.Is(err, commands.ErrEventsNotPublished) {
		s.logger.Warn("order events not published",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		return nil
	}
	return err
}
