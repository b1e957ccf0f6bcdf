package middleware

import (
	"log/slog"
	"net/http"

	"employeesys/internal/delivery/http/response"
	domainerrors "employeesys/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler, mapping the
// error taxonomy onto the wire envelope per status class.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status class and messages.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeAppError(appErr, c)

		return
	}

	// Echo's own errors: unknown routes and methods become the 404 envelope,
	// binding failures the 400 envelope.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = response.NotFound(c)
		case http.StatusBadRequest:
			_ = response.ValidationError(c, "Validation Error", nil)
		default:
			m.logUnhandled(err, c)
			_ = response.ServerError(c, nil)
		}

		return
	}

	// Everything else is an infrastructure failure. Log the cause, never
	// expose it.
	m.logUnhandled(err, c)
	_ = response.ServerError(c, nil)
}

func (m *ErrorMiddleware) writeAppError(appErr domainerrors.AppError, c echo.Context) {
	// An empty detail must be absent from the envelope, not null.
	var detail any
	if appErr.Details() != "" {
		detail = appErr.Details()
	}

	switch appErr.HTTPCode() {
	case http.StatusBadRequest:
		_ = response.ValidationError(c, appErr.Message(), detail)
	case http.StatusUnauthorized:
		_ = response.Unauthorized(c, appErr.Message())
	case http.StatusNotFound:
		_ = response.NotFound(c)
	default:
		_ = response.ServerError(c, detail)
	}
}

func (m *ErrorMiddleware) logUnhandled(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)
}
