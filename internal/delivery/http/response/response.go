// Package response renders the wire envelope shared by every endpoint.
// The shape {"status":0|1,"message":...,"data":...} and the fixed messages
// for each status class are a published contract and must stay byte-exact.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Fixed envelope messages per status class.
const (
	MessageUnauthorized = "401 Unauthorized"
	MessageNotFound     = "404 Not Found"
	MessageServerError  = "500 Server Error"
)

// Envelope is the unified API response structure.
type Envelope struct {
	Status  int    `json:"status"` // 1 on success, 0 on any failure
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a 200 envelope without data.
func Success(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:  1,
		Message: message,
	})
}

// SuccessWithData writes a 200 envelope carrying data.
func SuccessWithData(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:  1,
		Message: message,
		Data:    data,
	})
}

// ValidationError writes a 400 envelope. The message is the validation
// message itself (usually "Validation Error"); data carries the optional
// case-specific detail.
func ValidationError(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Status:  0,
		Message: message,
		Data:    data,
	})
}

// Unauthorized writes a 401 envelope; the reason travels in data.
func Unauthorized(c echo.Context, reason string) error {
	return c.JSON(http.StatusUnauthorized, Envelope{
		Status:  0,
		Message: MessageUnauthorized,
		Data:    reason,
	})
}

// NotFound writes a 404 envelope. No detail is leaked.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, Envelope{
		Status:  0,
		Message: MessageNotFound,
	})
}

// ServerError writes a 500 envelope; data carries a sanitized detail.
func ServerError(c echo.Context, data any) error {
	return c.JSON(http.StatusInternalServerError, Envelope{
		Status:  0,
		Message: MessageServerError,
		Data:    data,
	})
}
