package handler

import (
	"employeesys/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, "OK")
}
