package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}

type HealthStatus struct {
	Status string `json:"status"`
}

// HealthHandler answers 200 {"status":"ok"} while the checker is healthy and
// 503 {"status":"unavailable"} otherwise.
func HealthHandler(hc HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		if hc != nil && !hc.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, HealthStatus{Status: "unavailable"})
		}
		return c.JSON(http.StatusOK, HealthStatus{Status: "ok"})
	}
}
