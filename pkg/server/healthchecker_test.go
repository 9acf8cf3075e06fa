package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type downChecker struct{}

func (downChecker) Healthy(context.Context) bool { return false }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		hc     HealthChecker
		status int
		body   string
	}{
		{"ok", NewOkHealthChecker(), http.StatusOK, `{"status":"ok"}`},
		{"nil checker", nil, http.StatusOK, `{"status":"ok"}`},
		{"down", downChecker{}, http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/health", HealthHandler(tt.hc))
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
