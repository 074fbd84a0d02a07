package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type healthBody struct {
	Success bool `json:"success"`
	Data    struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	} `json:"data"`
}

func serve(t *testing.T, h *HealthHandler) (int, healthBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body healthBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func up(context.Context) error { return nil }

func failing(msg string) Check {
	return func(context.Context) error { return errors.New(msg) }
}

func TestHealthFailureDetailIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	secret := "dial tcp 10.0.3.7:5432: password authentication failed for user mehndi"
	h := NewHealthHandler(map[string]Check{"postgres": failing(secret)}, nil, zap.New(core))

	code, body := serve(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Data.Status)
	assert.Equal(t, "down", body.Data.Checks["postgres"])

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "postgres", entry.ContextMap()["dependency"])
	assert.Contains(t, entry.ContextMap()["error"], "password authentication failed")
}

func TestOptionalFailureDegrades(t *testing.T) {
	h := NewHealthHandler(
		map[string]Check{"postgres": up},
		map[string]Check{"redis": failing("connection refused")},
		zap.NewNop(),
	)

	code, body := serve(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)
	assert.Equal(t, "degraded", body.Data.Status)
	assert.Equal(t, map[string]string{"postgres": "up", "redis": "down"}, body.Data.Checks)
}
