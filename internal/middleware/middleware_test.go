package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mehndi-service/internal/domain/admin"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type tokenTable map[string]*admin.Identity

func (t tokenTable) Authenticate(_ context.Context, token string) (*admin.Identity, error) {
	switch token {
	case "inactive":
		return nil, xerrors.ErrInactiveAccount
	case "broken":
		return nil, context.DeadlineExceeded
	}
	if id, ok := t[token]; ok {
		return id, nil
	}
	return nil, xerrors.ErrInvalidToken
}

func newAuthRouter() *gin.Engine {
	m := NewAuthMiddleware(tokenTable{
		"admin-token": {ID: "A1", Username: "asha", Role: admin.RoleAdmin},
		"super-token": {ID: "S1", Username: "root", Role: admin.RoleSuperAdmin},
	})

	r := gin.New()
	r.GET("/admin", append(m.AdminOnly(), func(c *gin.Context) {
		c.String(http.StatusOK, MustGetIdentity(c).ID)
	})...)
	r.GET("/super", append(m.SuperAdminOnly(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})...)
	r.GET("/public", m.OptionalAuth(), func(c *gin.Context) {
		if IsAdmin(c) {
			c.String(http.StatusOK, "admin")
			return
		}
		c.String(http.StatusOK, "public")
	})
	return r
}

func do(r http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAuthStatuses(t *testing.T) {
	r := newAuthRouter()

	assert.Equal(t, http.StatusUnauthorized, do(r, "GET", "/admin", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "GET", "/admin", bearer("garbage")).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "GET", "/admin", bearer("inactive")).Code)
	assert.Equal(t, http.StatusInternalServerError, do(r, "GET", "/admin", bearer("broken")).Code)

	w := do(r, "GET", "/admin", bearer("admin-token"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A1", w.Body.String())

	assert.Equal(t, http.StatusOK, do(r, "GET", "/admin?token=super-token", nil).Code)
}

func TestSuperAdminOnly(t *testing.T) {
	r := newAuthRouter()
	assert.Equal(t, http.StatusForbidden, do(r, "GET", "/super", bearer("admin-token")).Code)
	assert.Equal(t, http.StatusOK, do(r, "GET", "/super", bearer("super-token")).Code)
}

func TestOptionalAuth(t *testing.T) {
	r := newAuthRouter()
	assert.Equal(t, "public", do(r, "GET", "/public", nil).Body.String())
	assert.Equal(t, "public", do(r, "GET", "/public", bearer("garbage")).Body.String())
	assert.Equal(t, "admin", do(r, "GET", "/public", bearer("admin-token")).Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := do(r, "GET", "/", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	w = do(r, "GET", "/", map[string]string{RequestIDHeader: "bad id\nwith newline"})
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := do(r, "GET", "/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders(DefaultSecurityHeadersConfig(false)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, "GET", "/", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=31536000")

	r = gin.New()
	r.Use(SecurityHeaders(DefaultSecurityHeadersConfig(true)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	assert.Empty(t, do(r, "GET", "/", nil).Header().Get("Strict-Transport-Security"))
}

func TestCompressJSONOnly(t *testing.T) {
	r := gin.New()
	r.Use(Compress())
	r.GET("/json", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"hello": "world"}) })
	r.GET("/png", func(c *gin.Context) { c.Data(http.StatusOK, "image/png", []byte("\x89PNG")) })

	w := do(r, "GET", "/json", map[string]string{"Accept-Encoding": "gzip"})
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(body))

	w = do(r, "GET", "/png", map[string]string{"Accept-Encoding": "gzip"})
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "\x89PNG", w.Body.String())

	w = do(r, "GET", "/json", nil)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewLocal(ratelimit.Config{
		Enabled: true, Capacity: 2, RefillTokens: 1, RefillInterval: time.Hour,
	})
	r := gin.New()
	r.Use(RateLimit(limiter, zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, do(r, "GET", "/", nil).Code)
	w := do(r, "GET", "/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))

	w = do(r, "GET", "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, "OPTIONS", "/", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, "GET", "/", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNormalizeIDParam(t *testing.T) {
	r := gin.New()
	r.Use(NormalizeIDParam())
	r.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.Param("id"))
	})

	for path, want := range map[string]string{
		"/items/01j0zq4y8m3t6w2n5r7s9v1x3z":    "01J0ZQ4Y8M3T6W2N5R7S9V1X3Z",
		"/items/01J0ZQ4Y8M3T6W2N5R7S9V1X3Z":    "01J0ZQ4Y8M3T6W2N5R7S9V1X3Z",
		"/items/bridal-mehndi-trends":          "bridal-mehndi-trends",
		"/items/bk-01j0zq4y8m3t6w2n5r7s9v1x3z": "bk-01j0zq4y8m3t6w2n5r7s9v1x3z",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Body.String(), path)
	}
}
