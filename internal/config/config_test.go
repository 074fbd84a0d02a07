package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, int64(10<<20), cfg.UploadMaxBytes)
	assert.Equal(t, "/uploads", cfg.PublicUploadPath)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
	assert.False(t, cfg.SMTPEnabled())
}

func TestLoadRejectsWeakSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "dev-secret-change-me")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", strings.Repeat("k", MinJWTSecretLength))
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadCommaSeparatedOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example,https://c.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("BUSINESS_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}
