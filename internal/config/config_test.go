package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8000", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, 5, cfg.Upstream.TransactionsLimit)
	assert.Equal(t, "Demo User", cfg.Upstream.DefaultUserName)
	assert.Equal(t, "bank.dev", cfg.Upstream.UserEmailDomain)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.bank.example")
	t.Setenv("API_REQUEST_TIMEOUT", "30s")
	t.Setenv("TRANSACTIONS_LIMIT", "10")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.bank.example, https://admin.bank.example")

	cfg := Load()

	assert.Equal(t, "https://api.bank.example", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, 10, cfg.Upstream.TransactionsLimit)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://app.bank.example", "https://admin.bank.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TRANSACTIONS_LIMIT", "not-a-number")
	t.Setenv("API_REQUEST_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 5, cfg.Upstream.TransactionsLimit)
	assert.Equal(t, 10*time.Second, cfg.Upstream.RequestTimeout)
}
