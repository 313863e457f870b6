package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	RateLimitPerSec  int
	RateLimitBurst   int
}

// UpstreamConfig describes the remote banking REST API the dashboard
// orchestrates against. BaseURL is the only setting the core requires;
// everything else has a sensible default.
type UpstreamConfig struct {
	// BaseURL of the banking API. Defaults to http://localhost:8000,
	// matching the development backend.
	BaseURL string

	// RequestTimeout bounds each individual upstream request.
	RequestTimeout time.Duration

	// TransactionsLimit is the fixed page size for the recent-activity
	// section.
	TransactionsLimit int

	// DefaultUserName is the display name used when the session has to
	// create its own demo user.
	DefaultUserName string

	// UserEmailDomain is the domain for generated placeholder emails.
	UserEmailDomain string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSec: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:  getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Upstream: UpstreamConfig{
			BaseURL:           getEnv("API_BASE_URL", "http://localhost:8000"),
			RequestTimeout:    getDurationEnv("API_REQUEST_TIMEOUT", 10*time.Second),
			TransactionsLimit: getIntEnv("TRANSACTIONS_LIMIT", 5),
			DefaultUserName:   getEnv("DEFAULT_USER_NAME", "Demo User"),
			UserEmailDomain:   getEnv("USER_EMAIL_DOMAIN", "bank.dev"),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
