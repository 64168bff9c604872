package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Auth modes accepted by AUTH_MODE.
const (
	// AuthModeSession resolves X-Session-Token against the session store.
	AuthModeSession = "session"
	// AuthModeDev trusts X-Debug-Principal. Local workflows only.
	AuthModeDev = "dev"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Server holds the deployment-provided settings for cmd/api.
type Server struct {
	Port           string
	AuthMode       string
	DevPrincipal   string
	StorageBackend string
	DatabaseURL    string

	// Rate limiting, per principal (falls back to client IP on public routes).
	RateLimitPerMinute int
	RateLimitBurst     int

	ShutdownTimeout time.Duration
}

// LoadServerFromEnv reads and validates the server configuration.
// Defaults make the zero-env local workflow work: memory storage, dev auth.
func LoadServerFromEnv() (Server, error) {
	cfg := Server{
		Port:               getenv("PORT", "8080"),
		AuthMode:           getenv("AUTH_MODE", AuthModeDev),
		DevPrincipal:       getenv("DEV_PRINCIPAL", "dev-local"),
		StorageBackend:     getenv("STORAGE_BACKEND", StorageMemory),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RateLimitPerMinute: 120,
		RateLimitBurst:     60,
		ShutdownTimeout:    10 * time.Second,
	}

	switch cfg.AuthMode {
	case AuthModeSession, AuthModeDev:
	default:
		return Server{}, fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeSession, AuthModeDev, cfg.AuthMode)
	}

	switch cfg.StorageBackend {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Server{}, fmt.Errorf("STORAGE_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return Server{}, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageMemory, StoragePostgres, cfg.StorageBackend)
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer, got %q", v)
		}
		cfg.RateLimitPerMinute = n
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer, got %q", v)
		}
		cfg.RateLimitBurst = n
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
