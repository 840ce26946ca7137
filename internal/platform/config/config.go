package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// InsecureDefaultSecret is the signing-key fallback used when TOKEN_SECRET is unset.
//
// It is deliberately weak and well-known: this is a demonstration backend and the
// fallback mirrors the behavior it demonstrates. Set TOKEN_SECRET in any deployment
// that matters.
const InsecureDefaultSecret = "your-secret-key"

// Config holds all process configuration, read from the environment once at startup
// and treated as immutable.
type Config struct {
	// Server
	Port string

	// Tokens
	TokenSecret string
	TokenTTL    time.Duration

	// Storage
	StorageBackend string // "memory" or "postgres"
	DatabaseURL    string

	// Login rate limiting (per client IP)
	LoginRate  float64 // requests per second
	LoginBurst int
}

// Load reads configuration from the environment, applying defaults that make
// local/dev/test behavior predictable.
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		TokenSecret:    getenv("TOKEN_SECRET", InsecureDefaultSecret),
		TokenTTL:       time.Hour,
		StorageBackend: getenv("STORAGE_BACKEND", "memory"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LoginRate:      5,
		LoginBurst:     20,
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("TOKEN_TTL must be a positive duration (e.g. 1h): %q", v)
		}
		cfg.TokenTTL = d
	}

	switch cfg.StorageBackend {
	case "memory":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return Config{}, fmt.Errorf("STORAGE_BACKEND must be memory or postgres, got %q", cfg.StorageBackend)
	}

	if v := os.Getenv("LOGIN_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("LOGIN_RATE must be a positive number: %q", v)
		}
		cfg.LoginRate = f
	}
	if v := os.Getenv("LOGIN_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("LOGIN_BURST must be a positive integer: %q", v)
		}
		cfg.LoginBurst = n
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
