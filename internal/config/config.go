package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort  string
	GinMode     string
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	MaxDBConns  int32
	// DBTimeout is the per-call deadline applied to every store operation.
	DBTimeout        time.Duration
	JWTSecret        string
	JWTExpiry        time.Duration
	PaymentSecretKey string
	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables. It loads .env file if
// present but does not fail if missing. Required secrets (DATABASE_URL,
// JWT_SECRET, PAYMENT_SECRET_KEY) have no defaults; their absence is an error
// so the server refuses to boot half-configured.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error — .env is optional

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "5000"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "pretty"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MaxDBConns:       int32(getEnvInt("MAX_DB_CONNS", 16)),
		DBTimeout:        time.Duration(getEnvInt("DB_TIMEOUT_SECONDS", 5)) * time.Second,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiry:        time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 168)) * time.Hour,
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		AllowedOrigins:   parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.PaymentSecretKey == "" {
		missing = append(missing, "PAYMENT_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
