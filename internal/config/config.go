package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds all process-wide configuration. It is loaded once at
// startup and treated as immutable afterwards.
type AppConfig struct {
	ServerPort string

	MongoURI string
	DBName   string

	JWTSecret string
	// JWTExpirationHours is the signed lifetime of a session token.
	JWTExpirationHours int64
	// CookieMaxAgeDays is the client-side cookie lifetime. It intentionally
	// exceeds the token lifetime; a stale cookie simply fails verification.
	CookieMaxAgeDays int
}

// Load reads configuration from environment variables
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "jobportal"),
		JWTSecret:          os.Getenv("SECRET_KEY"),
		JWTExpirationHours: 24,
		CookieMaxAgeDays:   5,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SECRET_KEY not set in environment")
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", v, err)
		}
		cfg.JWTExpirationHours = hours
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
