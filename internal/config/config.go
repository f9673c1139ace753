package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the process reads from the environment, loaded once
// at startup and passed explicitly to the components that need it.
type Config struct {
	DB            *DBConfig
	SessionSecret string
	SessionTTLHrs int64
	ServerPort    string
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load builds the Config from environment variables. SESSION_SECRET has no
// default and must be set.
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET not set in environment")
	}

	ttl := int64(24)
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %w", err)
		}
		ttl = parsed
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080" // Default port
	}

	cfg := &Config{
		DB:            dbCfg,
		SessionSecret: secret,
		SessionTTLHrs: ttl,
		ServerPort:    port,
		AdminUsername: envOr("BOOTSTRAP_ADMIN_USERNAME", "admin"),
		AdminEmail:    envOr("BOOTSTRAP_ADMIN_EMAIL", "admin@gmail.com"),
		AdminPassword: envOr("BOOTSTRAP_ADMIN_PASSWORD", "admin123"),
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
