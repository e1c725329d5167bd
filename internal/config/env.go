package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. An optional
// .env file in the working directory is loaded first; a missing file is
// not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SAMBA_DB_HOST"); v != "" {
		cfg.DatabaseHost = v
	}
	if v := os.Getenv("SAMBA_DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.DatabasePort = p
		}
	}
	if v := os.Getenv("SAMBA_DB_USER"); v != "" {
		cfg.DatabaseUser = v
	}
	if v := os.Getenv("SAMBA_DB_NAME"); v != "" {
		cfg.DatabaseName = v
	}
	if v := os.Getenv("SAMBA_DB_SSLMODE"); v != "" {
		cfg.SSLMode = v
	}
}
