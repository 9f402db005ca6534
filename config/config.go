// Package config reads service configuration from the environment, with a
// .env file loaded first when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultDriver      = "sqlite"
	defaultSQLiteDSN   = "inventory.db"
	defaultPostgresDSN = "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"
	defaultPort        = "8080"
)

type Config struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
	Port   string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Driver: get("DB_DRIVER", defaultDriver),
		DSN:    os.Getenv("DATABASE_DSN"),
		Port:   get("PORT", defaultPort),
	}
	if cfg.DSN == "" {
		switch cfg.Driver {
		case "postgres":
			cfg.DSN = defaultPostgresDSN
		default:
			cfg.DSN = defaultSQLiteDSN
		}
	}
	return cfg
}

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
