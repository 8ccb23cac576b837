package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	Port            string
	LogLevel        string
	RulesFile       string
	AdminUsername   string
	AdminPassword   string
	ShutdownTimeout time.Duration
	BodyLimit       string
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the process environment. A .env file in the working directory
// is applied first when present; variables already set take precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:            getenv("PORT", "8080"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		RulesFile:       os.Getenv("RULES_FILE"),
		AdminUsername:   getenv("ADMIN_USERNAME", "adminTax"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin!"),
		ShutdownTimeout: 10 * time.Second,
		BodyLimit:       getenv("BODY_LIMIT", "256K"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("missing an env variable `DATABASE_URL`")
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
