// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server runtime settings.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string
	// ProfileDir is where the file-backed profile store keeps its data.
	ProfileDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// Debug enables gin debug mode and verbose logging.
	Debug bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:       getenv("DOCGENIUS_ADDR", ":8080"),
		ProfileDir: getenv("DOCGENIUS_PROFILE_DIR", "data/profiles"),
		LogLevel:   getenv("DOCGENIUS_LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("DOCGENIUS_DEBUG"); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse DOCGENIUS_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
