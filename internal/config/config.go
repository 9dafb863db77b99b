package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config is the per-process configuration. Everything request-scoped (model,
// profile, scene) travels with the request instead.
type Config struct {
	// HTTP listen address, e.g. ":8080"
	Address string `env:"ADDRESS" envDefault:":8080"`
	// Gemini API key; the server refuses to start without one
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	// Model used when the request does not name one
	DefaultModel string `env:"DEFAULT_MODEL" envDefault:"models/gemini-1.5-flash"`
	// Upload cap in bytes
	MaxImageBytes int64 `env:"MAX_IMAGE_BYTES" envDefault:"5242880"`
	// zerolog level name: debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
