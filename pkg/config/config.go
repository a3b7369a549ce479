// Package config loads the demonstration settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the demonstration binary.
type Config struct {
	// Debug switches the logger to development output.
	Debug bool

	// Scenario selects a single scenario by name. Empty runs them all.
	Scenario string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Scenario: os.Getenv("DEMO_SCENARIO"),
	}

	if v := os.Getenv("DEMO_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}

	return cfg
}
