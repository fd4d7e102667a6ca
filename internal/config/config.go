// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aristath/deptnumbers/internal/combinations"
)

// Config holds application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogPretty      bool
	DevMode        bool
	Strategy       combinations.Strategy // Default enumeration strategy
	DefaultNumbers string                // Initial value of the numbers field
	DefaultTarget  int                   // Initial value of the target field
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	strategy, err := combinations.ParseStrategy(getEnv("SOLVER_STRATEGY", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid SOLVER_STRATEGY: %w", err)
	}

	cfg := &Config{
		Port:           getEnvAsInt("PORT", 8080),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvAsBool("LOG_PRETTY", true),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		Strategy:       strategy,
		DefaultNumbers: getEnv("DEFAULT_NUMBERS", "1,2,3,4,5,6,7"),
		DefaultTarget:  getEnvAsInt("DEFAULT_TARGET", combinations.DefaultTarget),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}

	if _, err := combinations.ParseStrategy(c.Strategy.String()); err != nil {
		return err
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
