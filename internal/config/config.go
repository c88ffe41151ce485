// Package config loads qsim settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig indicates an out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Environment variables read by Load.
const (
	EnvSeed      = "QSIM_SEED"
	EnvLogLevel  = "QSIM_LOG_LEVEL"
	EnvLogPretty = "QSIM_LOG_PRETTY"
	EnvShots     = "QSIM_SHOTS"
)

// DefaultShots is the number of measurements taken by `qsim measure`.
const DefaultShots = 1000

// Config holds CLI configuration
type Config struct {
	Seed      uint64 // 0 means seed from runtime entropy
	LogLevel  string // debug, info, warn, error
	LogPretty bool   // console writer instead of JSON
	Shots     int
}

// Load reads configuration from environment variables. The given .env files
// are loaded first and must exist; with none, ./.env is loaded if present.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("config: load %v: %w", envFiles, err)
	}

	cfg := &Config{
		Seed:      getEnvAsUint64(EnvSeed, 0),
		LogLevel:  getEnv(EnvLogLevel, "warn"),
		LogPretty: getEnvAsBool(EnvLogPretty, false),
		Shots:     getEnvAsInt(EnvShots, DefaultShots),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s=%q: %w", EnvLogLevel, c.LogLevel, ErrInvalidConfig)
	}
	if c.Shots <= 0 {
		return fmt.Errorf("%s=%d: %w", EnvShots, c.Shots, ErrInvalidConfig)
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

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if u, err := strconv.ParseUint(value, 10, 64); err == nil {
			return u
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
