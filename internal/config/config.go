package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envCreator       = "LEDGER_CREATOR"
	envInitialSupply = "LEDGER_INITIAL_SUPPLY"
	envLogLevel      = "LOG_LEVEL"
)

const (
	defaultCreator       = "alice"
	defaultInitialSupply = 1_000_000
	defaultLogLevel      = "info"
)

// Config is everything the CLI needs to construct a ledger and a logger.
type Config struct {
	Creator       string
	InitialSupply uint64
	LogLevel      string
}

// Load reads configuration from the environment, loading a .env file first
// if one is present. A missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Creator:       defaultCreator,
		InitialSupply: defaultInitialSupply,
		LogLevel:      defaultLogLevel,
	}

	if v := os.Getenv(envCreator); v != "" {
		cfg.Creator = v
	}
	if v := os.Getenv(envInitialSupply); v != "" {
		supply, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", envInitialSupply, err)
		}
		cfg.InitialSupply = supply
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}
