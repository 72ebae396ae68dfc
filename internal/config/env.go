package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI. Flags take precedence.
const (
	EnvConfigPath = "CATCHIT_CONFIG"
	EnvSSHAddr    = "CATCHIT_SSH_ADDR"
	EnvSeed       = "CATCHIT_SEED"
)

// LoadEnv loads variables from .env files (default: ./.env) without
// overriding ones already set. Missing files are not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: failed to load env: %w", err)
	}
	return nil
}

// SeedFromEnv returns the seed from CATCHIT_SEED, if set.
func SeedFromEnv() (int64, bool, error) {
	raw := os.Getenv(EnvSeed)
	if raw == "" {
		return 0, false, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("config: %w: %s=%q is not an integer", ErrInvalid, EnvSeed, raw)
	}
	return seed, true, nil
}
