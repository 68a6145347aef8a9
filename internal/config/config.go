// internal/config/config.go
//
// Environment-driven configuration for the console game.
// Every variable is optional; the defaults reproduce the plain interactive
// game with a 4x4 numeric board and no persistence.
//
// Environment variables:
//   ROWS, COLS       board dimensions (default 4x4)
//   NAMES_FILE       path to a card label file, one label per line
//   RESULTS_DB       SQLite path for durable results (memory store if unset)
//   SEED             fixed board seed, for reproducing a layout
//   SEED_MODE        "daily" derives the seed from the current date
//   SEED_SALT        salt for daily seed derivation
//   LOG_LEVEL        zerolog level (default "info")

package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultRows = 4
	defaultCols = 4
)

// Config holds the resolved settings for one process run.
type Config struct {
	Rows      int
	Cols      int
	NamesFile string
	ResultsDB string
	Seed      *int64 // nil unless SEED is set
	SeedDaily bool
	SeedSalt  string
	LogLevel  string
}

// Load resolves configuration from the environment. Returns an error for
// values that cannot be parsed or dimensions that cannot hold a game.
func Load() (Config, error) {
	cfg := Config{
		NamesFile: os.Getenv("NAMES_FILE"),
		ResultsDB: os.Getenv("RESULTS_DB"),
		SeedDaily: os.Getenv("SEED_MODE") == "daily",
		SeedSalt:  os.Getenv("SEED_SALT"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Rows, err = intEnv("ROWS", defaultRows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = intEnv("COLS", defaultCols); err != nil {
		return Config{}, err
	}
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return Config{}, fmt.Errorf("board dimensions must be positive, got %dx%d", cfg.Rows, cfg.Cols)
	}

	if v := os.Getenv("SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SEED: %w", err)
		}
		cfg.Seed = &n
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
