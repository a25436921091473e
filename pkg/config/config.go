// Package config loads HTTP server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"sudoku-engine/pkg/constants"
)

// Config holds the settings the HTTP server needs to start.
type Config struct {
	Port string
	// MaxSearchSolutions bounds /api/solve/search when a request omits
	// max_count, keeping a misconfigured client from asking for an
	// unbounded enumeration.
	MaxSearchSolutions int
}

// Load reads configuration from environment variables, applying the same
// fallback-then-validate shape as the rest of this package's env lookups.
func Load() (*Config, error) {
	maxSolutions := constants.DefaultMaxSolutions
	if raw := os.Getenv("MAX_SEARCH_SOLUTIONS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("MAX_SEARCH_SOLUTIONS must be a positive integer, got %q", raw)
		}
		maxSolutions = n
	}

	return &Config{
		Port:               getEnv("PORT", constants.DefaultPort),
		MaxSearchSolutions: maxSolutions,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
