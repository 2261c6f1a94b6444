// Package config reads process level settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrUnknownCacheKind = errors.New("unknown cache kind")

// CacheKind selects where raw dataset downloads are kept.
type CacheKind string

const (
	CacheDir    CacheKind = "dir"
	CacheSQLite CacheKind = "sqlite"
	CacheNone   CacheKind = "none"
)

func ParseCacheKind(name string) (CacheKind, error) {
	kind := CacheKind(strings.ToLower(strings.TrimSpace(name)))
	switch kind {
	case CacheDir, CacheSQLite, CacheNone:
		return kind, nil
	}
	return "", fmt.Errorf("%q, %w", name, ErrUnknownCacheKind)
}

// Config holds process configuration
type Config struct {
	DataDir string
	Cache   CacheKind
	CacheDB string

	// CacheDBSet reports whether CacheDB was given explicitly rather than derived from
	// DataDir.
	CacheDBSet bool

	// Seed drives every random draw when HasSeed is set, otherwise runs are seeded
	// from the clock.
	Seed    uint64
	HasSeed bool

	LogLevel  slog.Level
	BlockSize int
}

// LoadFromEnv loads a .env file if one exists, or the given files, and then reads the
// DATADIVES_* environment variables. Malformed values fall back to their defaults with
// a warning.
func LoadFromEnv(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("no .env file found, using environment variables", "error", err)
	}

	dataDir := getEnvOrDefault("DATADIVES_DATA_DIR", "data")
	cfg := &Config{
		DataDir:   dataDir,
		Cache:     CacheDir,
		CacheDB:   getEnvOrDefault("DATADIVES_CACHE_DB", filepath.Join(dataDir, ".cache.db")),
		LogLevel:  slog.LevelInfo,
		BlockSize: getEnvInt("DATADIVES_BLOCK_SIZE", 24),
	}
	cfg.CacheDBSet = os.Getenv("DATADIVES_CACHE_DB") != ""

	if value := os.Getenv("DATADIVES_CACHE"); value != "" {
		kind, err := ParseCacheKind(value)
		if err != nil {
			slog.Warn("ignoring cache kind", "value", value, "error", err)
		} else {
			cfg.Cache = kind
		}
	}

	if value := os.Getenv("DATADIVES_SEED"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			slog.Warn("ignoring seed", "value", value, "error", err)
		} else {
			cfg.Seed, cfg.HasSeed = seed, true
		}
	}

	if value := os.Getenv("DATADIVES_LOG_LEVEL"); value != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(value)); err != nil {
			slog.Warn("ignoring log level", "value", value, "error", err)
		}
	}
	return cfg
}

// getEnvInt gets environment variable as int or returns default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring integer setting", "key", key, "value", value, "error", err)
		return defaultValue
	}
	return intValue
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
