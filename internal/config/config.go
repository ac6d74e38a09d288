// Package config loads editor settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Logging LoggingConfig
	Editor  EditorConfig
	Layout  LayoutConfig
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type EditorConfig struct {
	HitRadius     float64
	EdgeThreshold float64
	Debounce      time.Duration
	HistoryLimit  int
}

type LayoutConfig struct {
	SeatSize    float64
	SeatSpacing float64
}

// Load reads envFile when given, or .env in the working directory when
// present, then builds and validates the configuration. A missing default
// .env is not an error; a missing explicit file is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func load() *Config {
	return &Config{
		Logging: loadLoggingConfig(),
		Editor:  loadEditorConfig(),
		Layout:  loadLayoutConfig(),
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      getEnv("VENUE_LOG_LEVEL", "info"),
		JSONFormat: getEnv("VENUE_LOG_JSON", "false") == "true",
	}
}

func loadEditorConfig() EditorConfig {
	return EditorConfig{
		HitRadius:     getFloat("VENUE_HIT_RADIUS", 8),
		EdgeThreshold: getFloat("VENUE_EDGE_THRESHOLD", 6),
		Debounce:      time.Duration(getInt("VENUE_DEBOUNCE_MS", 250)) * time.Millisecond,
		HistoryLimit:  getInt("VENUE_HISTORY_LIMIT", 100),
	}
}

func loadLayoutConfig() LayoutConfig {
	return LayoutConfig{
		SeatSize:    getFloat("VENUE_SEAT_SIZE", 14),
		SeatSpacing: getFloat("VENUE_SEAT_SPACING", 2),
	}
}

// Validate rejects settings the editor cannot work with.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Editor.HitRadius <= 0 {
		return fmt.Errorf("VENUE_HIT_RADIUS must be positive")
	}
	if c.Editor.EdgeThreshold <= 0 {
		return fmt.Errorf("VENUE_EDGE_THRESHOLD must be positive")
	}
	if c.Editor.Debounce < 0 {
		return fmt.Errorf("VENUE_DEBOUNCE_MS must not be negative")
	}
	if c.Editor.HistoryLimit < 1 {
		return fmt.Errorf("VENUE_HISTORY_LIMIT must be at least 1")
	}
	if c.Layout.SeatSize <= 0 {
		return fmt.Errorf("VENUE_SEAT_SIZE must be positive")
	}
	if c.Layout.SeatSpacing < 0 {
		return fmt.Errorf("VENUE_SEAT_SPACING must not be negative")
	}
	return nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Malformed numbers fall back to the default; Validate catches what the
// fallback cannot.
func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}
