package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/clarkher/piggerTimeLine/internal/view"
)

const (
	SourceCSV    = "csv"
	SourceSheets = "sheets"
)

type Config struct {
	Port     int
	LogLevel string
	// Feed
	FeedSource   string
	FeedURL      string
	SheetID      string
	SheetRange   string
	GoogleAPIKey string
	FetchTimeout time.Duration
	// Refresh
	RefreshInterval time.Duration
	// View
	WindowPadDays  int
	ColoringPolicy view.ColoringPolicy
	PalettePath    string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            envInt("PORT", 8460),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		FeedSource:      envStr("FEED_SOURCE", SourceCSV),
		FeedURL:         envStr("FEED_URL", ""),
		SheetID:         envStr("SHEET_ID", ""),
		SheetRange:      envStr("SHEET_RANGE", "A:J"),
		GoogleAPIKey:    envStr("GOOGLE_API_KEY", ""),
		FetchTimeout:    envDuration("FETCH_TIMEOUT", 30*time.Second),
		RefreshInterval: envDuration("REFRESH_INTERVAL", 60*time.Second),
		WindowPadDays:   envInt("WINDOW_PAD_DAYS", 7),
		ColoringPolicy:  view.ColoringPolicy(envStr("COLORING_POLICY", string(view.ColorByPerson))),
		PalettePath:     envStr("PALETTE_PATH", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch c.FeedSource {
	case SourceCSV:
		if c.FeedURL == "" {
			return fmt.Errorf("FEED_URL must not be empty for the csv source")
		}
	case SourceSheets:
		if c.SheetID == "" {
			return fmt.Errorf("SHEET_ID must not be empty for the sheets source")
		}
		if c.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY must not be empty for the sheets source")
		}
	default:
		return fmt.Errorf("FEED_SOURCE must be %q or %q, got %q", SourceCSV, SourceSheets, c.FeedSource)
	}
	if c.RefreshInterval < time.Second {
		return fmt.Errorf("REFRESH_INTERVAL must be at least 1s, got %s", c.RefreshInterval)
	}
	if c.FetchTimeout < time.Second {
		return fmt.Errorf("FETCH_TIMEOUT must be at least 1s, got %s", c.FetchTimeout)
	}
	if c.WindowPadDays < 0 {
		return fmt.Errorf("WINDOW_PAD_DAYS must not be negative, got %d", c.WindowPadDays)
	}
	if !c.ColoringPolicy.Valid() {
		return fmt.Errorf("COLORING_POLICY must be %q or %q, got %q",
			view.ColorByPerson, view.ColorByStatus, c.ColoringPolicy)
	}
	return nil
}

// FeedEndpoint re-reads FEED_URL from the environment so the feed can be
// repointed without a restart, keeping the startup value as fallback.
func (c *Config) FeedEndpoint() string {
	if v := os.Getenv("FEED_URL"); v != "" {
		return v
	}
	return c.FeedURL
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
