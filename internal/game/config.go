package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilegrid/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSize          = "TILEGRID_SIZE"
	EnvMode          = "TILEGRID_MODE"
	EnvTilesFile     = "TILEGRID_TILES"
	EnvHoneycombKey  = "HONEYCOMB_TILEGRID_API_KEY"
	EnvHoneycombData = "HONEYCOMB_TILEGRID_DATASET"
)

const honeycombEndpoint = "https://api.honeycomb.io"

// Config holds run options.
type Config struct {
	// Size is the side length of the world.
	Size int
	// Mode selects printed output or the terminal view.
	Mode Mode
	// TilesFile optionally replaces the embedded tile definitions.
	TilesFile string
	// HoneycombAPIKey enables trace export when set.
	HoneycombAPIKey string
	// HoneycombDataset names the Honeycomb dataset, "tilegrid" by default.
	HoneycombDataset string
}

// DefaultConfig returns the 50×50 printed world.
func DefaultConfig() Config {
	return Config{
		Size:             world.DefaultSize,
		Mode:             ModePrint,
		HoneycombDataset: "tilegrid",
	}
}

// LoadDotEnv loads .env files into the process environment.
// Missing files are not an error; variables already set are kept.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig builds a Config from environment lookups, starting from DefaultConfig.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSize, v, err)
		}
		if size <= 0 {
			return cfg, fmt.Errorf("invalid %s %d: must be positive", EnvSize, size)
		}
		cfg.Size = size
	}

	mode, err := ParseMode(getenv(EnvMode))
	if err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", EnvMode, err)
	}
	cfg.Mode = mode

	cfg.TilesFile = getenv(EnvTilesFile)
	cfg.HoneycombAPIKey = getenv(EnvHoneycombKey)
	if v := getenv(EnvHoneycombData); v != "" {
		cfg.HoneycombDataset = v
	}

	return cfg, nil
}

// TelemetryEnabled returns true if traces should be exported.
func (c Config) TelemetryEnabled() bool {
	return c.HoneycombAPIKey != ""
}

// TelemetryEndpoint returns the OTLP endpoint URL and headers for Honeycomb.
func (c Config) TelemetryEndpoint() (string, map[string]string) {
	return honeycombEndpoint, map[string]string{
		"x-honeycomb-team":    c.HoneycombAPIKey,
		"x-honeycomb-dataset": c.HoneycombDataset,
	}
}
