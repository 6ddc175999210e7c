package marina

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the optional marina.toml settings. Everything but the fleet
// file has a default, so running without a config file is the normal case.
type Config struct {
	// File is the fleet data file, used when no path is given on the
	// command line. There is no default: without a path from either the
	// command line or the config, commands refuse to run.
	File string `toml:"file"`
	// Capacity bounds the number of vessels the marina can hold.
	Capacity int `toml:"capacity"`
	// Rates override the standard monthly dollar-per-foot rates.
	Rates struct {
		Slip    float64 `toml:"slip"`
		Land    float64 `toml:"land"`
		Trailer float64 `toml:"trailer"`
		Storage float64 `toml:"storage"`
	} `toml:"rates"`
}

// DefaultConfig returns the configuration used when no marina.toml exists.
func DefaultConfig() Config {
	cfg := Config{
		Capacity: MaxVessels,
	}
	cfg.Rates.Slip = 12.50
	cfg.Rates.Land = 14.00
	cfg.Rates.Trailer = 25.00
	cfg.Rates.Storage = 11.20
	return cfg
}

// LoadConfig reads a marina.toml file, layering it over the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if cfg.Capacity <= 0 {
		return cfg, fmt.Errorf("invalid config %q: capacity must be positive", path)
	}
	return cfg, nil
}

// RateTable converts the configured rates to a billing rate table.
func (c Config) RateTable() RateTable {
	return RateTable{
		Slip:    M(c.Rates.Slip),
		Land:    M(c.Rates.Land),
		Trailer: M(c.Rates.Trailer),
		Storage: M(c.Rates.Storage),
	}
}
