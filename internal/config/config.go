// Package config loads the optional gobound.toml settings file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipparndt/gobound/internal/logging"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "gobound.toml"

type Config struct {
	Log    LogConfig    `toml:"log"`
	Cast   CastConfig   `toml:"cast"`
	Watch  WatchConfig  `toml:"watch"`
	Blocks BlocksConfig `toml:"blocks"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type CastConfig struct {
	MaxDistance float64 `toml:"max_distance"`
}

type WatchConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

// BlocksConfig points at a directory of exported block collision shapes
type BlocksConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Cast:  CastConfig{MaxDistance: 64},
		Watch: WatchConfig{DebounceMs: 500},
	}
}

// Debounce returns the watch debounce as a duration
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// Validate checks the values a file may have set
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	d := c.Cast.MaxDistance
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return fmt.Errorf("cast.max_distance must be finite and positive, got %v", d)
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMs)
	}
	return nil
}

// Load reads path over the defaults. When path is empty the default file
// is tried and its absence is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	logging.Debug("loaded config", "path", path)
	return cfg, nil
}

// Decode parses TOML into cfg, keeping fields the data does not set.
// Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("unmarshal toml: %w", err)
	}
	return cfg.Validate()
}
