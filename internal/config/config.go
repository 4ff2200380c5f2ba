// Package config loads the optional helios.toml runtime configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds everything tunable at startup. Zero values are replaced by
// Default(); rendering code never consults the environment directly.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	FOVDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`

	// Control rates, units per second.
	TempRate      float32 `toml:"temp_rate"`
	IntensityRate float32 `toml:"intensity_rate"`
	ShipSpeed     float32 `toml:"ship_speed"`
	TurnRate      float32 `toml:"turn_rate"`

	ShipMesh string `toml:"ship_mesh"` // optional OBJ path; empty = embedded model
}

// Default mirrors the original scene setup: a 1300×600 window with a 60°
// vertical field of view.
func Default() Config {
	return Config{
		Width:         1300,
		Height:        600,
		FOVDegrees:    60,
		Near:          0.5,
		Far:           100,
		TempRate:      0.3,
		IntensityRate: 0.5,
		ShipSpeed:     30,
		TurnRate:      0.9,
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %s: window size %dx%d invalid", path, cfg.Width, cfg.Height)
	}
	if cfg.Near <= 0 || cfg.Far <= cfg.Near {
		return cfg, fmt.Errorf("config %s: near/far planes %v/%v invalid", path, cfg.Near, cfg.Far)
	}
	return cfg, nil
}
