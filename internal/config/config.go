package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all hexmap tool configuration
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Terrain TerrainConfig `yaml:"terrain"`
}

// MapConfig describes the map to build
type MapConfig struct {
	Shape       string `yaml:"shape"`       // rectangle | hexagon | megahex
	Orientation string `yaml:"orientation"` // horizontal | vertical
	Rows        int    `yaml:"rows"`        // size on the hx axis
	Columns     int    `yaml:"columns"`     // size on the hy axis
	OriginHx    int    `yaml:"origin_hx"`
	OriginHy    int    `yaml:"origin_hy"`
}

// TerrainConfig holds terrain overlay settings
type TerrainConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Seed        int64   `yaml:"seed"`
	SeaLevel    float64 `yaml:"sea_level"`
	MountainLvl float64 `yaml:"mountain_level"`
	Scale       float64 `yaml:"scale"` // cells per noise feature
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Map.Shape == "" {
		cfg.Map.Shape = "rectangle"
	}
	if cfg.Map.Orientation == "" {
		cfg.Map.Orientation = "vertical"
	}
	if cfg.Map.Rows == 0 {
		cfg.Map.Rows = 8
	}
	if cfg.Map.Columns == 0 {
		cfg.Map.Columns = 8
	}
	if cfg.Terrain.Seed == 0 {
		cfg.Terrain.Seed = 1
	}
	if cfg.Terrain.SeaLevel == 0 {
		cfg.Terrain.SeaLevel = 0.30
	}
	if cfg.Terrain.MountainLvl == 0 {
		cfg.Terrain.MountainLvl = 0.75
	}
	if cfg.Terrain.Scale == 0 {
		cfg.Terrain.Scale = 12
	}

	return &cfg, nil
}
