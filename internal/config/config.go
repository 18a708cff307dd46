// Package config loads viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration.
type Config struct {
	Map   MapConfig   `yaml:"map"`
	Mesh  MeshConfig  `yaml:"mesh"`
	Atlas AtlasConfig `yaml:"atlas"`
	Demo  DemoConfig  `yaml:"demo"`
}

// MapConfig declares the grid dimensions and the demo generation seed.
type MapConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// MeshConfig holds the mesh manager tuning values.
type MeshConfig struct {
	ChunkSize        int     `yaml:"chunk_size"`         // tiles per chunk edge
	VisibilityRange  float64 `yaml:"visibility_range"`   // world units
	SingleMeshCutoff int     `yaml:"single_mesh_cutoff"` // tile count threshold
}

// AtlasConfig points at the tileset database. An empty path falls back to
// the built-in atlas.
type AtlasConfig struct {
	Path    string `yaml:"path"`
	Tileset string `yaml:"tileset"`
}

// DemoConfig drives the demo camera sweep.
type DemoConfig struct {
	FrameRate  int     `yaml:"frame_rate"` // visibility passes per second
	Frames     int     `yaml:"frames"`     // total frames before exit
	SweepSpeed float64 `yaml:"sweep_speed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Width:  256,
			Height: 256,
			Seed:   1337,
		},
		Mesh: MeshConfig{
			ChunkSize:        16,
			VisibilityRange:  60,
			SingleMeshCutoff: 4096,
		},
		Atlas: AtlasConfig{
			Tileset: "default",
		},
		Demo: DemoConfig{
			FrameRate:  30,
			Frames:     600,
			SweepSpeed: 2.0,
		},
	}
}

// Load reads configuration from a YAML file. An empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot run with.
func (c *Config) Validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return errors.New("map dimensions must be positive")
	}
	if c.Mesh.ChunkSize <= 0 {
		return errors.New("mesh.chunk_size must be positive")
	}
	if c.Mesh.VisibilityRange <= 0 {
		return errors.New("mesh.visibility_range must be positive")
	}
	if c.Mesh.SingleMeshCutoff < 0 {
		return errors.New("mesh.single_mesh_cutoff cannot be negative")
	}
	if c.Demo.FrameRate <= 0 {
		return errors.New("demo.frame_rate must be positive")
	}
	return nil
}
