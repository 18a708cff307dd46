package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mesh.ChunkSize != Default().Mesh.ChunkSize {
		t.Fatalf("empty path did not return defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexview.yaml")
	body := `
map:
  width: 64
  height: 48
  seed: 7
mesh:
  chunk_size: 32
  visibility_range: 120
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Width != 64 || cfg.Map.Height != 48 || cfg.Map.Seed != 7 {
		t.Fatalf("map config not applied: %+v", cfg.Map)
	}
	if cfg.Mesh.ChunkSize != 32 || cfg.Mesh.VisibilityRange != 120 {
		t.Fatalf("mesh config not applied: %+v", cfg.Mesh)
	}
	// Untouched sections keep their defaults.
	if cfg.Demo.FrameRate != Default().Demo.FrameRate {
		t.Fatalf("defaults lost for unset sections")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Map.Width = 0 },
		func(c *Config) { c.Map.Height = -1 },
		func(c *Config) { c.Mesh.ChunkSize = 0 },
		func(c *Config) { c.Mesh.VisibilityRange = 0 },
		func(c *Config) { c.Demo.FrameRate = 0 },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: invalid config accepted", i)
		}
	}
}
