package mapgen

import (
	"testing"

	"github.com/talgya/hexview/internal/hexgrid"
)

func TestGenerateFillsGrid(t *testing.T) {
	cfg := DefaultGenConfig(16, 12)
	tiles := Generate(cfg)

	if len(tiles) != 16*12 {
		t.Fatalf("generated %d tiles, want %d", len(tiles), 16*12)
	}

	seen := make(map[hexgrid.Axial]bool, len(tiles))
	for _, tile := range tiles {
		if tile.Coord.Q < 0 || tile.Coord.Q >= 16 || tile.Coord.R < 0 || tile.Coord.R >= 12 {
			t.Fatalf("tile out of bounds: %+v", tile.Coord)
		}
		if seen[tile.Coord] {
			t.Fatalf("duplicate tile at %+v", tile.Coord)
		}
		seen[tile.Coord] = true
		if tile.Elevation < 0 || tile.Elevation > 1 {
			t.Fatalf("elevation out of range: %g", tile.Elevation)
		}
	}
}

func TestGenerateDeterministicFromSeed(t *testing.T) {
	cfg := DefaultGenConfig(10, 10)
	cfg.Seed = 99

	a := Generate(cfg)
	b := Generate(cfg)
	for i := range a {
		if a[i].Coord != b[i].Coord || a[i].Type != b[i].Type || a[i].Elevation != b[i].Elevation {
			t.Fatalf("generation not deterministic at index %d", i)
		}
	}
}
