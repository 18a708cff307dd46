// Package mapgen is the demo-side map producer: layered simplex noise over
// the grid's world-space projection, deterministic from a seed. The core
// treats map data as externally supplied; this package exists so the demo
// driver has something real to feed it.
package mapgen

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexview/internal/hexgrid"
)

// GenConfig holds generation parameters for a rectangular axial grid.
type GenConfig struct {
	Width       int
	Height      int
	Seed        int64 // 0 = random
	SeaLevel    float64
	MountainLvl float64
}

// DefaultGenConfig returns a reasonable starting configuration for the
// given dimensions.
func DefaultGenConfig(width, height int) GenConfig {
	return GenConfig{
		Width:       width,
		Height:      height,
		Seed:        1337,
		SeaLevel:    0.3,
		MountainLvl: 0.72,
	}
}

// Generate produces one tile per grid coordinate with elevation-derived
// types, ready for TileGrid.BulkLoad.
func Generate(cfg GenConfig) []*hexgrid.Tile {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Independent layers for elevation and moisture.
	elevNoise := opensimplex.NewNormalized(seed)
	moistNoise := opensimplex.NewNormalized(seed + 1)

	tiles := make([]*hexgrid.Tile, 0, cfg.Width*cfg.Height)
	for r := 0; r < cfg.Height; r++ {
		for q := 0; q < cfg.Width; q++ {
			// Sample in world space so noise features are isotropic on the
			// hex layout rather than sheared along the q axis.
			w := hexgrid.AxialToWorld(q, r)

			elev := octaveNoise(elevNoise, w.X, w.Y, 4, 0.05, 0.5)
			moist := octaveNoise(moistNoise, w.X, w.Y, 3, 0.04, 0.5)

			tiles = append(tiles, &hexgrid.Tile{
				Coord:     hexgrid.Axial{Q: q, R: r},
				Type:      deriveType(elev, moist, cfg),
				Elevation: elev,
			})
		}
	}
	return tiles
}

// octaveNoise sums octaves of normalized noise, renormalized to [0, 1].
func octaveNoise(n opensimplex.Noise, x, y float64, octaves int, freq, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	f := freq

	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*f, y*f) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		f *= 2
	}
	return total / maxValue
}

func deriveType(elev, moist float64, cfg GenConfig) hexgrid.TileType {
	switch {
	case elev < cfg.SeaLevel:
		return hexgrid.TypeWater
	case elev < cfg.SeaLevel+0.05:
		return hexgrid.TypeSand
	case elev >= cfg.MountainLvl+0.12:
		return hexgrid.TypeSnow
	case elev >= cfg.MountainLvl:
		return hexgrid.TypeRock
	case moist >= 0.55:
		return hexgrid.TypeForest
	default:
		return hexgrid.TypeGrass
	}
}
