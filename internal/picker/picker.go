// Package picker resolves world-space points to the exact tile containing
// them: inverse projection to fractional axial coordinates, cube rounding,
// then a grid lookup. Picking is pure; it never touches selection state.
package picker

import "github.com/talgya/hexview/internal/hexgrid"

// Picker maps world points onto a tile grid.
type Picker struct {
	grid *hexgrid.TileGrid
}

// New creates a picker over the given grid.
func New(grid *hexgrid.TileGrid) *Picker {
	return &Picker{grid: grid}
}

// Pick returns the tile under the world point (x, y), or (nil, false) when
// the point lands outside the grid bounds or on a sparse hole.
func (p *Picker) Pick(x, y float64) (*hexgrid.Tile, bool) {
	fq, fr := hexgrid.WorldToFracAxial(x, y)
	cube := hexgrid.RoundToHex(hexgrid.FracAxialToCube(fq, fr))
	a := cube.ToAxial()
	return p.grid.Get(a.Q, a.R)
}
