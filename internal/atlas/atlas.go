// Package atlas maps tile types to texture regions. The atlas itself is an
// opaque lookup table handed to the mesh layer at load time; building the
// underlying texture is the asset pipeline's job.
package atlas

import "github.com/talgya/hexview/internal/hexgrid"

// Region is a normalized UV rectangle inside the atlas texture.
type Region struct {
	U0 float64
	V0 float64
	U1 float64
	V1 float64
}

// Center returns the midpoint of the region in UV space.
func (r Region) Center() (u, v float64) {
	return (r.U0 + r.U1) / 2, (r.V0 + r.V1) / 2
}

// Atlas is the tile type to region lookup table.
type Atlas struct {
	regions map[hexgrid.TileType]Region
}

// New creates an atlas from an explicit region table.
func New(regions map[hexgrid.TileType]Region) *Atlas {
	copied := make(map[hexgrid.TileType]Region, len(regions))
	for t, r := range regions {
		copied[t] = r
	}
	return &Atlas{regions: copied}
}

// Region returns the UV region for a tile type.
func (a *Atlas) Region(t hexgrid.TileType) (Region, bool) {
	r, ok := a.regions[t]
	return r, ok
}

// Len returns the number of mapped tile types.
func (a *Atlas) Len() int { return len(a.regions) }

// Builtin returns the fallback atlas used when no tileset database is
// configured: a 3x2 grid of equally sized cells, one per tile type.
func Builtin() *Atlas {
	types := []hexgrid.TileType{
		hexgrid.TypeWater, hexgrid.TypeSand, hexgrid.TypeGrass,
		hexgrid.TypeForest, hexgrid.TypeRock, hexgrid.TypeSnow,
	}
	regions := make(map[hexgrid.TileType]Region, len(types))
	for i, t := range types {
		col := float64(i % 3)
		row := float64(i / 3)
		regions[t] = Region{
			U0: col / 3.0,
			V0: row / 2.0,
			U1: (col + 1) / 3.0,
			V1: (row + 1) / 2.0,
		}
	}
	return New(regions)
}
