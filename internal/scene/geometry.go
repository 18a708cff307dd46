package scene

import "github.com/talgya/hexview/internal/hexgrid"

// TileRef records which tile produced a run of geometry. The render step
// never needs it; tests and debugging tools verify rebuilt geometry against
// grid contents through it.
type TileRef struct {
	Coord hexgrid.Axial
	Type  hexgrid.TileType
}

// Geometry is a renderable vertex buffer set. Each geometry is exclusively
// owned by the chunk (or single mesh) that built it; nothing else holds a
// reference past eviction.
type Geometry struct {
	Positions []float32 // xyz triples
	UVs       []float32 // uv pairs
	Indices   []uint32
	Sources   []TileRef

	released bool
}

// VertexCount returns the number of vertices in the buffer.
func (g *Geometry) VertexCount() int { return len(g.Positions) / 3 }

// Release drops the buffers. A released geometry must never be attached.
func (g *Geometry) Release() {
	g.Positions = nil
	g.UVs = nil
	g.Indices = nil
	g.Sources = nil
	g.released = true
}

// Released reports whether Release has been called.
func (g *Geometry) Released() bool { return g.released }
