// Package mesh turns tile grid contents into renderable geometry. Two
// variants sit behind the same contract: SingleMesh builds one monolithic
// geometry for small maps, ChunkedMesh partitions large maps into fixed-size
// chunks and materializes only the chunks near the camera.
//
// All methods are driven from a single frame-update goroutine. Geometry
// construction is the one deferred operation: builds run on worker
// goroutines and their completions are applied on the next visibility pass,
// so a build never stalls frame delivery.
package mesh

import (
	"context"
	"math"

	"github.com/talgya/hexview/internal/atlas"
	"github.com/talgya/hexview/internal/hexgrid"
	"github.com/talgya/hexview/internal/scene"
)

// CameraPose is the per-frame camera input to visibility updates.
type CameraPose struct {
	Position hexgrid.WorldPos
}

// MapMesh is the capability contract shared by both mesh variants. The
// orchestrator picks a variant at load time and holds only this interface.
type MapMesh interface {
	// Load finishes initial construction. The Loaded channel closes when it
	// completes; full geometry is built lazily afterwards.
	Load(ctx context.Context) error

	// GetTile delegates to the owning tile grid.
	GetTile(q, r int) (*hexgrid.Tile, bool)

	// UpdateTiles applies tile overwrites to the grid and schedules geometry
	// rebuilds so the next render pass reflects the new data.
	UpdateTiles(tiles []*hexgrid.Tile)

	// UpdateVisibility runs once per frame: applies completed builds,
	// recomputes the visible set, and starts or evicts geometry as needed.
	UpdateVisibility(pose CameraPose)

	// Loaded closes once initial construction has finished.
	Loaded() <-chan struct{}

	// WaitIdle blocks until no geometry builds are in flight.
	WaitIdle()
}

// Builder constructs geometry from a tile subset and the texture atlas.
// Builds run off the frame goroutine and must not touch shared state.
type Builder interface {
	Build(tiles []*hexgrid.Tile, at *atlas.Atlas) *scene.Geometry
}

// hexBuilder emits a triangle fan per tile: a center vertex plus six
// corners for pointy-top unit hexes.
type hexBuilder struct{}

func (hexBuilder) Build(tiles []*hexgrid.Tile, at *atlas.Atlas) *scene.Geometry {
	geom := &scene.Geometry{
		Positions: make([]float32, 0, len(tiles)*7*3),
		UVs:       make([]float32, 0, len(tiles)*7*2),
		Indices:   make([]uint32, 0, len(tiles)*6*3),
		Sources:   make([]scene.TileRef, 0, len(tiles)),
	}

	for _, t := range tiles {
		region, ok := at.Region(t.Type)
		if !ok {
			// Unmapped types render with the whole-texture region rather
			// than dropping the tile.
			region = atlas.Region{U0: 0, V0: 0, U1: 1, V1: 1}
		}

		center := hexgrid.AxialToWorld(t.Coord.Q, t.Coord.R)
		base := uint32(geom.VertexCount())

		cu, cv := region.Center()
		geom.Positions = append(geom.Positions,
			float32(center.X), float32(center.Y), float32(center.Z))
		geom.UVs = append(geom.UVs, float32(cu), float32(cv))

		// Pointy-top corners start at -30 degrees and step by 60.
		for i := 0; i < 6; i++ {
			angle := math.Pi / 180 * (60*float64(i) - 30)
			geom.Positions = append(geom.Positions,
				float32(center.X+math.Cos(angle)),
				float32(center.Y+math.Sin(angle)),
				float32(center.Z))
			geom.UVs = append(geom.UVs,
				float32(cu+(region.U1-region.U0)/2*math.Cos(angle)),
				float32(cv+(region.V1-region.V0)/2*math.Sin(angle)))
		}

		for i := uint32(0); i < 6; i++ {
			next := (i + 1) % 6
			geom.Indices = append(geom.Indices, base, base+1+i, base+1+next)
		}

		geom.Sources = append(geom.Sources, scene.TileRef{Coord: t.Coord, Type: t.Type})
	}

	return geom
}

// buildResult carries a finished geometry back to the frame goroutine. The
// epoch identifies which request the result answers; a stale epoch means
// the chunk was evicted or dirtied while the build ran and the geometry is
// discarded instead of attached.
type buildResult struct {
	chunk *Chunk
	epoch uint64
	geom  *scene.Geometry
}
