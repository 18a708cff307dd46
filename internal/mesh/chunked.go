package mesh

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/talgya/hexview/internal/atlas"
	"github.com/talgya/hexview/internal/hexgrid"
	"github.com/talgya/hexview/internal/scene"
)

// ChunkedMesh partitions the tile grid into fixed-size chunks and keeps only
// the chunks within view range of the camera materialized. Chunk coordinate
// ranges are fixed at construction; geometry is built lazily on worker
// goroutines and applied on the following visibility pass.
type ChunkedMesh struct {
	grid    *hexgrid.TileGrid
	atlas   *atlas.Atlas
	graph   *scene.Graph
	builder Builder

	chunkSize int
	viewRange float64

	chunks  []*Chunk // row-major by chunk Y then X
	chunksX int
	chunksY int

	loaded     chan struct{}
	loadedOnce sync.Once

	inflight sync.WaitGroup
	results  chan buildResult
}

// NewChunkedMesh partitions the grid. chunkSize is the chunk edge length in
// tiles; viewRange is the camera distance in world units beyond which chunk
// geometry is released.
func NewChunkedMesh(grid *hexgrid.TileGrid, at *atlas.Atlas, graph *scene.Graph, chunkSize int, viewRange float64) *ChunkedMesh {
	chunksX := (grid.Width() + chunkSize - 1) / chunkSize
	chunksY := (grid.Height() + chunkSize - 1) / chunkSize

	chunks := make([]*Chunk, 0, chunksX*chunksY)
	for cy := 0; cy < chunksY; cy++ {
		for cx := 0; cx < chunksX; cx++ {
			b := Bounds{
				MinQ: cx * chunkSize,
				MinR: cy * chunkSize,
				MaxQ: minInt((cx+1)*chunkSize, grid.Width()) - 1,
				MaxR: minInt((cy+1)*chunkSize, grid.Height()) - 1,
			}
			chunks = append(chunks, newChunk(ChunkCoord{X: cx, Y: cy}, b))
		}
	}

	return &ChunkedMesh{
		grid:      grid,
		atlas:     at,
		graph:     graph,
		builder:   hexBuilder{},
		chunkSize: chunkSize,
		viewRange: viewRange,
		chunks:    chunks,
		chunksX:   chunksX,
		chunksY:   chunksY,
		loaded:    make(chan struct{}),
		// One in-flight build per chunk at most, so completions never block.
		results: make(chan buildResult, len(chunks)),
	}
}

// Load finishes construction. Geometry stays unbuilt until chunks enter the
// visible set.
func (m *ChunkedMesh) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("chunked mesh load: %w", err)
	}
	m.loadedOnce.Do(func() {
		slog.Info("chunked mesh ready",
			"chunks", len(m.chunks),
			"chunk_size", m.chunkSize,
			"tiles", m.grid.Len(),
		)
		close(m.loaded)
	})
	return nil
}

// Loaded closes once Load has completed.
func (m *ChunkedMesh) Loaded() <-chan struct{} { return m.loaded }

// NumChunks returns the static chunk count.
func (m *ChunkedMesh) NumChunks() int { return len(m.chunks) }

// GetTile delegates to the owning grid; the mesh holds no tile data of its
// own, only derived geometry.
func (m *ChunkedMesh) GetTile(q, r int) (*hexgrid.Tile, bool) {
	return m.grid.Get(q, r)
}

// chunkFor returns the chunk covering (q, r), or nil outside the grid.
func (m *ChunkedMesh) chunkFor(q, r int) *Chunk {
	if !m.grid.InBounds(q, r) {
		return nil
	}
	return m.chunks[(r/m.chunkSize)*m.chunksX+q/m.chunkSize]
}

// UpdateTiles applies the overwrites to the grid and marks every covering
// chunk for rebuild. Rebuilds happen on the next visibility pass, before the
// chunk is next rendered.
func (m *ChunkedMesh) UpdateTiles(tiles []*hexgrid.Tile) {
	m.grid.UpdateTiles(tiles)
	for _, t := range tiles {
		if c := m.chunkFor(t.Coord.Q, t.Coord.R); c != nil {
			c.dirty = true
		}
	}
}

// UpdateVisibility runs the per-frame pass: apply completed builds, evict
// dirty geometry, then load entering chunks and release leaving ones. It is
// called at most once per frame from the frame goroutine, so state
// transitions are never observed mid-flight by the render step.
func (m *ChunkedMesh) UpdateVisibility(pose CameraPose) {
	m.applyCompleted()

	// Dirty chunks drop stale geometry first; the visibility scan below
	// rebuilds them if they are still wanted.
	for _, c := range m.chunks {
		if !c.dirty {
			continue
		}
		c.dirty = false
		if c.state != Unloaded {
			m.evict(c)
		}
	}

	for _, c := range m.chunks {
		if c.withinRange(pose, m.viewRange) {
			if c.state == Unloaded {
				m.startBuild(c)
			}
		} else if c.state != Unloaded {
			m.evict(c)
		}
	}
}

// applyCompleted drains finished builds. A result whose epoch no longer
// matches its chunk answers a request that was evicted or dirtied in the
// meantime; its geometry is released, never attached.
func (m *ChunkedMesh) applyCompleted() {
	for {
		select {
		case res := <-m.results:
			res.chunk.pending = false
			if res.epoch != res.chunk.epoch || res.chunk.state != Loading {
				res.geom.Release()
				continue
			}
			node := scene.NewNode(
				fmt.Sprintf("chunk-%d-%d", res.chunk.Coord.X, res.chunk.Coord.Y),
				res.geom,
			)
			node.Position = res.chunk.center
			m.graph.Attach(node)
			res.chunk.node = node
			res.chunk.state = Loaded
		default:
			return
		}
	}
}

// startBuild snapshots the chunk's tile subset on the frame goroutine and
// hands it to a worker. A chunk with no tiles in range stays Unloaded and
// never builds. While a previous build for this chunk is still in flight the
// chunk waits; the stale result is discarded on arrival and the next pass
// retries.
func (m *ChunkedMesh) startBuild(c *Chunk) {
	if c.pending {
		return
	}

	tiles := m.collectTiles(c.Bounds)
	if len(tiles) == 0 {
		return
	}

	c.state = Loading
	c.pending = true
	epoch := c.epoch

	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		geom := m.builder.Build(tiles, m.atlas)
		m.results <- buildResult{chunk: c, epoch: epoch, geom: geom}
	}()
}

// evict releases a chunk's geometry and invalidates any in-flight build.
func (m *ChunkedMesh) evict(c *Chunk) {
	if c.node != nil {
		m.graph.Detach(c.node)
		c.node.Geometry.Release()
		c.node = nil
	}
	c.state = Unloaded
	c.epoch++
}

// collectTiles snapshots the tiles inside an axial range in row-major order.
func (m *ChunkedMesh) collectTiles(b Bounds) []*hexgrid.Tile {
	tiles := make([]*hexgrid.Tile, 0, (b.MaxQ-b.MinQ+1)*(b.MaxR-b.MinR+1))
	for r := b.MinR; r <= b.MaxR; r++ {
		for q := b.MinQ; q <= b.MaxQ; q++ {
			if t, ok := m.grid.Get(q, r); ok {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

// WaitIdle blocks until no builds are in flight. Completions still need the
// next UpdateVisibility pass to be applied.
func (m *ChunkedMesh) WaitIdle() {
	m.inflight.Wait()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
