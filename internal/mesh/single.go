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

// SingleMesh renders the whole map as one monolithic geometry. It is the
// small-map variant behind the MapMesh contract: no partitioning, no
// visibility culling, a full rebuild on any tile update.
type SingleMesh struct {
	grid    *hexgrid.TileGrid
	atlas   *atlas.Atlas
	graph   *scene.Graph
	builder Builder

	loaded     chan struct{}
	loadedOnce sync.Once

	node    *scene.Node
	dirty   bool
	epoch   uint64
	pending bool

	inflight sync.WaitGroup
	results  chan buildResult
}

// NewSingleMesh creates the monolithic variant over the given grid.
func NewSingleMesh(grid *hexgrid.TileGrid, at *atlas.Atlas, graph *scene.Graph) *SingleMesh {
	return &SingleMesh{
		grid:    grid,
		atlas:   at,
		graph:   graph,
		builder: hexBuilder{},
		loaded:  make(chan struct{}),
		results: make(chan buildResult, 1),
	}
}

// Load finishes construction and kicks off the initial geometry build. The
// build itself completes asynchronously and attaches on a later pass.
func (m *SingleMesh) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("single mesh load: %w", err)
	}
	m.loadedOnce.Do(func() {
		slog.Info("single mesh ready", "tiles", m.grid.Len())
		m.dirty = true
		m.epoch++
		close(m.loaded)
	})
	return nil
}

// Loaded closes once Load has completed.
func (m *SingleMesh) Loaded() <-chan struct{} { return m.loaded }

// GetTile delegates to the owning grid.
func (m *SingleMesh) GetTile(q, r int) (*hexgrid.Tile, bool) {
	return m.grid.Get(q, r)
}

// UpdateTiles applies the overwrites and schedules a full rebuild. Bumping
// the epoch here invalidates any build already in flight, so a snapshot
// taken before the update can never be attached.
func (m *SingleMesh) UpdateTiles(tiles []*hexgrid.Tile) {
	m.grid.UpdateTiles(tiles)
	m.dirty = true
	m.epoch++
}

// UpdateVisibility ignores the pose: the single mesh is always visible. The
// pass applies a finished rebuild and starts a new one when the grid has
// changed since the last build. Stale geometry comes down before the
// rebuild starts rather than lingering on screen.
func (m *SingleMesh) UpdateVisibility(pose CameraPose) {
	m.applyCompleted()

	if m.dirty && !m.pending {
		m.dirty = false
		if m.node != nil {
			m.graph.Detach(m.node)
			m.node.Geometry.Release()
			m.node = nil
		}
		m.startBuild()
	}
}

func (m *SingleMesh) applyCompleted() {
	select {
	case res := <-m.results:
		m.pending = false
		if res.epoch != m.epoch {
			res.geom.Release()
			return
		}
		node := scene.NewNode("map", res.geom)
		m.graph.Attach(node)
		m.node = node
	default:
	}
}

func (m *SingleMesh) startBuild() {
	tiles := m.grid.Snapshot()
	if len(tiles) == 0 {
		return
	}

	m.pending = true
	epoch := m.epoch

	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		geom := m.builder.Build(tiles, m.atlas)
		m.results <- buildResult{epoch: epoch, geom: geom}
	}()
}

// Node returns the attached scene node, or nil before the first build lands.
func (m *SingleMesh) Node() *scene.Node { return m.node }

// WaitIdle blocks until no build is in flight.
func (m *SingleMesh) WaitIdle() {
	m.inflight.Wait()
}
