// Package view is the thin orchestrator over the core: it owns the tile
// grid, the mesh variant, picking, and selection, and exposes the observer
// contract the host application wires into.
package view

import (
	"context"
	"log/slog"

	"github.com/talgya/hexview/internal/atlas"
	"github.com/talgya/hexview/internal/hexgrid"
	"github.com/talgya/hexview/internal/mesh"
	"github.com/talgya/hexview/internal/picker"
	"github.com/talgya/hexview/internal/scene"
)

// Config holds the explicit tuning values for a map view.
type Config struct {
	ChunkSize        int     // chunk edge length in tiles
	VisibilityRange  float64 // camera distance in world units before release
	SingleMeshCutoff int     // tile counts at or below this use SingleMesh
}

// View wires grid, mesh, picker, and selection together. The mesh variant is
// chosen once by tile count; afterwards the view holds only the MapMesh
// contract.
type View struct {
	grid   *hexgrid.TileGrid
	mesh   mesh.MapMesh
	picker *picker.Picker
	graph  *scene.Graph

	marker   *scene.Node
	selected *hexgrid.Tile

	onTileSelected func(*hexgrid.Tile)
	onLoaded       func()
}

// New selects the mesh variant for the grid's tile count and assembles the
// view. Small maps build one monolithic mesh; larger maps chunk.
func New(cfg Config, grid *hexgrid.TileGrid, at *atlas.Atlas, graph *scene.Graph) *View {
	var m mesh.MapMesh
	if grid.Len() <= cfg.SingleMeshCutoff {
		m = mesh.NewSingleMesh(grid, at, graph)
	} else {
		m = mesh.NewChunkedMesh(grid, at, graph, cfg.ChunkSize, cfg.VisibilityRange)
	}

	return &View{
		grid:   grid,
		mesh:   m,
		picker: picker.New(grid),
		graph:  graph,
		marker: scene.NewNode("selection-marker", nil),
	}
}

// OnTileSelected registers the selection observer. It fires synchronously
// exactly once per Select call. Register before Select; there is no
// replaying of earlier selections.
func (v *View) OnTileSelected(fn func(*hexgrid.Tile)) { v.onTileSelected = fn }

// OnLoaded registers the load observer. It fires exactly once, after
// initial mesh construction completes. Register before Load.
func (v *View) OnLoaded(fn func()) { v.onLoaded = fn }

// Load finishes mesh construction and fires the load observer.
func (v *View) Load(ctx context.Context) error {
	if err := v.mesh.Load(ctx); err != nil {
		return err
	}
	<-v.mesh.Loaded()
	if v.onLoaded != nil {
		fn := v.onLoaded
		v.onLoaded = nil
		fn()
	}
	return nil
}

// Tick drives one frame: the camera pose is passed through to the mesh's
// visibility update. Call at most once per frame.
func (v *View) Tick(pose mesh.CameraPose) {
	v.mesh.UpdateVisibility(pose)
}

// Pick resolves a world point to a tile. Picking alone never changes the
// selection.
func (v *View) Pick(x, y float64) (*hexgrid.Tile, bool) {
	return v.picker.Pick(x, y)
}

// Select moves the selection marker to the tile's world position and
// notifies the observer.
func (v *View) Select(t *hexgrid.Tile) {
	v.selected = t
	v.marker.Position = hexgrid.AxialToWorld(t.Coord.Q, t.Coord.R)
	v.graph.Attach(v.marker)

	slog.Debug("tile selected",
		"q", t.Coord.Q, "r", t.Coord.R,
		"type", hexgrid.TypeName(t.Type),
	)
	if v.onTileSelected != nil {
		v.onTileSelected(t)
	}
}

// Selected returns the currently selected tile, or nil.
func (v *View) Selected() *hexgrid.Tile { return v.selected }

// GetTile delegates to the mesh contract.
func (v *View) GetTile(q, r int) (*hexgrid.Tile, bool) {
	return v.mesh.GetTile(q, r)
}

// UpdateTiles funnels all tile mutation through the mesh so geometry
// rebuilds track the grid.
func (v *View) UpdateTiles(tiles []*hexgrid.Tile) {
	v.mesh.UpdateTiles(tiles)
}

// Mesh exposes the underlying mesh contract.
func (v *View) Mesh() mesh.MapMesh { return v.mesh }
