package mesh

import (
	"context"
	"testing"

	"github.com/talgya/hexview/internal/atlas"
	"github.com/talgya/hexview/internal/hexgrid"
)

func newTestSingle(t *testing.T) (*SingleMesh, *hexgrid.TileGrid) {
	t.Helper()
	grid := fillGrid(t, 8, 8)
	m := NewSingleMesh(grid, atlas.Builtin(), newTestGraph(t))
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m, grid
}

func TestSingleMeshBuildsWholeMap(t *testing.T) {
	m, grid := newTestSingle(t)

	pose := CameraPose{}
	m.UpdateVisibility(pose)
	m.WaitIdle()
	m.UpdateVisibility(pose)

	node := m.Node()
	if node == nil {
		t.Fatalf("no geometry attached after build")
	}
	if len(node.Geometry.Sources) != grid.Len() {
		t.Fatalf("geometry sourced from %d tiles, want %d",
			len(node.Geometry.Sources), grid.Len())
	}
}

func TestSingleMeshRebuildOnUpdate(t *testing.T) {
	m, _ := newTestSingle(t)

	pose := CameraPose{}
	m.UpdateVisibility(pose)
	m.WaitIdle()
	m.UpdateVisibility(pose)
	old := m.Node()

	m.UpdateTiles([]*hexgrid.Tile{{
		Coord: hexgrid.Axial{Q: 4, R: 4},
		Type:  hexgrid.TypeRock,
	}})

	m.UpdateVisibility(pose)
	if !old.Geometry.Released() {
		t.Fatalf("stale geometry kept alive through rebuild")
	}
	m.WaitIdle()
	m.UpdateVisibility(pose)

	node := m.Node()
	if node == nil || node == old {
		t.Fatalf("mesh was not rebuilt")
	}
	for _, src := range node.Geometry.Sources {
		if src.Coord == (hexgrid.Axial{Q: 4, R: 4}) && src.Type != hexgrid.TypeRock {
			t.Fatalf("rebuilt geometry has stale tile type %v", src.Type)
		}
	}
}

func TestSingleMeshDelegatesLookups(t *testing.T) {
	m, _ := newTestSingle(t)
	if _, ok := m.GetTile(7, 7); !ok {
		t.Fatalf("GetTile missed an existing tile")
	}
	if _, ok := m.GetTile(8, 0); ok {
		t.Fatalf("GetTile returned a tile out of bounds")
	}
}

func TestBuilderGeometryShape(t *testing.T) {
	tiles := []*hexgrid.Tile{
		{Coord: hexgrid.Axial{Q: 0, R: 0}, Type: hexgrid.TypeGrass},
		{Coord: hexgrid.Axial{Q: 1, R: 0}, Type: hexgrid.TypeWater},
	}
	geom := hexBuilder{}.Build(tiles, atlas.Builtin())

	if geom.VertexCount() != len(tiles)*7 {
		t.Fatalf("vertex count %d, want %d", geom.VertexCount(), len(tiles)*7)
	}
	if len(geom.Indices) != len(tiles)*18 {
		t.Fatalf("index count %d, want %d", len(geom.Indices), len(tiles)*18)
	}
	if len(geom.Sources) != len(tiles) {
		t.Fatalf("source count %d, want %d", len(geom.Sources), len(tiles))
	}
	for _, idx := range geom.Indices {
		if int(idx) >= geom.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
}
