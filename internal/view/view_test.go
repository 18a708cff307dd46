package view

import (
	"context"
	"testing"

	"github.com/talgya/hexview/internal/atlas"
	"github.com/talgya/hexview/internal/hexgrid"
	"github.com/talgya/hexview/internal/mesh"
	"github.com/talgya/hexview/internal/scene"
)

func testConfig() Config {
	return Config{ChunkSize: 16, VisibilityRange: 50, SingleMeshCutoff: 100}
}

func newTestView(t *testing.T, width, height int) (*View, *scene.Graph) {
	t.Helper()
	tiles := make([]*hexgrid.Tile, 0, width*height)
	for r := 0; r < height; r++ {
		for q := 0; q < width; q++ {
			tiles = append(tiles, &hexgrid.Tile{
				Coord: hexgrid.Axial{Q: q, R: r},
				Type:  hexgrid.TypeGrass,
			})
		}
	}
	grid := hexgrid.NewTileGrid(width, height)
	grid.BulkLoad(tiles, width, height)

	graph, err := scene.NewGraph(scene.AllCapabilities())
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return New(testConfig(), grid, atlas.Builtin(), graph), graph
}

func TestVariantSelectionByTileCount(t *testing.T) {
	small, _ := newTestView(t, 5, 5) // 25 tiles, under the cutoff
	if _, ok := small.Mesh().(*mesh.SingleMesh); !ok {
		t.Fatalf("small map did not select SingleMesh: %T", small.Mesh())
	}

	large, _ := newTestView(t, 20, 20) // 400 tiles, over the cutoff
	if _, ok := large.Mesh().(*mesh.ChunkedMesh); !ok {
		t.Fatalf("large map did not select ChunkedMesh: %T", large.Mesh())
	}
}

func TestOnLoadedFiresExactlyOnce(t *testing.T) {
	v, _ := newTestView(t, 5, 5)
	fired := 0
	v.OnLoaded(func() { fired++ })

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if fired != 1 {
		t.Fatalf("OnLoaded fired %d times, want 1", fired)
	}
}

func TestSelectNotifiesObserverOncePerCall(t *testing.T) {
	v, graph := newTestView(t, 5, 5)
	var got []*hexgrid.Tile
	v.OnTileSelected(func(tile *hexgrid.Tile) { got = append(got, tile) })

	tile, ok := v.GetTile(2, 2)
	if !ok {
		t.Fatalf("missing setup tile")
	}

	v.Select(tile)
	v.Select(tile)
	if len(got) != 2 || got[0] != tile || got[1] != tile {
		t.Fatalf("observer calls = %d, want one per Select", len(got))
	}
	if v.Selected() != tile {
		t.Fatalf("Selected() = %+v", v.Selected())
	}
	if graph.Len() == 0 {
		t.Fatalf("selection marker not attached")
	}

	want := hexgrid.AxialToWorld(2, 2)
	if v.marker.Position != want {
		t.Fatalf("marker at %+v, want %+v", v.marker.Position, want)
	}
}

func TestPickDoesNotChangeSelection(t *testing.T) {
	v, _ := newTestView(t, 5, 5)

	w := hexgrid.AxialToWorld(1, 1)
	tile, ok := v.Pick(w.X, w.Y)
	if !ok || tile.Coord != (hexgrid.Axial{Q: 1, R: 1}) {
		t.Fatalf("Pick resolved %+v, %v", tile, ok)
	}
	if v.Selected() != nil {
		t.Fatalf("pick mutated selection state")
	}
}

func TestViewUpdateTilesReachGrid(t *testing.T) {
	v, _ := newTestView(t, 5, 5)
	v.UpdateTiles([]*hexgrid.Tile{{
		Coord: hexgrid.Axial{Q: 0, R: 0},
		Type:  hexgrid.TypeSnow,
	}})
	tile, ok := v.GetTile(0, 0)
	if !ok || tile.Type != hexgrid.TypeSnow {
		t.Fatalf("update did not reach the grid: %+v", tile)
	}
}
