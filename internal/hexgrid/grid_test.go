package hexgrid

import "testing"

func TestGridBounds(t *testing.T) {
	g := NewTileGrid(4, 3)
	g.BulkLoad([]*Tile{
		{Coord: Axial{Q: 0, R: 0}, Type: TypeGrass},
		{Coord: Axial{Q: 3, R: 2}, Type: TypeRock},
	}, 4, 3)

	cases := []struct {
		q, r int
		ok   bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
		{1000, 1000, false},
	}
	for _, tc := range cases {
		tile, ok := g.Get(tc.q, tc.r)
		if ok != tc.ok {
			t.Fatalf("Get(%d,%d) ok = %v, want %v", tc.q, tc.r, ok, tc.ok)
		}
		if !ok && tile != nil {
			t.Fatalf("Get(%d,%d) returned tile on not-found", tc.q, tc.r)
		}
	}

	// In-bounds hole: absent, not an error.
	if _, ok := g.Get(1, 1); ok {
		t.Fatalf("expected sparse hole at (1,1)")
	}
}

func TestBulkLoadAnyOrder(t *testing.T) {
	tiles := []*Tile{
		{Coord: Axial{Q: 2, R: 1}, Type: TypeForest},
		{Coord: Axial{Q: 0, R: 0}, Type: TypeWater},
		{Coord: Axial{Q: 1, R: 2}, Type: TypeSand},
		{Coord: Axial{Q: 9, R: 9}, Type: TypeSnow}, // outside bounds, dropped
	}
	g := NewTileGrid(0, 0)
	g.BulkLoad(tiles, 3, 3)

	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
	tile, ok := g.Get(2, 1)
	if !ok || tile.Type != TypeForest {
		t.Fatalf("tile (2,1) not indexed by its own coordinates")
	}
}

func TestSnapshotRowMajor(t *testing.T) {
	g := NewTileGrid(3, 2)
	g.BulkLoad([]*Tile{
		{Coord: Axial{Q: 2, R: 1}},
		{Coord: Axial{Q: 0, R: 0}},
		{Coord: Axial{Q: 1, R: 0}},
		{Coord: Axial{Q: 0, R: 1}},
	}, 3, 2)

	snap := g.Snapshot()
	want := []Axial{{0, 0}, {1, 0}, {0, 1}, {2, 1}}
	if len(snap) != len(want) {
		t.Fatalf("snapshot length %d, want %d", len(snap), len(want))
	}
	for i, tile := range snap {
		if tile.Coord != want[i] {
			t.Fatalf("snapshot[%d] = %+v, want %+v", i, tile.Coord, want[i])
		}
	}
}

func TestUpdateTilesSilentIgnore(t *testing.T) {
	g := NewTileGrid(2, 2)
	g.BulkLoad([]*Tile{{Coord: Axial{Q: 1, R: 1}, Type: TypeWater}}, 2, 2)

	g.UpdateTiles([]*Tile{
		{Coord: Axial{Q: 1, R: 1}, Type: TypeRock},
		{Coord: Axial{Q: 5, R: 5}, Type: TypeRock}, // out of bounds, ignored
	})

	tile, ok := g.Get(1, 1)
	if !ok || tile.Type != TypeRock {
		t.Fatalf("update not applied at (1,1)")
	}
	if g.Len() != 1 {
		t.Fatalf("out-of-bounds update was stored, Len = %d", g.Len())
	}
}
