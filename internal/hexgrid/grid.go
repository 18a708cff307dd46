package hexgrid

// TileType indexes into the texture atlas.
type TileType uint8

const (
	TypeWater TileType = iota
	TypeSand
	TypeGrass
	TypeForest
	TypeRock
	TypeSnow
)

// TypeName returns a human-readable name for a tile type.
func TypeName(t TileType) string {
	switch t {
	case TypeWater:
		return "water"
	case TypeSand:
		return "sand"
	case TypeGrass:
		return "grass"
	case TypeForest:
		return "forest"
	case TypeRock:
		return "rock"
	case TypeSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// Tile is the per-hex payload. Identity is the (q, r) pair; everything else
// may be overwritten through UpdateTiles.
type Tile struct {
	Coord     Axial    `json:"coord"`
	Type      TileType `json:"type"`
	Elevation float64  `json:"elevation"`
}

// TileGrid is the authoritative tile store: a sparse map from axial
// coordinates to tiles with declared rectangular bounds 0 <= q < width,
// 0 <= r < height. Holes inside the bounds are allowed; lookups outside the
// bounds report not-found.
//
// TileGrid is not synchronized. All mutation funnels through BulkLoad and
// UpdateTiles on the frame-update goroutine; readers on the same goroutine
// need no locking.
type TileGrid struct {
	tiles  map[Axial]*Tile
	width  int
	height int
}

// NewTileGrid creates an empty grid with the given bounds.
func NewTileGrid(width, height int) *TileGrid {
	return &TileGrid{
		tiles:  make(map[Axial]*Tile),
		width:  width,
		height: height,
	}
}

// InBounds reports whether (q, r) lies within the declared bounds.
func (g *TileGrid) InBounds(q, r int) bool {
	return q >= 0 && q < g.width && r >= 0 && r < g.height
}

// Get returns the tile at (q, r). Out-of-bounds or absent coordinates
// return (nil, false).
func (g *TileGrid) Get(q, r int) (*Tile, bool) {
	if !g.InBounds(q, r) {
		return nil, false
	}
	t, ok := g.tiles[Axial{Q: q, R: r}]
	return t, ok
}

// BulkLoad replaces the grid contents and bounds. Tiles arrive in any order
// and are indexed by their own coordinates; tiles outside the new bounds are
// dropped.
func (g *TileGrid) BulkLoad(tiles []*Tile, width, height int) {
	g.width = width
	g.height = height
	g.tiles = make(map[Axial]*Tile, len(tiles))
	for _, t := range tiles {
		if !g.InBounds(t.Coord.Q, t.Coord.R) {
			continue
		}
		g.tiles[t.Coord] = t
	}
}

// UpdateTiles overwrites the entry at each tile's own coordinates. Tiles
// whose coordinates fall outside the grid bounds are silently ignored;
// callers must not rely on partial-failure signaling.
func (g *TileGrid) UpdateTiles(tiles []*Tile) {
	for _, t := range tiles {
		if !g.InBounds(t.Coord.Q, t.Coord.R) {
			continue
		}
		g.tiles[t.Coord] = t
	}
}

// Snapshot returns the full tile set in row-major grid-scan order (by r,
// then q), skipping sparse holes. The slice is a point-in-time copy, not a
// live view.
func (g *TileGrid) Snapshot() []*Tile {
	out := make([]*Tile, 0, len(g.tiles))
	for r := 0; r < g.height; r++ {
		for q := 0; q < g.width; q++ {
			if t, ok := g.tiles[Axial{Q: q, R: r}]; ok {
				out = append(out, t)
			}
		}
	}
	return out
}

// Width returns the declared q bound.
func (g *TileGrid) Width() int { return g.width }

// Height returns the declared r bound.
func (g *TileGrid) Height() int { return g.height }

// Len returns the number of stored tiles.
func (g *TileGrid) Len() int { return len(g.tiles) }
