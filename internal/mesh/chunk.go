package mesh

import (
	"math"

	"github.com/talgya/hexview/internal/hexgrid"
	"github.com/talgya/hexview/internal/scene"
)

// LoadState tracks a chunk's geometry lifecycle.
type LoadState int

const (
	Unloaded LoadState = iota
	Loading
	Loaded
)

// String returns the state name.
func (s LoadState) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return "invalid"
	}
}

// ChunkCoord indexes a chunk in chunk space.
type ChunkCoord struct {
	X int
	Y int
}

// Bounds is the inclusive axial range a chunk covers.
type Bounds struct {
	MinQ int
	MinR int
	MaxQ int
	MaxR int
}

// Contains reports whether (q, r) falls inside the range.
func (b Bounds) Contains(q, r int) bool {
	return q >= b.MinQ && q <= b.MaxQ && r >= b.MinR && r <= b.MaxR
}

// Chunk is a static partition of the tile grid whose geometry loads and
// unloads as a unit. The coordinate range never changes after construction;
// only the load state and the owned geometry do. All fields are touched
// exclusively from the frame goroutine.
type Chunk struct {
	Coord  ChunkCoord
	Bounds Bounds

	// World-space bounding sphere, derived from the axial range once at
	// construction.
	center hexgrid.WorldPos
	radius float64

	state LoadState
	dirty bool

	// epoch invalidates in-flight builds: it advances on every eviction and
	// dirty reset, and a build result only applies if its epoch still
	// matches.
	epoch   uint64
	pending bool

	node *scene.Node
}

// State returns the chunk's current load state.
func (c *Chunk) State() LoadState { return c.state }

// Node returns the attached scene node, or nil while not Loaded.
func (c *Chunk) Node() *scene.Node { return c.node }

// newChunk derives the world bounding sphere from the four corners of the
// axial range, padded by one hex so edge tiles stay inside it.
func newChunk(coord ChunkCoord, b Bounds) *Chunk {
	corners := [4]hexgrid.WorldPos{
		hexgrid.AxialToWorld(b.MinQ, b.MinR),
		hexgrid.AxialToWorld(b.MaxQ, b.MinR),
		hexgrid.AxialToWorld(b.MinQ, b.MaxR),
		hexgrid.AxialToWorld(b.MaxQ, b.MaxR),
	}

	var center hexgrid.WorldPos
	for _, c := range corners {
		center.X += c.X / 4
		center.Y += c.Y / 4
	}

	radius := 0.0
	for _, c := range corners {
		d := math.Hypot(c.X-center.X, c.Y-center.Y)
		if d > radius {
			radius = d
		}
	}

	return &Chunk{
		Coord:  coord,
		Bounds: b,
		center: center,
		radius: radius + 1.0,
	}
}

// withinRange tests the camera against the chunk's bounding sphere.
func (c *Chunk) withinRange(pose CameraPose, viewRange float64) bool {
	d := math.Hypot(pose.Position.X-c.center.X, pose.Position.Y-c.center.Y)
	return d <= viewRange+c.radius
}
