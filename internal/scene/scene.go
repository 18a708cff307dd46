// Package scene is the boundary to the render collaborator: a flat graph of
// geometry-bearing nodes that the mesh layer attaches and detaches as chunks
// load and unload. The real renderer consumes the same contract.
package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/talgya/hexview/internal/hexgrid"
)

// ErrUnsupported is returned when a required rendering capability is missing
// at startup. Construction aborts; there is no degraded mode.
var ErrUnsupported = errors.New("required rendering capability missing")

// Capabilities describes what the host renderer can do. Both capabilities
// are required for hex map rendering.
type Capabilities struct {
	IndexedMeshes  bool
	TextureAtlases bool
}

// AllCapabilities reports a fully capable environment (the in-memory graph,
// tests, and the demo driver).
func AllCapabilities() Capabilities {
	return Capabilities{IndexedMeshes: true, TextureAtlases: true}
}

// Node is a positioned geometry holder in the graph. The geometry is owned
// by whoever attached the node and is released when that owner evicts it.
type Node struct {
	ID       uuid.UUID
	Name     string
	Position hexgrid.WorldPos
	Geometry *Geometry
}

// NewNode creates a node with a fresh identifier.
func NewNode(name string, geom *Geometry) *Node {
	return &Node{ID: uuid.New(), Name: name, Geometry: geom}
}

// Graph holds the currently attached nodes keyed by node ID.
type Graph struct {
	mu    sync.Mutex
	nodes map[uuid.UUID]*Node
}

// NewGraph validates the environment and creates an empty graph. A missing
// capability fails construction immediately.
func NewGraph(caps Capabilities) (*Graph, error) {
	if !caps.IndexedMeshes {
		return nil, fmt.Errorf("scene: indexed meshes: %w", ErrUnsupported)
	}
	if !caps.TextureAtlases {
		return nil, fmt.Errorf("scene: texture atlases: %w", ErrUnsupported)
	}
	return &Graph{nodes: make(map[uuid.UUID]*Node)}, nil
}

// Attach adds a node to the graph. Attaching an already-attached node is a
// no-op.
func (g *Graph) Attach(n *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[n.ID] = n
}

// Detach removes a node from the graph. Detaching an absent node is a no-op.
func (g *Graph) Detach(n *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.nodes, n.ID)
}

// Contains reports whether the node is currently attached.
func (g *Graph) Contains(n *Node) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.nodes[n.ID]
	return ok
}

// Len returns the number of attached nodes.
func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes)
}
