// File: types.go
// Role: Vertex, Edge, Graph declarations, GraphOption, sentinel errors, NewGraph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex or endpoint ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotIncident indicates Opposite was called with a vertex that is not
	// an endpoint of the given edge.
	ErrNotIncident = errors.New("core: vertex not incident to edge")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph and is the handle
// algorithms key their tables by.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a connection between two vertices.
//
// Each Edge has a generated handle ID, endpoints From→To, and a float64
// Weight payload. Directed mirrors the Graph's directedness at the time
// the edge was added.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost payload carried by the edge.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges added to the Graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// It stores vertices and edges in catalogs keyed by handle, plus a nested
// adjacency index (from → to → edge handles) used for incidence queries.
// Self-loops and parallel edges are always permitted.
// muVert protects the vertex catalog; muEdge protects the edge catalog,
// the adjacency index, and the edge handle counter.
type Graph struct {
	muVert sync.RWMutex // guards vertices
	muEdge sync.RWMutex // guards edges, adjacency, nextEdgeID

	// directed is the directedness applied to every added edge.
	directed bool

	// nextEdgeID is the counter behind generated edge handles ("e1", "e2", …).
	nextEdgeID uint64

	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge

	// adjacency[from][to] = set of edge handles connecting from → to.
	// Undirected edges are mirrored into both orientations; a self-loop
	// occupies the single bucket adjacency[v][v].
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges added to this Graph are directed.
func (g *Graph) Directed() bool { return g.directed }
