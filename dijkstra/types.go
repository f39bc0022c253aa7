// File: types.go
// Role: Graph/WeightFunc capabilities, sentinel errors, lifecycle states.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Engine.
var (
	// ErrNilGraph indicates that a nil Graph was passed to a constructor.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeightFunc indicates that a nil WeightFunc was passed to New.
	ErrNilWeightFunc = errors.New("dijkstra: weight function is nil")

	// ErrVertexNotFound indicates that a source, target, or queried vertex
	// does not belong to the graph's vertex set.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNotInitialized indicates that Run or RunTo was called on an Engine
	// that is not in the Initialized state. Init must precede every run.
	ErrNotInitialized = errors.New("dijkstra: engine not initialized")

	// ErrNotCompleted indicates that a query accessor was called before a
	// run completed. Queries on a freshly initialized Engine would observe
	// meaningless sentinel values, so they fail loudly instead.
	ErrNotCompleted = errors.New("dijkstra: run not completed")

	// ErrNotFinalized indicates that a query named a vertex that was never
	// removed from the frontier, because RunTo exited early at its target.
	// The vertex's tentative distance and predecessor are not meaningful.
	ErrNotFinalized = errors.New("dijkstra: vertex not finalized by this run")

	// ErrNegativeWeight indicates that a negative edge weight was read
	// during relaxation. Dijkstra's greedy finalization is only correct for
	// non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Graph is the capability the Engine needs from a graph representation.
//
// Vertex and edge handles are opaque strings: the Engine receives them,
// keys its tables by them, and hands them back — it never constructs or
// interprets them. core.Graph satisfies this interface; any representation
// with the same shape plugs in.
type Graph interface {
	// Vertices enumerates every vertex handle in the graph.
	Vertices() []string

	// HasVertex reports whether the vertex handle belongs to the graph.
	HasVertex(v string) bool

	// IncidentEdges returns the handles of the edges leaving v. For a
	// directed graph these are the outgoing edges only; for an undirected
	// graph, every incident edge (a self-loop once).
	IncidentEdges(v string) ([]string, error)

	// Opposite resolves the endpoint of edge e other than v. For a
	// self-loop it returns v itself.
	Opposite(v, e string) (string, error)
}

// WeightFunc maps an edge handle to its non-negative weight. It must be
// pure: side-effect-free and stable for the duration of a run. The Engine
// calls it once per relaxation attempt per edge traversal.
type WeightFunc func(e string) (float64, error)

// WeightedGraph is a Graph whose edges carry their weight as a payload.
// It backs the one-argument constructor NewWeighted, which binds the
// Engine's WeightFunc to the Weight accessor.
type WeightedGraph interface {
	Graph

	// Weight returns the weight payload carried by edge e.
	Weight(e string) (float64, error)
}

// engineState tracks the Engine lifecycle:
// stateUninitialized → stateInitialized → stateCompleted.
type engineState int

const (
	stateUninitialized engineState = iota
	stateInitialized
	stateCompleted
)

// Unreachable is the distance sentinel for vertices with no finite
// shortest-path distance: positive infinity.
func Unreachable() float64 { return math.Inf(1) }

// IsUnreachable reports whether d is the infinite distance sentinel.
// Always test distances with this predicate rather than comparing against
// a large constant.
func IsUnreachable(d float64) bool { return math.IsInf(d, 1) }
