// Package core defines the central Graph, Vertex, and Edge types used
// across graphpath, and provides thread-safe primitives for building and
// querying weighted graphs.
//
// Handles, not objects:
//
//	Vertices and edges are addressed by opaque string handles. Vertex IDs
//	are chosen by the caller; edge IDs are generated by the Graph ("e1",
//	"e2", …) and returned from AddEdge. Algorithms receive handles, compare
//	them by identity, and resolve them through the Graph — they never
//	construct or interpret them.
//
// Capability surface:
//
//	– Vertices() / HasVertex()       — vertex enumeration and membership.
//	– IncidentEdges(v)               — edges leaving v (directed graphs
//	                                   yield outgoing edges only; undirected
//	                                   graphs yield every incident edge,
//	                                   self-loops once).
//	– Opposite(v, e)                 — the endpoint of e other than v; for
//	                                   a self-loop, v itself.
//	– Weight(e)                      — the weight payload carried by e.
//
//	Together these satisfy dijkstra.WeightedGraph, so a core.Graph plugs
//	straight into the shortest-path engine.
//
// Semantics:
//
//	– Self-loops and parallel edges are always permitted.
//	– Edge weights are float64 payloads; core does not constrain their
//	  sign (algorithms that require non-negative weights enforce that
//	  themselves).
//	– Enumeration is deterministic: Vertices() sorts IDs lexicographically,
//	  IncidentEdges() and Edges() sort by edge handle in creation order.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Vertex and edge catalogs are
//	guarded by separate sync.RWMutex locks, so concurrent readers do not
//	contend with each other.
//
// Errors (sentinel):
//
//	– ErrEmptyVertexID if a vertex or endpoint ID is the empty string.
//	– ErrVertexNotFound if an operation references an unknown vertex.
//	– ErrEdgeNotFound if an operation references an unknown edge.
//	– ErrNotIncident if Opposite is asked about a vertex that is not an
//	  endpoint of the edge.
package core
