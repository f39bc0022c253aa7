// File: methods_edges.go
// Role: Edge lifecycle & queries (AddEdge, Edges, Weight, Endpoints).
//
// Determinism:
//   - Edge handles are generated in creation order ("e1", "e2", …).
//   - Edges() returns edges sorted by handle in creation order.
//
// Concurrency:
//   - Edge catalog, adjacency index and handle counter protected by muEdge.
package core

import (
	"sort"
	"strconv"
)

// AddEdge creates an edge from → to carrying the given weight payload and
// returns its generated handle.
//
// Missing endpoints are added automatically. Self-loops (from == to) and
// parallel edges between the same endpoints are always permitted. The edge
// inherits the Graph's directedness: in an undirected graph the edge is
// mirrored into both adjacency orientations; in a directed graph only
// from → to is indexed.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint ID is "".
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	g.nextEdgeID++
	id := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	g.edges[id] = &Edge{
		ID:       id,
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}

	g.indexEdge(from, to, id)
	if !g.directed && from != to {
		g.indexEdge(to, from, id)
	}

	return id, nil
}

// indexEdge registers edge id in the adjacency bucket from → to.
// Caller must hold muEdge for writing.
func (g *Graph) indexEdge(from, to, id string) {
	bucket, ok := g.adjacency[from]
	if !ok {
		bucket = make(map[string]map[string]struct{})
		g.adjacency[from] = bucket
	}
	set, ok := bucket[to]
	if !ok {
		set = make(map[string]struct{})
		bucket[to] = set
	}
	set[id] = struct{}{}
}

// HasEdge reports whether the edge with the given handle exists.
// Complexity: O(1)
func (g *Graph) HasEdge(id string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	_, ok := g.edges[id]

	return ok
}

// Edges returns copies of all edges, sorted by handle in creation order.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdge.RUnlock()

	sort.Slice(out, func(i, j int) bool { return handleLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the number of edges in the graph.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// Weight returns the weight payload carried by the edge with the given handle.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
//
// Complexity: O(1)
func (g *Graph) Weight(id string) (float64, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return e.Weight, nil
}

// Endpoints returns the From and To vertex IDs of the edge with the given handle.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
//
// Complexity: O(1)
func (g *Graph) Endpoints(id string) (from, to string, err error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return "", "", ErrEdgeNotFound
	}

	return e.From, e.To, nil
}

// handleLess orders generated edge handles in creation order: shorter
// handles first, then lexicographic. For the "e<n>" format this equals
// numeric order of n.
func handleLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
