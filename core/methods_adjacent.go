// File: methods_adjacent.go
// Role: Incidence queries (IncidentEdges, Opposite).
//
// Neighborhood policy:
//   - Directed graph: IncidentEdges(v) yields outgoing edges only (From == v).
//   - Undirected graph: IncidentEdges(v) yields every incident edge once;
//     a self-loop appears once.
//
// Determinism:
//   - IncidentEdges() returns handles sorted in creation order.
package core

import "sort"

// IncidentEdges returns the handles of all edges incident to the given
// vertex under the graph's neighborhood policy, sorted in creation order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) IncidentEdges(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdge.RLock()
	var out []string
	for _, set := range g.adjacency[id] {
		for eid := range set {
			out = append(out, eid)
		}
	}
	g.muEdge.RUnlock()

	sort.Slice(out, func(i, j int) bool { return handleLess(out[i], out[j]) })

	return out, nil
}

// Opposite resolves the endpoint of edge e other than vertex v.
// For a self-loop, Opposite returns v itself.
//
// Errors:
//   - ErrEmptyVertexID: if v == "".
//   - ErrEdgeNotFound: if the edge does not exist.
//   - ErrNotIncident: if v is not an endpoint of e.
//
// Complexity: O(1)
func (g *Graph) Opposite(v, e string) (string, error) {
	if v == "" {
		return "", ErrEmptyVertexID
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	edge, ok := g.edges[e]
	if !ok {
		return "", ErrEdgeNotFound
	}

	switch v {
	case edge.From:
		return edge.To, nil
	case edge.To:
		return edge.From, nil
	default:
		return "", ErrNotIncident
	}
}
