// File: dijkstra.go
// Role: The shortest-path Engine: constructors, Init, Run/RunTo, queries.
package dijkstra

import "fmt"

// Engine computes single-source shortest paths over a Graph with
// non-negative edge weights.
//
// An Engine owns the mutable per-run tables (distances, predecessors,
// frontier) and walks the Uninitialized → Initialized → Completed
// lifecycle described in the package documentation. It is not safe for
// concurrent use; run independent computations on independent Engines.
type Engine struct {
	g      Graph      // injected graph capability; read-only here
	weight WeightFunc // injected edge-weight capability

	state  engineState
	source string

	dist      map[string]float64 // vertex → tentative/final distance from source
	prev      map[string]string  // vertex → incoming edge on the shortest-path tree ("" = none)
	finalized map[string]bool    // vertex → removed from the frontier this run
	frontier  *frontier          // not-yet-finalized vertices, keyed by dist
}

// New creates an Engine over g using w to read edge weights.
// The Engine starts Uninitialized; call Init before running.
//
// Errors:
//   - ErrNilGraph: if g is nil.
//   - ErrNilWeightFunc: if w is nil.
func New(g Graph, w WeightFunc) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeightFunc
	}

	return &Engine{g: g, weight: w}, nil
}

// NewWeighted creates an Engine over a graph whose edges carry their
// weight as a payload, binding the weight function to g.Weight.
//
// Errors:
//   - ErrNilGraph: if g is nil.
func NewWeighted(g WeightedGraph) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return New(g, g.Weight)
}

// Init prepares a fresh run from the given source vertex.
//
// Every vertex known to the graph gets the infinite distance sentinel and
// no predecessor, the source's distance is set to zero, and the frontier
// is populated with the entire vertex set. Any prior run's results are
// discarded; calling Init on a used Engine is the supported way to reuse it.
//
// Errors:
//   - ErrVertexNotFound: if source does not belong to the graph.
//
// Complexity: O(V)
func (eng *Engine) Init(source string) error {
	if !eng.g.HasVertex(source) {
		return fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	vertices := eng.g.Vertices()
	eng.dist = make(map[string]float64, len(vertices))
	eng.prev = make(map[string]string, len(vertices))
	eng.finalized = make(map[string]bool, len(vertices))
	for _, v := range vertices {
		eng.dist[v] = Unreachable()
		eng.prev[v] = ""
	}
	eng.dist[source] = 0

	eng.frontier = newFrontier(vertices, eng.dist)
	eng.source = source
	eng.state = stateInitialized

	return nil
}

// Run computes shortest paths from the source to all vertices.
// Requires Init to have been called first.
//
// Errors:
//   - ErrNotInitialized: if the Engine is not in the Initialized state.
//   - ErrNegativeWeight: if a relaxed edge has negative weight.
//
// Complexity: O((V+E) log V)
func (eng *Engine) Run() error {
	return eng.run("")
}

// RunTo computes the shortest path from the source to target, stopping as
// soon as target is finalized. Requires Init to have been called first.
//
// target's distance and path are identical to what a full Run would
// report, but vertices still on the frontier when the run stops keep
// their sentinel values and answer queries with ErrNotFinalized.
//
// Errors:
//   - ErrNotInitialized: if the Engine is not in the Initialized state.
//   - ErrVertexNotFound: if target does not belong to the graph.
//   - ErrNegativeWeight: if a relaxed edge has negative weight.
//
// Complexity: O((V+E) log V); typically less when target is near the source.
func (eng *Engine) RunTo(target string) error {
	if !eng.g.HasVertex(target) {
		return fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	return eng.run(target)
}

// run is the greedy main loop: pop the minimum-distance vertex, finalize
// it, and relax its incident edges until the frontier drains or the target
// is reached.
//
// The early exit fires after the popped vertex is finalized but before its
// edges are relaxed: the target's own distance and predecessor are already
// final at that point, and its outgoing edges can no longer improve it.
// The placement is intentional.
func (eng *Engine) run(target string) error {
	if eng.state != stateInitialized {
		return ErrNotInitialized
	}

	for eng.frontier.Len() > 0 {
		v, d := eng.frontier.Pop()
		eng.finalized[v] = true

		if target != "" && v == target {
			break
		}

		if err := eng.relax(v, d); err != nil {
			// Tables are part-mutated; force a fresh Init before reuse.
			eng.state = stateUninitialized

			return err
		}
	}

	eng.state = stateCompleted

	return nil
}

// relax attempts to improve the tentative distance of every vertex
// adjacent to v, where d is v's final distance.
//
// When v is unreachable, d is infinite and no candidate can win; its edges
// relax as no-ops like any others.
func (eng *Engine) relax(v string, d float64) error {
	edges, err := eng.g.IncidentEdges(v)
	if err != nil {
		return fmt.Errorf("dijkstra: incident edges of %q: %w", v, err)
	}

	for _, e := range edges {
		u, err := eng.g.Opposite(v, e)
		if err != nil {
			return fmt.Errorf("dijkstra: opposite of %q across %q: %w", v, e, err)
		}

		w, err := eng.weight(e)
		if err != nil {
			return fmt.Errorf("dijkstra: weight of edge %q: %w", e, err)
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %q weight=%v", ErrNegativeWeight, e, w)
		}

		// A finalized u cannot be improved under non-negative weights;
		// skipping it also keeps decrease-key targets on the frontier.
		if !eng.frontier.Contains(u) {
			continue
		}

		if candidate := d + w; candidate < eng.dist[u] {
			eng.dist[u] = candidate
			eng.prev[u] = e
			eng.frontier.DecreaseKey(u, candidate)
		}
	}

	return nil
}

// DistanceTo returns the shortest-path distance from the source to f, or
// the infinite sentinel (see IsUnreachable) if f is unreachable.
// Requires Run or RunTo to have completed with f finalized.
//
// Errors:
//   - ErrNotCompleted: if no run has completed on this Engine.
//   - ErrVertexNotFound: if f was not a graph vertex at Init time.
//   - ErrNotFinalized: if an early-exited run left f on the frontier.
//
// Complexity: O(1)
func (eng *Engine) DistanceTo(f string) (float64, error) {
	if err := eng.checkQueryable(f); err != nil {
		return 0, err
	}

	return eng.dist[f], nil
}

// PathVertices returns the vertices on the shortest path from the source
// to f, in source-to-f order. For f == source the result is just the
// source; for an unreachable f it is just f (the backward walk terminates
// immediately). Requires Run or RunTo to have completed with f finalized.
//
// The path is recomputed from the predecessor table on every call.
//
// Errors: as for DistanceTo.
//
// Complexity: O(L), where L is the path length.
func (eng *Engine) PathVertices(f string) ([]string, error) {
	if err := eng.checkQueryable(f); err != nil {
		return nil, err
	}

	vertices := []string{f}
	current := f
	for eng.prev[current] != "" {
		e := eng.prev[current]
		u, err := eng.g.Opposite(current, e)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: opposite of %q across %q: %w", current, e, err)
		}
		vertices = append(vertices, u)
		current = u
	}
	reverse(vertices)

	return vertices, nil
}

// PathEdges returns the edges on the shortest path from the source to f,
// in source-to-f order. For f == source or an unreachable f the result is
// empty. Requires Run or RunTo to have completed with f finalized.
//
// Errors: as for DistanceTo.
//
// Complexity: O(L), where L is the path length.
func (eng *Engine) PathEdges(f string) ([]string, error) {
	if err := eng.checkQueryable(f); err != nil {
		return nil, err
	}

	var edges []string
	current := f
	for eng.prev[current] != "" {
		e := eng.prev[current]
		u, err := eng.g.Opposite(current, e)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: opposite of %q across %q: %w", current, e, err)
		}
		edges = append(edges, e)
		current = u
	}
	reverse(edges)

	return edges, nil
}

// Source returns the source vertex of the current run, or "" before Init.
func (eng *Engine) Source() string { return eng.source }

// checkQueryable guards the query accessors: the run must have completed
// and f must be a finalized vertex of this run.
func (eng *Engine) checkQueryable(f string) error {
	if eng.state != stateCompleted {
		return ErrNotCompleted
	}
	if _, ok := eng.dist[f]; !ok {
		return fmt.Errorf("%w: vertex %q", ErrVertexNotFound, f)
	}
	if !eng.finalized[f] {
		return fmt.Errorf("%w: vertex %q", ErrNotFinalized, f)
	}

	return nil
}

// reverse flips s in place.
func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
