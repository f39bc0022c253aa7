// Package dijkstra implements single-source shortest paths over weighted
// graphs with non-negative edge weights, using Dijkstra's algorithm.
//
// The package is built around Engine, a stateful shortest-path computation
// bound to a Graph capability and a weight function. An Engine walks a
// three-stage lifecycle:
//
//	Uninitialized ──Init(source)──▶ Initialized ──Run/RunTo──▶ Completed
//
//	– Uninitialized: only Init is valid.
//	– Initialized:   Run (all vertices) or RunTo (early exit at a target)
//	                 is valid; queries fail with ErrNotCompleted.
//	– Completed:     DistanceTo, PathVertices and PathEdges are valid for
//	                 every finalized vertex.
//
// Calling Init again starts a fresh run on the same Engine, discarding the
// previous run's results.
//
// The engine never inspects vertices or edges beyond comparing their
// handles: it enumerates vertices, asks the graph for the edges incident
// to a vertex, resolves the far endpoint of an edge with Opposite, and
// reads weights through the injected WeightFunc. Any representation that
// answers those questions can be searched; core.Graph is the in-repo one.
//
// Frontier:
//
//	The not-yet-finalized vertices live in an indexed binary min-heap keyed
//	by the live tentative distance. Relaxation updates a vertex's key in
//	place (decrease-key via position tracking + heap.Fix, O(log V)), so the
//	frontier never holds stale duplicate entries.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is extracted from the frontier exactly once (V pops).
//	   • Each edge relaxation performs at most one decrease-key (E fixes).
//	   • Each heap operation costs O(log V).
//	– Space: O(V)
//	   • Distance, predecessor and frontier tables hold one entry per vertex.
//
// Distances:
//
//	Distances are float64. A vertex with no finite distance carries the
//	sentinel math.Inf(1); test it with IsUnreachable, never by comparing
//	against an arbitrary large constant. Infinity absorbs addition, so
//	relaxation through an unreached vertex can never win.
//
// Weights:
//
//	Correctness requires weight(e) ≥ 0 for every edge. Negative weights
//	violate the greedy finalization invariant; the engine surfaces any
//	negative weight it actually reads as ErrNegativeWeight, but edges it
//	never relaxes are not inspected.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the Engine is constructed with a nil graph.
//	– ErrNilWeightFunc  if the Engine is constructed with a nil weight func.
//	– ErrVertexNotFound if a source, target, or queried vertex is foreign
//	                    to the graph.
//	– ErrNotInitialized if Run/RunTo is called outside Initialized.
//	– ErrNotCompleted   if a query runs before Run/RunTo has completed.
//	– ErrNotFinalized   if a query names a vertex an early-exited run left
//	                    on the frontier.
//	– ErrNegativeWeight if a negative edge weight is read during relaxation.
//
// Example usage:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//
//	eng, err := dijkstra.NewWeighted(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err = eng.Init("A"); err != nil {
//	    log.Fatal(err)
//	}
//	if err = eng.Run(); err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := eng.DistanceTo("C") // 3
//
// Concurrency: an Engine owns mutable per-run tables and is not safe for
// concurrent use without external locking. Independent computations should
// use independent Engine instances; the graph itself is only read.
package dijkstra
