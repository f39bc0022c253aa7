// Package graphpath is a small toolkit for single-source shortest paths
// over weighted graphs — an in-memory graph you can build in a few lines,
// plus a Dijkstra engine that works against any graph shaped like one.
//
// 🚀 What is graphpath?
//
//	A thread-safe, pure-Go library built from two pieces:
//		• core/     — Graph primitives: opaque vertex & edge handles,
//		              adjacency storage, payload weights, safe mutation
//		• dijkstra/ — the shortest-path engine: initialize, run (to one
//		              target or to all vertices), then query distances
//		              and reconstruct paths
//
// ✨ Why choose graphpath?
//
//   - Minimal API – build a graph, point the engine at a source, query
//   - Pluggable – the engine consumes a three-method Graph capability and
//     a weight function; bring your own representation
//   - Honest contracts – loud sentinel errors instead of silent zeroes,
//     a documented state machine, O((V+E) log V) with a real decrease-key
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
//	From A, the engine reports dist[D]=3 via A→B→D (1+2), not A→C→D (4+1).
//
// Dive into the dijkstra package docs for the full engine contract, and
// into core for the default graph representation.
//
//	go get github.com/velkan/graphpath
package graphpath
