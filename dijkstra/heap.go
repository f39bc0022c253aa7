// File: heap.go
// Role: Indexed min-heap frontier with O(log V) decrease-key.
//
// The frontier holds every not-yet-finalized vertex exactly once, keyed by
// its live tentative distance. Each item records its slice position, so a
// relaxation can lower an item's key in place and restore heap order with
// heap.Fix — no remove+reinsert, no stale duplicates.
package dijkstra

import "container/heap"

// frontierItem is one frontier entry: a vertex handle, its current
// tentative distance, and its position in the heap slice.
type frontierItem struct {
	vertex string
	key    float64
	index  int
}

// itemHeap implements heap.Interface over frontier items, ordered by key
// ascending. Swap keeps each item's index current.
type itemHeap []*frontierItem

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return h[i].key < h[j].key }

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// frontier is the set of not-yet-finalized vertices ordered by tentative
// distance, with by-vertex lookup for decrease-key.
type frontier struct {
	heap     itemHeap
	byVertex map[string]*frontierItem
}

// newFrontier builds a frontier holding every vertex in vertices with the
// given initial keys, and establishes the heap invariant in O(V).
func newFrontier(vertices []string, key map[string]float64) *frontier {
	f := &frontier{
		heap:     make(itemHeap, 0, len(vertices)),
		byVertex: make(map[string]*frontierItem, len(vertices)),
	}
	for _, v := range vertices {
		item := &frontierItem{vertex: v, key: key[v], index: len(f.heap)}
		f.heap = append(f.heap, item)
		f.byVertex[v] = item
	}
	heap.Init(&f.heap)

	return f
}

// Len returns the number of vertices still on the frontier.
func (f *frontier) Len() int { return len(f.heap) }

// Contains reports whether vertex v is still on the frontier.
func (f *frontier) Contains(v string) bool {
	_, ok := f.byVertex[v]

	return ok
}

// Pop removes and returns the vertex with the minimum tentative distance.
// Ties are broken arbitrarily. Caller must ensure the frontier is non-empty.
func (f *frontier) Pop() (string, float64) {
	item := heap.Pop(&f.heap).(*frontierItem)
	delete(f.byVertex, item.vertex)

	return item.vertex, item.key
}

// DecreaseKey lowers vertex v's tentative distance to key and restores
// heap order in O(log V). Caller must ensure v is on the frontier and key
// does not exceed v's current key.
func (f *frontier) DecreaseKey(v string, key float64) {
	item := f.byVertex[v]
	item.key = key
	heap.Fix(&f.heap, item.index)
}
