// Package core_test contains unit tests for the core graph primitives:
// vertex and edge lifecycle, handle generation, the incidence policy for
// directed and undirected graphs, and Opposite resolution.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkan/graphpath/core"
)

// ------------------------------------------------------------------------
// 1. Vertex lifecycle
// ------------------------------------------------------------------------

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // second add is a no-op

	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

func TestVertices_SortedLexicographically(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, g.AddVertex(id))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.Vertices())
}

func TestHasVertex_Missing(t *testing.T) {
	g := core.NewGraph()

	assert.False(t, g.HasVertex("ghost"))
	assert.False(t, g.HasVertex(""))
}

// ------------------------------------------------------------------------
// 2. Edge lifecycle & handles
// ------------------------------------------------------------------------

func TestAddEdge_GeneratesHandlesAndAutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()

	e1, err := g.AddEdge("A", "B", 1.5)
	require.NoError(t, err)
	e2, err := g.AddEdge("B", "C", 2.5)
	require.NoError(t, err)

	assert.Equal(t, "e1", e1)
	assert.Equal(t, "e2", e2)
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("C"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_ParallelEdgesAndSelfLoops(t *testing.T) {
	g := core.NewGraph()

	first, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	second, err := g.AddEdge("A", "B", 2) // parallel edge, always allowed
	require.NoError(t, err)
	loop, err := g.AddEdge("A", "A", 7) // self-loop, always allowed
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 3, g.EdgeCount())

	w, err := g.Weight(loop)
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)
}

func TestWeight_UnknownEdge(t *testing.T) {
	g := core.NewGraph()

	_, err := g.Weight("e99")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	e, err := g.AddEdge("src", "dst", 1)
	require.NoError(t, err)

	from, to, err := g.Endpoints(e)
	require.NoError(t, err)
	assert.Equal(t, "src", from)
	assert.Equal(t, "dst", to)

	_, _, err = g.Endpoints("bogus")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEdges_CreationOrderBeyondSingleDigits(t *testing.T) {
	// Handle ordering must remain creation order once the counter passes
	// "e9" ("e10" sorts after "e9", not between "e1" and "e2").
	g := core.NewGraph()
	want := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		id, err := g.AddEdge("A", "B", float64(i))
		require.NoError(t, err)
		want = append(want, id)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	got := make([]string, 0, 12)
	for _, e := range edges {
		got = append(got, e.ID)
	}
	assert.Equal(t, want, got)
}

// ------------------------------------------------------------------------
// 3. Incidence policy
// ------------------------------------------------------------------------

func TestIncidentEdges_UndirectedIncludesBothDirections(t *testing.T) {
	g := core.NewGraph()
	ab, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	ca, err := g.AddEdge("C", "A", 2)
	require.NoError(t, err)

	incident, err := g.IncidentEdges("A")
	require.NoError(t, err)
	// A sees both the edge it originated and the edge arriving from C.
	assert.Equal(t, []string{ab, ca}, incident)
}

func TestIncidentEdges_DirectedOutgoingOnly(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	ab, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 2) // arrives at A, must not be listed
	require.NoError(t, err)

	incident, err := g.IncidentEdges("A")
	require.NoError(t, err)
	assert.Equal(t, []string{ab}, incident)
}

func TestIncidentEdges_SelfLoopAppearsOnce(t *testing.T) {
	g := core.NewGraph()
	loop, err := g.AddEdge("A", "A", 3)
	require.NoError(t, err)

	incident, err := g.IncidentEdges("A")
	require.NoError(t, err)
	assert.Equal(t, []string{loop}, incident)
}

func TestIncidentEdges_Errors(t *testing.T) {
	g := core.NewGraph()

	_, err := g.IncidentEdges("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.IncidentEdges("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIncidentEdges_IsolatedVertexEmpty(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("lonely"))

	incident, err := g.IncidentEdges("lonely")
	require.NoError(t, err)
	assert.Empty(t, incident)
}

// ------------------------------------------------------------------------
// 4. Opposite resolution
// ------------------------------------------------------------------------

func TestOpposite_BothEndpoints(t *testing.T) {
	g := core.NewGraph()
	e, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	u, err := g.Opposite("A", e)
	require.NoError(t, err)
	assert.Equal(t, "B", u)

	u, err = g.Opposite("B", e)
	require.NoError(t, err)
	assert.Equal(t, "A", u)
}

func TestOpposite_SelfLoopReturnsSameVertex(t *testing.T) {
	g := core.NewGraph()
	loop, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)

	u, err := g.Opposite("A", loop)
	require.NoError(t, err)
	assert.Equal(t, "A", u)
}

func TestOpposite_Errors(t *testing.T) {
	g := core.NewGraph()
	e, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	_, err = g.Opposite("", e)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.Opposite("A", "bogus")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.Opposite("C", e)
	require.ErrorIs(t, err, core.ErrNotIncident)
}
