package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/graph"
	"github.com/katalvlaran/lvheap/prim_kruskal"
)

// buildTriangle returns A-B(1), B-C(2), A-C(3); its MST is {A-B, B-C}.
func buildTriangle() *graph.Graph {
	g := graph.NewGraph(graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildMediumGraph creates a connected graph of n vertices: a chain
// V0-…-V(n-1) with weights in [1,10], then random extra edges with weights
// in [1,100] until edgesCount edges exist. The seed is fixed.
func buildMediumGraph(n, edgesCount int) *graph.Graph {
	g := graph.NewGraph(graph.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1+r.Intn(10)))
	}
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		// Duplicates fail with ErrMultiEdgeNotAllowed and are retried.
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(1+r.Intn(100))); err == nil {
			added++
		}
	}

	return g
}

// edgeNames returns "u-v" keys with endpoints sorted.
func edgeNames(edges []graph.Edge) map[string]bool {
	names := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[u+"-"+v] = true
	}

	return names
}

func TestValidation_EmptyGraph(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted())

	edgesP, totalP, errP := prim_kruskal.Prim(g, "A")
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)

	edgesK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
}

func TestValidation_UnweightedOrDirected(t *testing.T) {
	for name, g := range map[string]*graph.Graph{
		"nil":        nil,
		"unweighted": graph.NewGraph(),
		"directed":   graph.NewGraph(graph.WithDirected(true), graph.WithWeighted()),
	} {
		_, _, errK := prim_kruskal.Kruskal(g)
		assert.ErrorIs(t, errK, prim_kruskal.ErrInvalidGraph, name)
		_, _, errP := prim_kruskal.Prim(g, "A")
		assert.ErrorIs(t, errP, prim_kruskal.ErrInvalidGraph, name)
	}
}

func TestValidation_Root(t *testing.T) {
	g := buildTriangle()

	_, _, err := prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(g, "Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestPrim_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Prim(buildTriangle(), "A")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, mst, 2)
	names := edgeNames(mst)
	assert.True(t, names["A-B"], "edge A-B must be in MST")
	assert.True(t, names["B-C"], "edge B-C must be in MST")
}

func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, mst, 2)
	assert.Equal(t, "e1", mst[0].ID)
	assert.Equal(t, "e2", mst[1].ID)
}

// TestPrim_LowersKey routes C first through a heavy edge from A, then
// through a lighter edge out of B, which must replace it.
func TestPrim_LowersKey(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted())
	_, _ = g.AddEdge("A", "C", 9)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 4)
	_, _ = g.AddEdge("A", "D", 7)

	mst, total, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, map[string]bool{"A-B": true, "B-C": true, "C-D": true}, edgeNames(mst))
}

func TestSingleVertexGraph(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted())
	require.NoError(t, g.AddVertex("X"))

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(g, "X")
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)

	_, _, errP = prim_kruskal.Prim(g, "Y")
	assert.ErrorIs(t, errP, graph.ErrVertexNotFound)
}

func TestTwoIsolatedVertices(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted())
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")

	_, _, errK := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
	_, _, errP := prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

func TestParallelEdgesAndLoops(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted(), graph.WithMultiEdges(), graph.WithLoops())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	require.NoError(t, errK)
	assert.Equal(t, int64(1), totalK)
	require.Len(t, mstK, 1)
	assert.Equal(t, "e2", mstK[0].ID)

	mstP, totalP, errP := prim_kruskal.Prim(g, "A")
	require.NoError(t, errP)
	assert.Equal(t, int64(1), totalP)
	require.Len(t, mstP, 1)
	assert.Equal(t, "e2", mstP[0].ID)
}

func TestCompute(t *testing.T) {
	g := buildTriangle()

	_, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("C"))
	_, total, err = prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestComparison_MediumGraph checks that both algorithms agree on total
// weight and size over several random graphs.
func TestComparison_MediumGraph(t *testing.T) {
	for _, size := range [][2]int{{10, 20}, {50, 200}, {200, 600}} {
		g := buildMediumGraph(size[0], size[1])

		mstK, totalK, errK := prim_kruskal.Kruskal(g)
		require.NoError(t, errK)
		assert.Len(t, mstK, size[0]-1)

		mstP, totalP, errP := prim_kruskal.Prim(g, "V0")
		require.NoError(t, errP)
		assert.Len(t, mstP, size[0]-1)

		assert.Equal(t, totalK, totalP, "size %v", size)
	}
}
