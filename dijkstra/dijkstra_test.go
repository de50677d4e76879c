package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/dijkstra"
	"github.com/katalvlaran/lvheap/graph"
)

// mustEdge adds an edge or fails the test.
func mustEdge(t *testing.T, g *graph.Graph, from, to string, w int64) {
	t.Helper()
	_, err := g.AddEdge(from, to, w)
	require.NoError(t, err)
}

func triangle(t *testing.T) *graph.Graph {
	g := graph.NewGraph(graph.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 2)
	mustEdge(t, g, "A", "C", 5)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_ValidationOrder(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(graph.NewGraph(graph.WithWeighted()))
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	// Empty source has priority over a nil graph.
	_, _, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(graph.NewGraph(), dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	_, _, err = dijkstra.Dijkstra(graph.NewGraph(graph.WithWeighted()), dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	// Options validate when applied, not when built.
	maxDist := dijkstra.WithMaxDistance(-1)
	infEdge := dijkstra.WithInfEdgeThreshold(0)

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		o := dijkstra.DefaultOptions("A")
		maxDist(&o)
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		o := dijkstra.DefaultOptions("A")
		infEdge(&o)
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _, _ = dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), maxDist)
	})
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
	assert.Nil(t, prev, "prev is nil without WithReturnPath")
}

func TestDijkstra_TriangleWithPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["C"])
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, prev)

	path, err := dijkstra.PathTo(prev, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestDijkstra_Chain(t *testing.T) {
	// A-B-C-D-E
	//         |
	//         F-G
	g := graph.NewGraph(graph.WithWeighted())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"D", "F"}, {"F", "G"}} {
		mustEdge(t, g, e[0], e[1], 1)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5}, dist)

	path, err := dijkstra.PathTo(prev, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "F", "G"}, path)
}

func TestDijkstra_Directed(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := graph.NewGraph(graph.WithDirected(true), graph.WithWeighted())
	mustEdge(t, g, "A", "B", 2)
	mustEdge(t, g, "A", "C", 1)
	mustEdge(t, g, "C", "B", 1)
	mustEdge(t, g, "B", "D", 3)
	mustEdge(t, g, "C", "D", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["C"])
	assert.Equal(t, int64(2), dist["B"])
	assert.Equal(t, int64(5), dist["D"])

	// Nothing points back into A.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("D"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["A"])
}

// TestDijkstra_DecreaseKeyPath forces repeated improvements of one queued
// vertex: T is first reached expensively, then lowered three times.
func TestDijkstra_DecreaseKeyPath(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true), graph.WithWeighted())
	mustEdge(t, g, "S", "T", 100)
	mustEdge(t, g, "S", "a", 1)
	mustEdge(t, g, "a", "T", 50)
	mustEdge(t, g, "a", "b", 1)
	mustEdge(t, g, "b", "T", 20)
	mustEdge(t, g, "b", "c", 1)
	mustEdge(t, g, "c", "T", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist["T"])

	path, err := dijkstra.PathTo(prev, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "a", "b", "c", "T"}, path)
}

// ------------------------------------------------------------------------
// 3. MaxDistance and InfEdgeThreshold
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 1)
	mustEdge(t, g, "C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["C"])
	assert.Equal(t, int64(math.MaxInt64), dist["D"])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["B"])
}

func TestDijkstra_InfThreshold(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted())
	mustEdge(t, g, "A", "B", 2)
	mustEdge(t, g, "B", "C", 4)
	mustEdge(t, g, "A", "C", 10)
	mustEdge(t, g, "C", "D", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), dist["C"])
	assert.Equal(t, int64(math.MaxInt64), dist["D"], "weight 5 is a wall at threshold 5")
}

// ------------------------------------------------------------------------
// 4. Edge cases
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertexAndSelfLoop(t *testing.T) {
	g := graph.NewGraph(graph.WithWeighted(), graph.WithLoops())
	require.NoError(t, g.AddVertex("Solo"))
	mustEdge(t, g, "X", "X", 0)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["Solo"])
	assert.Equal(t, "", prev["Solo"])
	assert.Equal(t, int64(math.MaxInt64), dist["X"])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["X"])
}

func TestPathTo_Errors(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex("Z"))
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	_, err = dijkstra.PathTo(prev, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = dijkstra.PathTo(prev, "A", "missing")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	path, err := dijkstra.PathTo(prev, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

// TestDijkstra_MatchesBellmanFord cross-checks random graphs against a
// plain relaxation loop.
func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		g := graph.NewGraph(graph.WithDirected(round%2 == 0), graph.WithWeighted(), graph.WithMultiEdges(), graph.WithLoops())
		n := 2 + r.Intn(30)
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex("v"+strconv.Itoa(i)))
		}
		for i := 0; i < n*3; i++ {
			mustEdge(t, g, "v"+strconv.Itoa(r.Intn(n)), "v"+strconv.Itoa(r.Intn(n)), int64(r.Intn(20)))
		}

		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("v0"))
		require.NoError(t, err)
		assert.Equal(t, bellmanFord(g, "v0"), dist, "round %d", round)
	}
}

func bellmanFord(g *graph.Graph, src string) map[string]int64 {
	dist := make(map[string]int64)
	for _, v := range g.Vertices() {
		dist[v] = math.MaxInt64
	}
	dist[src] = 0
	edges := g.Edges()
	for i := 0; i < len(dist); i++ {
		for _, e := range edges {
			try := func(u, v string) {
				if dist[u] != math.MaxInt64 && dist[u]+e.Weight < dist[v] {
					dist[v] = dist[u] + e.Weight
				}
			}
			try(e.From, e.To)
			if !e.Directed {
				try(e.To, e.From)
			}
		}
	}

	return dist
}
