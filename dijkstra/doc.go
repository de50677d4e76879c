// Package dijkstra implements Dijkstra's single-source shortest paths over
// a weighted graph.Graph, driven by a Fibonacci heap with real
// decrease-key.
//
// Every vertex owns at most one element in the heap. The first time a
// vertex is reached it is inserted; each later improvement lowers its key
// through the stored fibonacci.Handle instead of pushing a duplicate, so
// the heap never holds more than V elements.
//
// Complexity:
//
//	– Time:  O(E + V log V) amortized (V extract-min, up to E decrease-key).
//	– Space: O(V) for distances, predecessors, handles and heap nodes.
//
// Options:
//
//	– Source(id):               required starting vertex.
//	– WithReturnPath():         also return the predecessor map.
//	– WithMaxDistance(d):       leave vertices farther than d unreached (d ≥ 0).
//	– WithInfEdgeThreshold(t):  treat edges with weight ≥ t as walls (t > 0).
//
// Errors (sentinel):
//
//	– ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound
//	  from Dijkstra, checked in that order.
//	– ErrBadMaxDistance, ErrBadInfThreshold as panics from the options.
//	– ErrVertexNotFound, ErrNoPath from PathTo.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	route, err := dijkstra.PathTo(prev, "A", "D")
//
// Dijkstra reads g under its own locks; mutating g during a run is not
// supported.
package dijkstra
