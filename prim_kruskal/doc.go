// Package prim_kruskal computes minimum spanning trees of undirected,
// weighted graph.Graph values, using the lvheap heaps as priority queues.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]graph.Edge, int64, error)
//
//   - Strategy: load every non-loop edge into a binomial heap ordered by
//     (weight, creation order), drain it, and accept each edge whose
//     endpoints lie in different disjoint-set components. Stop at |V|−1.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g, root) ([]graph.Edge, int64, error)
//
//   - Strategy: grow one tree from root. Every outside vertex owns a single
//     Fibonacci heap element keyed by its lightest edge into the tree; a
//     lighter offer lowers that key with DecreaseKey.
//
//   - Complexity: O(E + V log V) amortized time, O(V) heap space.
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Error Conditions
//
//	- ErrInvalidGraph:    graph is nil, directed, or unweighted.
//	- ErrDisconnected:    graph is empty or has more than one component.
//	- ErrEmptyRoot:       Prim on a multi-vertex graph with root == "".
//	- graph.ErrVertexNotFound (wrapped): Prim root is not a vertex.
//	- ErrUnknownMethod:   Compute with an unrecognized method.
//
// Both algorithms are deterministic: vertices and edges come from graph
// in sorted order and every heap comparator breaks ties explicitly.
package prim_kruskal
