// Package lvheap collects mergeable priority queues and the graph
// algorithms that lean on them.
//
// What is in the module?
//
//	• core/         - comparators, the MinQueue interface, shared sentinel errors
//	• binomial/     - binomial trees and the binomial heap (O(log n) merge)
//	• fibonacci/    - Fibonacci heap with handles, decrease-key and delete
//	• graph/        - thread-safe weighted graph used by the algorithms
//	• dijkstra/     - shortest paths driven by Fibonacci decrease-key
//	• prim_kruskal/ - minimum spanning trees (Prim on Fibonacci, Kruskal on binomial)
//	• cmd/lvheap    - command-line front end: sort, path, mst
//
// Heaps are generic over the element type and take a core.Comparator at
// construction; core.Reverse turns any of them into a max-heap:
//
//	h := fibonacci.New(core.Natural[int]())
//	hd := h.Insert(42)
//	_ = h.DecreaseKey(hd, 7)
//	v, _ := h.ExtractMin() // 7
//
// Both heaps satisfy core.MinQueue, so core.Drain and core.Sorted work
// with either. Heaps are not safe for concurrent use; graph.Graph is.
package lvheap
