// Package flow implements maximum-flow computation over an index-based
// residual network with generic numeric capacities. It provides a compact,
// allocation-friendly representation (a flat arc list with paired
// forward/reverse arcs plus per-vertex adjacency) and three interchangeable
// solvers sharing that representation.
//
// The algorithms offered are:
//
//   - Dinic (default)
//
//   - Method: BFS level graph + blocking-flow DFS with current-arc cursors.
//
//   - Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//
//   - Memory: O(V + E).
//
//   - EdmondsKarp
//
//   - Method: BFS for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V·E²) worst case.
//
//   - Memory: O(V + E).
//
//   - FordFulkerson
//
//   - Method: DFS for arbitrary augmenting paths.
//
//   - Time:   O(E·F) on integral networks, F the total flow pushed.
//
//   - Memory: O(V + E).
//
// # Representation
//
// Vertices are integers 1..NumVertices; vertex 0 is reserved. Every
// AddEdge(u, v, c) appends exactly two arcs to one flat list: the forward
// arc (v, c, 0) at an even index e and its reverse companion (u, 0, 0) at
// e+1, so the companion of any arc e is found at e^1 without maps or
// pointers. Both arcs are listed in their owning vertex's adjacency, since
// reverse arcs are traversed during residual search. Parallel edges stay
// distinct.
//
// # Numeric model
//
// Capacities and flows share a generic type T constrained by Flow: signed
// integers or floats (an ordered additive group with zero). Unsigned types
// are rejected at compile time because reverse-arc flow goes negative.
// Choose T wide enough for the sum of all capacities reachable from the
// source — the solvers do not detect overflow, and silent wraparound
// corrupts results without any observable error.
//
// # API
//
// Build, solve, read:
//
//	n, err := flow.NewNetwork[int64](1, 6, 6)
//	_ = n.AddEdge(1, 2, 16)
//	// ... more edges ...
//	total, err := n.FindMaxFlow(math.MaxInt64)
//	edges, err := n.FlowEdges(math.MaxInt64)
//	cut, err := n.MinCut(math.MaxInt64)
//
// FindMaxFlow takes an "infinite" sentinel larger than any feasible flow
// (typically the type's maximum value) plus functional Options:
//
//	WithContext(ctx)            // cancellation, checked at phase boundaries
//	WithLogger(zapLogger)       // Debug-level progress
//	WithAlgorithm(flow.Dinic)   // or EdmondsKarp, FordFulkerson
//
// A Network solves once. FindMaxFlow on a solved network returns the cached
// total; FlowEdges and MinCut are idempotent snapshots; AddEdge after
// solving fails with ErrNetworkSolved. Verify re-checks all flow invariants
// on the final state and is intended for tests and debugging.
//
// # Errors
//
//	ErrVertexRange      - endpoint outside 1..NumVertices (vertex 0 reserved).
//	ErrNegativeCapacity - AddEdge with capacity < 0.
//	ErrNetworkSolved    - AddEdge after FindMaxFlow completed.
//	ErrOptionViolation  - invalid Option value.
//	ErrNotSolved        - Verify before FindMaxFlow.
//	ErrVerify           - a flow invariant failed on a solved network.
//	context.Canceled / context.DeadlineExceeded - via WithContext.
//
// A Network is not safe for concurrent use; solve independent networks on
// independent instances.
package flow
