// Package netflow is an in-memory toolkit for maximum-flow problems over
// directed networks with generic numeric capacities.
//
// 🚀 What is netflow?
//
//	A compact, allocation-friendly library built around one residual
//	network representation and the algorithms that share it:
//		• flow/     — the residual Network, Dinic (default), Edmonds–Karp,
//		              Ford–Fulkerson, min-cut extraction, invariant checking
//		• matching/ — maximum bipartite matching via unit-capacity flow
//		• netbuild/ — deterministic constructors for common topologies
//
// ✨ Why choose netflow?
//
//   - Minimal API – build a Network, AddEdge, FindMaxFlow, read FlowEdges
//   - Generic capacities – any signed integer or float via type parameters
//   - Predictable internals – flat arc pairs, index^1 reverse lookup,
//     current-arc cursors; no maps on the hot path
//   - Verifiable – every solve can be re-checked against the classical
//     flow invariants with Verify, and certified with MinCut
//
// Solvers accept functional options for context cancellation, zap-based
// progress logging, and algorithm selection. See flow's package
// documentation for the full contract, including the overflow
// responsibilities that come with choosing a capacity type.
package netflow
