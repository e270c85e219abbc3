// Package netbuild provides deterministic constructors for common flow
// network topologies: chains, layered networks, and seeded random sparse
// networks. They back the repository's tests and benchmarks and double as
// ready-made inputs for library users.
//
// All constructors return a fresh, unsolved *flow.Network with source 1
// and sink NumVertices, never touching shared state.
package netbuild

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netflow/flow"
)

// Sentinel errors for constructor parameters.
// Callers should branch with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("netbuild: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("netbuild: probability out of range")
)

// Path builds a chain 1→2→…→length where every hop carries the same
// capacity; its max flow is trivially that capacity. Requires length ≥ 2.
//
// Complexity: O(length).
func Path[T flow.Flow](length int, capacity T) (*flow.Network[T], error) {
	if length < 2 {
		return nil, fmt.Errorf("%w: path length %d < 2", ErrTooFewVertices, length)
	}
	n, err := flow.NewNetwork[T](1, length, length)
	if err != nil {
		return nil, err
	}
	for v := 1; v < length; v++ {
		if err = n.AddEdge(v, v+1, capacity); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Layered builds source → layer₁ → … → layerₖ → sink with a complete set
// of edges between consecutive layers, every edge at the same capacity.
// Its max flow is capacity × min(widths). Requires at least one layer and
// every width ≥ 1.
//
// Vertices are numbered 1 (source), then each layer left to right, then
// the sink last.
//
// Complexity: O(Σ wᵢ·wᵢ₊₁).
func Layered[T flow.Flow](widths []int, capacity T) (*flow.Network[T], error) {
	if len(widths) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrTooFewVertices)
	}
	total := 2
	for _, w := range widths {
		if w < 1 {
			return nil, fmt.Errorf("%w: layer width %d < 1", ErrTooFewVertices, w)
		}
		total += w
	}
	n, err := flow.NewNetwork[T](1, total, total)
	if err != nil {
		return nil, err
	}

	// first[i] is the vertex ID of layer i's first vertex.
	first := make([]int, len(widths))
	next := 2
	for i, w := range widths {
		first[i] = next
		next += w
	}

	for v := 0; v < widths[0]; v++ {
		if err = n.AddEdge(1, first[0]+v, capacity); err != nil {
			return nil, err
		}
	}
	for i := 0; i+1 < len(widths); i++ {
		for u := 0; u < widths[i]; u++ {
			for v := 0; v < widths[i+1]; v++ {
				if err = n.AddEdge(first[i]+u, first[i+1]+v, capacity); err != nil {
					return nil, err
				}
			}
		}
	}
	last := len(widths) - 1
	for v := 0; v < widths[last]; v++ {
		if err = n.AddEdge(first[last]+v, total, capacity); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// RandomSparse builds a network on `vertices` vertices where each ordered
// pair u→v (u ≠ v) receives an edge with probability p, capacities uniform
// in [1, maxCapacity]. The same seed always reproduces the same network.
// Requires vertices ≥ 2, p ∈ [0,1] and maxCapacity ≥ 1.
//
// Complexity: O(vertices²).
func RandomSparse(vertices int, p float64, maxCapacity int64, seed int64) (*flow.Network[int64], error) {
	if vertices < 2 {
		return nil, fmt.Errorf("%w: vertices %d < 2", ErrTooFewVertices, vertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%g", ErrInvalidProbability, p)
	}
	if maxCapacity < 1 {
		return nil, fmt.Errorf("%w: maxCapacity %d < 1", ErrTooFewVertices, maxCapacity)
	}
	n, err := flow.NewNetwork[int64](1, vertices, vertices)
	if err != nil {
		return nil, err
	}

	r := rand.New(rand.NewSource(seed))
	for u := 1; u <= vertices; u++ {
		for v := 1; v <= vertices; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				if err = n.AddEdge(u, v, r.Int63n(maxCapacity)+1); err != nil {
					return nil, err
				}
			}
		}
	}

	return n, nil
}
