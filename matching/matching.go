// Package matching computes maximum bipartite matchings by reduction to
// unit-capacity maximum flow.
//
// The two vertex groups are numbered independently: left vertices 1..Left,
// right vertices 1..Right. Each candidate Pair connects one left vertex to
// one right vertex; the maximum matching is the largest subset of pairs in
// which no vertex appears twice.
//
// The reduction builds a flow.Network with a super-source feeding every
// left vertex and every right vertex draining into a super-sink, all edges
// at capacity 1, and solves it with Dinic — O(E·√V) on unit-capacity
// networks, the textbook bound for Hopcroft–Karp.
package matching

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netflow/flow"
)

// Sentinel errors for matching input validation.
var (
	// ErrGroupSize is returned when either group size is negative or zero.
	ErrGroupSize = errors.New("matching: group size must be positive")

	// ErrPairRange is returned when a candidate pair references a vertex
	// outside its group's range.
	ErrPairRange = errors.New("matching: pair endpoint out of range")
)

// Pair connects left vertex Left (1..Left group size) to right vertex
// Right (1..Right group size).
type Pair struct {
	Left  int
	Right int
}

// Maximum returns a maximum matching over the candidate pairs as a slice
// of chosen pairs, ordered by left vertex. Duplicate candidates are
// harmless: parallel unit edges can jointly carry at most one unit past
// their shared endpoints.
//
// Options are forwarded to the underlying flow solve (context, logger;
// the algorithm choice is fixed to Dinic).
func Maximum(left, right int, pairs []Pair, opts ...flow.Option) ([]Pair, error) {
	if left < 1 || right < 1 {
		return nil, fmt.Errorf("%w: left %d, right %d", ErrGroupSize, left, right)
	}

	// Vertex layout: 1 = source, 2..left+1 = left group,
	// left+2..left+right+1 = right group, left+right+2 = sink.
	source := 1
	sink := left + right + 2
	n, err := flow.NewNetwork[int](source, sink, sink)
	if err != nil {
		return nil, err
	}
	for l := 1; l <= left; l++ {
		if err = n.AddEdge(source, 1+l, 1); err != nil {
			return nil, err
		}
	}
	for r := 1; r <= right; r++ {
		if err = n.AddEdge(1+left+r, sink, 1); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		if p.Left < 1 || p.Left > left || p.Right < 1 || p.Right > right {
			return nil, fmt.Errorf("%w: (%d,%d) not in 1..%d × 1..%d", ErrPairRange, p.Left, p.Right, left, right)
		}
		if err = n.AddEdge(1+p.Left, 1+left+p.Right, 1); err != nil {
			return nil, err
		}
	}

	opts = append(opts, flow.WithAlgorithm(flow.Dinic))
	edges, err := n.FlowEdges(math.MaxInt, opts...)
	if err != nil {
		return nil, err
	}

	// Saturated left→right edges are the matching; FlowEdges emits them in
	// left-vertex order already.
	matched := make([]Pair, 0, min(left, right))
	for _, e := range edges {
		if e.From > 1 && e.From <= 1+left && e.To > 1+left && e.To < sink {
			matched = append(matched, Pair{Left: e.From - 1, Right: e.To - 1 - left})
		}
	}

	return matched, nil
}
