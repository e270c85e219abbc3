// Package flow provides tunable options, error definitions and the numeric
// contract for max-flow computation over a residual Network.
package flow

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Flow is the numeric contract every capacity/flow type must satisfy:
// an ordered additive group with a zero value (addition, subtraction,
// comparison). Signed integers and floats qualify.
//
// Unsigned integers are deliberately excluded: reverse-edge bookkeeping
// drives per-edge flow negative, which unsigned arithmetic silently wraps.
type Flow interface {
	constraints.Signed | constraints.Float
}

// Sentinel errors for network construction and solving.
var (
	// ErrVertexRange is returned when a vertex ID falls outside 1..NumVertices.
	// Vertex 0 is reserved and must never appear as an endpoint.
	ErrVertexRange = errors.New("flow: vertex out of range")

	// ErrNegativeCapacity is returned when AddEdge receives capacity < 0.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity")

	// ErrNetworkSolved is returned when AddEdge is called after the network
	// has been solved; the residual state is final at that point.
	ErrNetworkSolved = errors.New("flow: network already solved")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrNotSolved is returned by Verify when the network has not been solved.
	ErrNotSolved = errors.New("flow: network not solved yet")

	// ErrVerify is returned (wrapped, with detail) when a solved network
	// violates a flow invariant. Seeing it means a bug, not bad input.
	ErrVerify = errors.New("flow: verification failed")
)

// Algorithm selects the augmenting strategy used by FindMaxFlow.
//
//   - Dinic         — level graph + blocking flow; O(V²·E), the default.
//   - EdmondsKarp   — BFS shortest augmenting paths; O(V·E²).
//   - FordFulkerson — DFS augmenting paths; O(E·F) on integral networks.
//
// All three operate on the same residual store and agree on the final
// max-flow value; they differ only in how augmenting paths are discovered.
type Algorithm int

const (
	// Dinic runs the level-graph/blocking-flow method (default).
	Dinic Algorithm = iota

	// EdmondsKarp augments along shortest (fewest-edge) paths.
	EdmondsKarp

	// FordFulkerson augments along arbitrary DFS paths.
	FordFulkerson

	// algorithmEnd bounds the valid Algorithm values.
	algorithmEnd
)

// Option configures solving via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when FindMaxFlow is invoked.
type Option func(*options)

// options holds solver parameters assembled from Options.
type options struct {
	// ctx allows cancellation and deadlines; checked at phase boundaries.
	ctx context.Context

	// log receives Debug-level phase and augmentation progress.
	log *zap.Logger

	// algo selects the augmenting strategy.
	algo Algorithm

	// err records the first invalid option seen.
	err error
}

// defaultOptions returns production-safe defaults:
// Background context, no-op logger, Dinic.
func defaultOptions() options {
	return options{
		ctx:  context.Background(),
		log:  zap.NewNop(),
		algo: Dinic,
	}
}

// buildOptions folds opts over the defaults and reports the first
// invalid option.
func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation / timeouts.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes solver progress to l at Debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithAlgorithm selects the augmenting strategy.
// An unknown value is surfaced as ErrOptionViolation.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		if a < Dinic || a >= algorithmEnd {
			o.err = ErrOptionViolation
			return
		}
		o.algo = a
	}
}

// FlowEdge is one directed arc of the residual graph.
// Arcs live in a flat list in forward/reverse pairs: the arc at an even
// index e is an original edge, e^1 is its zero-capacity reverse companion.
type FlowEdge[T Flow] struct {
	// To is the arc's destination vertex.
	To int

	// Capacity is the maximum amount this arc may carry.
	Capacity T

	// Flow is the amount currently routed through this arc.
	// Reverse arcs go negative when their companion carries flow.
	Flow T
}

// ResultEdge reports positive flow along one original edge after solving.
type ResultEdge[T Flow] struct {
	From int
	To   int
	Flow T
}

// Cut describes a minimum source/sink cut certified by a finished solve.
type Cut[T Flow] struct {
	// SourceSide lists, in increasing order, every vertex still reachable
	// from the source in the final residual graph.
	SourceSide []int

	// Edges are the saturated original edges crossing from SourceSide to
	// the sink side. Flow equals Capacity on each of them.
	Edges []ResultEdge[T]

	// Capacity is the total capacity of Edges; by max-flow/min-cut duality
	// it equals the maximum flow value.
	Capacity T
}
