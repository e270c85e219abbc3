package flow

import "fmt"

// Network is a directed flow network over vertices 1..NumVertices together
// with the residual state one solve mutates in place. Vertex 0 is reserved;
// all vertex-indexed bookkeeping is stored in slices of length NumVertices+1.
//
// A Network is built once via AddEdge calls, solved once, and then read.
// It is not safe for concurrent use; independent networks may be solved
// concurrently, each by its own instance.
//
// The zero value is not usable; construct with NewNetwork.
type Network[T Flow] struct {
	source int
	sink   int

	// numVertices is the declared vertex-ID bound (inclusive).
	numVertices int

	// edges is the flat arc list. Arcs are appended in forward/reverse
	// pairs, so the companion of arc e is always arc e^1.
	edges []FlowEdge[T]

	// adj[v] holds the indices into edges of every arc leaving v,
	// reverse companions included.
	adj [][]int

	// level[v] is the BFS distance of v from the source in the current
	// phase's residual graph; 0 means unassigned, the source sits at 1.
	level []int

	// lastEdge[v] is the current-arc cursor into adj[v]: the first arc not
	// yet proven useless this phase. Monotone within a phase, reset between.
	lastEdge []int

	// solved flips once a solve completes; total caches the flow value.
	solved bool
	total  T
}

// NewNetwork creates an empty network with vertices numbered 1..numVertices
// and the given source and sink endpoints.
//
// source == sink is permitted and yields a trivial zero max flow.
// Returns ErrVertexRange if numVertices < 1 or either endpoint is
// outside 1..numVertices.
func NewNetwork[T Flow](source, sink, numVertices int) (*Network[T], error) {
	if numVertices < 1 {
		return nil, fmt.Errorf("%w: numVertices %d < 1", ErrVertexRange, numVertices)
	}
	if source < 1 || source > numVertices {
		return nil, fmt.Errorf("%w: source %d not in 1..%d", ErrVertexRange, source, numVertices)
	}
	if sink < 1 || sink > numVertices {
		return nil, fmt.Errorf("%w: sink %d not in 1..%d", ErrVertexRange, sink, numVertices)
	}

	return &Network[T]{
		source:      source,
		sink:        sink,
		numVertices: numVertices,
		adj:         make([][]int, numVertices+1),
		level:       make([]int, numVertices+1),
		lastEdge:    make([]int, numVertices+1),
	}, nil
}

// AddEdge inserts a directed edge from→to with the given capacity,
// appending the forward arc and its zero-capacity reverse companion to the
// flat arc list. Parallel edges between the same endpoints are kept
// distinct, never merged.
//
// Returns ErrVertexRange for endpoints outside 1..NumVertices,
// ErrNegativeCapacity for capacity < 0, and ErrNetworkSolved once
// FindMaxFlow has completed (the residual state is final by then).
func (n *Network[T]) AddEdge(from, to int, capacity T) error {
	if n.solved {
		return ErrNetworkSolved
	}
	if from < 1 || from > n.numVertices {
		return fmt.Errorf("%w: from %d not in 1..%d", ErrVertexRange, from, n.numVertices)
	}
	if to < 1 || to > n.numVertices {
		return fmt.Errorf("%w: to %d not in 1..%d", ErrVertexRange, to, n.numVertices)
	}
	var zero T
	if capacity < zero {
		return fmt.Errorf("%w: %d→%d capacity %v", ErrNegativeCapacity, from, to, capacity)
	}

	// Forward arc at an even index, reverse companion right behind it.
	n.adj[from] = append(n.adj[from], len(n.edges))
	n.edges = append(n.edges, FlowEdge[T]{To: to, Capacity: capacity})
	n.adj[to] = append(n.adj[to], len(n.edges))
	n.edges = append(n.edges, FlowEdge[T]{To: from})

	return nil
}

// Source returns the source vertex.
func (n *Network[T]) Source() int { return n.source }

// Sink returns the sink vertex.
func (n *Network[T]) Sink() int { return n.sink }

// NumVertices returns the declared vertex-ID bound.
func (n *Network[T]) NumVertices() int { return n.numVertices }

// NumEdges returns the number of original edges added via AddEdge
// (reverse companions are not counted).
func (n *Network[T]) NumEdges() int { return len(n.edges) / 2 }

// Solved reports whether a max-flow computation has completed.
func (n *Network[T]) Solved() bool { return n.solved }

// residual is the remaining capacity of arc e.
func (n *Network[T]) residual(e int) T {
	return n.edges[e].Capacity - n.edges[e].Flow
}

// residualReachable BFS-walks arcs with positive residual capacity from the
// source and reports which vertices remain reachable. After a finished
// solve the sink is never among them; the reachable set is the source side
// of a minimum cut.
func (n *Network[T]) residualReachable() []bool {
	var zero T
	seen := make([]bool, n.numVertices+1)
	seen[n.source] = true
	queue := []int{n.source}
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for _, e := range n.adj[v] {
			if n.residual(e) <= zero || seen[n.edges[e].To] {
				continue
			}
			seen[n.edges[e].To] = true
			queue = append(queue, n.edges[e].To)
		}
	}

	return seen
}
