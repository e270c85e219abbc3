package flow

import "go.uber.org/zap"

// FindMaxFlow computes the maximum flow from the network's source to its
// sink and returns the total flow value, leaving the per-edge assignment
// readable via FlowEdges.
//
// infinite must exceed the sum of all capacities leaving the source
// (callers typically pass the numeric type's maximum value); it seeds each
// augmenting search as the "no bound yet" amount. The algorithm performs no
// overflow detection: choosing T wide enough for the sum of reachable
// capacities is the caller's responsibility.
//
// Options (all optional):
//   - WithContext:   cancellation, checked once per phase
//   - WithLogger:    Debug-level phase/augmentation progress
//   - WithAlgorithm: Dinic (default), EdmondsKarp or FordFulkerson
//
// Calling FindMaxFlow on an already-solved network returns the cached
// total without recomputing.
//
// Complexity (Dinic): O(V²·E) time in general, O(E·√V) on unit-capacity
// networks; O(V + E) memory.
func (n *Network[T]) FindMaxFlow(infinite T, opts ...Option) (T, error) {
	o, err := buildOptions(opts)
	if err != nil {
		var zero T
		return zero, err
	}
	if n.solved {
		return n.total, nil
	}
	// A network whose source is its sink carries no flow; without this
	// early out the first augmenting search would push `infinite`.
	if n.source == n.sink {
		n.solved = true
		return n.total, nil
	}

	switch o.algo {
	case EdmondsKarp:
		err = n.edmondsKarp(&o, infinite)
	case FordFulkerson:
		err = n.fordFulkerson(&o, infinite)
	default:
		err = n.dinic(&o, infinite)
	}
	if err != nil {
		return n.total, err
	}
	n.solved = true

	return n.total, nil
}

// dinic alternates BFS level phases and blocking-flow DFS phases until the
// sink drops out of the residual graph, accumulating into n.total.
func (n *Network[T]) dinic(o *options, infinite T) error {
	var zero T
	phase := 0
	for {
		// Cancellation check once per phase.
		if err := o.ctx.Err(); err != nil {
			return err
		}

		// Level phase: recompute BFS distances; stop once the sink
		// is unreachable through positive residual capacity.
		if !n.bfsLevels() {
			break
		}
		phase++

		// Blocking-flow phase: drain augmenting paths within the level
		// graph until none remain. Current-arc cursors reset here and only
		// advance afterwards, bounding the phase's DFS work by O(E).
		for v := range n.lastEdge {
			n.lastEdge[v] = 0
		}
		pushes := 0
		for {
			pushed := n.dfs(n.source, infinite)
			if pushed == zero {
				break
			}
			n.total += pushed
			pushes++
			o.log.Debug("flow: augmenting path found",
				zap.Int("phase", phase),
				zap.Any("pushed", pushed),
				zap.Any("total", n.total))
		}
		o.log.Debug("flow: blocking flow exhausted",
			zap.Int("phase", phase),
			zap.Int("paths", pushes))
	}

	return nil
}

// bfsLevels assigns level[v] = BFS distance from the source over arcs with
// positive residual capacity, and reports whether the sink was reached.
// Level 0 doubles as "unassigned"; the source sits at level 1.
func (n *Network[T]) bfsLevels() bool {
	for v := range n.level {
		n.level[v] = 0
	}
	n.level[n.source] = 1

	queue := make([]int, 0, n.numVertices)
	queue = append(queue, n.source)
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for _, e := range n.adj[v] {
			if n.edges[e].Capacity <= n.edges[e].Flow {
				continue
			}
			u := n.edges[e].To
			if n.level[u] != 0 {
				continue
			}
			n.level[u] = n.level[v] + 1
			queue = append(queue, u)
		}
	}

	return n.level[n.sink] != 0
}

// dfs pushes at most `pushed` units from v toward the sink along arcs that
// descend exactly one level, and returns the amount actually pushed
// (zero when v leads only to dead ends this phase).
//
// The scan over adj[v] resumes at lastEdge[v]: arcs behind the cursor are
// already known saturated or level-inconsistent for this phase. On a
// successful push the cursor stays on the current arc, which may still
// carry more flow in a later call; on exhaustion it parks past the end.
func (n *Network[T]) dfs(v int, pushed T) T {
	var zero T
	if v == n.sink {
		return pushed
	}
	for pos := n.lastEdge[v]; pos < len(n.adj[v]); pos++ {
		e := n.adj[v][pos]
		u := n.edges[e].To
		if n.level[v]+1 != n.level[u] || n.edges[e].Capacity <= n.edges[e].Flow {
			continue
		}
		down := pushed
		if r := n.residual(e); r < down {
			down = r
		}
		if down = n.dfs(u, down); down == zero {
			continue
		}
		n.lastEdge[v] = pos
		n.edges[e].Flow += down
		// Companion arc absorbs the negative, so the push can be undone.
		n.edges[e^1].Flow -= down

		return down
	}
	n.lastEdge[v] = len(n.adj[v])

	return zero
}

// FlowEdges solves the network if needed (forwarding infinite and opts to
// FindMaxFlow) and returns every original edge carrying strictly positive
// flow, in adjacency order. Reverse companions sit at zero or below after a
// solve and are excluded; one ending up positive would mean net flow along
// the reversed direction and is reported as such.
//
// The returned slice is a fresh snapshot: calling FlowEdges repeatedly
// yields equal results without re-solving.
func (n *Network[T]) FlowEdges(infinite T, opts ...Option) ([]ResultEdge[T], error) {
	var zero T
	if !n.solved {
		if _, err := n.FindMaxFlow(infinite, opts...); err != nil {
			return nil, err
		}
	}

	result := make([]ResultEdge[T], 0, len(n.edges)/2)
	for v := 1; v <= n.numVertices; v++ {
		for _, e := range n.adj[v] {
			if n.edges[e].Flow > zero {
				result = append(result, ResultEdge[T]{From: v, To: n.edges[e].To, Flow: n.edges[e].Flow})
			}
		}
	}

	return result, nil
}
