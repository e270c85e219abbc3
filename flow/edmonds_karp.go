package flow

import "go.uber.org/zap"

// edmondsKarp augments along shortest (fewest-edge) residual paths until
// none remain, accumulating into n.total.
//
// Each BFS records, per vertex, the arc index it was discovered through;
// walking those arcs back from the sink reconstructs the path, and the
// companion arc of each (index^1) leads back to the predecessor vertex.
//
// Complexity: O(V·E²) time, O(V + E) memory.
func (n *Network[T]) edmondsKarp(o *options, infinite T) error {
	parentArc := make([]int, n.numVertices+1)
	for {
		// Cancellation check once per augmentation.
		if err := o.ctx.Err(); err != nil {
			return err
		}

		bottleneck := n.bfsAugmentingPath(parentArc, infinite)
		var zero T
		if bottleneck == zero {
			break
		}

		// Augment: walk sink→source through the recorded arcs.
		for v := n.sink; v != n.source; {
			e := parentArc[v]
			n.edges[e].Flow += bottleneck
			n.edges[e^1].Flow -= bottleneck
			v = n.edges[e^1].To
		}
		n.total += bottleneck
		o.log.Debug("flow: augmenting path found",
			zap.Any("pushed", bottleneck),
			zap.Any("total", n.total))
	}

	return nil
}

// bfsAugmentingPath searches the residual graph breadth-first for a
// source→sink path, filling parentArc[v] with the arc that discovered v.
// It returns the path's bottleneck residual capacity, or zero when the
// sink is unreachable. The source is trivially reached with zero bottleneck
// when it coincides with the sink.
func (n *Network[T]) bfsAugmentingPath(parentArc []int, infinite T) T {
	var zero T
	if n.source == n.sink {
		return zero
	}

	seen := make([]bool, n.numVertices+1)
	seen[n.source] = true
	bottle := make([]T, n.numVertices+1)
	bottle[n.source] = infinite

	queue := make([]int, 0, n.numVertices)
	queue = append(queue, n.source)
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		for _, e := range n.adj[v] {
			u := n.edges[e].To
			if seen[u] || n.residual(e) <= zero {
				continue
			}
			seen[u] = true
			parentArc[u] = e
			bottle[u] = bottle[v]
			if r := n.residual(e); r < bottle[u] {
				bottle[u] = r
			}
			if u == n.sink {
				return bottle[u]
			}
			queue = append(queue, u)
		}
	}

	return zero
}
