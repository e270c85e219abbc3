package flow

import "go.uber.org/zap"

// fordFulkerson augments along arbitrary DFS-discovered residual paths
// until none remain, accumulating into n.total.
//
// Simple and fast on small or low-capacity networks; prefer Dinic when the
// flow value may be large, since the number of augmentations here is only
// bounded by the total flow.
func (n *Network[T]) fordFulkerson(o *options, infinite T) error {
	var zero T
	seen := make([]bool, n.numVertices+1)
	for {
		// Cancellation check once per augmentation.
		if err := o.ctx.Err(); err != nil {
			return err
		}

		for v := range seen {
			seen[v] = false
		}
		pushed := n.dfsAugment(seen, n.source, infinite)
		if pushed == zero {
			break
		}
		n.total += pushed
		o.log.Debug("flow: augmenting path found",
			zap.Any("pushed", pushed),
			zap.Any("total", n.total))
	}

	return nil
}

// dfsAugment pushes at most `pushed` units from v toward the sink along any
// residual path, marking vertices in seen to keep the walk acyclic.
// Returns the amount actually pushed, zero on dead ends.
func (n *Network[T]) dfsAugment(seen []bool, v int, pushed T) T {
	var zero T
	if v == n.sink {
		return pushed
	}
	seen[v] = true
	for _, e := range n.adj[v] {
		u := n.edges[e].To
		if seen[u] || n.residual(e) <= zero {
			continue
		}
		down := pushed
		if r := n.residual(e); r < down {
			down = r
		}
		if down = n.dfsAugment(seen, u, down); down == zero {
			continue
		}
		n.edges[e].Flow += down
		n.edges[e^1].Flow -= down

		return down
	}

	return zero
}
