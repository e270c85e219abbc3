package flow

import "fmt"

// Verify cross-checks the solved network against the classical flow
// invariants (CLRS §26.1–26.2):
//
//   - capacity respect: 0 ≤ flow ≤ capacity on every original edge,
//     with the reverse companion mirroring the forward flow negated;
//   - conservation: positive inflow equals positive outflow at every
//     vertex other than source and sink;
//   - value agreement: net outflow of the source and net inflow of the
//     sink both equal the total FindMaxFlow returned;
//   - maximality: no augmenting path survives in the residual graph.
//
// Returns nil when all hold, ErrNotSolved before FindMaxFlow has run, and
// an error wrapping ErrVerify naming the first violated invariant
// otherwise. A non-nil result on a solved network indicates a solver bug,
// never invalid caller input.
func (n *Network[T]) Verify() error {
	if !n.solved {
		return ErrNotSolved
	}
	var zero T

	// Per-arc checks over forward/reverse pairs.
	for e := 0; e < len(n.edges); e += 2 {
		fwd, rev := n.edges[e], n.edges[e+1]
		if fwd.Flow < zero || fwd.Flow > fwd.Capacity {
			return fmt.Errorf("%w: edge %d→%d flow %v outside 0..%v",
				ErrVerify, rev.To, fwd.To, fwd.Flow, fwd.Capacity)
		}
		if rev.Flow+fwd.Flow != zero {
			return fmt.Errorf("%w: edge %d→%d reverse flow %v does not mirror %v",
				ErrVerify, rev.To, fwd.To, rev.Flow, fwd.Flow)
		}
	}

	// Conservation and value agreement over positive flows.
	in := make([]T, n.numVertices+1)
	out := make([]T, n.numVertices+1)
	for v := 1; v <= n.numVertices; v++ {
		for _, e := range n.adj[v] {
			if f := n.edges[e].Flow; f > zero {
				out[v] += f
				in[n.edges[e].To] += f
			}
		}
	}
	for v := 1; v <= n.numVertices; v++ {
		if v == n.source || v == n.sink {
			continue
		}
		if in[v] != out[v] {
			return fmt.Errorf("%w: vertex %d inflow %v != outflow %v", ErrVerify, v, in[v], out[v])
		}
	}
	if net := out[n.source] - in[n.source]; net != n.total {
		return fmt.Errorf("%w: source net outflow %v != total %v", ErrVerify, net, n.total)
	}
	if net := in[n.sink] - out[n.sink]; n.source != n.sink && net != n.total {
		return fmt.Errorf("%w: sink net inflow %v != total %v", ErrVerify, net, n.total)
	}

	// Maximality: a residual source→sink path would disprove the solve.
	if n.source != n.sink && n.residualReachable()[n.sink] {
		return fmt.Errorf("%w: augmenting path remains in residual graph", ErrVerify)
	}

	return nil
}
