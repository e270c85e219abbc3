package flow

// MinCut solves the network if needed (forwarding infinite and opts to
// FindMaxFlow) and returns a minimum source/sink cut certified by the final
// residual graph: the vertices still reachable from the source form one
// side, and the saturated original edges crossing to the other side form
// the cut set. By max-flow/min-cut duality Cut.Capacity equals the value
// FindMaxFlow returned.
//
// Complexity: O(V + E) on a solved network.
func (n *Network[T]) MinCut(infinite T, opts ...Option) (*Cut[T], error) {
	if !n.solved {
		if _, err := n.FindMaxFlow(infinite, opts...); err != nil {
			return nil, err
		}
	}

	seen := n.residualReachable()
	cut := &Cut[T]{}
	for v := 1; v <= n.numVertices; v++ {
		if seen[v] {
			cut.SourceSide = append(cut.SourceSide, v)
		}
	}
	for v := 1; v <= n.numVertices; v++ {
		if !seen[v] {
			continue
		}
		for _, e := range n.adj[v] {
			// Only original arcs (even index) count toward the cut;
			// their residual is zero exactly when they are saturated.
			if e%2 != 0 || seen[n.edges[e].To] {
				continue
			}
			cut.Edges = append(cut.Edges, ResultEdge[T]{From: v, To: n.edges[e].To, Flow: n.edges[e].Flow})
			cut.Capacity += n.edges[e].Capacity
		}
	}

	return cut, nil
}
