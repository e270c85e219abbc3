package flow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netflow/flow"
)

// TestMinCutDuality checks Cut.Capacity equals the max-flow value and that
// every cut edge is saturated.
func TestMinCutDuality(t *testing.T) {
	n := classicNetwork(t)
	mf, err := n.FindMaxFlow(int64(math.MaxInt64))
	require.NoError(t, err)

	cut, err := n.MinCut(int64(math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, mf, cut.Capacity)
	require.Contains(t, cut.SourceSide, 1)
	require.NotContains(t, cut.SourceSide, 6)
	for _, e := range cut.Edges {
		require.Positive(t, e.Flow, "cut edges must be saturated")
	}
}

// TestMinCutSingleEdge pins the obvious cut on a one-edge network.
func TestMinCutSingleEdge(t *testing.T) {
	n, err := flow.NewNetwork[int](1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, n.AddEdge(1, 2, 7))

	// MinCut solves lazily when FindMaxFlow has not run yet.
	cut, err := n.MinCut(math.MaxInt)
	require.NoError(t, err)
	require.True(t, n.Solved())
	require.Equal(t, 7, cut.Capacity)
	require.Equal(t, []int{1}, cut.SourceSide)
	require.Equal(t, []flow.ResultEdge[int]{{From: 1, To: 2, Flow: 7}}, cut.Edges)
}

// TestMinCutDisconnected yields an empty zero-capacity cut.
func TestMinCutDisconnected(t *testing.T) {
	n, err := flow.NewNetwork[int](1, 3, 3)
	require.NoError(t, err)
	require.NoError(t, n.AddEdge(1, 2, 5))

	cut, err := n.MinCut(math.MaxInt)
	require.NoError(t, err)
	require.Zero(t, cut.Capacity)
	require.Empty(t, cut.Edges)
	require.Equal(t, []int{1, 2}, cut.SourceSide)
}
