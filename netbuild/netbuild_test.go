package netbuild_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/netbuild"
)

// TestPathMaxFlow checks a chain carries exactly its uniform capacity.
func TestPathMaxFlow(t *testing.T) {
	n, err := netbuild.Path(5, int64(9))
	require.NoError(t, err)
	require.Equal(t, 4, n.NumEdges())

	mf, err := n.FindMaxFlow(int64(math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, int64(9), mf)
}

// TestPathTooShort rejects lengths below 2.
func TestPathTooShort(t *testing.T) {
	_, err := netbuild.Path(1, 1)
	require.True(t, errors.Is(err, netbuild.ErrTooFewVertices))
}

// TestLayeredMaxFlow checks the capacity×min(widths) bound is attained.
func TestLayeredMaxFlow(t *testing.T) {
	n, err := netbuild.Layered([]int{2, 3, 2}, 4)
	require.NoError(t, err)
	require.Equal(t, 9, n.NumVertices()) // source + 2+3+2 + sink

	mf, err := n.FindMaxFlow(math.MaxInt)
	require.NoError(t, err)
	require.Equal(t, 8, mf) // 4 × min(2,3,2)
	require.NoError(t, n.Verify())
}

// TestLayeredValidation rejects empty and degenerate layer sets.
func TestLayeredValidation(t *testing.T) {
	_, err := netbuild.Layered(nil, 1)
	require.True(t, errors.Is(err, netbuild.ErrTooFewVertices))

	_, err = netbuild.Layered([]int{2, 0}, 1)
	require.True(t, errors.Is(err, netbuild.ErrTooFewVertices))
}

// TestRandomSparseDeterministic checks the same seed reproduces the network.
func TestRandomSparseDeterministic(t *testing.T) {
	a, err := netbuild.RandomSparse(40, 0.1, 50, 7)
	require.NoError(t, err)
	b, err := netbuild.RandomSparse(40, 0.1, 50, 7)
	require.NoError(t, err)
	require.Equal(t, a.NumEdges(), b.NumEdges())

	mfA, err := a.FindMaxFlow(int64(math.MaxInt64))
	require.NoError(t, err)
	mfB, err := b.FindMaxFlow(int64(math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, mfA, mfB)
	require.NoError(t, a.Verify())
}

// TestRandomSparseAgreement cross-checks the three solvers on random input.
func TestRandomSparseAgreement(t *testing.T) {
	solve := func(algo flow.Algorithm) int64 {
		n, err := netbuild.RandomSparse(30, 0.15, 20, 11)
		require.NoError(t, err)
		mf, err := n.FindMaxFlow(int64(math.MaxInt64), flow.WithAlgorithm(algo))
		require.NoError(t, err)
		require.NoError(t, n.Verify())

		return mf
	}

	dinic := solve(flow.Dinic)
	require.Equal(t, dinic, solve(flow.EdmondsKarp))
	require.Equal(t, dinic, solve(flow.FordFulkerson))
}

// TestRandomSparseValidation rejects bad probabilities and sizes.
func TestRandomSparseValidation(t *testing.T) {
	_, err := netbuild.RandomSparse(1, 0.5, 10, 1)
	require.True(t, errors.Is(err, netbuild.ErrTooFewVertices))

	_, err = netbuild.RandomSparse(10, 1.5, 10, 1)
	require.True(t, errors.Is(err, netbuild.ErrInvalidProbability))

	_, err = netbuild.RandomSparse(10, 0.5, 0, 1)
	require.True(t, errors.Is(err, netbuild.ErrTooFewVertices))
}
