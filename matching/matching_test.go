package matching_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netflow/matching"
)

// TestPerfectMatching finds a perfect matching when one exists.
func TestPerfectMatching(t *testing.T) {
	got, err := matching.Maximum(3, 3, []matching.Pair{
		{1, 1}, {1, 2},
		{2, 2}, {2, 3},
		{3, 3},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	seenLeft := map[int]bool{}
	seenRight := map[int]bool{}
	for _, p := range got {
		require.False(t, seenLeft[p.Left], "left vertex matched twice")
		require.False(t, seenRight[p.Right], "right vertex matched twice")
		seenLeft[p.Left] = true
		seenRight[p.Right] = true
	}
}

// TestContestedRightVertex leaves one left vertex unmatched when both
// compete for the same right vertex.
func TestContestedRightVertex(t *testing.T) {
	got, err := matching.Maximum(2, 2, []matching.Pair{
		{1, 1}, {2, 1},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

// TestAugmentingReassignment requires reassigning a greedy first match.
func TestAugmentingReassignment(t *testing.T) {
	// Left 1 can take right 1 or 2; left 2 only right 1.
	// A maximum matching must give right 1 to left 2.
	got, err := matching.Maximum(2, 2, []matching.Pair{
		{1, 1}, {1, 2}, {2, 1},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

// TestNoCandidates yields an empty matching.
func TestNoCandidates(t *testing.T) {
	got, err := matching.Maximum(2, 2, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestDuplicatePairs keeps duplicates harmless.
func TestDuplicatePairs(t *testing.T) {
	got, err := matching.Maximum(1, 1, []matching.Pair{
		{1, 1}, {1, 1}, {1, 1},
	})
	require.NoError(t, err)
	require.Equal(t, []matching.Pair{{Left: 1, Right: 1}}, got)
}

// TestValidation covers group-size and pair-range errors.
func TestValidation(t *testing.T) {
	_, err := matching.Maximum(0, 2, nil)
	require.True(t, errors.Is(err, matching.ErrGroupSize))

	_, err = matching.Maximum(2, 2, []matching.Pair{{3, 1}})
	require.True(t, errors.Is(err, matching.ErrPairRange))

	_, err = matching.Maximum(2, 2, []matching.Pair{{1, 0}})
	require.True(t, errors.Is(err, matching.ErrPairRange))
}
