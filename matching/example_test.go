package matching_test

import (
	"fmt"

	"github.com/katalvlaran/netflow/matching"
)

// ExampleMaximum assigns three workers (left) to three tasks (right).
// Worker 2 is the only one qualified for task 1, so worker 1 must settle
// for task 2.
func ExampleMaximum() {
	pairs, _ := matching.Maximum(3, 3, []matching.Pair{
		{Left: 1, Right: 1}, {Left: 1, Right: 2},
		{Left: 2, Right: 1},
		{Left: 3, Right: 3},
	})
	for _, p := range pairs {
		fmt.Printf("worker %d → task %d\n", p.Left, p.Right)
	}
	// Output:
	// worker 1 → task 2
	// worker 2 → task 1
	// worker 3 → task 3
}
