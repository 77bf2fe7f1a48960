// Package route - exhaustive solver for small instances.
//
// Exact enumerates every distinct visiting cycle and keeps the cheapest, so
// its answer is the global optimum by construction. Waypoint 0 stays pinned
// at position 0: a cycle's cost is invariant under rotation, so fixing the
// anchor divides the search space by n without losing any optimum, and it
// makes the output comparable with every other solver in the package.
//
// Design:
//   - Classic swap recursion over the tail cur[1:]; each arrangement is
//     produced exactly once, in a deterministic order.
//   - Every candidate is scored through the cost oracle's arithmetic
//     (cycleCost); strict < keeps the first-encountered minimum, so ties
//     resolve by enumeration order.
//   - No RNG, no time, no allocation inside the recursion.
//
// Contracts:
//   - Trivial instances (n ≤ 2) return the identity tour without search.
//   - No upper bound on n is enforced here; the factorial cost is the
//     caller's to respect (Solve dispatches only when n ≤ ExactLimit).
//
// Complexity:
//   - O((n−1)!·n) time, O(n) extra space.
package route

import (
	"math"

	"github.com/katalvlaran/routeopt/geo"
)

// Exact returns the minimum-cost tour over m, anchored at index 0, plus its
// cycle distance. The only error path is a nil matrix (ErrDimensionMismatch).
func Exact(m *geo.Matrix) ([]int, float64, error) {
	if m == nil {
		return nil, 0, ErrDimensionMismatch
	}
	n := m.Dim()

	// Trivial instances carry exactly one distinct cycle.
	if n <= 2 {
		tour := identityTour(n)

		return tour, cycleCost(tour, m), nil
	}

	var (
		cur      = identityTour(n) // working arrangement; position 0 stays pinned
		best     = make([]int, n)  // cheapest arrangement seen so far
		bestCost = math.Inf(1)     // its cycle cost; any real cycle beats +Inf
	)

	// permute walks every arrangement of cur[pos:]: each position takes each
	// remaining index once and recurses on the suffix. Base case: one free
	// position left means the arrangement is complete - score it.
	var permute func(pos int)
	permute = func(pos int) {
		if pos == n-1 {
			if c := cycleCost(cur, m); c < bestCost {
				bestCost = c
				copy(best, cur)
			}

			return
		}

		var i int
		for i = pos; i < n; i++ {
			cur[pos], cur[i] = cur[i], cur[pos]
			permute(pos + 1)
			cur[pos], cur[i] = cur[i], cur[pos] // undo, restoring suffix order
		}
	}
	permute(1) // start past the pinned anchor

	return best, bestCost, nil
}
