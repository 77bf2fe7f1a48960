// Package route - 2-opt local search refinement.
//
// TwoOpt repeatedly removes two edges of the cycle and reconnects the tour
// with the enclosed segment reversed, keeping any reversal that shortens the
// cycle by more than a positive tolerance. First-improvement policy: the
// scan restarts from the top after every adopted move and stops when a full
// pass finds nothing, leaving a local optimum of the 2-opt neighborhood
// (not a guaranteed global optimum).
//
// Design:
//   - Candidates are scored through the cost oracle's arithmetic
//     (cycleCost); acceptance is cand < cur − eps, so FP-noise-level
//     "improvements" can never loop forever.
//   - A candidate is built by reversing cur[i..k] in place and undone the
//     same way when rejected: O(1) extra space, input left untouched.
//   - Position 0 is excluded from the scan, keeping the rotation anchor in
//     place; over a cycle this loses no moves modulo rotation.
//
// Contracts:
//   - eps must be a positive real, else ErrBadOptions.
//   - tour must be a permutation of [0, Dim()); the input slice is never
//     mutated.
//   - Tours shorter than 3 are returned unchanged - no edge exchange exists.
//   - The result is never worse than the input.
//
// Complexity:
//   - O(n²) candidate checks per pass, O(n) oracle cost each: O(iter·n³)
//     time overall, O(n) space for the working copy.
package route

import (
	"math"

	"github.com/katalvlaran/routeopt/geo"
)

// TwoOpt refines tour by first-improvement segment reversal and returns the
// refined tour with its cycle distance.
func TwoOpt(tour []int, m *geo.Matrix, eps float64) ([]int, float64, error) {
	// Acceptance needs a strictly positive finite margin to terminate.
	if math.IsNaN(eps) || eps <= 0 {
		return nil, 0, ErrBadOptions
	}
	if m == nil {
		return nil, 0, ErrDimensionMismatch
	}
	n := m.Dim()
	if err := ValidateTour(tour, n); err != nil {
		return nil, 0, err
	}

	// Work on a copy; the caller keeps the original.
	cur := copyTour(tour)
	curCost := cycleCost(cur, m)

	// No pair of non-adjacent edges exists below three stops.
	if n < 3 {
		return cur, curCost, nil
	}

	// First-improvement loop: restart the scan after every accepted move.
	for {
		improved := false // set exactly when a reversal is adopted

		var (
			i, k int     // segment bounds under scan, 1 ≤ i < k ≤ n−1
			cand float64 // candidate cycle cost with cur[i..k] reversed
		)
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				reverseSegment(cur, i, k)
				cand = cycleCost(cur, m)
				if cand < curCost-eps {
					// Keep the reversal and rescan from the top.
					curCost = cand
					improved = true
					break
				}
				reverseSegment(cur, i, k) // not improving: undo
			}
			if improved {
				break
			}
		}

		if !improved {
			// Full pass without an improving move: 2-opt local optimum.
			break
		}
	}

	return cur, curCost, nil
}
