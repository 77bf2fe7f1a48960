// Package route - the cost oracle shared by every solver.
//
// Design:
//   - TourDistance validates, then delegates to cycleCost - the unchecked
//     twin used by solver hot loops on pre-validated tours. Both run the
//     exact same arithmetic, so a comparison made anywhere in the kernel
//     agrees with a comparison made anywhere else.
//   - Stable summation: totals are rounded to the 1e-9 grid so that
//     equal-by-geometry tours compare equal across platforms.
//   - Strict sentinels from types.go on invalid input; no other error paths.
//
// Complexity:
//   - O(n) time, O(1) extra space per evaluation.
package route

import (
	"math"

	"github.com/katalvlaran/routeopt/geo"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// TourDistance returns the total cycle distance of tour over m in
// kilometers: every consecutive leg plus the implicit closing leg from the
// last index back to the first. Empty and single-stop tours cost 0.
//
// This is the kernel's single cost oracle - every comparison between
// candidate tours anywhere in the package goes through its arithmetic,
// which keeps tie-breaking consistent.
//
// Errors: ErrDimensionMismatch when m is nil or len(tour) != m.Dim();
// ErrInvalidTour when tour is not a permutation of [0, Dim()).
//
// Complexity: O(n).
func TourDistance(tour []int, m *geo.Matrix) (float64, error) {
	if m == nil {
		return 0, ErrDimensionMismatch
	}
	if err := ValidateTour(tour, m.Dim()); err != nil {
		return 0, err
	}

	return cycleCost(tour, m), nil
}

// cycleCost sums the cycle edges of a pre-validated tour: the hot-path twin
// of TourDistance, with the same arithmetic and the same stabilization.
//
// Complexity: O(n).
func cycleCost(tour []int, m *geo.Matrix) float64 {
	n := len(tour)
	if n < 2 {
		return 0
	}

	var (
		sum float64 // running total of leg distances
		i   int     // leg index
	)
	for i = 0; i < n-1; i++ {
		sum += m.At(tour[i], tour[i+1])
	}
	sum += m.At(tour[n-1], tour[0]) // implicit closing leg

	return round1e9(sum)
}

// EstimateTime converts a distance to estimated travel minutes at the given
// speed: distanceKm / speedKmh * 60. Non-positive speeds yield 0, keeping
// the function total (the frozen vehicle table only carries positive
// speeds, so the guard is unreachable through Solve).
//
// Complexity: O(1).
func EstimateTime(distanceKm, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return 0
	}

	return distanceKm / speedKmh * 60
}

// round1e9 returns x rounded to 1e-9 absolute precision. This keeps costs
// stable across platforms without affecting algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
