// Package route - tour utilities shared by every solver.
//
// A tour is an OPEN permutation of [0, n): the closing edge from the last
// index back to the first is implicit, never stored. Helpers:
//   - ValidateTour: enforce the permutation invariant.
//   - RotateToStart: fresh rotated copy with a chosen index at position 0.
//   - identityTour: the caller's original visiting order [0, 1, …, n−1].
//   - reverseSegment: in-place segment reversal (the 2-opt primitive).
//   - copyTour: independent copy.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) helpers; in-place mutation only where the caller owns the slice.
package route

// ValidateTour checks that tour is a permutation of [0, n) of length n.
// n == 0 with an empty tour is valid - the kernel's trivial instances flow
// through the same helpers as real ones.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n < 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		// An out-of-range index breaks the permutation contract.
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		// So does a duplicate.
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a fresh copy of tour cyclically shifted so that
// out[0] == start. Rotation never changes the cycle's cost, which makes this
// the canonical way to re-anchor a result for comparison or display.
//
// Contract:
//   - tour is a valid permutation of [0, len(tour)); only the presence of
//     start is re-checked here.
//   - start ∈ [0, len(tour)), else ErrStartOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	n := len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	// Locate the pivot occurrence of start.
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		// A permutation of [0, n) must contain start; this tour is not one.
		return nil, ErrInvalidTour
	}

	// Build the rotated copy.
	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// identityTour returns [0, 1, …, n−1]: the caller's original visiting order
// and the canonical anchored tour of every trivial instance.
//
// Complexity: O(n) time and space.
func identityTour(n int) []int {
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// reverseSegment reverses tour[i..k] inclusive, in place. This is the 2-opt
// move primitive; callers guarantee 0 ≤ i < k < len(tour).
//
// Complexity: O(k−i) time, O(1) space.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// copyTour returns an independent copy of tour (nil stays nil).
//
// Complexity: O(n) time, O(n) space.
func copyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
