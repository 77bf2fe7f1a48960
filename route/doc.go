// Package route optimizes the visiting order of geographic waypoints.
//
// Given an ordered list of waypoints and a vehicle class, Solve compares the
// input order against a shorter reordering of the same stops:
//
//   - Exact: for small instances (n ≤ ExactLimit) every visiting order is
//     enumerated with waypoint 0 pinned as the cycle start, guaranteeing the
//     global minimum. Complexity: O((n−1)!·n).
//
//   - NearestNeighbor: for larger instances a greedy tour is grown from each
//     of several start indices; ties resolve to the lowest index, so the
//     result is fully deterministic. Complexity: O(n²) per start.
//
//   - TwoOpt: first-improvement 2-opt refinement: reverse the tour segment
//     whose reversal shortens the cycle by more than a positive tolerance,
//     restart the scan, stop when a full pass finds nothing. Complexity:
//     O(iter·n³) against the cost oracle.
//
// Tours are open permutations of [0, n) closed implicitly (the last index
// connects back to the first); index 0 is the rotation anchor of every
// result. TourDistance is the single cost oracle: all tour comparisons go
// through its arithmetic, so tie-breaking is consistent everywhere.
//
// The package is a pure kernel: no I/O, no logging, no goroutines, no shared
// state; misuse of the granular API is reported through sentinel errors and
// nothing ever panics on user input. Distinct Solve invocations may run
// concurrently without locking.
//
// Use Solve for the end-to-end original-versus-optimized comparison; use the
// granular functions when the caller owns the matrix or needs one phase only.
package route
