// Package route - the optimization entry point.
//
// Solve is the one-call surface of the kernel: evaluate the caller's order,
// find a better one, report both with derived savings. The pipeline is
//
//	validate → build matrix once → evaluate original →
//	dispatch Exact (n ≤ ExactLimit) or NearestNeighbor + TwoOpt →
//	re-anchor at index 0 → evaluate optimized → summarize savings.
//
// Design:
//   - Deterministic end to end: fixed dispatch threshold, fixed start set,
//     tie-breaks by first-encountered order everywhere.
//   - The distance matrix is built exactly once per invocation and shared
//     read-only by every component; nothing mutates it.
//   - Pure function of its inputs: no I/O, no goroutines, no retained
//     state, safe to call concurrently from independent goroutines.
//   - Strict sentinels for misuse; the sub-two-stop precondition is NOT an
//     error (see Solve).
//
// Complexity:
//   - Matrix build O(n²); exact branch O((n−1)!·n); heuristic branch
//     O(Starts·n²) construction + O(iter·n³) refinement.
package route

import (
	"math"

	"github.com/katalvlaran/routeopt/geo"
)

// ExactLimit is the largest instance size routed to the exhaustive solver.
// With the anchor pinned, n == 8 means 7! = 5040 candidate cycles - small
// enough for synchronous evaluation; above it Solve takes the heuristic
// path. The threshold is a frozen domain constant, not an option.
const ExactLimit = 8

// Solve optimizes the visiting order of stops for the given vehicle class.
//
// Fewer than two waypoints make optimization inapplicable: Solve returns
// (nil, nil) - an absent result, not an error - and leaves user-facing
// messaging to the caller. Misuse (unknown vehicle, invalid opts) returns a
// sentinel error instead.
//
// The returned result is self-contained and immutable by convention: the
// original route preserves the input order, the optimized route is anchored
// at index 0, and savings are floored at zero.
func Solve(stops []Waypoint, vehicle Vehicle, opts Options) (*OptimizationResult, error) {
	// Not applicable below two stops - nothing to reorder.
	if len(stops) < 2 {
		return nil, nil
	}

	// Stage 1: reject misuse before any real work.
	speed, err := vehicle.SpeedKmh()
	if err != nil {
		return nil, err
	}
	if err = validateOptions(opts); err != nil {
		return nil, err
	}

	// Stage 2: build the distance matrix, exactly once per run.
	coords := make([]geo.Coord, len(stops))
	var i int
	for i = 0; i < len(stops); i++ {
		coords[i] = stops[i].Coord()
	}
	m := geo.NewMatrix(coords)
	n := m.Dim()

	// Stage 3: the caller's order, evaluated as-is.
	original := evaluate(identityTour(n), m, speed)

	// Stage 4: the optimized order - exhaustive when the instance is small
	// enough, greedy construction plus 2-opt refinement otherwise.
	var tour []int
	if n <= ExactLimit {
		tour, _, err = Exact(m)
	} else {
		tour, err = heuristicTour(m, opts)
	}
	if err != nil {
		return nil, err
	}
	optimized := evaluate(tour, m, speed)

	// Stage 5: pair the two routes and derive savings.
	return summarize(original, optimized), nil
}

// heuristicTour runs multi-start NearestNeighbor and refines the winner with
// TwoOpt. The result is anchored at index 0.
//
// Complexity: O(min(Starts,n)·n²) + one TwoOpt run.
func heuristicTour(m *geo.Matrix, opts Options) ([]int, error) {
	n := m.Dim()

	starts := opts.Starts
	if starts > n {
		starts = n
	}

	// Greedy quality is sensitive to the starting point: try each candidate
	// start and keep the cheapest tour. Strict < means the lowest start
	// index wins ties.
	var (
		best     []int
		bestCost = math.Inf(1)
		s        int
	)
	for s = 0; s < starts; s++ {
		tour, cost, err := NearestNeighbor(m, s)
		if err != nil {
			return nil, err
		}
		if cost < bestCost {
			best = tour
			bestCost = cost
		}
	}

	// Re-anchor before refinement; rotation is cost-neutral and TwoOpt
	// keeps position 0 fixed, so the anchor survives to the output.
	best, err := RotateToStart(best, 0)
	if err != nil {
		return nil, err
	}

	refined, _, err := TwoOpt(best, m, opts.Eps)
	if err != nil {
		return nil, err
	}

	return refined, nil
}

// evaluate scores tour at a vehicle speed; the tour slice is owned by the
// returned result from here on.
func evaluate(tour []int, m *geo.Matrix, speedKmh float64) RouteResult {
	d := cycleCost(tour, m)

	return RouteResult{Tour: tour, DistanceKm: d, TimeMin: EstimateTime(d, speedKmh)}
}

// summarize derives the savings block from the two evaluated routes.
// Savings are floored at zero, and the percentage is 0 when the original
// distance is 0 (all stops coincident) - which also keeps it within
// [0, 100], since the optimized distance is never negative.
func summarize(original, optimized RouteResult) *OptimizationResult {
	res := &OptimizationResult{Original: original, Optimized: optimized}

	res.SavedKm = original.DistanceKm - optimized.DistanceKm
	if res.SavedKm < 0 {
		res.SavedKm = 0
	}
	res.SavedMin = original.TimeMin - optimized.TimeMin
	if res.SavedMin < 0 {
		res.SavedMin = 0
	}
	if original.DistanceKm > 0 {
		res.SavedPercent = res.SavedKm / original.DistanceKm * 100
	}

	return res
}

// validateOptions rejects tunings that would break solver guarantees.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Eps must be a positive real: the acceptance rule cand < cur − Eps
	// needs a strictly positive margin to guarantee 2-opt terminates.
	if math.IsNaN(opts.Eps) || opts.Eps <= 0 {
		return ErrBadOptions
	}
	// The heuristic path needs at least one nearest-neighbor start.
	if opts.Starts < 1 {
		return ErrBadOptions
	}

	return nil
}
