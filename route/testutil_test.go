// Package route_test provides lightweight testing helpers shared across
// *_test.go files in this package: deterministic geometry builders, an
// independent brute-force oracle, and tolerant float comparisons. The
// helpers are intentionally minimal and stdlib-only.
package route_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/routeopt/geo"
	"github.com/katalvlaran/routeopt/route"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// degKm is the great-circle length of one degree of arc: 6371·π/180 km.
	// Points laid out on a meridian (or on the equator) have analytic
	// pairwise distances: degKm per degree of separation.
	degKm = 111.19492664455873

	// epsGrid absorbs the 1e-9 cost-rounding grid plus the float summation
	// noise of scoring one cycle leg-by-leg in two different orders.
	epsGrid = 1e-8

	// epsLoose is a relaxed tolerance for comparisons against hand-computed
	// reference distances.
	epsLoose = 1e-6

	// seedDet is the base deterministic seed for RNG-backed instance builders.
	seedDet = int64(7)
)

// -----------------------------------------------------------------------------
// Geometry builders (deterministic)
// -----------------------------------------------------------------------------

// meridianCoords places one coordinate per latitude on the prime meridian.
// Distances between such points are exactly R·Δφ, which keeps expected cycle
// costs analytic.
func meridianCoords(latDeg ...float64) []geo.Coord {
	out := make([]geo.Coord, len(latDeg))
	for i, lat := range latDeg {
		out[i] = geo.Coord{Lat: lat, Lon: 0}
	}

	return out
}

// equatorCoords places one coordinate per longitude on the equator.
func equatorCoords(lonDeg ...float64) []geo.Coord {
	out := make([]geo.Coord, len(lonDeg))
	for i, lon := range lonDeg {
		out[i] = geo.Coord{Lat: 0, Lon: lon}
	}

	return out
}

// circleCoords distributes n coordinates on a small circle of the given
// angular radius (degrees) around the origin, in ring order. Points in convex
// position have a single 2-opt-optimal cycle: the ring 0,1,…,n−1.
func circleCoords(n int, radiusDeg float64) []geo.Coord {
	out := make([]geo.Coord, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geo.Coord{Lat: radiusDeg * math.Sin(th), Lon: radiusDeg * math.Cos(th)}
	}

	return out
}

// randomCoords scatters n coordinates over a ~1°×1° box; deterministic per
// seed.
func randomCoords(n int, seed int64) []geo.Coord {
	rng := rand.New(rand.NewSource(seed))
	out := make([]geo.Coord, n)
	for i := range out {
		out[i] = geo.Coord{Lat: rng.Float64(), Lon: rng.Float64()}
	}

	return out
}

// waypointsAt wraps raw coordinates into minimally filled Waypoints so Solve
// can consume instances produced by the coordinate builders above.
func waypointsAt(coords []geo.Coord) []route.Waypoint {
	out := make([]route.Waypoint, len(coords))
	for i, c := range coords {
		out[i] = route.Waypoint{
			ID:   "w" + strconv.Itoa(i),
			Name: "stop " + strconv.Itoa(i),
			Lat:  c.Lat,
			Lon:  c.Lon,
		}
	}

	return out
}

// -----------------------------------------------------------------------------
// Independent brute-force oracle
// -----------------------------------------------------------------------------

// allPermutations invokes fn with every permutation of [0,n) using the
// iterative Heap algorithm. The slice passed to fn is reused between calls;
// fn must not retain it.
func allPermutations(n int, fn func([]int)) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	c := make([]int, n)

	fn(perm)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			fn(perm)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

// oracleBestCost scans all n! cycles (no anchor pinning) and returns the
// cheapest cost, summed leg-by-leg without any rounding. It deliberately
// shares no code with the solvers under test.
func oracleBestCost(m *geo.Matrix) float64 {
	n := m.Dim()
	if n < 2 {
		return 0
	}

	best := math.Inf(1)
	allPermutations(n, func(p []int) {
		sum := 0.0
		for i := 0; i < n-1; i++ {
			sum += m.At(p[i], p[i+1])
		}
		sum += m.At(p[n-1], p[0])
		if sum < best {
			best = sum
		}
	})

	return best
}

// -----------------------------------------------------------------------------
// Assertions and tour predicates
// -----------------------------------------------------------------------------

// mustNoErr aborts the test on any unexpected error.
func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// mustFloatClose fails the test when |got−want| exceeds tol.
func mustFloatClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %.12f, want %.12f (tolerance %g)", got, want, tol)
	}
}

// sameCycleEitherDir reports whether a and b describe the same cycle when
// both are read from their first element, allowing a reversed orientation.
func sameCycleEitherDir(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	same, rev := true, true
	n := len(a)
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			same = false
		}
		if a[i] != b[(n-i)%n] {
			rev = false
		}
	}

	return same || rev
}

// monotoneRuns counts maximal runs of constant direction when walking the
// values as a cycle, closing leg included. A tour over collinear points is
// distance-optimal exactly when it has two runs: one sweep up the line and
// one sweep back. Values are assumed pairwise distinct.
func monotoneRuns(vals []float64) int {
	n := len(vals)
	if n < 2 {
		return 0
	}

	dirs := make([]int, n)
	for i := 0; i < n; i++ {
		if vals[(i+1)%n] < vals[i] {
			dirs[i] = -1
		} else {
			dirs[i] = 1
		}
	}

	runs := 0
	for i := 0; i < n; i++ {
		if dirs[i] != dirs[(i+n-1)%n] {
			runs++
		}
	}
	if runs == 0 {
		runs = 1
	}

	return runs
}
