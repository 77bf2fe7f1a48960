// Package route - greedy nearest-neighbor tour construction.
//
// NearestNeighbor grows a tour by always hopping to the closest index not
// yet visited. The construction is O(n²) and usually lands within tens of
// percent of the optimum; its quality depends heavily on where it starts,
// which is why Solve retries it from several start indices and refines the
// winner with TwoOpt.
//
// Design:
//   - Deterministic: the candidate scan runs in ascending index order under
//     a strict < comparison, so equidistant candidates resolve to the
//     lowest index. No RNG anywhere.
//   - The returned cost comes from the cost oracle's arithmetic, not from
//     the running greedy total, so comparisons against other tours are
//     exact.
//
// Contracts:
//   - start must lie in [0, Dim()), else ErrStartOutOfRange; a nil matrix
//     is ErrDimensionMismatch.
//   - The returned tour begins at start; re-anchor with RotateToStart when
//     the caller needs index 0 first.
//
// Complexity:
//   - O(n²) time, O(n) space.
package route

import (
	"math"

	"github.com/katalvlaran/routeopt/geo"
)

// NearestNeighbor builds a tour greedily from start and returns it together
// with its cycle distance.
func NearestNeighbor(m *geo.Matrix, start int) ([]int, float64, error) {
	if m == nil {
		return nil, 0, ErrDimensionMismatch
	}
	n := m.Dim()
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}

	var (
		tour    = make([]int, 0, n) // visiting order under construction
		visited = make([]bool, n)   // marks indices already appended
		cur     = start             // index the tour currently ends at
	)
	tour = append(tour, start)
	visited[start] = true

	var (
		step int     // stops appended so far
		v    int     // candidate index under scan
		next int     // nearest unvisited candidate
		d    float64 // its distance from cur
		bd   float64 // shortest distance seen this step
	)
	for step = 1; step < n; step++ {
		next = -1
		bd = math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d = m.At(cur, v)
			// Strict < over an ascending scan: ties keep the lowest index.
			if d < bd {
				bd = d
				next = v
			}
		}

		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour, cycleCost(tour, m), nil
}
