// Package geo - dense symmetric distance matrix.
//
// Design:
//   - One flat row-major buffer (offset i*n + j) for cache-friendly scans in
//     solver hot loops; no per-row slices, no interface indirection.
//   - Built once by NewMatrix, read-only afterwards: no method mutates it and
//     the backing buffer is never exposed.
//   - Symmetry is structural: the upper triangle is computed and mirrored, so
//     At(i,j) == At(j,i) holds bit-for-bit and the diagonal stays exactly zero.
//
// Contracts:
//   - NewMatrix accepts any n ≥ 0; n ≤ 1 yields a trivially sized matrix.
//   - At indices must lie in [0, Dim()); the accessor does not re-check range
//     (solver entry points validate tours before entering hot loops).
//
// Complexity:
//   - NewMatrix: O(n²) time and space. Dim/At: O(1).
package geo

// Matrix is a dense, symmetric matrix of pairwise great-circle distances in
// kilometers, indexed by coordinate position. Instances are immutable after
// construction.
type Matrix struct {
	n    int       // matrix order (number of coordinates)
	data []float64 // flat row-major storage, len == n*n
}

// NewMatrix builds the n×n distance matrix for coords via Haversine.
// There are no error conditions: zero or one coordinate produces a 0×0 or
// 1×1 zero matrix, and malformed coordinates pass through as the numeric
// distances Haversine assigns them.
func NewMatrix(coords []Coord) *Matrix {
	n := len(coords)
	m := &Matrix{n: n, data: make([]float64, n*n)}

	var (
		i, j int     // upper-triangle indices
		d    float64 // distance of the (i,j) pair
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Haversine(coords[i], coords[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d // mirror; the diagonal keeps its zero from make
		}
	}

	return m
}

// Dim returns the matrix order n.
func (m *Matrix) Dim() int { return m.n }

// At returns the distance between indices i and j, in kilometers.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }
