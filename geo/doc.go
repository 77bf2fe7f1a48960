// Package geo provides the geographic primitives of the route-optimization
// kernel: decimal-degree coordinates, great-circle distance on the 6371 km
// sphere (haversine), and a dense symmetric distance matrix built once per
// optimization run.
//
// Everything here is a pure function or an immutable value: no I/O, no
// logging, no shared state. Coordinate validation is deliberately NOT
// performed: out-of-range inputs produce a numerically meaningless distance
// and rejecting them is the caller's concern.
package geo
