// Package route - shared types, options, and sentinel errors.
package route

import (
	"errors"

	"github.com/katalvlaran/routeopt/geo"
)

// DefaultEps is the stock 2-opt improvement tolerance. It matches the 1e-9
// stabilization grid of TourDistance, so "shortens the cycle by more than
// Eps" stays well-defined on stabilized costs.
const DefaultEps = 1e-9

// DefaultStarts is the stock cap on nearest-neighbor start indices tried by
// Solve (start ∈ {0 .. min(n, DefaultStarts)−1}).
const DefaultStarts = 5

// Sentinel errors. The kernel never wraps or decorates these; callers test
// with errors.Is.
var (
	// ErrDimensionMismatch reports a tour whose length differs from the
	// matrix order, or a nil matrix where one is required.
	ErrDimensionMismatch = errors.New("route: tour/matrix dimension mismatch")

	// ErrInvalidTour reports a tour that is not a permutation of [0, n):
	// an index repeats or falls outside the range.
	ErrInvalidTour = errors.New("route: tour is not a permutation")

	// ErrStartOutOfRange reports a start index outside [0, n).
	ErrStartOutOfRange = errors.New("route: start index out of range")

	// ErrUnknownVehicle reports a vehicle class absent from the speed table.
	ErrUnknownVehicle = errors.New("route: unknown vehicle class")

	// ErrBadOptions reports a non-positive tolerance or start cap.
	ErrBadOptions = errors.New("route: invalid options")
)

// Waypoint is one stop of a route. Fields are caller-supplied and treated as
// immutable; the kernel never mints or rewrites identifiers.
type Waypoint struct {
	ID      string  // opaque identifier, caller-owned
	Name    string  // display name
	Lat     float64 // latitude, decimal degrees
	Lon     float64 // longitude, decimal degrees
	Address string  // optional free-form address, may be empty
}

// Coord returns the waypoint's geographic coordinate.
func (w Waypoint) Coord() geo.Coord { return geo.Coord{Lat: w.Lat, Lon: w.Lon} }

// Vehicle selects a row of the frozen speed table.
type Vehicle uint8

// Recognized vehicle classes.
const (
	// VehicleCar averages 45 km/h.
	VehicleCar Vehicle = iota
	// VehicleBike averages 25 km/h.
	VehicleBike
)

// vehicleSpeedKmh is the frozen class→speed table. Adding a class is one
// constant plus one entry here; no solver logic changes.
var vehicleSpeedKmh = map[Vehicle]float64{
	VehicleCar:  45,
	VehicleBike: 25,
}

// SpeedKmh returns the fixed average speed of the class in km/h, or
// ErrUnknownVehicle for classes missing from the table.
func (v Vehicle) SpeedKmh() (float64, error) {
	s, ok := vehicleSpeedKmh[v]
	if !ok {
		return 0, ErrUnknownVehicle
	}

	return s, nil
}

// RouteResult is one evaluated visiting order.
type RouteResult struct {
	// Tour is a permutation of [0, n): waypoint indices in visiting order,
	// implicitly closed (the last index connects back to the first).
	Tour []int

	// DistanceKm is the total cycle distance, stabilized to the 1e-9 grid.
	DistanceKm float64

	// TimeMin is the estimated travel time in minutes at the vehicle speed.
	TimeMin float64
}

// OptimizationResult pairs the route in the caller's original order with its
// optimized reordering, plus derived savings. Savings are floored at zero:
// the kernel never reports a regression as an improvement.
type OptimizationResult struct {
	Original  RouteResult // input order, evaluated as-is
	Optimized RouteResult // reordered tour, anchored at index 0

	SavedKm      float64 // Original minus Optimized distance, never negative
	SavedMin     float64 // Original minus Optimized time, never negative
	SavedPercent float64 // SavedKm as a share of Original.DistanceKm, in [0, 100]
}

// Options tunes an optimization pass. Start from DefaultOptions and override
// fields as needed; validation rejects non-positive values with ErrBadOptions.
type Options struct {
	// Eps is the 2-opt acceptance tolerance: a segment reversal is adopted
	// only when it shortens the cycle by more than Eps, which keeps
	// FP-noise-level "improvements" from looping forever. Must be > 0.
	Eps float64

	// Starts caps how many nearest-neighbor start indices Solve tries on
	// the heuristic path. Must be ≥ 1.
	Starts int
}

// DefaultOptions returns the tuning used by the stock kernel.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, Starts: DefaultStarts}
}
