// Package routeopt is your in-memory kernel for optimizing the visiting
// order of geographic waypoints: great-circle distances in, comparable
// original and optimized routes out.
//
// 🚀 What is routeopt?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Geo primitives: decimal-degree coordinates & haversine distance (6371 km sphere)
//		• Distance matrices: dense, symmetric, built once per solve
//		• Exact optimization: exhaustive search with a pinned anchor (n ≤ 8)
//		• Heuristics: multi-start nearest-neighbor construction
//		• Local search: first-improvement 2-opt refinement
//		• Route accounting: cycle distance, travel-time estimates, savings
//
// ✨ Why choose routeopt?
//
//   - Predictable – pure functions, no RNG, no clocks, same output every run
//   - Honest numbers – one cost oracle for every solver, savings floored at zero
//   - Pure Go – no cgo, no network, no hidden deps
//   - Small surface – one Solve call, granular pieces when you need them
//
// Under the hood, everything is organized under two subpackages:
//
//	geo/   - Coord, Haversine, Matrix: the distance model
//	route/ - Waypoint, Vehicle, the solver family & the Solve entry point
//
// Quick ASCII example:
//
//	    B───C
//	   /     \
//	  A───────D
//
//	four stops; Solve returns the input-order cycle and the shorter one.
//
// Dive into examples/ for a runnable courier round demo.
//
//	go get github.com/katalvlaran/routeopt
package routeopt
