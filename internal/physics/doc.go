// Package physics implements the analytical proxy models for tennis racket
// impact and vibration behaviour. All functions are pure and elementwise over
// equal-length slices; they exist to be swept across thousands of candidate
// designs per run, so none of them validates physical ranges: out-of-range
// inputs extrapolate the underlying formulas. Callers gate inputs through
// sim.Bounds.
package physics
