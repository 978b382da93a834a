// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// types.go - configuration options and sentinel errors for Simplify.
//
// Design contract (strict):
//   - Functional options resolve into an immutable Options value; no global state.
//   - Option constructors panic on programmer error (negative threshold, …);
//     user input (mesh shape, target) is rejected with sentinel errors instead.
//   - Determinism: equal mesh, target and Options ⇒ identical output.
package simplify

import "errors"

// Sentinel errors returned by Simplify.
var (
	// ErrBadTarget indicates a requested target vertex count below 1.
	ErrBadTarget = errors.New("simplify: target vertex count must be at least 1")

	// ErrBadThreshold indicates a negative welding threshold passed to
	// WithThreshold (panic value; thresholds are programmer configuration).
	ErrBadThreshold = errors.New("simplify: welding threshold must be non-negative")

	// ErrBadPenalty indicates a negative boundary penalty weight passed to
	// WithBoundaryPenalty.
	ErrBadPenalty = errors.New("simplify: boundary penalty must be non-negative")

	// ErrBadCondTol indicates a non-positive singularity tolerance passed to
	// WithCondTol.
	ErrBadCondTol = errors.New("simplify: condition tolerance must be positive")
)

// DefaultBoundaryPenalty is the weight applied to boundary penalty quadrics.
// Large relative to unit-scale face quadrics, so contractions that drag a
// silhouette vertex off its boundary line price out of the greedy queue.
const DefaultBoundaryPenalty = 1000.0

// DefaultCondTol is the determinant tolerance below which the 3×3 optimal
// placement system is treated as singular and the midpoint/endpoint
// fallback is used instead.
const DefaultCondTol = 1e-10

// Options configures one Simplify call.
//
// Threshold       – welding distance: vertex pairs closer than this become
//                   contraction candidates even without a shared face.
//                   0 (default) disables welding entirely.
// BoundaryPenalty – weight of the perpendicular penalty quadrics added to
//                   boundary-edge endpoints; 0 disables boundary
//                   preservation (useful for closed meshes and comparisons).
// CondTol         – singularity tolerance for optimal vertex placement.
type Options struct {
	Threshold       float64
	BoundaryPenalty float64
	CondTol         float64
}

// Option is a functional option for configuring Simplify.
type Option func(*Options)

// WithThreshold enables welding of vertex pairs within distance t, even when
// they share no face — disconnected components can fuse. Must be ≥ 0;
// negative values panic with ErrBadThreshold.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			panic(ErrBadThreshold.Error())
		}
		o.Threshold = t
	}
}

// WithBoundaryPenalty overrides the boundary penalty weight. Zero disables
// boundary preservation; negative values panic with ErrBadPenalty.
func WithBoundaryPenalty(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			panic(ErrBadPenalty.Error())
		}
		o.BoundaryPenalty = w
	}
}

// WithCondTol overrides the singularity tolerance of the placement solver.
// Must be > 0; zero or negative values panic with ErrBadCondTol.
func WithCondTol(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadCondTol.Error())
		}
		o.CondTol = eps
	}
}

// DefaultOptions returns the Options used when no overrides are supplied.
//
// Defaults:
//   - Threshold:       0 (no welding).
//   - BoundaryPenalty: DefaultBoundaryPenalty (silhouettes preserved).
//   - CondTol:         DefaultCondTol.
func DefaultOptions() Options {
	return Options{
		Threshold:       0,
		BoundaryPenalty: DefaultBoundaryPenalty,
		CondTol:         DefaultCondTol,
	}
}
