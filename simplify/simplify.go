// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// simplify.go - the public entry point and stage orchestrator.
package simplify

import "github.com/katalvlaran/qem/mesh"

// Simplify reduces m to approximately target vertices by greedy
// quadric-error edge contraction and returns a fresh, compacted mesh.
// The input mesh is never mutated; the result shares no memory with it.
//
// Behavior:
//
//   - target ≥ m.VertexCount(): zero contractions; the result is a compacted
//     copy of the input (identical up to removal of degenerate faces).
//   - Candidates exhausted early (disconnected mesh without welding, or all
//     remaining pairs consumed): the best achievable mesh is returned, with
//     more than target vertices. Not an error — callers requiring an exact
//     count must check the result themselves.
//   - If m carries features, the result carries interpolated features with
//     exactly one row per surviving vertex.
//
// Preconditions and validation (in order):
//  1. m must be structurally valid (mesh.Validate sentinels: ErrNilMesh,
//     ErrNoVertices, ErrFaceIndexRange, ErrFeatureRows, ErrFeatureWidth).
//  2. target must be ≥ 1 (ErrBadTarget).
//
// Options customization:
//
//   - WithThreshold(t): also weld non-adjacent vertex pairs within distance t.
//   - WithBoundaryPenalty(w): override (or, with 0, disable) silhouette
//     preservation.
//   - WithCondTol(eps): override the placement solver's singularity guard.
//
// Complexity: O(M + E log E) setup (+O(N²) with welding), then
// O(log P) amortized per contraction step; single-threaded throughout —
// the greedy order is strictly sequential, each contraction reprices its
// neighborhood before the next pick.
func Simplify(m *mesh.Mesh, target int, opts ...Option) (*mesh.Mesh, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate input shape before any computation (fail fast).
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if target < 1 {
		return nil, ErrBadTarget
	}

	// 3) Build the private working state (deep copy; caller arrays untouched).
	st := newState(m, cfg)

	// 4) Run the pipeline only when there is anything to contract.
	if st.liveVerts > target {
		st.accumulateQuadrics()
		st.penalizeBoundary()
		st.collectPairs()
		st.run(target)
	}

	// 5) Strip dead rows and remap faces into the dense output.
	return st.compact(), nil
}
