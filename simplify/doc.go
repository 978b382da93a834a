// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// Package simplify reduces triangulated meshes by greedy quadric-error edge
// contraction, the classic QEM scheme.
//
// What:
//
//   - Simplify(m, target, opts...) returns a fresh mesh whose vertex count
//     is at (or, when candidates run out, near) the requested target.
//   - Pipeline, staged strictly in order over one private working state:
//     quadric accumulation → boundary penalties → candidate-pair selection →
//     target evaluation → greedy contraction loop → final compaction.
//   - Candidate pairs are every mesh edge, plus (when WithThreshold(t) with
//     t > 0) every vertex pair closer than t — welding of close but
//     disconnected geometry.
//   - Per-vertex feature rows, when attached to the input mesh, are merged
//     with the same averaging law at initial evaluation and at every
//     recomputation, and returned compacted alongside the positions.
//
// Why:
//
//   - Level-of-detail generation, collision-proxy extraction, and mesh
//     compression all need "same shape, fewer triangles" with a principled
//     error measure; summed plane quadrics give exactly that in O(1) per
//     candidate.
//
// Pipeline invariants (hold after every contraction):
//
//   - Live faces reference only live vertices.
//   - A vertex's quadric is precisely the sum of the quadrics it absorbed.
//   - The live vertex count strictly decreases per executed contraction.
//   - No self-pair (v1 == v2) is ever executed; stale heap entries are
//     discarded without consuming a step.
//
// Complexity:
//
//   - Quadric accumulation: O(M); boundary census: O(M + E log E).
//   - Pair selection: O(E log E), plus O(N²) when welding is enabled.
//   - Contraction loop: O(C·(k + log P)) for C contractions with k pairs
//     touching the surviving vertex and P live heap entries — a lazy
//     min-heap with generation tags, never a full re-sort per step.
//   - Compaction: O(N·F + M).
//
// Errors:
//
//   - ErrBadTarget: requested target vertex count < 1.
//   - mesh sentinel errors (ErrNilMesh, ErrNoVertices, ErrFaceIndexRange,
//     ErrFeatureRows, ErrFeatureWidth) from input validation.
//   - Everything else — singular placement systems, degenerate faces,
//     stale pairs, candidate exhaustion before the target — is recovered
//     locally and never surfaces.
//
// See: README.md for a full walkthrough.
package simplify
