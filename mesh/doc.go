// Package mesh defines the triangulated-surface value type shared by the
// whole module, together with its shape validation and edge census.
//
// What:
//
//   - Mesh wraps vertex positions (gonum r3 vectors), triangle faces
//     (index triples), and an optional per-vertex feature matrix.
//   - New/NewWithFeatures validate shape up front and return sentinel errors.
//   - Edge census: Edges (deduplicated, deterministic order), EdgeUse
//     (unordered pair → number of incident faces), BoundaryEdges (pairs used
//     by exactly one face).
//
// Why:
//
//   - Simplification, fixture builders and callers all need one canonical,
//     caller-owned mesh representation with no hidden sharing.
//   - Boundary detection is the basis of silhouette preservation in
//     simplify; it lives here because it is a property of the mesh itself.
//
// Complexity:
//
//   - Validate:       O(M + N·F)   (faces + feature rows)
//   - Clone:          O(N·F + M)
//   - EdgeUse/Edges:  O(M) build + O(E log E) deterministic ordering
//   - BoundaryEdges:  O(M + E log E)
//
// Errors:
//
//   - ErrNilMesh:        nil *Mesh passed to a method requiring one.
//   - ErrNoVertices:     mesh has no vertices.
//   - ErrFaceIndexRange: a face references an index outside [0, N).
//   - ErrFeatureRows:    feature row count differs from vertex count.
//   - ErrFeatureWidth:   feature rows have differing widths.
package mesh
