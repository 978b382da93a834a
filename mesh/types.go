// Package mesh - core types and sentinel errors for triangulated meshes.
package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by mesh constructors and accessors.
var (
	// ErrNilMesh indicates that a nil *Mesh was passed where a mesh is required.
	ErrNilMesh = errors.New("mesh: mesh is nil")

	// ErrNoVertices indicates that the mesh has an empty position list.
	ErrNoVertices = errors.New("mesh: mesh must have at least one vertex")

	// ErrFaceIndexRange indicates that a face references a vertex index
	// outside the valid range [0, VertexCount).
	ErrFaceIndexRange = errors.New("mesh: face index out of range")

	// ErrFeatureRows indicates that the feature matrix does not have exactly
	// one row per vertex.
	ErrFeatureRows = errors.New("mesh: feature rows must match vertex count")

	// ErrFeatureWidth indicates that feature rows have inconsistent widths.
	ErrFeatureWidth = errors.New("mesh: feature rows must share one width")
)

// Mesh is a triangulated surface held fully in memory.
//
// Positions holds one 3-D point per vertex. Faces holds index triples into
// Positions; orientation is taken as given and never re-derived. Features is
// optional: when non-nil it carries exactly one fixed-width row per vertex
// (colors, normals, UVs — the package is agnostic to the meaning).
//
// A Mesh is a plain value container: it carries no liveness flags and no
// acceleration structures. Algorithms that mutate meshes (simplify) work on
// a private Clone and return a fresh Mesh.
type Mesh struct {
	Positions []r3.Vec    // one point per vertex
	Faces     [][3]int    // index triples into Positions
	Features  [][]float64 // optional; len == len(Positions) when present
}

// Edge is an unordered vertex-index pair in canonical order (A < B).
// Use NewEdge to construct one; the zero value {0,0} is not a valid edge.
type Edge struct {
	A, B int
}

// NewEdge returns the canonical Edge for the unordered pair {a, b}.
// Complexity: O(1).
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}
