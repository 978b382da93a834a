package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// New constructs a Mesh from positions and faces, validating shape up front.
// The slices are adopted, not copied; callers that need to keep mutating the
// inputs should pass copies or Clone the result.
//
// Returns ErrNoVertices if positions is empty and ErrFaceIndexRange if any
// face references an index outside [0, len(positions)).
//
// Complexity: O(M) time, O(1) extra space.
func New(positions []r3.Vec, faces [][3]int) (*Mesh, error) {
	m := &Mesh{Positions: positions, Faces: faces}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// NewWithFeatures constructs a Mesh carrying a per-vertex feature matrix.
// In addition to the New checks, features must have exactly one row per
// vertex (ErrFeatureRows) and all rows must share one width (ErrFeatureWidth).
//
// Complexity: O(M + N) time, O(1) extra space.
func NewWithFeatures(positions []r3.Vec, faces [][3]int, features [][]float64) (*Mesh, error) {
	m := &Mesh{Positions: positions, Faces: faces, Features: features}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate re-checks the structural invariants of m. It is called by the
// constructors and again by algorithms that accept externally assembled
// meshes (fail fast before any computation begins).
//
// Checks, in order:
//  1. m non-nil (ErrNilMesh).
//  2. at least one vertex (ErrNoVertices).
//  3. every face index within [0, N) (ErrFaceIndexRange, with context).
//  4. if Features present: exactly N rows (ErrFeatureRows) of uniform width
//     (ErrFeatureWidth).
//
// Complexity: O(M + N) time.
func (m *Mesh) Validate() error {
	if m == nil {
		return ErrNilMesh
	}
	n := len(m.Positions)
	if n == 0 {
		return ErrNoVertices
	}

	var (
		f [3]int // current face under validation
		i int    // face position
		c int    // corner position within the face
	)
	for i, f = range m.Faces {
		for c = 0; c < 3; c++ {
			if f[c] < 0 || f[c] >= n {
				return fmt.Errorf("%w: face %d corner %d references %d (have %d vertices)",
					ErrFaceIndexRange, i, c, f[c], n)
			}
		}
	}

	if m.Features == nil {
		return nil
	}
	if len(m.Features) != n {
		return fmt.Errorf("%w: %d rows for %d vertices", ErrFeatureRows, len(m.Features), n)
	}
	w := len(m.Features[0])
	for i = 1; i < n; i++ {
		if len(m.Features[i]) != w {
			return fmt.Errorf("%w: row %d has width %d, row 0 has %d",
				ErrFeatureWidth, i, len(m.Features[i]), w)
		}
	}

	return nil
}

// Clone returns a deep copy of m sharing no memory with the original.
// Cloning a nil mesh returns nil.
//
// Complexity: O(N·F + M) time and memory.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	out := &Mesh{
		Positions: make([]r3.Vec, len(m.Positions)),
		Faces:     make([][3]int, len(m.Faces)),
	}
	copy(out.Positions, m.Positions)
	copy(out.Faces, m.Faces)
	if m.Features != nil {
		out.Features = make([][]float64, len(m.Features))
		for i, row := range m.Features {
			out.Features[i] = make([]float64, len(row))
			copy(out.Features[i], row)
		}
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// FaceCount returns the number of faces. Complexity: O(1).
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// HasFeatures reports whether a per-vertex feature matrix is attached.
// Complexity: O(1).
func (m *Mesh) HasFeatures() bool { return m.Features != nil }

// FeatureWidth returns the width of the feature rows, or 0 when no feature
// matrix is attached. Complexity: O(1).
func (m *Mesh) FeatureWidth() int {
	if len(m.Features) == 0 {
		return 0
	}

	return len(m.Features[0])
}
