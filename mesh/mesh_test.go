package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
)

//----------------------------------------------------------------------------//
// Constructor and Validate Tests
//----------------------------------------------------------------------------//

// quadPositions is the unit square in the z=0 plane, reused across tests.
func quadPositions() []r3.Vec {
	return []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
}

// quadFaces splits the square into two triangles along the 0–2 diagonal.
func quadFaces() [][3]int {
	return [][3]int{{0, 1, 2}, {0, 2, 3}}
}

// TestNew_Valid verifies that a well-formed mesh passes validation.
func TestNew_Valid(t *testing.T) {
	m, err := mesh.New(quadPositions(), quadFaces())
	require.NoError(t, err)
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())
	require.False(t, m.HasFeatures())
	require.Equal(t, 0, m.FeatureWidth())
}

// TestNew_Errors verifies each sentinel for malformed shapes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		pos   []r3.Vec
		faces [][3]int
		err   error
	}{
		{"NoVertices", nil, nil, mesh.ErrNoVertices},
		{"FaceIndexTooLarge", quadPositions(), [][3]int{{0, 1, 4}}, mesh.ErrFaceIndexRange},
		{"FaceIndexNegative", quadPositions(), [][3]int{{0, -1, 2}}, mesh.ErrFaceIndexRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.New(tc.pos, tc.faces)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewWithFeatures_Shape covers the feature-matrix row and width checks.
func TestNewWithFeatures_Shape(t *testing.T) {
	// One row per vertex, uniform width: accepted.
	feat := [][]float64{{1, 0}, {0, 1}, {1, 1}, {0, 0}}
	m, err := mesh.NewWithFeatures(quadPositions(), quadFaces(), feat)
	require.NoError(t, err)
	require.True(t, m.HasFeatures())
	require.Equal(t, 2, m.FeatureWidth())

	// Wrong row count: ErrFeatureRows.
	_, err = mesh.NewWithFeatures(quadPositions(), quadFaces(), feat[:3])
	require.ErrorIs(t, err, mesh.ErrFeatureRows)

	// Ragged rows: ErrFeatureWidth.
	ragged := [][]float64{{1, 0}, {0}, {1, 1}, {0, 0}}
	_, err = mesh.NewWithFeatures(quadPositions(), quadFaces(), ragged)
	require.ErrorIs(t, err, mesh.ErrFeatureWidth)
}

// TestValidate_NilMesh verifies the nil-receiver sentinel.
func TestValidate_NilMesh(t *testing.T) {
	var m *mesh.Mesh
	require.ErrorIs(t, m.Validate(), mesh.ErrNilMesh)
}

//----------------------------------------------------------------------------//
// Clone Tests
//----------------------------------------------------------------------------//

// TestClone_Independence verifies that mutating a clone never leaks into the
// original mesh, across all three backing slices.
func TestClone_Independence(t *testing.T) {
	feat := [][]float64{{1}, {2}, {3}, {4}}
	m, err := mesh.NewWithFeatures(quadPositions(), quadFaces(), feat)
	require.NoError(t, err)

	c := m.Clone()
	c.Positions[0] = r3.Vec{X: 9, Y: 9, Z: 9}
	c.Faces[0][0] = 3
	c.Features[0][0] = -1

	require.Equal(t, r3.Vec{}, m.Positions[0])
	require.Equal(t, 0, m.Faces[0][0])
	require.Equal(t, 1.0, m.Features[0][0])
}

// TestClone_Nil verifies that cloning a nil mesh yields nil, not a panic.
func TestClone_Nil(t *testing.T) {
	var m *mesh.Mesh
	require.Nil(t, m.Clone())
}
