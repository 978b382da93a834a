// SPDX-License-Identifier: MIT
// Package: qem/meshbuild
//
// impl_plane.go - flat open-boundary fixtures: Quad, Plane, Fan.
package meshbuild

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
)

// Quad returns the unit square in the z=0 plane split into two triangles
// along the 0–2 diagonal:
//
//	3───2
//	│ ╱ │    vertices (0,0) (1,0) (1,1) (0,1), faces (0,1,2) (0,2,3)
//	0───1
//
// All four sides are boundary edges; the diagonal is interior.
func Quad() *mesh.Mesh {
	return &mesh.Mesh{
		Positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

// Plane returns an open flat grid of nx×nz vertices in the y=0 plane at
// unit spacing, each cell split into two triangles. Vertex (i, k) has index
// k·nx + i; vertices are emitted row-major, faces cell by cell.
//
// Returns ErrTooSmall when either side is below MinPlaneSide.
//
// Complexity: O(nx·nz).
func Plane(nx, nz int) (*mesh.Mesh, error) {
	if nx < MinPlaneSide || nz < MinPlaneSide {
		return nil, ErrTooSmall
	}

	pos := make([]r3.Vec, 0, nx*nz)
	var i, k int
	for k = 0; k < nz; k++ {
		for i = 0; i < nx; i++ {
			pos = append(pos, r3.Vec{X: float64(i), Y: 0, Z: float64(k)})
		}
	}

	faces := make([][3]int, 0, 2*(nx-1)*(nz-1))
	var v int
	for k = 0; k < nz-1; k++ {
		for i = 0; i < nx-1; i++ {
			v = k*nx + i
			faces = append(faces,
				[3]int{v, v + 1, v + nx + 1},
				[3]int{v, v + nx + 1, v + nx},
			)
		}
	}

	return &mesh.Mesh{Positions: pos, Faces: faces}, nil
}

// Fan returns a triangle fan of n blades around a hub at the origin: rim
// vertices sit on the unit circle in the z=0 plane at equal angles, the hub
// is vertex 0, and blade i is the face (0, i+1, i+2). Every rim edge is a
// boundary edge, making the fan a boundary-heavy fixture.
//
// Returns ErrTooSmall for n < MinFanBlades.
//
// Complexity: O(n).
func Fan(n int) (*mesh.Mesh, error) {
	if n < MinFanBlades {
		return nil, ErrTooSmall
	}

	pos := make([]r3.Vec, 0, n+2)
	pos = append(pos, r3.Vec{}) // hub
	var (
		i     int
		angle float64
	)
	for i = 0; i <= n; i++ {
		// Rim spans a half-turn so the fan stays open (never a closed disk).
		angle = math.Pi * float64(i) / float64(n)
		pos = append(pos, r3.Vec{X: math.Cos(angle), Y: math.Sin(angle), Z: 0})
	}

	faces := make([][3]int, 0, n)
	for i = 1; i <= n; i++ {
		faces = append(faces, [3]int{0, i, i + 1})
	}

	return &mesh.Mesh{Positions: pos, Faces: faces}, nil
}
