// SPDX-License-Identifier: MIT
// Package: qem/meshbuild
//
// impl_solids.go - closed (boundary-free) fixtures: Cube, Icosahedron.
package meshbuild

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
)

// Cube returns the unit cube [0,1]³ as 8 vertices and 12 triangles, two per
// side, all wound outward. A closed mesh: no boundary edges at all.
//
// Vertex order: binary counting (x fastest), i.e. index = 4z + 2y + x.
func Cube() *mesh.Mesh {
	pos := make([]r3.Vec, 0, 8)
	var x, y, z int
	for z = 0; z < 2; z++ {
		for y = 0; y < 2; y++ {
			for x = 0; x < 2; x++ {
				pos = append(pos, r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}

	faces := [][3]int{
		{0, 2, 3}, {0, 3, 1}, // z = 0, normal -z
		{4, 5, 7}, {4, 7, 6}, // z = 1, normal +z
		{0, 1, 5}, {0, 5, 4}, // y = 0, normal -y
		{2, 6, 7}, {2, 7, 3}, // y = 1, normal +y
		{0, 4, 6}, {0, 6, 2}, // x = 0, normal -x
		{1, 3, 7}, {1, 7, 5}, // x = 1, normal +x
	}

	return &mesh.Mesh{Positions: pos, Faces: faces}
}

// Icosahedron returns the regular icosahedron inscribed in the unit sphere:
// 12 vertices, 30 edges, 20 triangles, closed. The standard golden-ratio
// rectangle construction, normalized to unit radius.
func Icosahedron() *mesh.Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	s := 1 / math.Sqrt(1+phi*phi) // normalize (±1, ±phi, 0) onto the sphere
	a, b := s, phi*s

	pos := []r3.Vec{
		{X: -a, Y: b, Z: 0}, {X: a, Y: b, Z: 0}, {X: -a, Y: -b, Z: 0}, {X: a, Y: -b, Z: 0},
		{X: 0, Y: -a, Z: b}, {X: 0, Y: a, Z: b}, {X: 0, Y: -a, Z: -b}, {X: 0, Y: a, Z: -b},
		{X: b, Y: 0, Z: -a}, {X: b, Y: 0, Z: a}, {X: -b, Y: 0, Z: -a}, {X: -b, Y: 0, Z: a},
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	return &mesh.Mesh{Positions: pos, Faces: faces}
}
