// SPDX-License-Identifier: MIT
// Package: qem/meshbuild
//
// impl_fixtures.go - regression fixtures with known reduction behavior.
package meshbuild

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
)

// TwinFan returns a 10-vertex strip of two fans meeting in the middle — a
// connected open mesh that contracts cleanly one vertex at a time all the
// way down to a handful of vertices, which makes it the workhorse fixture
// for stepwise reduction tests.
func TwinFan() *mesh.Mesh {
	return &mesh.Mesh{
		Positions: []r3.Vec{
			{X: -1, Y: -1, Z: -1},
			{X: -0.5, Y: 0, Z: 0},
			{X: -1, Y: 1, Z: 1},
			{X: 0, Y: 0.25, Z: 0.25},
			{X: 0, Y: -0.25, Z: -0.25},
			{X: 1, Y: -1, Z: -1},
			{X: 0.5, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 1},
			{X: 0, Y: -1, Z: -1},
			{X: 0, Y: 1, Z: 1},
		},
		Faces: [][3]int{
			{0, 1, 4}, {1, 3, 4}, {1, 2, 3}, {3, 6, 7},
			{3, 4, 6}, {4, 5, 6}, {0, 8, 4}, {5, 4, 8},
			{2, 3, 9}, {3, 9, 7}, {5, 6, 7}, {0, 1, 2},
		},
	}
}

// DisjointTriangles returns two triangles sharing no vertices, mirrored
// about the yz-plane, whose innermost vertices (indices 2 and 5) sit gap
// apart. With a welding threshold above gap those two vertices become a
// contraction candidate; without one the components can never fuse.
//
// Returns ErrBadGap for negative gaps; gap 0 places the pair coincident.
//
// Layout (top view, z = 0):
//
//	1         4
//	│  2   5  │
//	0         3
func DisjointTriangles(gap float64) (*mesh.Mesh, error) {
	if gap < 0 {
		return nil, ErrBadGap
	}
	h := gap / 2

	m := &mesh.Mesh{
		Positions: []r3.Vec{
			{X: -2, Y: -2, Z: -2},
			{X: -2, Y: 0, Z: 0},
			{X: 0, Y: h, Z: 0},
			{X: 2, Y: -2, Z: -2},
			{X: 2, Y: 0, Z: 0},
			{X: 0, Y: -h, Z: 0},
		},
		Faces: [][3]int{{0, 1, 2}, {5, 3, 4}},
	}

	return m, nil
}
