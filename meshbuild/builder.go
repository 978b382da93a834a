// SPDX-License-Identifier: MIT
// Package: qem/meshbuild
//
// builder.go - sentinel errors and shared helpers for the fixture builders.
package meshbuild

import (
	"errors"

	"github.com/katalvlaran/qem/mesh"
)

var (
	// ErrTooSmall indicates a parameterized builder was asked for fewer
	// vertices than its topology needs.
	ErrTooSmall = errors.New("meshbuild: requested size below the minimum for this topology")

	// ErrBadGap indicates a negative separation passed to DisjointTriangles.
	ErrBadGap = errors.New("meshbuild: separation gap must be non-negative")
)

// MinPlaneSide is the smallest grid side that still yields faces (2 vertices
// per axis ⇒ one quad ⇒ two triangles).
const MinPlaneSide = 2

// MinFanBlades is the smallest fan that is still a surface (one triangle).
const MinFanBlades = 1

// AttachPositionFeatures returns a copy of m whose feature matrix holds each
// vertex's own (x, y, z) as its feature row. After simplification the
// averaged feature rows then track merged positions closely, which makes
// interpolation easy to sanity-check in tests.
//
// Complexity: O(N + M).
func AttachPositionFeatures(m *mesh.Mesh) *mesh.Mesh {
	out := m.Clone()
	out.Features = make([][]float64, len(out.Positions))
	for i, p := range out.Positions {
		out.Features[i] = []float64{p.X, p.Y, p.Z}
	}

	return out
}
