// SPDX-License-Identifier: MIT
// Package: qem/meshbuild
//
// Package meshbuild constructs small deterministic triangle meshes for
// tests, benchmarks and examples.
//
// What:
//
//   - Fixed fixtures: Quad (unit square, two triangles), Cube (closed box),
//     Icosahedron (closed 12-vertex sphere approximation), TwinFan (the
//     10-vertex double-fan reduction fixture).
//   - Parameterized fixtures: Plane(nx, nz) open grid, Fan(n) triangle fan,
//     DisjointTriangles(gap) two unconnected triangles with one close
//     vertex pair for welding tests.
//   - AttachPositionFeatures copies each vertex position into a 3-wide
//     feature row, giving feature-interpolation paths something to chew on.
//
// Why:
//
//   - Simplification behavior is easiest to pin down on meshes whose edge
//     structure, boundary and symmetries are known exactly; hand-building
//     them in every test file invites drift.
//
// Determinism: every builder emits vertices and faces in one documented,
// fixed order — equal calls produce byte-identical meshes.
//
// Errors:
//
//   - ErrTooSmall: a parameterized builder was asked for a mesh below its
//     minimum meaningful size.
//   - ErrBadGap: DisjointTriangles was given a negative gap.
package meshbuild
