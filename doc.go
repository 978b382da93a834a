// Package qem is an in-memory toolkit for reducing triangulated 3-D surface
// meshes with the quadric error metric (QEM) — from mesh primitives to the
// full greedy edge-contraction pipeline.
//
// 🚀 What is qem?
//
//	A small, deterministic library that brings together:
//		• Mesh primitives: positions, triangle faces, optional per-vertex features
//		• Quadrics: symmetric 4×4 plane-distance forms with exact additive merge
//		• Simplification: greedy lowest-error edge contraction to a target count
//		• Boundary preservation: stiff penalty quadrics along silhouette edges
//		• Welding: contraction of close-but-disconnected vertex pairs
//		• Builders: deterministic fixture meshes for tests and benchmarks
//
// ✨ Why choose qem?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same mesh, target and options ⇒ identical output
//   - Pure Go – no cgo; linear algebra rides gonum
//   - Honest errors – sentinel errors for bad input, local recovery elsewhere
//
// Under the hood, everything is organized under four subpackages:
//
//	mesh/      — Mesh value type, shape validation, edge & boundary census
//	quadric/   — symmetric 4×4 quadric forms, optimal-placement solver
//	simplify/  — the QEM pipeline: quadrics → penalties → pairs → contraction
//	meshbuild/ — deterministic mesh fixtures (plane, fan, cube, icosahedron, …)
//
// Quick ASCII example:
//
//	    3───2            3───2
//	    │ ╱ │     ⇒        ╲ │
//	    0───1                1
//
//	a unit square of two triangles contracted once along a boundary edge,
//	leaving three vertices and a single face.
//
// Dive into README.md for full examples and the pipeline walkthrough.
//
//	go get github.com/katalvlaran/qem
package qem
