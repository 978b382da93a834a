// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// boundary.go - stage 2: boundary penalty injection.
package simplify

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
	"github.com/katalvlaran/qem/quadric"
)

// normSquaredTol is the squared-length floor below which a direction vector
// is treated as zero when constructing penalty planes.
const normSquaredTol = 1e-24

// penalizeBoundary detects boundary edges (used by exactly one live face)
// and adds to both endpoints a stiff "virtual plane" quadric: the plane
// containing the edge and perpendicular to the adjacent face, scaled by
// cfg.BoundaryPenalty. Any point moving off the boundary line is charged
// the penalty times its squared distance to that plane, so the greedy loop
// keeps silhouettes in place.
//
// A zero penalty weight disables the stage. Edges whose adjacent face is
// degenerate (no normal) or whose endpoints coincide are skipped — no plane
// can be constructed, so no bias is applied.
//
// Complexity: O(M + E log E) time, O(E) memory.
func (st *state) penalizeBoundary() {
	if st.cfg.BoundaryPenalty == 0 {
		return
	}

	// 1) Edge census over live faces, remembering one incident face per edge.
	type edgeUse struct {
		count int
		fid   int
	}
	use := make(map[mesh.Edge]*edgeUse, len(st.faces)*3/2)

	var (
		fid  int
		f    [3]int
		c    int
		e    mesh.Edge
		info *edgeUse
		ok   bool
	)
	for fid, f = range st.faces {
		if !st.faceAlive[fid] {
			continue
		}
		for c = 0; c < 3; c++ {
			if f[c] == f[(c+1)%3] {
				continue
			}
			e = mesh.NewEdge(f[c], f[(c+1)%3])
			if info, ok = use[e]; ok {
				info.count++
			} else {
				use[e] = &edgeUse{count: 1, fid: fid}
			}
		}
	}

	// 2) Collect boundary edges in deterministic (A, B) order; map iteration
	//    order must not leak into floating-point accumulation order.
	boundary := make([]mesh.Edge, 0)
	for e, info = range use {
		if info.count == 1 {
			boundary = append(boundary, e)
		}
	}
	sort.Slice(boundary, func(i, j int) bool {
		if boundary[i].A != boundary[j].A {
			return boundary[i].A < boundary[j].A
		}

		return boundary[i].B < boundary[j].B
	})

	// 3) Build and add the perpendicular penalty quadric per boundary edge.
	var (
		adj     [3]int
		normal  r3.Vec
		edgeDir r3.Vec
		perp    r3.Vec
		pq      quadric.Quadric
	)
	for _, e = range boundary {
		adj = st.faces[use[e].fid]

		normal = r3.Cross(
			r3.Sub(st.pos[adj[1]], st.pos[adj[0]]),
			r3.Sub(st.pos[adj[2]], st.pos[adj[0]]),
		)
		if r3.Norm2(normal) <= normSquaredTol {
			continue // adjacent face spans no plane
		}

		edgeDir = r3.Sub(st.pos[e.B], st.pos[e.A])
		if r3.Norm2(edgeDir) <= normSquaredTol {
			continue // endpoints coincide
		}

		// Plane normal: perpendicular to both the edge and the face normal,
		// i.e. the plane contains the edge and stands upright on the face.
		perp = r3.Cross(r3.Unit(edgeDir), r3.Unit(normal))
		if r3.Norm2(perp) <= normSquaredTol {
			continue
		}
		perp = r3.Unit(perp)

		pq = quadric.FromPlane(perp, -r3.Dot(perp, st.pos[e.A])).Scale(st.cfg.BoundaryPenalty)
		st.quads[e.A] = st.quads[e.A].Add(pq)
		st.quads[e.B] = st.quads[e.B].Add(pq)
	}
}
