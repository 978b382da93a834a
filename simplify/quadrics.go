// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// quadrics.go - stage 1: per-vertex quadric accumulation.
package simplify

import "github.com/katalvlaran/qem/quadric"

// accumulateQuadrics seeds every vertex with the zero quadric, then adds the
// supporting-plane quadric of each live face to all three of its corners.
// Degenerate faces contribute the zero quadric (see quadric.FromTriangle) —
// uninformative, never fatal.
//
// Complexity: O(M) time, O(N) memory.
func (st *state) accumulateQuadrics() {
	st.quads = make([]quadric.Quadric, len(st.pos))

	var (
		fid int
		f   [3]int
		q   quadric.Quadric
		c   int
	)
	for fid, f = range st.faces {
		if !st.faceAlive[fid] {
			continue
		}
		q = quadric.FromTriangle(st.pos[f[0]], st.pos[f[1]], st.pos[f[2]])
		for c = 0; c < 3; c++ {
			st.quads[f[c]] = st.quads[f[c]].Add(q)
		}
	}
}
