// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// compact.go - stage 6: dense output extraction.
package simplify

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
)

// compact strips every dead vertex and face out of the working set and
// returns a fresh, dense mesh. Surviving vertices keep their relative
// order, so one monotone remap suffices for all face indices.
//
// Faces that still reference a dead vertex, or that degenerate under the
// remap, are dropped here as a safety net — the engine removes them
// eagerly, so hitting that path indicates nothing worse than a face the
// engine never touched.
//
// Complexity: O(N·F + M) time and memory.
func (st *state) compact() *mesh.Mesh {
	// 1) Monotone remap from old to dense indices; -1 marks dead vertices.
	remap := make([]int, len(st.pos))
	live := 0
	var i int
	for i = range st.pos {
		if st.vertAlive[i] {
			remap[i] = live
			live++
		} else {
			remap[i] = -1
		}
	}

	// 2) Dense positions and feature rows, in surviving order.
	outPos := make([]r3.Vec, 0, live)
	var outFeat [][]float64
	if st.feat != nil {
		outFeat = make([][]float64, 0, live)
	}
	for i = range st.pos {
		if !st.vertAlive[i] {
			continue
		}
		outPos = append(outPos, st.pos[i])
		if st.feat != nil {
			row := make([]float64, len(st.feat[i]))
			copy(row, st.feat[i])
			outFeat = append(outFeat, row)
		}
	}

	// 3) Dense faces under the remap.
	outFaces := make([][3]int, 0, len(st.faces))
	var (
		fid     int
		f       [3]int
		a, b, c int
	)
	for fid, f = range st.faces {
		if !st.faceAlive[fid] {
			continue
		}
		a, b, c = remap[f[0]], remap[f[1]], remap[f[2]]
		if a < 0 || b < 0 || c < 0 {
			continue // dead reference: safety net
		}
		if a == b || b == c || a == c {
			continue // degenerate under remap: safety net
		}
		outFaces = append(outFaces, [3]int{a, b, c})
	}

	return &mesh.Mesh{Positions: outPos, Faces: outFaces, Features: outFeat}
}
