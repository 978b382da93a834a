// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// state.go - the private working set owned by one Simplify call.
//
// The pipeline stages (quadrics.go, boundary.go, pairs.go, engine.go,
// compact.go) all mutate this one value in strict sequence; nothing here is
// shared with the caller's mesh and nothing escapes except the compacted
// result. Liveness is explicit ([]bool per vertex and face) — no sentinel
// magic values inside the arrays.
package simplify

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
	"github.com/katalvlaran/qem/quadric"
)

// state is the mutable working set of one simplification run.
type state struct {
	cfg Options

	pos   []r3.Vec          // vertex positions, overwritten in place on merge
	feat  [][]float64       // optional feature rows, same liveness as pos
	faces [][3]int          // face triples, rewritten in place on merge
	quads []quadric.Quadric // per-vertex accumulated quadrics

	vertAlive []bool // vertex liveness; dead vertices never re-enter
	faceAlive []bool // face liveness; dead faces are skipped everywhere
	liveVerts int    // count of true entries in vertAlive

	vertFaces [][]int // face ids incident to each vertex (filtered on use)
	vertPairs [][]int // pair ids incident to each vertex (filtered on use)

	pairs []*pair  // all candidate pairs ever created; removed ones stay put
	queue pairHeap // lazy min-heap of (pair id, version, error)
}

// newState deep-copies m into a fresh working set. Faces that are already
// degenerate (two or more coincident indices) are marked dead immediately:
// they span no plane and must not survive into the output.
//
// Complexity: O(N·F + M) time and memory.
func newState(m *mesh.Mesh, cfg Options) *state {
	work := m.Clone()

	n := len(work.Positions)
	st := &state{
		cfg:       cfg,
		pos:       work.Positions,
		feat:      work.Features,
		faces:     work.Faces,
		vertAlive: make([]bool, n),
		faceAlive: make([]bool, len(work.Faces)),
		liveVerts: n,
		vertFaces: make([][]int, n),
		vertPairs: make([][]int, n),
	}
	for i := range st.vertAlive {
		st.vertAlive[i] = true
	}

	var (
		fid int
		f   [3]int
		c   int
	)
	for fid, f = range st.faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue // born degenerate: stays dead
		}
		st.faceAlive[fid] = true
		for c = 0; c < 3; c++ {
			st.vertFaces[f[c]] = append(st.vertFaces[f[c]], fid)
		}
	}

	return st
}
