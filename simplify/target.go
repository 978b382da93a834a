// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// target.go - stage 4: optimal target and error per candidate pair.
package simplify

import "gonum.org/v1/gonum/floats"

// evaluate fills in p's target position, error and (when the mesh carries
// features) interpolated feature row from the current quadrics and
// positions of its endpoints.
//
// The merged quadric is the exact sum Q[a] + Q[b]; the target is its
// minimizer, or the cheapest of midpoint/endpoints when the placement
// system is singular (quadric.Minimize). Features are merged by plain
// averaging — the same law is applied on initial evaluation and on every
// recomputation after a contraction, so repeated merges stay consistent.
//
// Complexity: O(1) + O(F) for the feature row.
func (st *state) evaluate(p *pair) {
	q := st.quads[p.a].Add(st.quads[p.b])
	p.target, p.err, _ = q.Minimize(st.pos[p.a], st.pos[p.b], st.cfg.CondTol)

	if st.feat == nil {
		return
	}
	if p.feat == nil {
		p.feat = make([]float64, len(st.feat[p.a]))
	}
	floats.AddTo(p.feat, st.feat[p.a], st.feat[p.b])
	floats.Scale(0.5, p.feat)
}
