// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// engine.go - stage 5: the greedy contraction loop.
package simplify

import "container/heap"

// run executes contractions in ascending error order until the live vertex
// count reaches target or the queue holds no executable candidate.
//
// Each pop is screened before it costs a step:
//   - stale entries (version mismatch) and removed pairs are discarded;
//   - self-loop artifacts (both endpoints collapsed to one vertex by an
//     earlier merge) are discarded, never executed;
//   - pairs with a dead endpoint are discarded (safety net; endpoint death
//     always removes or rewrites the pair eagerly in contract).
//
// Termination: every executed contraction kills exactly one vertex, and
// every discarded entry shrinks the queue, so the loop always halts.
//
// Complexity: O((C·k + S) log P) where C is contractions executed, k the
// pairs touching a surviving vertex, S entries screened out, P queue size.
func (st *state) run(target int) {
	var (
		item heapItem
		p    *pair
	)
	for st.liveVerts > target && st.queue.Len() > 0 {
		item = heap.Pop(&st.queue).(heapItem)
		p = st.pairs[item.id]

		if p.removed || item.version != p.version {
			continue // stale queue entry
		}
		if p.a == p.b {
			p.removed = true

			continue // self-loop artifact from an earlier merge
		}
		if !st.vertAlive[p.a] || !st.vertAlive[p.b] {
			p.removed = true

			continue
		}

		st.contract(item.id)
	}
}

// contract executes candidate id, merging vertex b into vertex a:
//
//  1. overwrite a's position, quadric (exact sum) and feature row;
//  2. mark b dead;
//  3. drop faces containing both endpoints (they collapse to a segment),
//     rewrite b→a in the rest, and move them onto a's incidence list;
//  4. retire the executed pair, splice b's surviving pairs onto a
//     (rewriting b→a, discarding self-loops and duplicates), then
//     re-evaluate and re-queue every pair now touching a.
//
// Complexity: O(deg_faces(b) + k·(1 + log P)) with k pairs touching a.
func (st *state) contract(id int) {
	p := st.pairs[id]
	a, b := p.a, p.b

	// 1) Fold b into a.
	st.pos[a] = p.target
	st.quads[a] = st.quads[a].Add(st.quads[b])
	if st.feat != nil {
		copy(st.feat[a], p.feat)
	}

	// 2) Kill b.
	st.vertAlive[b] = false
	st.liveVerts--
	p.removed = true

	// 3) Faces: collapse or rewrite.
	var (
		fid int
		f   *[3]int
		c   int
	)
	for _, fid = range st.vertFaces[b] {
		if !st.faceAlive[fid] {
			continue
		}
		f = &st.faces[fid]
		if f[0] == a || f[1] == a || f[2] == a {
			st.faceAlive[fid] = false // contained both endpoints: degenerate

			continue
		}
		for c = 0; c < 3; c++ {
			if f[c] == b {
				f[c] = a
			}
		}
		st.vertFaces[a] = append(st.vertFaces[a], fid)
	}
	st.vertFaces[b] = nil

	// 4a) Index a's surviving pairs by opposite endpoint for deduplication.
	var (
		pid   int
		q     *pair
		other int
	)
	existing := make(map[int]struct{}, len(st.vertPairs[a]))
	keep := st.vertPairs[a][:0]
	for _, pid = range st.vertPairs[a] {
		q = st.pairs[pid]
		if q.removed {
			continue
		}
		other = q.a
		if other == a {
			other = q.b
		}
		existing[other] = struct{}{}
		keep = append(keep, pid)
	}
	st.vertPairs[a] = keep

	// 4b) Splice b's pairs onto a, rewriting the dead endpoint.
	for _, pid = range st.vertPairs[b] {
		q = st.pairs[pid]
		if q.removed {
			continue
		}
		other = q.a
		if other == b {
			other = q.b
		}
		if other == a {
			q.removed = true // would become a self-loop

			continue
		}
		if _, dup := existing[other]; dup {
			q.removed = true // a already holds a pair to this endpoint

			continue
		}
		if other < a {
			q.a, q.b = other, a
		} else {
			q.a, q.b = a, other
		}
		existing[other] = struct{}{}
		st.vertPairs[a] = append(st.vertPairs[a], pid)
	}
	st.vertPairs[b] = nil

	// 4c) a's quadric and position changed: every pair touching a is stale.
	//     Re-evaluate with the same law as the initial pass and re-queue.
	for _, pid = range st.vertPairs[a] {
		q = st.pairs[pid]
		st.evaluate(q)
		q.version++
		heap.Push(&st.queue, heapItem{id: pid, version: q.version, err: q.err})
	}
}
