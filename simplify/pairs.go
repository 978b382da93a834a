// SPDX-License-Identifier: MIT
// Package: qem/simplify
//
// pairs.go - stage 3: candidate-pair selection and the lazy priority queue.
//
// The queue follows the lazy-decrease-key pattern: re-evaluating a pair
// bumps its version and pushes a fresh heap entry; entries whose version no
// longer matches the pair record are stale and discarded on pop. Only the
// invariant "the globally cheapest live pair is popped next" matters — no
// full re-sort ever happens.
package simplify

import (
	"container/heap"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/mesh"
)

// pair is one contraction candidate. Endpoints are kept canonical (a < b);
// a is always the surviving index when the pair executes.
type pair struct {
	a, b    int       // canonical endpoints, a < b
	err     float64   // quadric cost at target
	target  r3.Vec    // optimal merged position
	feat    []float64 // interpolated feature row (nil without features)
	version int       // bumped on every re-evaluation
	removed bool      // executed, deduplicated, or collapsed to a self-loop
}

// heapItem is one queue entry; stale when version != pairs[id].version.
type heapItem struct {
	id      int
	version int
	err     float64
}

// pairHeap is a min-heap of heapItem ordered by error ascending, with the
// pair id as a deterministic tie-break.
type pairHeap []heapItem

// Len returns the number of items in the heap.
func (h pairHeap) Len() int { return len(h) }

// Less orders by error ascending; equal errors break ties by pair id so
// runs are reproducible.
func (h pairHeap) Less(i, j int) bool {
	if h[i].err != h[j].err {
		return h[i].err < h[j].err
	}

	return h[i].id < h[j].id
}

// Swap swaps two elements in the heap.
func (h pairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// collectPairs enumerates every eligible candidate exactly once:
//
//	(a) every distinct edge of a live face, in face order;
//	(b) when cfg.Threshold > 0, every additional vertex pair within the
//	    welding distance, scanned in ascending (i, j) order.
//
// Each pair is evaluated (target.go) and pushed onto the queue.
//
// Complexity: O(E log E) for edges; welding adds an O(N²) distance scan.
func (st *state) collectPairs() {
	seen := make(map[mesh.Edge]struct{}, len(st.faces)*3/2)

	// (a) mesh edges.
	var (
		fid int
		f   [3]int
		c   int
		e   mesh.Edge
		ok  bool
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
			if _, ok = seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			st.addPair(e.A, e.B)
		}
	}

	// (b) welding pairs within the threshold.
	if st.cfg.Threshold <= 0 {
		return
	}
	limit := st.cfg.Threshold * st.cfg.Threshold
	var i, j int
	for i = 0; i < len(st.pos); i++ {
		for j = i + 1; j < len(st.pos); j++ {
			e = mesh.Edge{A: i, B: j}
			if _, ok = seen[e]; ok {
				continue
			}
			if r3.Norm2(r3.Sub(st.pos[i], st.pos[j])) > limit {
				continue
			}
			seen[e] = struct{}{}
			st.addPair(i, j)
		}
	}
}

// addPair records a fresh candidate (a < b), evaluates its target and error,
// indexes it on both endpoints, and pushes it onto the queue.
//
// Complexity: O(log P) for the heap push.
func (st *state) addPair(a, b int) {
	p := &pair{a: a, b: b}
	st.evaluate(p)

	id := len(st.pairs)
	st.pairs = append(st.pairs, p)
	st.vertPairs[a] = append(st.vertPairs[a], id)
	st.vertPairs[b] = append(st.vertPairs[b], id)
	heap.Push(&st.queue, heapItem{id: id, version: p.version, err: p.err})
}
