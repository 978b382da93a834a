package simplify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qem/meshbuild"
	"github.com/katalvlaran/qem/quadric"
)

// newRunState builds a fully staged state for m with default options.
func newRunState(tb testing.TB, cfg Options) *state {
	tb.Helper()
	st := newState(meshbuild.TwinFan(), cfg)
	st.accumulateQuadrics()
	st.penalizeBoundary()
	st.collectPairs()

	return st
}

// requireStateInvariants asserts the contraction-loop invariants that must
// hold between any two steps: live faces reference only live vertices, live
// pairs are canonical with live distinct endpoints, and the live counter
// matches the bitset.
func requireStateInvariants(t *testing.T, st *state) {
	t.Helper()

	live := 0
	for _, alive := range st.vertAlive {
		if alive {
			live++
		}
	}
	require.Equal(t, live, st.liveVerts)

	for fid, f := range st.faces {
		if !st.faceAlive[fid] {
			continue
		}
		for c := 0; c < 3; c++ {
			require.True(t, st.vertAlive[f[c]], "live face %d holds dead vertex %d", fid, f[c])
		}
		require.NotEqual(t, f[0], f[1])
		require.NotEqual(t, f[1], f[2])
		require.NotEqual(t, f[0], f[2])
	}

	for pid, p := range st.pairs {
		if p.removed {
			continue
		}
		require.Less(t, p.a, p.b, "live pair %d not canonical", pid)
		require.True(t, st.vertAlive[p.a] && st.vertAlive[p.b],
			"live pair %d holds a dead endpoint", pid)
	}
}

// TestRun_StrictMonotonicity drives the engine one contraction at a time
// and verifies the live vertex count drops by exactly one per step while
// every structural invariant holds.
func TestRun_StrictMonotonicity(t *testing.T) {
	st := newRunState(t, DefaultOptions())
	requireStateInvariants(t, st)

	for want := st.liveVerts - 1; want >= 3; want-- {
		st.run(want)
		require.Equal(t, want, st.liveVerts)
		requireStateInvariants(t, st)
	}
}

// TestContract_QuadricAdditivity verifies that executing a contraction
// leaves the survivor with exactly the elementwise sum of both quadrics.
func TestContract_QuadricAdditivity(t *testing.T) {
	st := newRunState(t, DefaultOptions())

	// Snapshot all quadrics, run one step, and check the survivor of
	// whichever pair executed.
	before := make([]quadric.Quadric, len(st.quads))
	copy(before, st.quads)
	aliveBefore := make([]bool, len(st.vertAlive))
	copy(aliveBefore, st.vertAlive)

	st.run(st.liveVerts - 1)

	// Exactly one vertex died; find it and its surviving partner.
	died := -1
	for i := range st.vertAlive {
		if aliveBefore[i] && !st.vertAlive[i] {
			require.Equal(t, -1, died, "exactly one vertex may die per step")
			died = i
		}
	}
	require.NotEqual(t, -1, died)

	survivor := -1
	for _, p := range st.pairs {
		if p.removed && (p.a == died || p.b == died) && p.target == st.pos[p.a] {
			survivor = p.a
		}
	}
	require.NotEqual(t, -1, survivor)
	require.Equal(t, before[survivor].Add(before[died]), st.quads[survivor])
}

// TestRun_NeverExecutesSelfLoop floods the engine to exhaustion on a welded
// mesh and verifies no retired pair ever executed with equal endpoints:
// executed pairs are exactly those whose target overwrote the survivor.
func TestRun_NeverExecutesSelfLoop(t *testing.T) {
	cfg := DefaultOptions()
	cfg.Threshold = 10 // every vertex pair is a candidate: maximal rewrites

	m, err := meshbuild.DisjointTriangles(0.5)
	require.NoError(t, err)
	st := newState(m, cfg)
	st.accumulateQuadrics()
	st.penalizeBoundary()
	st.collectPairs()

	st.run(1)

	require.Equal(t, 1, st.liveVerts, "full welding reaches a single vertex")
	for pid, p := range st.pairs {
		require.True(t, p.removed, "pair %d must be retired at exhaustion", pid)
		require.Less(t, p.a, p.b, "retired pair %d was rewritten into a self-loop and kept", pid)
	}
	requireStateInvariants(t, st)
}
