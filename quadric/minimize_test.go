package quadric_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qem/quadric"
)

// condTol mirrors the simplify package default for the singularity guard.
const condTol = 1e-10

//----------------------------------------------------------------------------//
// Closed-Form Solve Tests
//----------------------------------------------------------------------------//

// TestMinimize_ThreePlanes verifies the exact solve: three orthogonal planes
// intersect in a single point, which must be recovered with zero cost.
func TestMinimize_ThreePlanes(t *testing.T) {
	q := quadric.FromPlane(r3.Vec{X: 1}, -1)      // x = 1
	q = q.Add(quadric.FromPlane(r3.Vec{Y: 1}, -2)) // y = 2
	q = q.Add(quadric.FromPlane(r3.Vec{Z: 1}, 3))  // z = -3

	p1 := r3.Vec{X: 0, Y: 0, Z: 0}
	p2 := r3.Vec{X: 2, Y: 4, Z: -6}
	opt, cost, solved := q.Minimize(p1, p2, condTol)

	require.True(t, solved, "well-conditioned system must use the closed form")
	require.InDelta(t, 1.0, opt.X, tol)
	require.InDelta(t, 2.0, opt.Y, tol)
	require.InDelta(t, -3.0, opt.Z, tol)
	require.InDelta(t, 0.0, cost, tol)
}

// TestMinimize_SkewedPlanes verifies the solve on a non-axis-aligned system
// with a strictly positive residual at the optimum.
func TestMinimize_SkewedPlanes(t *testing.T) {
	n := r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1})
	q := quadric.FromPlane(r3.Vec{X: 1}, 0).
		Add(quadric.FromPlane(r3.Vec{Y: 1}, 0)).
		Add(quadric.FromPlane(r3.Vec{Z: 1}, 0)).
		Add(quadric.FromPlane(n, -1)) // plane at distance 1 from the origin

	opt, cost, solved := q.Minimize(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1}, condTol)

	require.True(t, solved)
	// Symmetric in x/y/z, pulled off the origin toward the fourth plane.
	require.InDelta(t, opt.X, opt.Y, tol)
	require.InDelta(t, opt.Y, opt.Z, tol)
	require.Greater(t, opt.X, 0.0)
	require.Greater(t, cost, 0.0)
	require.InDelta(t, q.Eval(opt), cost, tol)
}

//----------------------------------------------------------------------------//
// Fallback Tests
//----------------------------------------------------------------------------//

// TestMinimize_SingularFallsBack verifies the midpoint/endpoint fallback on
// a rank-one system (a single plane fixes only one direction).
func TestMinimize_SingularFallsBack(t *testing.T) {
	q := quadric.FromPlane(r3.Vec{Z: 1}, 0) // only z is constrained

	p1 := r3.Vec{X: 0, Y: 0, Z: 1}
	p2 := r3.Vec{X: 2, Y: 0, Z: -1}
	opt, cost, solved := q.Minimize(p1, p2, condTol)

	require.False(t, solved, "rank-one system must take the fallback")
	// Midpoint (1,0,0) lies on the plane: cheapest of the three candidates.
	require.InDelta(t, 1.0, opt.X, tol)
	require.InDelta(t, 0.0, opt.Z, tol)
	require.InDelta(t, 0.0, cost, tol)
}

// TestMinimize_FallbackPicksEndpoint verifies endpoint selection when an
// endpoint beats the midpoint.
func TestMinimize_FallbackPicksEndpoint(t *testing.T) {
	q := quadric.FromPlane(r3.Vec{Z: 1}, 0)

	p1 := r3.Vec{X: 0, Y: 0, Z: 0} // on the plane: cost 0
	p2 := r3.Vec{X: 0, Y: 0, Z: 4} // cost 16; midpoint costs 4
	opt, cost, solved := q.Minimize(p1, p2, condTol)

	require.False(t, solved)
	require.Equal(t, p1, opt)
	require.InDelta(t, 0.0, cost, tol)
}

// TestMinimize_ZeroQuadric verifies the degenerate extreme: no planes at
// all. The fallback midpoint wins at zero cost.
func TestMinimize_ZeroQuadric(t *testing.T) {
	var q quadric.Quadric

	p1 := r3.Vec{X: -1}
	p2 := r3.Vec{X: 1}
	opt, cost, solved := q.Minimize(p1, p2, condTol)

	require.False(t, solved)
	require.Equal(t, r3.Vec{}, opt)
	require.Equal(t, 0.0, cost)
}

// TestMinimize_ScaledStaysSolvable verifies the scale-aware guard: a heavily
// weighted but well-conditioned system must still use the closed form.
func TestMinimize_ScaledStaysSolvable(t *testing.T) {
	q := quadric.FromPlane(r3.Vec{X: 1}, -1).
		Add(quadric.FromPlane(r3.Vec{Y: 1}, -1)).
		Add(quadric.FromPlane(r3.Vec{Z: 1}, -1)).
		Scale(1e6)

	opt, cost, solved := q.Minimize(r3.Vec{}, r3.Vec{X: 2, Y: 2, Z: 2}, condTol)

	require.True(t, solved)
	require.InDelta(t, 1.0, opt.X, 1e-9)
	require.InDelta(t, 1.0, opt.Y, 1e-9)
	require.InDelta(t, 1.0, opt.Z, 1e-9)
	require.InDelta(t, 0.0, cost, 1e-6)
}
