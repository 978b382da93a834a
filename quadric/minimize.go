package quadric

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Minimize returns the point x minimizing q.Eval(x), together with the cost
// at that point, for a contraction of the segment (p1, p2).
//
// Writing q as [[A b]; [bᵀ c]], the unconstrained minimizer solves
// A·x = −b and the cost at x is Eval(x). The system is solved with
// gonum/mat; it is treated as singular when |det A| ≤ tol·max(1, s³), where
// s is the largest absolute entry of A — the determinant of a scaled form
// grows cubically, so the guard must too.
//
// On a singular or failed solve, Minimize falls back to evaluating q at the
// midpoint of (p1, p2) and at both endpoints, returning the cheapest of the
// three. The boolean reports whether the closed-form solve was used.
//
// Complexity: O(1) — one 3×3 determinant plus one 3×3 solve.
func (q Quadric) Minimize(p1, p2 r3.Vec, tol float64) (r3.Vec, float64, bool) {
	a := mat.NewSymDense(3, []float64{
		q.XX, q.XY, q.XZ,
		q.XY, q.YY, q.YZ,
		q.XZ, q.YZ, q.ZZ,
	})

	// Scale-aware singularity guard.
	s := math.Max(math.Abs(q.XX), math.Max(math.Abs(q.YY), math.Abs(q.ZZ)))
	s = math.Max(s, math.Max(math.Abs(q.XY), math.Max(math.Abs(q.XZ), math.Abs(q.YZ))))
	if math.Abs(mat.Det(a)) <= tol*math.Max(1, s*s*s) {
		p, cost := q.cheapestOf(p1, p2)

		return p, cost, false
	}

	// Solve A·x = −b for the stationary point.
	b := mat.NewVecDense(3, []float64{-q.XW, -q.YW, -q.ZW})
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		// Numerically singular despite the determinant guard.
		p, cost := q.cheapestOf(p1, p2)

		return p, cost, false
	}
	opt := r3.Vec{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}

	return opt, q.Eval(opt), true
}

// cheapestOf evaluates q at the midpoint of (p1, p2) and at both endpoints
// and returns the cheapest candidate. Midpoint is tried first so that exact
// ties on symmetric configurations resolve to it deterministically.
func (q Quadric) cheapestOf(p1, p2 r3.Vec) (r3.Vec, float64) {
	mid := r3.Scale(0.5, r3.Add(p1, p2))

	best, bestCost := mid, q.Eval(mid)
	if c := q.Eval(p1); c < bestCost {
		best, bestCost = p1, c
	}
	if c := q.Eval(p2); c < bestCost {
		best, bestCost = p2, c
	}

	return best, bestCost
}
