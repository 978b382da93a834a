package quadric

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateAreaTol is the squared-length floor below which a triangle's
// normal is considered zero and the triangle contributes no plane.
const degenerateAreaTol = 1e-24

// Quadric is a symmetric 4×4 form stored as its 10 independent entries:
//
//	⎡ XX XY XZ XW ⎤
//	⎢ XY YY YZ YW ⎥
//	⎢ XZ YZ ZZ ZW ⎥
//	⎣ XW YW ZW WW ⎦
//
// The zero value is the zero quadric and is the correct accumulator seed.
// Quadric is a small value type; all operations return new values.
type Quadric struct {
	XX, XY, XZ, XW float64
	YY, YZ, YW     float64
	ZZ, ZW         float64
	WW             float64
}

// FromPlane returns the quadric [n;d][n;d]ᵀ of the plane n·x + d = 0.
// The caller is responsible for n being unit length; a scaled normal simply
// scales the whole form.
//
// Complexity: O(1).
func FromPlane(n r3.Vec, d float64) Quadric {
	return Quadric{
		XX: n.X * n.X, XY: n.X * n.Y, XZ: n.X * n.Z, XW: n.X * d,
		YY: n.Y * n.Y, YZ: n.Y * n.Z, YW: n.Y * d,
		ZZ: n.Z * n.Z, ZW: n.Z * d,
		WW: d * d,
	}
}

// FromTriangle returns the quadric of the plane through a, b and c, with the
// normal oriented by the (b-a)×(c-a) winding. A degenerate (collinear or
// coincident) triangle spans no plane and yields the zero quadric —
// uninformative, never an error.
//
// Complexity: O(1).
func FromTriangle(a, b, c r3.Vec) Quadric {
	cross := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if r3.Norm2(cross) <= degenerateAreaTol {
		return Quadric{}
	}
	n := r3.Unit(cross)

	return FromPlane(n, -r3.Dot(n, a))
}

// Add returns the exact elementwise sum q + o. Quadrics compose additively:
// the quadric of a merged vertex is precisely the sum of its parents'.
//
// Complexity: O(1).
func (q Quadric) Add(o Quadric) Quadric {
	return Quadric{
		XX: q.XX + o.XX, XY: q.XY + o.XY, XZ: q.XZ + o.XZ, XW: q.XW + o.XW,
		YY: q.YY + o.YY, YZ: q.YZ + o.YZ, YW: q.YW + o.YW,
		ZZ: q.ZZ + o.ZZ, ZW: q.ZW + o.ZW,
		WW: q.WW + o.WW,
	}
}

// Scale returns q with every entry multiplied by s. Used to weight penalty
// quadrics; s must be non-negative to keep the form positive semi-definite.
//
// Complexity: O(1).
func (q Quadric) Scale(s float64) Quadric {
	return Quadric{
		XX: q.XX * s, XY: q.XY * s, XZ: q.XZ * s, XW: q.XW * s,
		YY: q.YY * s, YZ: q.YZ * s, YW: q.YW * s,
		ZZ: q.ZZ * s, ZW: q.ZW * s,
		WW: q.WW * s,
	}
}

// Eval returns the homogeneous cost [p;1]ᵀ Q [p;1] — the summed squared
// plane distances encoded by q at point p. The result is clamped at 0:
// the form is positive semi-definite, so any negative value is floating-
// point drift, not signal.
//
// Complexity: O(1).
func (q Quadric) Eval(p r3.Vec) float64 {
	v := q.XX*p.X*p.X + q.YY*p.Y*p.Y + q.ZZ*p.Z*p.Z +
		2*(q.XY*p.X*p.Y+q.XZ*p.X*p.Z+q.YZ*p.Y*p.Z) +
		2*(q.XW*p.X+q.YW*p.Y+q.ZW*p.Z) +
		q.WW
	if v < 0 {
		return 0
	}

	return v
}

// IsZero reports whether q is exactly the zero quadric. Complexity: O(1).
func (q Quadric) IsZero() bool {
	return q == Quadric{}
}
