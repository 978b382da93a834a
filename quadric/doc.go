// Package quadric implements the symmetric 4×4 error quadrics at the heart
// of QEM mesh simplification.
//
// What:
//
//   - Quadric stores the 10 independent scalars of a symmetric 4×4 form
//     [[A b]; [bᵀ c]] measuring summed squared point-to-plane distances.
//   - FromPlane builds the rank-one form [n;d][n;d]ᵀ of a single plane.
//   - FromTriangle builds the form of the plane through three points; a
//     zero-area triangle yields the zero quadric rather than an error.
//   - Add/Scale compose quadrics exactly; merging two vertices is Q1 + Q2.
//   - Eval computes the homogeneous cost pᵀQp at a point.
//   - Minimize solves for the cost-minimizing point, falling back to the
//     cheapest of midpoint/endpoints when the 3×3 system is ill-conditioned.
//
// Why:
//
//   - Quadrics let edge contraction score every merge by how far the merged
//     vertex would sit from the planes its neighborhood once spanned,
//     summable in O(1) per merge.
//
// Complexity: every operation is O(1); Minimize performs one 3×3 determinant
// and one 3×3 solve via gonum/mat.
//
// Numerical notes:
//
//   - Quadrics are positive semi-definite by construction (sums of rank-one
//     outer products with non-negative scales); Eval clamps tiny negative
//     results from floating-point drift to 0.
//   - Minimize treats |det A| ≤ tol as singular; callers choose tol
//     (simplify.DefaultCondTol is the library-wide default).
package quadric
