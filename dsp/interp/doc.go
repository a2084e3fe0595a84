// Package interp provides interpolation of sparse, irregularly spaced samples.
//
// The central type is [NaturalSpline], a piecewise cubic interpolant through a
// set of strictly increasing knots with zero second derivative at both end
// knots. Typical workflow:
//
//   - NewNaturalSpline(x, y) solves the tridiagonal system once
//   - At(x) evaluates a single point
//   - EvalInto(dst, xs) evaluates an ascending grid in one sweep
//
// Outside the knot span the spline continues as a straight line with the
// slope of the adjacent end segment. Values there carry no particular
// confidence; callers that care should keep queries inside [Min, Max].
package interp
