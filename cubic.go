package bezier

import (
	"fmt"
	"sort"
)

// MaxExtrema is the maximum number of extrema a cubic Bézier can have: up to
// two in each coordinate.
const MaxExtrema = 4

// Cubic is a cubic Bézier curve, defined by its four control points. P0 and
// P3 are the curve's endpoints; P1 and P2 are the interior control points.
// The parameter domain is [0, 1].
//
// Cubic is a value type. Operations such as [Cubic.SplitAt] return new
// curves; they never modify their receiver.
type Cubic struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c Cubic) String() string {
	return fmt.Sprintf("Cubic(%v, %v, %v, %v)", c.P0, c.P1, c.P2, c.P3)
}

// Eval evaluates the curve at t using the cubic Bernstein blend.
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Start returns the curve's start point, P0.
func (c Cubic) Start() Point {
	return c.P0
}

// End returns the curve's end point, P3.
func (c Cubic) End() Point {
	return c.P3
}

// SplitAt subdivides the curve at t using de Casteljau's algorithm. The two
// returned curves trace [0, t] and [t, 1] of the original, each
// re-parameterized to [0, 1].
func (c Cubic) SplitAt(t float64) (Cubic, Cubic) {
	mid01 := c.P0.Lerp(c.P1, t)
	mid12 := c.P1.Lerp(c.P2, t)
	mid23 := c.P2.Lerp(c.P3, t)

	mid0112 := mid01.Lerp(mid12, t)
	mid1223 := mid12.Lerp(mid23, t)

	mid := mid0112.Lerp(mid1223, t)

	return Cubic{c.P0, mid01, mid0112, mid},
		Cubic{mid, mid1223, mid23, c.P3}
}

// Split2 subdivides the curve at t0 and t1, returning three curves tracing
// [0, t0], [t0, t1] and [t1, 1] of the original.
//
// It expects 0 ≤ t0 ≤ t1 ≤ 1. At t0 = 1 the renormalization of t1 into the
// right-hand half degenerates; both trailing curves collapse to the end
// point instead of dividing by zero.
func (c Cubic) Split2(t0, t1 float64) (Cubic, Cubic, Cubic) {
	left, rest := c.SplitAt(t0)
	if t0 >= 1 {
		end := Cubic{c.P3, c.P3, c.P3, c.P3}
		return left, end, end
	}
	mid, right := rest.SplitAt((t1 - t0) / (1 - t0))
	return left, mid, right
}

// Subdivide subdivides the curve into halves. It is equivalent to, but
// cheaper than, SplitAt(0.5).
func (c Cubic) Subdivide() (Cubic, Cubic) {
	pm := c.Eval(0.5)
	return Cubic{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		Cubic{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Extrema returns the parameters at which the curve is at an extremum in x
// or y, in increasing order. Only extrema in the interior of the domain are
// reported.
func (c Cubic) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4
	// possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// curve over its whole domain.
func (c Cubic) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// IntersectLine returns the parameters at which the curve crosses the given
// line, in no particular order.
//
// The basic technique is to determine x and y as cubic polynomials of t, then
// plug those into the line's implicit equation (giving the signed distance
// from the line as a cubic in t) and find that cubic's roots.
func (c Cubic) IntersectLine(l Line) ([3]float64, int) {
	const epsilon = 1e-9
	px0, px1, px2, px3 := cubicCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	c0 := l.A*px0 + l.B*py0 + l.C
	c1 := l.A*px1 + l.B*py1
	c2 := l.A*px2 + l.B*py2
	c3 := l.A*px3 + l.B*py3
	ts, n := SolveCubic(c0, c1, c2, c3)
	var ret [3]float64
	var retN int
	for _, t := range ts[:n] {
		if t >= -epsilon && t <= 1+epsilon {
			ret[retN] = min(max(t, 0.0), 1.0)
			retN++
		}
	}
	return ret, retN
}

// Return polynomial coefficients given cubic bezier coordinates.
func cubicCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}

// IsInf reports whether at least one control point coordinate is infinite.
func (c Cubic) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

// IsNaN reports whether at least one control point coordinate is NaN.
func (c Cubic) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
