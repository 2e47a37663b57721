package bezier

import "math"

// clipEpsilon is the distance below which a control point counts as lying on
// a clip line rather than beyond it. Computed distances carry rounding noise,
// and a curve that touches a strip edge exactly, such as at a shared
// endpoint, must not be rejected as disjoint because its distances came out
// fractionally negative.
const clipEpsilon = 1e-9

// ClipAgainstLine computes the sub-interval of the curve's parameter domain
// that can lie on the accepted side of the line, the side where
// [Line.DistanceTo] is non-negative.
//
// The test is the piecewise-linear convex-hull bound of Bézier clipping: the
// four control-point distances are plotted at t = 0, 1/3, 2/3, 1 and the
// domain is trimmed to where their interpolation can reach zero. The result
// is conservative: it never excludes a parameter at which the true curve
// touches or crosses the line, but it does not locate the crossing exactly.
// Distances within clipEpsilon of zero are treated as exactly zero.
//
// If the whole control polygon lies on the rejected side, the returned
// interval is empty.
func (c Cubic) ClipAgainstLine(l Line) Interval {
	e0 := Pt(0.0/3.0, clipDistance(l, c.P0))
	e1 := Pt(1.0/3.0, clipDistance(l, c.P1))
	e2 := Pt(2.0/3.0, clipDistance(l, c.P2))
	e3 := Pt(3.0/3.0, clipDistance(l, c.P3))

	if e0.Y < 0 && e1.Y < 0 && e2.Y < 0 && e3.Y < 0 {
		return emptyInterval
	}

	// Trim the low-t side: interpolate from the rejected t=0 sample towards
	// the other samples and keep the earliest crossing into the accepted
	// region.
	low := 0.0
	if e0.Y < 0 {
		low = 1.0
		for _, e := range [...]Point{e1, e2, e3} {
			if x, ok := LineBetween(e0, e).XIntercept(); ok && x > 0 && x < low {
				low = x
			}
		}
	}

	// Symmetrically trim the high-t side, anchored at the t=1 sample.
	high := 1.0
	if e3.Y < 0 {
		high = 0.0
		for _, e := range [...]Point{e0, e1, e2} {
			if x, ok := LineBetween(e3, e).XIntercept(); ok && x < 1 && x > high {
				high = x
			}
		}
	}

	return Interval{Low: low, High: high}
}

// clipDistance samples a control-point distance for clipping, snapping
// near-zero values to zero so that on-edge points land on the accepted side.
func clipDistance(l Line, pt Point) float64 {
	d := l.DistanceTo(pt)
	if math.Abs(d) < clipEpsilon {
		return 0
	}
	return d
}

// Clip computes the sub-interval of curve's parameter domain that can
// intersect against, by clipping curve against against's bounding strips.
// The returned interval is conservative; an empty interval proves the curves
// do not intersect.
//
// Both the chord-aligned and the perpendicular strip of against are tried
// and the narrower result wins, since either direction may discriminate
// better depending on the angle at which the curves meet.
func Clip(curve, against Cubic) Interval {
	parallel := curve.clipAgainstStrip(against.FatLine())
	perpendicular := curve.clipAgainstStrip(against.PerpendicularFatLine())

	if parallel.IsEmpty() || perpendicular.IsEmpty() {
		return emptyInterval
	}
	if math.Abs(perpendicular.Width()) < math.Abs(parallel.Width()) {
		return perpendicular
	}
	return parallel
}

// clipAgainstStrip clips the curve against both edges of a fat line. The
// interior of the strip is where the distance to the negated Min edge and to
// the Max edge are both non-negative.
func (c Cubic) clipAgainstStrip(fl FatLine) Interval {
	minClip := c.ClipAgainstLine(fl.Min.Negate())
	maxClip := c.ClipAgainstLine(fl.Max)
	return minClip.Intersect(maxClip)
}
