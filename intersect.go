package bezier

import "math"

// DefaultTolerance is a default convergence tolerance for intersection
// parameters. It is suitable for general-purpose use, such as 2D graphics.
const DefaultTolerance = 1e-5

const (
	// maxClipIterations bounds the alternating clip loop. A transversal
	// crossing converges in far fewer iterations; hitting the bound means
	// the clips have stopped making progress.
	maxClipIterations = 64

	// A clip that leaves more than stallShrinkRatio of the interval is not
	// making real progress. stallLimit such clips in a row classify the
	// solve as inconclusive; in enumeration a single one triggers
	// bisection.
	stallShrinkRatio = 0.8
	stallLimit       = 4

	// Two distinct cubics intersect in at most nine points (Bézout).
	maxIntersections = 9

	maxBisectionDepth = 30
)

// Intersection is a single crossing of two curves, identified by the
// parameter it occurs at on each of them.
type Intersection struct {
	// TA is the parameter of the crossing on the first curve.
	TA float64
	// TB is the parameter of the crossing on the second curve.
	TB float64
}

// Status classifies the outcome of [Intersect].
type Status int

const (
	// StatusFound means the solver converged to an isolated intersection.
	StatusFound Status = iota
	// StatusNoIntersection means a clipping step proved that the curves do
	// not intersect.
	StatusNoIntersection
	// StatusInconclusive means the solver exhausted its iteration budget
	// without converging or proving disjointness. The usual causes are
	// curves that are tangent, overlap along a stretch, or cross at several
	// points; see [Intersections] for the latter.
	StatusInconclusive
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoIntersection:
		return "no intersection"
	case StatusInconclusive:
		return "inconclusive"
	default:
		return "unknown status"
	}
}

// curvePart is a view of a shrinking portion of a curve. The span is tracked
// in the original curve's parameter space, so results can be reported on the
// caller's curves no matter how often the part has been re-subdivided.
type curvePart struct {
	curve Cubic
	span  Interval
}

// sub materializes the control points of the part's current portion,
// re-parameterized to [0, 1].
func (p curvePart) sub() Cubic {
	if p.span == unitInterval {
		return p.curve
	}
	_, mid, _ := p.curve.Split2(p.span.Low, p.span.High)
	return mid
}

// narrow composes a clip result, which is relative to the part's current
// portion, onto the span.
func (p curvePart) narrow(iv Interval) curvePart {
	p.span = Interval{
		Low:  p.span.Lerp(iv.Low),
		High: p.span.Lerp(iv.High),
	}
	return p
}

func (p curvePart) bisect() (curvePart, curvePart) {
	mid := p.span.Mid()
	return curvePart{p.curve, Interval{p.span.Low, mid}},
		curvePart{p.curve, Interval{mid, p.span.High}}
}

// clipPhase is the alternation state of the solver: which curve is being
// clipped against the other's fat lines.
type clipPhase int

const (
	phaseClipB clipPhase = iota
	phaseClipA
)

// Intersect narrows a and b down to a single intersection using alternating
// Bézier clipping and reports the parameter pair it converged to. It
// converges when both parameters are known to within tolerance; a
// non-positive tolerance selects [DefaultTolerance].
//
// Intersect finds at most one crossing. When the curves cross several times
// the clipping steps cannot separate the candidates and the result is
// [StatusInconclusive], as it is for tangent or overlapping curves; use
// [Intersections] to enumerate multiple crossings. The Intersection is only
// meaningful when the status is [StatusFound].
func Intersect(a, b Cubic, tolerance float64) (Intersection, Status) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return Intersection{}, StatusNoIntersection
	}

	pa := curvePart{curve: a, span: unitInterval}
	pb := curvePart{curve: b, span: unitInterval}
	phase := phaseClipB
	stalls := 0
	for iter := 0; iter < maxClipIterations; iter++ {
		var target, ref *curvePart
		switch phase {
		case phaseClipB:
			target, ref = &pb, &pa
			phase = phaseClipA
		case phaseClipA:
			target, ref = &pa, &pb
			phase = phaseClipB
		}

		before := target.span.Width()
		iv := Clip(target.sub(), ref.sub())
		if iv.IsEmpty() {
			return Intersection{}, StatusNoIntersection
		}
		*target = target.narrow(iv)

		if pa.span.Width() <= tolerance && pb.span.Width() <= tolerance {
			return Intersection{TA: pa.span.Mid(), TB: pb.span.Mid()}, StatusFound
		}

		if before > 0 && target.span.Width() > stallShrinkRatio*before {
			stalls++
			if stalls >= stallLimit {
				return Intersection{}, StatusInconclusive
			}
		} else {
			stalls = 0
		}
	}
	return Intersection{}, StatusInconclusive
}

// Intersections returns every crossing of a and b, to within the given
// accuracy (non-positive selects [DefaultTolerance]). The result is ordered
// by discovery along a's parameter; at most nine crossings exist between two
// distinct cubics.
//
// The search runs the same alternating clip as [Intersect], but whenever a
// clip fails to shrink the working interval by a meaningful factor (the
// situation Intersect reports as inconclusive) the longer of the two
// intervals is bisected and both halves are searched independently. Curves
// that overlap along a stretch have no isolated crossings to enumerate;
// bounded iteration and recursion make the search give up on such regions
// rather than diverge.
func Intersections(a, b Cubic, accuracy float64) []Intersection {
	if accuracy <= 0 {
		accuracy = DefaultTolerance
	}
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return nil
	}
	return findIntersections(
		curvePart{curve: a, span: unitInterval},
		curvePart{curve: b, span: unitInterval},
		accuracy, 0, nil,
	)
}

func findIntersections(pa, pb curvePart, accuracy float64, depth int, out []Intersection) []Intersection {
	for iter := 0; iter < maxClipIterations && len(out) < maxIntersections; iter++ {
		var target, ref *curvePart
		if iter&1 == 0 {
			target, ref = &pa, &pb
		} else {
			target, ref = &pb, &pa
		}

		before := target.span.Width()
		iv := Clip(target.sub(), ref.sub())
		if iv.IsEmpty() {
			// No intersection in this region.
			return out
		}
		*target = target.narrow(iv)

		if pa.span.Width()+pb.span.Width() <= accuracy {
			// The spans bracket the crossing tightly enough.
			return appendIntersection(out, Intersection{TA: pa.span.Low, TB: pb.span.Low}, accuracy)
		}

		if before > 0 && target.span.Width() > stallShrinkRatio*before {
			// The clip did not separate the remaining candidates. Split the
			// longer interval in half and search both halves.
			if depth >= maxBisectionDepth {
				return out
			}
			if pa.span.Width() > pb.span.Width() {
				left, right := pa.bisect()
				out = findIntersections(left, pb, accuracy, depth+1, out)
				out = findIntersections(right, pb, accuracy, depth+1, out)
			} else {
				left, right := pb.bisect()
				out = findIntersections(pa, left, accuracy, depth+1, out)
				out = findIntersections(pa, right, accuracy, depth+1, out)
			}
			return out
		}
	}
	return out
}

// appendIntersection adds x unless an equivalent crossing was already found.
// Bisection can converge on the same crossing from both sides of a split, so
// near-identical parameter pairs are collapsed.
func appendIntersection(list []Intersection, x Intersection, accuracy float64) []Intersection {
	eps := accuracy * 100
	for _, o := range list {
		if math.Abs(o.TA-x.TA) < eps && math.Abs(o.TB-x.TB) < eps {
			return list
		}
	}
	return append(list, x)
}
