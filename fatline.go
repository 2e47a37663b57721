package bezier

// FatLine is a strip bounded by two parallel lines that contains an entire
// cubic Bézier curve. Min and Max share Thin's direction and differ only in
// their offset coefficient; by the convex-hull property, the curve cannot
// leave the strip between them.
type FatLine struct {
	// Thin is the baseline the strip was grown from.
	Thin Line
	// Min is the strip edge with the smallest offset coefficient.
	Min Line
	// Max is the strip edge with the largest offset coefficient.
	Max Line
}

// FatLine returns the strip bounding c along its chord: the baseline runs
// through the curve's endpoints and the edges are the parallels through the
// interior control points that are furthest out on either side.
func (c Cubic) FatLine() FatLine {
	thin := c.chordLine()
	l1 := thin.ParallelThrough(c.P1)
	l2 := thin.ParallelThrough(c.P2)
	return FatLine{
		Thin: thin,
		Min:  thin.WithC(min(thin.C, l1.C, l2.C)),
		Max:  thin.WithC(max(thin.C, l1.C, l2.C)),
	}
}

// PerpendicularFatLine returns the strip bounding c across its chord. Unlike
// [Cubic.FatLine] the baseline does not touch the curve, so all four control
// points contribute to the edges.
//
// Clipping against both strips of a curve bounds the other curve in two
// independent directions, which converges faster when the curves cross at a
// shallow angle relative to the chord.
func (c Cubic) PerpendicularFatLine() FatLine {
	thin := c.chordLine().PerpendicularThrough(c.P0)
	l1 := thin.ParallelThrough(c.P1)
	l2 := thin.ParallelThrough(c.P2)
	l3 := thin.ParallelThrough(c.P3)
	return FatLine{
		Thin: thin,
		Min:  thin.WithC(min(thin.C, l1.C, l2.C, l3.C)),
		Max:  thin.WithC(max(thin.C, l1.C, l2.C, l3.C)),
	}
}

// chordLine returns the line through the curve's endpoints. When the
// endpoints coincide the chord is undefined, so the direction falls back to
// the first distinct control point; a fully collapsed curve yields a
// horizontal line through the single point it occupies.
func (c Cubic) chordLine() Line {
	switch {
	case c.P0 != c.P3:
		return LineBetween(c.P0, c.P3)
	case c.P0 != c.P1:
		return LineBetween(c.P0, c.P1)
	case c.P0 != c.P2:
		return LineBetween(c.P0, c.P2)
	default:
		return Line{A: 0, B: 1, C: -c.P0.Y}
	}
}
