package bezier

import (
	"fmt"
	"math"
)

// Line is a line in normalized implicit form: the set of points satisfying
// A·x + B·y + C = 0, with A² + B² = 1. The normalization makes
// [Line.DistanceTo] a true signed euclidean distance, which the clipping
// machinery relies on.
//
// The zero value is degenerate; construct lines with [NewLine] or
// [LineBetween].
type Line struct {
	A float64
	B float64
	C float64
}

// NewLine returns the line a·x + b·y + c = 0, normalized so that a² + b² = 1.
//
// It panics if a and b are both zero, as no line satisfies that equation.
func NewLine(a, b, c float64) Line {
	d := math.Hypot(a, b)
	if d == 0 {
		panic("bezier: degenerate line: a and b are both zero")
	}
	return Line{
		A: a / d,
		B: b / d,
		C: c / d,
	}
}

// LineBetween returns the line through p0 and p1.
//
// The two points must be distinct; coincident points produce a degenerate
// line and panic.
func LineBetween(p0, p1 Point) Line {
	if p0.X == p1.X {
		if p0.Y == p1.Y {
			panic(fmt.Sprintf("bezier: degenerate line: %v and %v coincide", p0, p1))
		}
		// Vertical line; the slope form below cannot express it.
		return Line{A: 1, B: 0, C: -p0.X}
	}
	d := p1.Sub(p0)
	slope := d.Y / d.X
	offset := p0.Y - slope*p0.X
	return NewLine(slope, -1, offset)
}

func (l Line) String() string {
	return fmt.Sprintf("%gx + %gy + %g = 0", l.A, l.B, l.C)
}

// YAt returns the line's y value at the given x. The second return value is
// false for vertical lines (B = 0), which have no unique y for any x.
func (l Line) YAt(x float64) (float64, bool) {
	if l.B == 0 {
		return 0, false
	}
	return -(l.A*x + l.C) / l.B, true
}

// XIntercept returns the x at which the line crosses the x axis. The second
// return value is false for horizontal lines (A = 0), which never cross it.
func (l Line) XIntercept() (float64, bool) {
	if l.A == 0 {
		return 0, false
	}
	return -l.C / l.A, true
}

// DistanceTo returns the signed perpendicular distance from pt to the line.
// Points on opposite sides of the line report distances of opposite sign;
// the magnitude is the euclidean distance.
func (l Line) DistanceTo(pt Point) float64 {
	return l.A*pt.X + l.B*pt.Y + l.C
}

// Negate returns the same geometric line with all coefficients sign-flipped,
// reversing the sign convention of [Line.DistanceTo].
func (l Line) Negate() Line {
	return Line{
		A: -l.A,
		B: -l.B,
		C: -l.C,
	}
}

// WithC returns the line with the same direction as l but with the given
// offset coefficient.
func (l Line) WithC(c float64) Line {
	return Line{
		A: l.A,
		B: l.B,
		C: c,
	}
}

// ParallelThrough returns the line parallel to l that passes through pt.
func (l Line) ParallelThrough(pt Point) Line {
	return Line{
		A: l.A,
		B: l.B,
		C: -l.A*pt.X - l.B*pt.Y,
	}
}

// PerpendicularThrough returns the line perpendicular to l that passes
// through pt.
func (l Line) PerpendicularThrough(pt Point) Line {
	return Line{
		A: -l.B,
		B: l.A,
		C: l.B*pt.X - l.A*pt.Y,
	}
}

// IsNaN reports whether at least one coefficient is NaN.
func (l Line) IsNaN() bool {
	return math.IsNaN(l.A) || math.IsNaN(l.B) || math.IsNaN(l.C)
}
