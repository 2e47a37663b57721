package bezier

import "fmt"

// Interval is a sub-range of a curve's [0, 1] parameter domain. An interval
// with Low > High is empty; [Interval.IsEmpty] reports this.
type Interval struct {
	Low  float64
	High float64
}

// unitInterval covers a curve's entire parameter domain.
var unitInterval = Interval{Low: 0, High: 1}

// emptyInterval is the canonical empty interval, as produced by clipping
// steps that reject the whole domain.
var emptyInterval = Interval{Low: 1, High: 0}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Low, iv.High)
}

// Width returns the extent of the interval. It is negative for empty
// intervals.
func (iv Interval) Width() float64 {
	return iv.High - iv.Low
}

// Mid returns the interval's midpoint.
func (iv Interval) Mid() float64 {
	return 0.5 * (iv.Low + iv.High)
}

// IsEmpty reports whether the interval contains no parameters.
func (iv Interval) IsEmpty() bool {
	return iv.Low > iv.High
}

// Contains reports whether t lies within the interval.
func (iv Interval) Contains(t float64) bool {
	return t >= iv.Low && t <= iv.High
}

// Lerp maps a parameter that is relative to the interval back to the space
// the interval itself is expressed in: 0 maps to Low, 1 to High.
func (iv Interval) Lerp(t float64) float64 {
	return iv.Low + t*(iv.High-iv.Low)
}

// Intersect returns the overlap of two intervals. The result is empty if
// they are disjoint.
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{
		Low:  max(iv.Low, o.Low),
		High: min(iv.High, o.High),
	}
}
