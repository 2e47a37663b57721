package bezier

import "testing"

func TestInterval(t *testing.T) {
	iv := Interval{0.2, 0.8}
	if iv.IsEmpty() {
		t.Error("non-empty interval reported empty")
	}
	if w := iv.Width(); w != 0.6000000000000001 && w != 0.6 {
		t.Errorf("Width() = %g", w)
	}
	if m := iv.Mid(); m != 0.5 {
		t.Errorf("Mid() = %g, want 0.5", m)
	}
	if got := iv.Lerp(0); got != 0.2 {
		t.Errorf("Lerp(0) = %g, want 0.2", got)
	}
	if got := iv.Lerp(1); got != 0.8 {
		t.Errorf("Lerp(1) = %g, want 0.8", got)
	}
	if got := iv.Lerp(0.5); got != 0.5 {
		t.Errorf("Lerp(0.5) = %g, want 0.5", got)
	}

	if !iv.Contains(0.2) || !iv.Contains(0.8) || iv.Contains(0.9) {
		t.Error("Contains misbehaves at the bounds")
	}
}

func TestIntervalIntersect(t *testing.T) {
	a := Interval{0, 0.5}
	b := Interval{0.25, 1}
	diff(t, Interval{0.25, 0.5}, a.Intersect(b))
	diff(t, Interval{0.25, 0.5}, b.Intersect(a))

	c := Interval{0.75, 1}
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint intervals intersect")
	}
	if !emptyInterval.Intersect(a).IsEmpty() {
		t.Error("empty interval intersected to non-empty")
	}
}
