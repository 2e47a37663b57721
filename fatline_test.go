package bezier

import (
	"math"
	"testing"
)

func TestFatLine(t *testing.T) {
	c := Cubic{Pt(18, 122), Pt(15, 178), Pt(247, 173), Pt(251, 242)}
	fl := c.FatLine()

	if math.Abs(fl.Min.C-40.70803) > 1e-4 {
		t.Errorf("Min.C = %g, want 40.70803", fl.Min.C)
	}
	if math.Abs(fl.Max.C-151.37787) > 1e-4 {
		t.Errorf("Max.C = %g, want 151.37787", fl.Max.C)
	}

	// all three lines are parallel to the chord
	if fl.Min.A != fl.Thin.A || fl.Min.B != fl.Thin.B {
		t.Error("Min is not parallel to the baseline")
	}
	if fl.Max.A != fl.Thin.A || fl.Max.B != fl.Thin.B {
		t.Error("Max is not parallel to the baseline")
	}

	// the extreme offsets pass through the control points that caused them
	if d := fl.Min.DistanceTo(c.P2); math.Abs(d) > 1e-9 {
		t.Errorf("Min misses P2 by %g", d)
	}
	if d := fl.Max.DistanceTo(c.P1); math.Abs(d) > 1e-9 {
		t.Errorf("Max misses P1 by %g", d)
	}
}

func TestFatLineContainsCurve(t *testing.T) {
	// every point of the curve lies inside the strip
	curves := []Cubic{
		{Pt(18, 122), Pt(15, 178), Pt(247, 173), Pt(251, 242)},
		{Pt(24, 21), Pt(189, 40), Pt(159, 137), Pt(101, 261)},
		{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)},
	}
	for _, c := range curves {
		for _, fl := range []FatLine{c.FatLine(), c.PerpendicularFatLine()} {
			const n = 100
			for i := 0; i < n+1; i++ {
				pt := c.Eval(float64(i) / float64(n))
				const slack = 1e-9
				if d := fl.Min.DistanceTo(pt); d > slack {
					t.Errorf("%v: point %v is %g outside the Min edge", c, pt, d)
				}
				if d := fl.Max.DistanceTo(pt); d < -slack {
					t.Errorf("%v: point %v is %g outside the Max edge", c, pt, d)
				}
			}
		}
	}
}

func TestFatLineDegenerateChord(t *testing.T) {
	// closed loop: endpoints coincide, the chord falls back to P0→P1
	c := Cubic{Pt(50, 50), Pt(100, 0), Pt(100, 100), Pt(50, 50)}
	fl := c.FatLine()
	if fl.Thin.IsNaN() {
		t.Fatal("fat line of a closed loop is NaN")
	}
	if d := fl.Thin.DistanceTo(c.P0); math.Abs(d) > 1e-9 {
		t.Errorf("baseline misses P0 by %g", d)
	}
	if d := fl.Thin.DistanceTo(c.P1); math.Abs(d) > 1e-9 {
		t.Errorf("baseline misses P1 by %g", d)
	}

	// fully collapsed curve
	p := Pt(3, 4)
	fl = Cubic{p, p, p, p}.FatLine()
	if fl.Thin.IsNaN() {
		t.Fatal("fat line of a point curve is NaN")
	}
	if d := fl.Thin.DistanceTo(p); math.Abs(d) > 1e-12 {
		t.Errorf("baseline misses the point by %g", d)
	}
	if fl.Min.C != fl.Max.C {
		t.Error("point curve should produce a zero-width strip")
	}
}
