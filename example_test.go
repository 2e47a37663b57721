package bezier_test

import (
	"fmt"

	"github.com/gfxmath/bezier"
)

func ExampleIntersect() {
	// A parabolic arc from (0, 0) to (10, 100), tracing y = x².
	a := bezier.Cubic{
		P0: bezier.Pt(0, 0),
		P1: bezier.Pt(10.0/3, 0),
		P2: bezier.Pt(20.0/3, 100.0/3),
		P3: bezier.Pt(10, 100),
	}
	// A horizontal segment at y = 16, which the arc crosses at x = 4.
	b := bezier.Cubic{
		P0: bezier.Pt(0, 16),
		P1: bezier.Pt(10.0/3, 16),
		P2: bezier.Pt(20.0/3, 16),
		P3: bezier.Pt(10, 16),
	}

	x, status := bezier.Intersect(a, b, 0)
	fmt.Println(status)
	fmt.Printf("t on a: %.3f, t on b: %.3f\n", x.TA, x.TB)
	pt := a.Eval(x.TA)
	fmt.Printf("at (%.1f, %.1f)\n", pt.X, pt.Y)
	// Output:
	// found
	// t on a: 0.400, t on b: 0.400
	// at (4.0, 16.0)
}

func ExampleIntersections() {
	a := bezier.Cubic{
		P0: bezier.Pt(204, 41),
		P1: bezier.Pt(45, 235),
		P2: bezier.Pt(220, 235),
		P3: bezier.Pt(226, 146),
	}
	b := bezier.Cubic{
		P0: bezier.Pt(100, 98),
		P1: bezier.Pt(164, 45),
		P2: bezier.Pt(187, 98),
		P3: bezier.Pt(119, 247),
	}

	xs := bezier.Intersections(a, b, 0)
	fmt.Println(len(xs), "crossings")
	// Output:
	// 2 crossings
}
