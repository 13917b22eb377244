package pathedit

import (
	"fmt"
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(50, -20), Pt(60, 10)}
	for _, split := range []float64{0.1, 0.3, 0.5, 0.77} {
		t.Run(fmt.Sprintf("t=%g", split), func(t *testing.T) {
			a, b := c.Subdivide(split)
			diff(t, c.P0, a.P0)
			diff(t, a.P3, b.P0)
			diff(t, c.P3, b.P3)
			for i := range 11 {
				u := float64(i) / 10
				assertNear(t, a.Eval(u), c.Eval(split*u), 1e-9)
				assertNear(t, b.Eval(u), c.Eval(split+(1-split)*u), 1e-9)
			}
		})
	}
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(20, 0)}
	d0, d1 := c.Tangents()
	// The first control point coincides with the start, so the tangent
	// comes from the second.
	diff(t, Vec(10, 10), d0)
	diff(t, Vec(10, -10), d1)
}

func TestCubicBezNearest(t *testing.T) {
	verify := func(c CubicBez, pt Point, want float64) {
		t.Helper()
		if _, got := c.Nearest(pt, 1e-6); math.Abs(got-want) > 1e-6 {
			t.Errorf("Nearest(%v) = %v, want %v", pt, got, want)
		}
	}
	// y = x³
	c := CubicBez{Pt(0, 0), Pt(1.0/3, 0), Pt(2.0/3, 0), Pt(1, 1)}
	for i := 1; i <= 10; i++ {
		x := float64(i) / 10
		verify(c, Pt(x, x*x*x), x)
	}
	verify(c, Pt(1.1, 1.1), 1)
	verify(c, Pt(-0.1, 0), 0)
	a := Rotate(0.5)
	verify(c.Transform(a), Pt(0.5, 0.125).Transform(a), 0.5)
}

func TestCubicBezNearestLoop(t *testing.T) {
	// The curve crosses itself and turns back at its top, (50, 75).
	c := CubicBez{Pt(0, 0), Pt(150, 100), Pt(-50, 100), Pt(100, 0)}
	target := c.Eval(0.5)
	d, u := c.Nearest(target, 1e-6)
	if d > 1e-10 || math.Abs(u-0.5) > 1e-6 {
		t.Errorf("got distance² %g at t=%g, want 0 at t=0.5", d, u)
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(50, -20), Pt(60, 10)}
	sub := c.Subsegment(0.2, 0.7)
	for i := range 11 {
		u := float64(i) / 10
		assertNear(t, sub.Eval(u), c.Eval(0.2+0.5*u), 1e-9)
	}
}
