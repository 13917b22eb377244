package pathedit

import (
	"math"
	"testing"
)

func TestQuadBezSubdivide(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(20, 40), Pt(60, 0)}
	for _, split := range []float64{0.2, 0.5, 0.9} {
		a, b := q.Subdivide(split)
		diff(t, a.P2, b.P0)
		for i := range 11 {
			u := float64(i) / 10
			assertNear(t, a.Eval(u), q.Eval(split*u), 1e-9)
			assertNear(t, b.Eval(u), q.Eval(split+(1-split)*u), 1e-9)
		}
	}
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(30, 60), Pt(60, 0)}
	c := q.Raise()
	for i := range 11 {
		u := float64(i) / 10
		assertNear(t, c.Eval(u), q.Eval(u), 1e-9)
	}
}

func TestQuadBezNearest(t *testing.T) {
	verify := func(q QuadBez, pt Point, want float64) {
		t.Helper()
		if _, got := q.Nearest(pt); math.Abs(got-want) > 1e-6 {
			t.Errorf("Nearest(%v) = %v, want %v", pt, got, want)
		}
	}
	// y = x²
	q := QuadBez{Pt(-1, 1), Pt(0, -1), Pt(1, 1)}
	verify(q, Pt(0, 0), 0.5)
	verify(q, Pt(0, 0.1), 0.5)
	verify(q, Pt(0, -0.1), 0.5)
	verify(q, Pt(0.5, 0.25), 0.75)
	verify(q, Pt(1, 1), 1)
	verify(q, Pt(1.1, 1.1), 1)
	verify(q, Pt(-1.1, 1.1), 0)
	a := Rotate(0.5)
	verify(q.Transform(a), Pt(0.5, 0.25).Transform(a), 0.75)

	// A straight quadratic has no cubic term in its distance derivative.
	q = QuadBez{Pt(-1, 0), Pt(0, 0), Pt(1, 0)}
	verify(q, Pt(0, 0), 0.5)
	verify(q, Pt(0, 1), 0.5)
}
