package pathedit

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(4, 0).Sub(Pt(1, 4)))
	diff(t, Pt(2, 3), Pt(0, 0).Midpoint(Pt(4, 6)))
	diff(t, Pt(1, 1.5), Pt(0, 0).Lerp(Pt(4, 6), 0.25))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointNear(t *testing.T) {
	if !Pt(0, 0).Near(Pt(0.005, 0), 0.01) {
		t.Error("points 0.005 apart should be near at tolerance 0.01")
	}
	if Pt(0, 0).Near(Pt(0.01, 0), 0.01) {
		t.Error("tolerance should be exclusive")
	}
}

func TestVec2(t *testing.T) {
	v := Vec(3, 4)
	if v.Hypot() != 5 {
		t.Errorf("got length %v, want 5", v.Hypot())
	}
	diff(t, Vec(0.6, 0.8), v.Normalize())
	diff(t, Vec(-4, 3), v.Perp())
	if d := v.Dot(v.Perp()); d != 0 {
		t.Errorf("perpendicular vector has dot product %v", d)
	}
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
	if !Vec(math.NaN(), 0).IsNaN() {
		t.Error("vector should be NaN")
	}
}
