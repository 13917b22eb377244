package pathedit

import (
	"math"
	"testing"
)

var testSegments = map[string]Segment{
	"line":  Line{Pt(0, 0), Pt(30, 10)}.Seg(),
	"quad":  QuadBez{Pt(0, 0), Pt(15, 30), Pt(30, 0)}.Seg(),
	"cubic": CubicBez{Pt(0, 0), Pt(5, 20), Pt(25, 20), Pt(30, 0)}.Seg(),
	"conic": ConicBez{Pt(0, 0), Pt(15, 30), Pt(30, 0), 2.5}.Seg(),
}

func TestSegmentKindString(t *testing.T) {
	for _, k := range []SegmentKind{LineKind, QuadKind, CubicKind, ConicKind} {
		got, ok := ParseSegmentKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseSegmentKind(%q) = %v, %t", k.String(), got, ok)
		}
	}
	if _, ok := ParseSegmentKind("arc"); ok {
		t.Error("parsed unknown kind")
	}
	diff(t, "SegmentKind(0)", SegmentKind(0).String())
}

func TestSegmentSplit(t *testing.T) {
	for name, seg := range testSegments {
		t.Run(name, func(t *testing.T) {
			const split = 0.4
			a, b := seg.Split(split)
			if a.Kind != seg.Kind || b.Kind != seg.Kind {
				t.Fatalf("split changed kind to %v and %v", a.Kind, b.Kind)
			}
			diff(t, seg.Start, a.Start)
			diff(t, seg.End, b.End)
			diff(t, a.End, b.Start)
			assertNear(t, a.End, seg.Eval(split), 1e-9)
			if seg.Kind == ConicKind {
				// Halves of a conic are reparametrized; compare point sets.
				for _, u := range []float64{0.25, 0.5, 0.75} {
					for _, half := range []Segment{a, b} {
						if d, _ := seg.Nearest(half.Eval(u)); d > 1e-6 {
							t.Errorf("point %v is off the original curve", half.Eval(u))
						}
					}
				}
				return
			}
			for _, u := range []float64{0.25, 0.5, 0.75} {
				assertNear(t, a.Eval(u), seg.Eval(u*split), 1e-9)
				assertNear(t, b.Eval(u), seg.Eval(split+u*(1-split)), 1e-9)
			}
		})
	}
}

func TestSegmentHandles(t *testing.T) {
	tests := []struct {
		seg        Segment
		start, end Point
	}{
		{testSegments["line"], Pt(30, 10), Pt(0, 0)},
		{testSegments["quad"], Pt(15, 30), Pt(15, 30)},
		{testSegments["cubic"], Pt(5, 20), Pt(25, 20)},
		{testSegments["conic"], Pt(15, 30), Pt(15, 30)},
	}
	for _, tt := range tests {
		diff(t, tt.start, tt.seg.StartHandle())
		diff(t, tt.end, tt.seg.EndHandle())
	}
}

func TestSegmentPoints(t *testing.T) {
	conic := testSegments["conic"]
	pts := conic.Points()
	diff(t, conic.Conic().Shoulder(), pts[2])
	assertNear(t, pts[2], conic.Eval(0.5), 1e-9)

	diff(t, [4]Point{Pt(0, 0), Pt(15, 30), Pt(15, 30), Pt(30, 0)}, testSegments["quad"].Points())
	diff(t, [4]Point{Pt(0, 0), Pt(0, 0), Pt(30, 10), Pt(30, 10)}, testSegments["line"].Points())
}

func TestSegmentWithKind(t *testing.T) {
	line := testSegments["line"]
	cubic := testSegments["cubic"]

	quad := line.WithKind(QuadKind)
	diff(t, Pt(15, 5), quad.Ctrl1)

	conic := line.WithKind(ConicKind)
	diff(t, 1.0, conic.Weight)
	diff(t, Pt(15, 5), conic.Ctrl1)

	// The control point of a cubic-derived quadratic is where the end
	// tangents cross.
	diff(t, Pt(15, 60), cubic.WithKind(QuadKind).Ctrl1, pointComparer)

	raised := testSegments["quad"].WithKind(CubicKind)
	diff(t, Pt(10, 20), raised.Ctrl1, pointComparer)
	diff(t, Pt(20, 20), raised.Ctrl2, pointComparer)
	// Raising a quadratic doesn't change its shape.
	for _, u := range []float64{0.2, 0.5, 0.9} {
		assertNear(t, raised.Eval(u), testSegments["quad"].Eval(u), 1e-9)
	}

	fromLine := line.WithKind(CubicKind)
	diff(t, Pt(10, 10.0/3), fromLine.Ctrl1, pointComparer)
	diff(t, Pt(20, 20.0/3), fromLine.Ctrl2, pointComparer)

	// End points survive any chain of conversions and conics keep their
	// weight.
	seg := testSegments["conic"]
	for _, k := range []SegmentKind{LineKind, CubicKind, QuadKind, ConicKind} {
		seg = seg.WithKind(k)
		diff(t, Pt(0, 0), seg.Start)
		diff(t, Pt(30, 0), seg.End)
	}
	diff(t, 2.5, seg.Weight)
	diff(t, cubic, cubic.WithKind(CubicKind))
}

func TestSegmentWithKindParallelTangents(t *testing.T) {
	seg := CubicBez{Pt(0, 0), Pt(0, 10), Pt(30, 10), Pt(30, 0)}.Seg()
	diff(t, Pt(15, 0), seg.WithKind(ConicKind).Ctrl1)
}

func TestSegmentNearest(t *testing.T) {
	for name, seg := range testSegments {
		t.Run(name, func(t *testing.T) {
			const want = 0.3
			on := seg.Eval(want)
			d, u := seg.Nearest(on)
			if d > 1e-6 {
				t.Errorf("distance to a point on the curve is %g", math.Sqrt(d))
			}
			assertNear(t, seg.Eval(u), on, 1e-4)
		})
	}

	// Beyond the ends the end points are the closest.
	d, u := testSegments["cubic"].Nearest(Pt(-10, 0))
	if u > 1e-5 || math.Abs(d-100) > 1e-3 {
		t.Errorf("got distance² %g at t=%g, want 100 at t=0", d, u)
	}
}

func TestSegmentControlBox(t *testing.T) {
	diff(t, Rect{0, 0, 30, 20}, testSegments["cubic"].ControlBox())
	diff(t, Rect{0, 0, 30, 30}, testSegments["conic"].ControlBox())
	diff(t, Rect{0, 0, 30, 10}, testSegments["line"].ControlBox())
}

func TestSegmentPathElement(t *testing.T) {
	diff(t, ConicTo(Pt(15, 30), Pt(30, 0), 2.5), testSegments["conic"].PathElement())
	diff(t, LineTo(Pt(30, 10)), testSegments["line"].PathElement())
}
