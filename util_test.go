package pathedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertValid(t *testing.T, c *Contour) {
	t.Helper()
	if err := c.validate(); err != nil {
		t.Fatal(err)
	}
}

// circleK is the control point distance of the usual four cubic
// approximation of the unit circle.
const circleK = 0.5522847498

func circlePath(r float64) BezPath {
	k := circleK * r
	var p BezPath
	p.MoveTo(Pt(r, 0))
	p.CubicTo(Pt(r, k), Pt(k, r), Pt(0, r))
	p.CubicTo(Pt(-k, r), Pt(-r, k), Pt(-r, 0))
	p.CubicTo(Pt(-r, -k), Pt(-k, -r), Pt(0, -r))
	p.CubicTo(Pt(k, -r), Pt(r, -k), Pt(r, 0))
	p.ClosePath()
	return p
}

func circleContour(r float64) *Contour {
	return NewPath(circlePath(r)).Contour(0)
}

// polyline returns an open contour of lines through pts.
func polyline(pts ...Point) *Contour {
	c := NewContour(pts[0])
	for _, pt := range pts[1:] {
		c.LineTo(pt)
	}
	return c
}

// tangentsAt returns the directions in which the segments at vertex v
// arrive and leave.
func tangentsAt(c *Contour, v int) (in, out Vec2) {
	i, _ := c.CurveInto(v)
	o, _ := c.CurveOutOf(v)
	p := c.Point(v)
	return p.Sub(c.Segment(i).EndHandle()), c.Segment(o).StartHandle().Sub(p)
}
