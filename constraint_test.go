package pathedit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// twoCubics returns an open contour of two cubics meeting at (30, 0) with a
// corner.
func twoCubics() *Contour {
	c := NewContour(Pt(0, 0))
	c.CubicTo(Pt(10, 10), Pt(20, 5), Pt(30, 0))
	c.CubicTo(Pt(35, 10), Pt(50, 10), Pt(60, 0))
	return c
}

// peak returns an open contour of two cubics meeting at (30, 30).
func peak() *Contour {
	c := NewContour(Pt(0, 0))
	c.CubicTo(Pt(10, 10), Pt(20, 20), Pt(30, 30))
	c.CubicTo(Pt(40, 20), Pt(50, 10), Pt(60, 0))
	return c
}

func assertSmooth(t *testing.T, c *Contour, v int) {
	t.Helper()
	in, out := tangentsAt(c, v)
	if cross := in.Normalize().Cross(out.Normalize()); math.Abs(cross) > 1e-9 {
		t.Errorf("tangents %v and %v at vertex %d aren't parallel", in, out, v)
	}
	if in.Dot(out) <= 0 {
		t.Errorf("tangents %v and %v at vertex %d point against each other", in, out, v)
	}
}

func TestConstraintString(t *testing.T) {
	for _, k := range []Constraint{Cusp, Smooth, Symmetric, Auto} {
		got, ok := ParseConstraint(k.String())
		if !ok || got != k {
			t.Errorf("ParseConstraint(%q) = %v, %t", k.String(), got, ok)
		}
	}
	if _, ok := ParseConstraint("corner"); ok {
		t.Error("parsed unknown constraint")
	}
	diff(t, "in", PreserveIn.String())
}

func TestSmoothEqual(t *testing.T) {
	c := twoCubics()
	lin := c.Point(1).Distance(c.Segment(0).Ctrl2)
	lout := c.Point(1).Distance(c.Segment(1).Ctrl1)

	if got := c.SetConstraint(1, Smooth); got != Smooth {
		t.Fatalf("got constraint %v", got)
	}
	assertValid(t, c)
	assertSmooth(t, c, 1)

	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, lin, c.Point(1).Distance(c.Segment(0).Ctrl2), approx)
	diff(t, lout, c.Point(1).Distance(c.Segment(1).Ctrl1), approx)
	// Outer control points stay.
	diff(t, Pt(10, 10), c.Segment(0).Ctrl1)
	diff(t, Pt(50, 10), c.Segment(1).Ctrl2)
}

func TestSmoothPreserve(t *testing.T) {
	c := twoCubics()
	c.vertices[1].Constraint = Smooth
	c.MaintainSmoothness(1, PreserveIn)
	diff(t, Pt(20, 5), c.Segment(0).Ctrl2)
	diff(t, Pt(40, -5), c.Segment(1).Ctrl1, pointComparer)

	c = twoCubics()
	c.vertices[1].Constraint = Smooth
	c.MaintainSmoothness(1, PreserveOut)
	diff(t, Pt(25, -10), c.Segment(0).Ctrl2, pointComparer)
	diff(t, Pt(35, 10), c.Segment(1).Ctrl1)

	// Cusps are left alone.
	c = twoCubics()
	c.MaintainSmoothness(1, PreserveIn)
	diff(t, twoCubics().segments, c.segments)
}

func TestSmoothEqualOpposedHandles(t *testing.T) {
	// Both handles point the same way; the incoming direction wins.
	c := NewContour(Pt(0, 0))
	c.CubicTo(Pt(0, 10), Pt(20, 0), Pt(10, 0))
	c.CubicTo(Pt(20, 0), Pt(20, 10), Pt(30, 10))
	c.SetConstraint(1, Smooth)
	diff(t, Pt(20, 0), c.Segment(0).Ctrl2, pointComparer)
	diff(t, Pt(0, 0), c.Segment(1).Ctrl1, pointComparer)
}

func TestSymmetric(t *testing.T) {
	c := NewContour(Pt(0, 10))
	c.CubicTo(Pt(10, 10), Pt(20, 0), Pt(30, 0))
	c.CubicTo(Pt(50, 0), Pt(50, 10), Pt(60, 10))

	c.SetConstraint(1, Symmetric)
	diff(t, Pt(15, 0), c.Segment(0).Ctrl2, pointComparer)
	diff(t, Pt(45, 0), c.Segment(1).Ctrl1, pointComparer)

	c.SetCurvePoint(1, 1, Pt(55, 0))
	c.MaintainSymmetry(1, PreserveOut)
	diff(t, Pt(5, 0), c.Segment(0).Ctrl2, pointComparer)

	c.SetCurvePoint(0, 2, Pt(20, 0))
	c.MaintainSymmetry(1, PreserveIn)
	diff(t, Pt(40, 0), c.Segment(1).Ctrl1, pointComparer)
}

func TestAutomatic(t *testing.T) {
	c := peak()
	if got := c.SetConstraint(1, Auto); got != Auto {
		t.Fatalf("got constraint %v", got)
	}
	d := 10 * math.Sqrt2
	diff(t, Pt(30-d, 30), c.Segment(0).Ctrl2, pointComparer)
	diff(t, Pt(30+d, 30), c.Segment(1).Ctrl1, pointComparer)

	// Moving a neighbor updates the automatic vertex.
	c.DragVertex(2, Pt(90, 30))
	assertSmooth(t, c, 1)
	diff(t, Auto, c.Constraint(1))
	l := c.Point(1).Distance(c.Segment(1).Ctrl1)
	diff(t, 20.0, l, cmpopts.EquateApprox(0, 1e-9))
}

func TestAutomaticEnd(t *testing.T) {
	c := NewContour(Pt(0, 0))
	c.CubicTo(Pt(5, 0), Pt(20, 20), Pt(30, 30))
	c.SetConstraint(0, Auto)
	diff(t, Pt(10, 10), c.Segment(0).Ctrl1)
}

func TestAutomaticDropsOnControlDrag(t *testing.T) {
	c := peak()
	c.SetConstraint(1, Auto)
	c.DragCurvePoint(1, 1, Pt(45, 40))
	diff(t, Smooth, c.Constraint(1))
	diff(t, Pt(45, 40), c.Segment(1).Ctrl1)
	assertSmooth(t, c, 1)
	diff(t, 10*math.Sqrt2, c.Point(1).Distance(c.Segment(0).Ctrl2), cmpopts.EquateApprox(0, 1e-9))
}

func TestCanConstrain(t *testing.T) {
	c := NewContour(Pt(0, 0))
	c.LineTo(Pt(10, 0))
	c.CubicTo(Pt(20, 0), Pt(30, 10), Pt(30, 20))
	if c.CanConstrain(1) {
		t.Error("line next to cubic can be constrained")
	}
	if c.CanConstrain(0) {
		t.Error("line end can be constrained")
	}
	if !c.CanConstrain(2) {
		t.Error("cubic end can't be constrained")
	}
	diff(t, Cusp, c.SetConstraint(1, Smooth))
	diff(t, Cusp, c.Constraint(1))
	if NewContour(Pt(0, 0)).CanConstrain(0) {
		t.Error("bare vertex can be constrained")
	}
}

func TestSetKindDemotes(t *testing.T) {
	c := twoCubics()
	c.SetConstraint(1, Smooth)
	c.SetKind(0, QuadKind)
	assertValid(t, c)
	diff(t, Cusp, c.Constraint(1))
	diff(t, QuadKind, c.Segment(0).Kind)
}

func TestSetKindThenConstrain(t *testing.T) {
	c := NewContour(Pt(0, 0))
	c.QuadTo(Pt(15, 15), Pt(30, 0))
	c.CubicTo(Pt(40, -5), Pt(50, 10), Pt(60, 0))
	diff(t, Cusp, c.SetConstraint(1, Smooth))

	c.SetKind(0, CubicKind)
	diff(t, Pt(10, 10), c.Segment(0).Ctrl1, pointComparer)
	diff(t, Pt(20, 10), c.Segment(0).Ctrl2, pointComparer)
	diff(t, Smooth, c.SetConstraint(1, Smooth))
	assertSmooth(t, c, 1)

	c.SetKind(0, LineKind)
	diff(t, Cusp, c.Constraint(1))
	c.SetKind(0, CubicKind)
	diff(t, Pt(10, 0), c.Segment(0).Ctrl1, pointComparer)
	diff(t, Cusp, c.Constraint(1))
	assertValid(t, c)
}

func TestInferConstraint(t *testing.T) {
	c := twoCubics()
	diff(t, Cusp, c.InferConstraint(0))
	diff(t, Cusp, c.InferConstraint(1))
	c.SetConstraint(1, Smooth)
	diff(t, Smooth, c.InferConstraint(1))

	// Collinear handles on the same side form a cusp.
	c = NewContour(Pt(0, 0))
	c.CubicTo(Pt(0, 10), Pt(20, 0), Pt(10, 0))
	c.CubicTo(Pt(20, 0), Pt(20, 10), Pt(30, 10))
	diff(t, Cusp, c.InferConstraint(1))

	diff(t, Smooth, polyline(Pt(0, 0), Pt(10, 0), Pt(20, 0.001)).InferConstraint(1))
	diff(t, Cusp, polyline(Pt(0, 0), Pt(10, 0), Pt(20, 1)).InferConstraint(1))
}

func TestSmoothLineAndQuad(t *testing.T) {
	c := NewContour(Pt(0, 0))
	c.LineTo(Pt(10, 0))
	c.QuadTo(Pt(15, 5), Pt(20, 20))
	c.vertices[1].Constraint = Smooth
	c.MaintainSmoothness(1, PreserveEqual)
	diff(t, Pt(40.0/3, 0), c.Segment(1).Ctrl1, pointComparer)
}

func TestSmoothQuads(t *testing.T) {
	c := NewContour(Pt(0, 0))
	c.QuadTo(Pt(5, 5), Pt(10, 0))
	c.QuadTo(Pt(20, 0), Pt(20, 10))
	c.vertices[1].Constraint = Smooth
	c.MaintainSmoothness(1, PreserveIn)
	diff(t, Pt(5, 5), c.Segment(0).Ctrl1)
	diff(t, Pt(20, -10), c.Segment(1).Ctrl1, pointComparer)
}

func TestDragVertexKeepsFarGeometry(t *testing.T) {
	t.Run("quadratics", func(t *testing.T) {
		p := NewPath(mustParse(t, "M0,0 Q10,10 20,10 Q30,10 40,0 Q50,-10 60,-10 Q70,-10 80,0"))
		c := p.Contour(0)
		for v := 1; v <= 3; v++ {
			diff(t, Smooth, c.Constraint(v))
		}
		first, last := c.Segment(0), c.Segment(3)

		c.DragVertex(2, Pt(40, 6))
		diff(t, first, c.Segment(0))
		diff(t, last, c.Segment(3))
		// Both control points next to the vertex slide along their far
		// tangents to line up again.
		diff(t, Pt(36, 10), c.Segment(1).Ctrl1, pointComparer)
		diff(t, Pt(56, -10), c.Segment(2).Ctrl1, pointComparer)
		for v := 1; v <= 3; v++ {
			assertSmooth(t, c, v)
		}
	})

	t.Run("cubics", func(t *testing.T) {
		p := NewPath(mustParse(t, "M0,0 C10,10 20,10 30,0 C40,-10 50,-10 60,0 C70,10 80,10 90,0 C100,-10 110,-10 120,0"))
		c := p.Contour(0)
		diff(t, Symmetric, c.SetConstraint(3, Symmetric))
		first, last := c.Segment(0), c.Segment(3)

		c.DragVertex(2, Pt(65, 12))
		diff(t, first, c.Segment(0))
		diff(t, last, c.Segment(3))
		diff(t, Pt(55, 2), c.Segment(1).Ctrl2, pointComparer)
		diff(t, Pt(75, 22), c.Segment(2).Ctrl1, pointComparer)
		for v := 1; v <= 3; v++ {
			assertSmooth(t, c, v)
		}
	})
}

func TestPlans(t *testing.T) {
	circle := circleContour(1)
	diff(t, Plan{{0, PreserveEqual}, {3, PreserveIn}, {1, PreserveOut}}, circle.VertexEditPlan(0))
	diff(t, Plan{{0, PreserveOut}, {1, PreserveOut}}, circle.ControlEditPlan(0, 1))
	diff(t, Plan{{3, PreserveIn}, {0, PreserveIn}}, circle.ControlEditPlan(3, 2))
	diff(t, Plan{{3, PreserveIn}, {0, PreserveOut}}, circle.CurveEditPlan(3))
	diff(t, Plan{{3, PreserveOut}, {0, PreserveIn}}, circle.CurveDragPlan(3))

	open := polyline(Pt(0, 0), Pt(10, 0), Pt(20, 0))
	diff(t, Plan{{0, PreserveEqual}, {1, PreserveOut}}, open.VertexEditPlan(0))
	diff(t, Plan{{2, PreserveEqual}, {1, PreserveIn}}, open.VertexEditPlan(2))

	// Both segments of a two segment loop end at the other vertex; the
	// first step for it wins.
	loop := polyline(Pt(0, 0), Pt(10, 0))
	loop.QuadTo(Pt(5, 10), Pt(0, 0))
	loop.Close()
	diff(t, 2, loop.Len())
	diff(t, Plan{{0, PreserveEqual}, {1, PreserveIn}}, loop.VertexEditPlan(0))

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	circle.ControlEditPlan(0, 3)
}
