package pathedit

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false if the lines are parallel or either of them
// has zero length. The test for parallel lines is exact.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Project returns the parameter of the orthogonal projection of pt onto the
// infinite line. 0 maps to P0 and 1 maps to P1.
func (l Line) Project(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	return pt.Sub(l.P0).Dot(d) / d.Hypot2()
}

// Nearest returns the squared distance from pt to the closest point of the
// segment, and the parameter of that point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	}
	t = dotp / dSquared
	return pt.Sub(l.Eval(t)).Hypot2(), t
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Subdivide splits the line at t.
func (l Line) Subdivide(t float64) (Line, Line) {
	pm := l.Eval(t)
	return Line{l.P0, pm}, Line{pm, l.P1}
}

func (l Line) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0)
	return d, d
}

func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, Start: l.P0, End: l.P1}
}
