package pathedit

import "math"

// projectionRatio returns u(t) = (1-t)³ / (t³ + (1-t)³), the ratio in which
// the point C on the chord of a cubic divides the chord, where C is the
// projection of the curve point at t through the hull point A.
func projectionRatio(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	top := math.Pow(1-t, 3)
	bottom := math.Pow(t, 3) + top
	return top / bottom
}

// abcRatio returns the ratio |AB| / |BC| for the A, B, C construction at t.
func abcRatio(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	bottom := math.Pow(t, 3) + math.Pow(1-t, 3)
	top := bottom - 1
	return math.Abs(top / bottom)
}

// findControlPoints derives the two interior control points of a cubic from
// S, E, the curve point B at t and the hull point A. The tangent at B is taken
// from the circle through S, B and E.
func findControlPoints(t float64, a, b, s, e Point) (c1, c2 Point) {
	dist := s.Distance(e)
	angle := e.Sub(s).Angle() - b.Sub(s).Angle()
	bc := dist / 3
	if angle < 0 || angle > math.Pi {
		bc = -bc
	}
	de1 := t * bc
	de2 := (1 - t) * bc

	center, ok := CircleThroughPoints(s, b, e)
	if !ok {
		nan := Pt(math.NaN(), math.NaN())
		return nan, nan
	}

	t0 := Pt(b.X-(b.Y-center.Y), b.Y+(b.X-center.X))
	t1 := Pt(b.X+(b.Y-center.Y), b.Y-(b.X-center.X))
	dir := t1.Sub(t0).Normalize()

	e1 := b.Translate(dir.Mul(de1))
	e2 := b.Translate(dir.Mul(-de2))

	v1 := a.Translate(e1.Sub(a).Div(1 - t))
	v2 := a.Translate(e2.Sub(a).Div(t))

	c1 = s.Translate(v1.Sub(s).Div(t))
	c2 = e.Translate(v2.Sub(e).Div(1 - t))
	return c1, c2
}

// BezierThrough returns control points c1 and c2 such that the cubic (s, c1,
// c2, e) passes through b. The parameter at which it does so is derived from
// the ratio of the distances from b to s and e.
//
// The result is NaN if b lies on the line through s and e, or coincides with
// one of them.
func BezierThrough(s, b, e Point) (c1, c2 Point) {
	c1, c2, _ = bezierThrough(s, b, e)
	return c1, c2
}

func bezierThrough(s, b, e Point) (c1, c2 Point, t float64) {
	d1 := s.Distance(b)
	d2 := e.Distance(b)
	t = d1 / (d1 + d2)

	u := projectionRatio(t)
	c := Point(Vec2(s).Mul(u).Add(Vec2(e).Mul(1 - u)))

	ratio := abcRatio(t)
	a := b.Translate(b.Sub(c).Div(ratio))

	c1, c2 = findControlPoints(t, a, b, s, e)
	return c1, c2, t
}
