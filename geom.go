package pathedit

import "math"

// CollinearTolerance is the distance, in user units, below which a point is
// considered to lie on a line, and below which two points are considered
// coincident when closing or joining contours.
const CollinearTolerance = 0.01

// ClosestPointOnLine returns the orthogonal projection of p onto the infinite
// line through a and b.
func ClosestPointOnLine(p, a, b Point) Point {
	return Line{a, b}.Eval(Line{a, b}.Project(p))
}

// Collinear reports whether p lies on the infinite line through a and b,
// within [CollinearTolerance].
func Collinear(p, a, b Point) bool {
	return p.Near(ClosestPointOnLine(p, a, b), CollinearTolerance)
}

// LineIntersection returns the intersection of the infinite lines through a,
// b and through c, d. If the lines are parallel, it returns a NaN point and
// false. No tolerance is applied to the parallel test.
func LineIntersection(a, b, c, d Point) (Point, bool) {
	pt, ok := Line{a, b}.CrossingPoint(Line{c, d})
	if !ok {
		return Pt(math.NaN(), math.NaN()), false
	}
	return pt, true
}

// CircleThroughPoints returns the center of the circle passing through a, b
// and c. It reports false if the three points are collinear.
func CircleThroughPoints(a, b, c Point) (Point, bool) {
	ab := a.Midpoint(b)
	ac := a.Midpoint(c)
	// Perpendicular bisectors of ab and ac.
	ab2 := ab.Translate(b.Sub(a).Perp())
	ac2 := ac.Translate(c.Sub(a).Perp())
	return LineIntersection(ab, ab2, ac, ac2)
}

// OppositePoint returns the point on the line through a and p that is at
// distance d from p, on the side of p away from a.
func OppositePoint(p, a Point, d float64) Point {
	ap := p.Sub(a)
	t := -math.Sqrt(d * d / ap.Hypot2())
	return p.Translate(a.Sub(p).Mul(t))
}

// ScalePoint returns the point on the line through a and p that is at
// distance d from p, on the same side of p as a.
func ScalePoint(p, a Point, d float64) Point {
	ap := p.Sub(a)
	t := math.Sqrt(d * d / ap.Hypot2())
	return p.Translate(a.Sub(p).Mul(t))
}

// ThreePointAngle returns the cosine of the angle at a between the rays
// towards b1 and b2.
func ThreePointAngle(a, b1, b2 Point) float64 {
	u := b1.Sub(a).Normalize()
	v := b2.Sub(a).Normalize()
	return u.Dot(v)
}

// SplitBezier splits the Bézier curve with the given control polygon at t,
// using de Casteljau's algorithm. Both returned polygons have as many points
// as the input.
//
// The points of right are in reverse order: right[0] is the end point of the
// original curve and right[len(right)-1] is the split point. Use
// [reversePoints] before treating it as a forward curve.
func SplitBezier(points []Point, t float64) (left, right []Point) {
	n := len(points)
	left = make([]Point, 0, n)
	right = make([]Point, 0, n)
	level := append([]Point(nil), points...)
	for len(level) > 0 {
		left = append(left, level[0])
		right = append(right, level[len(level)-1])
		for i := 0; i < len(level)-1; i++ {
			level[i] = level[i].Lerp(level[i+1], t)
		}
		level = level[:len(level)-1]
	}
	return left, right
}

func reversePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[len(pts)-1-i] = pt
	}
	return out
}
