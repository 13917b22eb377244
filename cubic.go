package pathedit

import (
	"iter"
	"math"
)

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide splits the cubic at t, using de Casteljau.
func (c CubicBez) Subdivide(t float64) (CubicBez, CubicBez) {
	left, right := SplitBezier([]Point{c.P0, c.P1, c.P2, c.P3}, t)
	right = reversePoints(right)
	return CubicBez{left[0], left[1], left[2], left[3]},
		CubicBez{right[0], right[1], right[2], right[3]}
}

// Differentiate returns the derivative of the cubic, a quadratic.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Subsegment returns the part of the cubic between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) / 3
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(-scale))
	return CubicBez{p0, p1, p2, p3}
}

// quadPiece is a quadratic approximating the part of a cubic between T0 and
// T1.
type quadPiece struct {
	T0, T1 float64
	Quad   QuadBez
}

// quadratics splits the cubic into even parameter ranges, each approximated
// by a quadratic to within accuracy. It yields at least one piece.
func (c CubicBez) quadratics(accuracy float64) iter.Seq[quadPiece] {
	return func(yield func(quadPiece) bool) {
		// The error of the midpoint approximation is proportional to the
		// constant third derivative, so it falls with the cube of the number
		// of pieces. 432 is (36/√3)².
		maxHypot2 := 432 * accuracy * accuracy
		e := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3)).Sub(Vec2(c.P1).Mul(3).Sub(Vec2(c.P0)))
		n := max(int(math.Ceil(math.Sqrt(math.Cbrt(e.Hypot2()/maxHypot2)))), 1)
		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			seg := c.Subsegment(t0, t1)
			a := Vec2(seg.P1).Mul(3).Sub(Vec2(seg.P0))
			b := Vec2(seg.P2).Mul(3).Sub(Vec2(seg.P3))
			q := QuadBez{seg.P0, Point(a.Add(b).Mul(0.25)), seg.P3}
			if !yield(quadPiece{t0, t1, q}) {
				return
			}
		}
	}
}

// Nearest returns the squared distance from pt to the closest point of the
// cubic and the parameter of that point, found on quadratic approximations
// that are within accuracy of the cubic.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	var best option[float64]
	for piece := range c.quadratics(accuracy) {
		d, u := piece.Quad.Nearest(pt)
		if !best.isSet || d < best.value {
			best.set(d)
			t = piece.T0 + u*(piece.T1-piece.T0)
		}
	}
	return best.value, t
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Tangents computes the tangents at the start and end of the cubic.
//
// This version is robust to control points that coincide with the end points.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, Start: c.P0, Ctrl1: c.P1, Ctrl2: c.P2, End: c.P3}
}
