package pathedit

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Subdivide splits the quadratic at t, using de Casteljau.
func (q QuadBez) Subdivide(t float64) (QuadBez, QuadBez) {
	left, right := SplitBezier([]Point{q.P0, q.P1, q.P2}, t)
	return QuadBez{left[0], left[1], left[2]},
		QuadBez{right[2], right[1], right[0]}
}

// Nearest returns the squared distance from pt to the closest point of the
// quadratic and the parameter of that point. The critical points of the
// squared distance are the roots of a cubic, which are solved for directly.
func (q QuadBez) Nearest(pt Point) (distSq, t float64) {
	var best option[float64]
	try := func(u float64, p Point) {
		if r := p.Sub(pt).Hypot2(); !best.isSet || r < best.value {
			best.set(r)
			t = u
		}
	}

	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2*d0.Hypot2() + d.Dot(d1)
	c2 := 3 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	needEnds := n == 0
	for _, u := range roots[:n] {
		if u >= 0 && u <= 1 {
			try(u, q.Eval(u))
		} else {
			needEnds = true
		}
	}
	if needEnds {
		try(0, q.P0)
		try(1, q.P2)
	}
	return best.value, t
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := q.P1.Sub(q.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d0 = q.P2.Sub(q.P0)
	}
	d12 := q.P2.Sub(q.P1)
	if d12.Hypot2() > epsilon {
		d1 = d12
	} else {
		d1 = q.P2.Sub(q.P0)
	}
	return d0, d1
}

func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, Start: q.P0, Ctrl1: q.P1, End: q.P2}
}
