package pathedit

import "math"

// MaxShoulderParam is the largest position, as a fraction of the way from the
// chord midpoint to the control point, that a conic's shoulder point may take
// when deriving a weight from it. It caps the weight at 9.
const MaxShoulderParam = 0.9

// MinConicWeight is the smallest weight a conic segment of a contour stores.
// Shoulders dragged onto or beyond the chord produce it instead of 0.
const MinConicWeight = 1.0 / 1024

// ConicBez is a rational quadratic Bézier segment. Its end points have weight
// 1 and its control point has weight W. W = 1 gives an ordinary quadratic, W <
// 1 an elliptical arc and W > 1 a hyperbolic one.
type ConicBez struct {
	P0 Point
	P1 Point
	P2 Point
	W  float64
}

func (c ConicBez) Eval(t float64) Point {
	mt := 1 - t
	b0 := mt * mt
	b1 := 2 * t * mt * c.W
	b2 := t * t
	v := Vec2(c.P0).Mul(b0).
		Add(Vec2(c.P1).Mul(b1)).
		Add(Vec2(c.P2).Mul(b2))
	return Point(v.Div(b0 + b1 + b2))
}

// Shoulder returns the point on the curve at t = 0.5.
func (c ConicBez) Shoulder() Point {
	return ShoulderPoint(c.P0, c.P1, c.P2, c.W)
}

// ShoulderPoint returns the shoulder point of the conic with end points p0 and
// p2, control point p1 and weight w. It lies on the line from the midpoint of
// p0 and p2 towards p1, at w/(1+w) of the way.
func ShoulderPoint(p0, p1, p2 Point, w float64) Point {
	m := p0.Midpoint(p2)
	return m.Lerp(p1, w/(1+w))
}

// ComputeWeight is the inverse of [ShoulderPoint]. The shoulder is projected
// onto the line from the midpoint of p0 and p2 towards p1 and the resulting
// parameter is clamped to [0, MaxShoulderParam], so shoulders beyond that
// point do not round-trip.
func ComputeWeight(p0, p1, p2, shoulder Point) float64 {
	m := p0.Midpoint(p2)
	t := Line{m, p1}.Project(shoulder)
	t = min(max(t, 0), MaxShoulderParam)
	return -t / (t - 1)
}

type point3 struct {
	X, Y, Z float64
}

func (p point3) lerp(o point3, t float64) point3 {
	return point3{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
		Z: p.Z + (o.Z-p.Z)*t,
	}
}

func (p point3) project() Point {
	return Point{X: p.X / p.Z, Y: p.Y / p.Z}
}

// Subdivide splits the conic at t. The split is done with de Casteljau in
// homogeneous coordinates; both halves are then normalized so that their end
// point weights are 1, using the fact that w0·w2/w1² is invariant among
// equivalent weight sets.
func (c ConicBez) Subdivide(t float64) (ConicBez, ConicBez) {
	p0 := point3{c.P0.X, c.P0.Y, 1}
	p1 := point3{c.P1.X * c.W, c.P1.Y * c.W, c.W}
	p2 := point3{c.P2.X, c.P2.Y, 1}

	a := p0.lerp(p1, t)
	b := p1.lerp(p2, t)
	m := a.lerp(b, t)

	left := ConicBez{
		P0: c.P0,
		P1: a.project(),
		P2: m.project(),
		W:  a.Z / math.Sqrt(p0.Z*m.Z),
	}
	right := ConicBez{
		P0: m.project(),
		P1: b.project(),
		P2: c.P2,
		W:  b.Z / math.Sqrt(m.Z*p2.Z),
	}
	return left, right
}

// Nearest returns the squared distance from pt to the closest point of the
// conic and the parameter of that point. The conic is sampled and the best
// sample is refined by ternary search of the parameter interval around it.
func (c ConicBez) Nearest(pt Point) (distSq, t float64) {
	const samples = 32
	best := 0
	bestD := pt.Sub(c.P0).Hypot2()
	for i := 1; i <= samples; i++ {
		d := pt.Sub(c.Eval(float64(i) / samples)).Hypot2()
		if d < bestD {
			best, bestD = i, d
		}
	}
	lo := max(float64(best-1)/samples, 0)
	hi := min(float64(best+1)/samples, 1)
	for range 30 {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if pt.Sub(c.Eval(m1)).Hypot2() < pt.Sub(c.Eval(m2)).Hypot2() {
			hi = m2
		} else {
			lo = m1
		}
	}
	t = (lo + hi) / 2
	return pt.Sub(c.Eval(t)).Hypot2(), t
}

func (c ConicBez) Transform(aff Affine) ConicBez {
	return ConicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		W:  c.W,
	}
}

func (c ConicBez) Tangents() (Vec2, Vec2) {
	return QuadBez{c.P0, c.P1, c.P2}.Tangents()
}

func (c ConicBez) Seg() Segment {
	return Segment{Kind: ConicKind, Start: c.P0, Ctrl1: c.P1, End: c.P2, Weight: c.W}
}
