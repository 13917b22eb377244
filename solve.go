package pathedit

import "math"

// SolveQuadratic finds the real roots of c0 + c1 x + c2 x² = 0, in ascending
// order.
//
// A nearly linear equation returns only the root of its linear part. If all
// coefficients are zero every x is a root and a single 0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or close to it.
		root := -c0 / c1
		switch {
		case !math.IsInf(root, 0):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1² overflowed. Solve sc1 x + x² = 0 for one root and get the
		// other from the product of the roots.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float64{}, 0
		} else if arg == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// SolveCubic finds the real roots of c0 + c1 x + c2 x² + c3 x³ = 0. If c3 is
// zero it solves the quadratic instead.
//
// This follows Jim Blinn's "How to Solve a Cubic Equation", as presented in
// https://momentsingraphics.de/CubicRoots.html.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1 / c3
	scaledC2 := c2 * (1.0 / 3 * c3Recip)
	scaledC1 := c1 * (1.0 / 3 * c3Recip)
	scaledC0 := c0 * c3Recip
	if math.IsInf(scaledC0, 0) || math.IsInf(scaledC1, 0) || math.IsInf(scaledC2, 0) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2

	// Blinn's Delta.
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	// x of the depressed cubic; its y is d0.
	de := math.FMA(-2*c2, d0, d1)

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, -2*t1 - c2}, 2
	default:
		th := math.Atan2(math.Sqrt(disc), -de) / 3
		sin, cos := math.Sincos(th)
		ss3 := sin * math.Sqrt(3)
		r0 := cos
		r1 := 0.5 * (-cos + ss3)
		r2 := 0.5 * (-cos - ss3)
		t := 2 * math.Sqrt(-d0)
		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}
