package pathedit

import "fmt"

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
	// A rational quadratic Bézier segment.
	ConicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	case ConicKind:
		return "conic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// ParseSegmentKind parses the names returned by [SegmentKind.String].
func ParseSegmentKind(s string) (SegmentKind, bool) {
	switch s {
	case "line":
		return LineKind, true
	case "quad":
		return QuadKind, true
	case "cubic":
		return CubicKind, true
	case "conic":
		return ConicKind, true
	default:
		return 0, false
	}
}

// Segment is one curve piece of a contour. It acts as a tagged union over
// [Line], [QuadBez], [CubicBez] and [ConicBez]. Start and End are valid for
// every kind.
//
//   - LineKind uses neither control point.
//   - QuadKind and ConicKind use Ctrl1 as their only control point.
//   - CubicKind uses Ctrl1 (next to Start) and Ctrl2 (next to End).
//
// Weight is only meaningful for ConicKind, but is kept across kind changes so
// that converting a conic away and back restores its weight.
type Segment struct {
	Kind   SegmentKind
	Start  Point
	Ctrl1  Point
	Ctrl2  Point
	End    Point
	Weight float64
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.Start, seg.End} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.Start, seg.Ctrl1, seg.End} }

// Conic returns the conic represented by this segment. This is only valid when
// Kind == ConicKind.
func (seg Segment) Conic() ConicBez { return ConicBez{seg.Start, seg.Ctrl1, seg.End, seg.Weight} }

// Cubic returns the cubic Bézier represented by this segment. This is only
// valid when Kind == CubicKind.
func (seg Segment) Cubic() CubicBez { return CubicBez{seg.Start, seg.Ctrl1, seg.Ctrl2, seg.End} }

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	case ConicKind:
		return seg.Conic().Eval(t)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// Split splits the segment at t into two segments of the same kind.
func (seg Segment) Split(t float64) (Segment, Segment) {
	switch seg.Kind {
	case LineKind:
		a, b := seg.Line().Subdivide(t)
		return a.Seg(), b.Seg()
	case QuadKind:
		a, b := seg.Quad().Subdivide(t)
		return a.Seg(), b.Seg()
	case CubicKind:
		a, b := seg.Cubic().Subdivide(t)
		return a.Seg(), b.Seg()
	case ConicKind:
		a, b := seg.Conic().Subdivide(t)
		return a.Seg(), b.Seg()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// Tangents computes the tangents at the start and end of the segment.
func (seg Segment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case QuadKind:
		return seg.Quad().Tangents()
	case CubicKind:
		return seg.Cubic().Tangents()
	case ConicKind:
		return seg.Conic().Tangents()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// StartHandle returns the point that, together with Start, defines the
// direction in which the segment leaves its start point.
func (seg Segment) StartHandle() Point {
	if seg.Kind == LineKind {
		return seg.End
	}
	return seg.Ctrl1
}

// EndHandle returns the point that, together with End, defines the direction
// in which the segment arrives at its end point.
func (seg Segment) EndHandle() Point {
	switch seg.Kind {
	case LineKind:
		return seg.Start
	case CubicKind:
		return seg.Ctrl2
	default:
		return seg.Ctrl1
	}
}

// Points returns the segment's four addressable points. Index 0 is Start and 3
// is End. For cubics, 1 and 2 are the control points. For quadratics both 1
// and 2 are the control point. For conics, 1 is the control point and 2 is the
// shoulder point, which lies on the curve. For lines, 1 and 2 repeat Start and
// End.
func (seg Segment) Points() [4]Point {
	switch seg.Kind {
	case LineKind:
		return [4]Point{seg.Start, seg.Start, seg.End, seg.End}
	case QuadKind:
		return [4]Point{seg.Start, seg.Ctrl1, seg.Ctrl1, seg.End}
	case CubicKind:
		return [4]Point{seg.Start, seg.Ctrl1, seg.Ctrl2, seg.End}
	case ConicKind:
		return [4]Point{seg.Start, seg.Ctrl1, seg.Conic().Shoulder(), seg.End}
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// WithKind converts the segment to another kind, keeping its end points.
//
//   - Converting to a line drops the control points.
//   - A line becomes a quadratic or conic with its control point at the chord
//     midpoint.
//   - A cubic becomes a quadratic or conic with its control point where the
//     two end tangents cross, or at the chord midpoint if they don't.
//   - Anything becomes a cubic with both control points 2/3 of the way
//     towards the previous single control point (the chord midpoint for
//     lines).
//
// Segments converted to conics get weight 1 unless they already carry a
// nonzero weight.
func (seg Segment) WithKind(kind SegmentKind) Segment {
	if kind == seg.Kind {
		return seg
	}
	out := Segment{Kind: kind, Start: seg.Start, End: seg.End, Weight: seg.Weight}
	switch kind {
	case LineKind:
	case QuadKind, ConicKind:
		switch seg.Kind {
		case LineKind:
			out.Ctrl1 = seg.Start.Midpoint(seg.End)
		case CubicKind:
			if pt, ok := LineIntersection(seg.Start, seg.Ctrl1, seg.Ctrl2, seg.End); ok {
				out.Ctrl1 = pt
			} else {
				Logger().Debug("cubic tangents are parallel, using chord midpoint",
					"start", seg.Start, "end", seg.End)
				out.Ctrl1 = seg.Start.Midpoint(seg.End)
			}
		default:
			out.Ctrl1 = seg.Ctrl1
		}
		if kind == ConicKind && out.Weight == 0 {
			out.Weight = 1
		}
	case CubicKind:
		ctrl := seg.Ctrl1
		if seg.Kind == LineKind {
			ctrl = seg.Start.Midpoint(seg.End)
		}
		raised := QuadBez{seg.Start, ctrl, seg.End}.Raise()
		out.Ctrl1, out.Ctrl2 = raised.P1, raised.P2
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", kind))
	}
	return out
}

// Translate moves every point of the segment by v.
func (seg Segment) Translate(v Vec2) Segment {
	return seg.Transform(Translate(v))
}

func (seg Segment) Transform(aff Affine) Segment {
	seg.Start = seg.Start.Transform(aff)
	seg.Ctrl1 = seg.Ctrl1.Transform(aff)
	seg.Ctrl2 = seg.Ctrl2.Transform(aff)
	seg.End = seg.End.Transform(aff)
	return seg
}

// ControlBox returns the bounding box of the segment's control polygon, which
// contains the curve.
func (seg Segment) ControlBox() Rect {
	r := NewRectFromPoints(seg.Start, seg.End)
	switch seg.Kind {
	case QuadKind, ConicKind:
		r = r.UnionPoint(seg.Ctrl1)
	case CubicKind:
		r = r.UnionPoint(seg.Ctrl1).UnionPoint(seg.Ctrl2)
	}
	return r
}

// nearestAccuracy bounds how far the quadratics used by [CubicBez.Nearest]
// stray from the cubic.
const nearestAccuracy = 1e-6

// Nearest returns the squared distance from pt to the closest point on the
// segment and the parameter of that point.
func (seg Segment) Nearest(pt Point) (distSq, t float64) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Nearest(pt)
	case QuadKind:
		return seg.Quad().Nearest(pt)
	case CubicKind:
		_, t = seg.Cubic().Nearest(pt, nearestAccuracy)
		// Measure against the cubic itself, not its approximation.
		return pt.Sub(seg.Eval(t)).Hypot2(), t
	case ConicKind:
		return seg.Conic().Nearest(pt)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding
// the segment's starting point.
func (seg Segment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.End)
	case QuadKind:
		return QuadTo(seg.Ctrl1, seg.End)
	case CubicKind:
		return CubicTo(seg.Ctrl1, seg.Ctrl2, seg.End)
	case ConicKind:
		return ConicTo(seg.Ctrl1, seg.End, seg.Weight)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}
