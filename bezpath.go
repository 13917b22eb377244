package pathedit

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Draw a rational quadratic bezier using the current location, the two
	// points and the weight.
	ConicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath. Points are used in
// order: a LineTo uses P0, a QuadTo or ConicTo uses P0 as the control point
// and P1 as the end point, a CubicTo uses all three.
type PathElement struct {
	Kind   PathElementKind
	P0     Point
	P1     Point
	P2     Point
	Weight float64
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ConicToKind:
		return fmt.Sprintf("ConicTo(%s, %s, %g)", el.P0, el.P1, el.Weight)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

// EndPoint returns the point the element ends at. ClosePath has no end point
// of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind, ConicToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	el.P0 = el.P0.Transform(aff)
	el.P1 = el.P1.Transform(aff)
	el.P2 = el.P2.Transform(aff)
	return el
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ConicTo(p0, p1 Point, w float64) PathElement {
	return PathElement{Kind: ConicToKind, P0: p0, P1: p1, Weight: w}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a sequence of path elements. It is the form in which paths enter
// and leave the editing kernel; see [NewPath] and [Path.BezPath].
type BezPath []PathElement

func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ConicTo pushes a "conic to" element onto the path.
func (p *BezPath) ConicTo(p1, p2 Point, w float64) { p.Push(ConicTo(p1, p2, w)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// SVG returns the path as SVG path data. See [WriteSVG].
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}
