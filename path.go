package pathedit

import (
	"fmt"
	"iter"
	"slices"
)

// Path is an editable collection of contours. Methods address contours,
// segments and vertices by their current indices, which shift under
// structural edits; use [Session] to track points across them.
type Path struct {
	contours []*Contour
	alloc    *idAlloc
}

// NewPath builds a path from path elements. See [Path.Reset].
func NewPath(bp BezPath) *Path {
	p := &Path{alloc: &idAlloc{}}
	p.Reset(bp)
	return p
}

// Reset replaces the path's contours with ones built from bp.
//
// Every MoveTo starts a contour and ClosePath closes it, merging the end into
// the start if the two lie within [CollinearTolerance]. Drawing after a
// ClosePath without a MoveTo starts a new contour at the closed contour's
// start. Contours without segments are dropped. Each vertex gets Smooth if
// its tangents are already continuous and Cusp otherwise.
func (p *Path) Reset(bp BezPath) {
	p.contours = nil
	var cur *Contour
	var last Point
	finish := func() {
		if cur != nil && !cur.Empty() {
			p.contours = append(p.contours, cur)
		}
		cur = nil
	}
	ensure := func() *Contour {
		if cur == nil || cur.closed {
			finish()
			cur = newContour(p.alloc, last)
		}
		return cur
	}
	for _, el := range bp {
		switch el.Kind {
		case MoveToKind:
			finish()
			cur = newContour(p.alloc, el.P0)
		case LineToKind:
			ensure().LineTo(el.P0)
		case QuadToKind:
			ensure().QuadTo(el.P0, el.P1)
		case CubicToKind:
			ensure().CubicTo(el.P0, el.P1, el.P2)
		case ConicToKind:
			ensure().ConicTo(el.P0, el.P1, el.Weight)
		case ClosePathKind:
			if cur != nil {
				cur.Close()
				last = cur.StartPoint()
			}
			continue
		default:
			panic(fmt.Sprintf("invalid PathElement kind %v", el.Kind))
		}
		last, _ = el.EndPoint()
	}
	finish()
	for _, c := range p.contours {
		for v := range c.vertices {
			c.vertices[v].Constraint = c.InferConstraint(v)
		}
	}
	Logger().Debug("loaded path", "contours", len(p.contours))
}

// BezPath flattens the path back into path elements, contour by contour.
func (p *Path) BezPath() BezPath {
	var out BezPath
	for el := range p.Elements() {
		out = append(out, el)
	}
	return out
}

// Elements returns an iterator over the path's elements.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, c := range p.contours {
			for el := range c.PathElements() {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// SVG returns the path as SVG path data.
func (p *Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// Len returns the number of contours.
func (p *Path) Len() int { return len(p.contours) }

// Contour returns contour ci.
func (p *Path) Contour(ci int) *Contour {
	if ci < 0 || ci >= len(p.contours) {
		panic(fmt.Sprintf("contour index %d out of range [0, %d)", ci, len(p.contours)))
	}
	return p.contours[ci]
}

// Contours returns an iterator over the path's contours and their indices.
func (p *Path) Contours() iter.Seq2[int, *Contour] {
	return func(yield func(int, *Contour) bool) {
		for i, c := range p.contours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// StartContour adds an empty contour whose only vertex is at pt.
func (p *Path) StartContour(pt Point) *Contour {
	c := newContour(p.alloc, pt)
	p.contours = append(p.contours, c)
	Logger().Debug("started contour", "contour", c.id)
	return c
}

// ContourIndex returns the current index of the contour with the given ID.
func (p *Path) ContourIndex(id ContourID) (int, bool) {
	for i, c := range p.contours {
		if c.id == id {
			return i, true
		}
	}
	return 0, false
}

// FindVertex returns the current contour and vertex indices of the vertex
// with the given ID.
func (p *Path) FindVertex(id VertexID) (ci, v int, ok bool) {
	for ci, c := range p.contours {
		if v, ok := c.VertexIndex(id); ok {
			return ci, v, true
		}
	}
	return 0, 0, false
}

// Curve is [Contour.Curve] on contour ci.
func (p *Path) Curve(ci, i int) (SegmentKind, [4]Point) {
	return p.Contour(ci).Curve(i)
}

// SetCurvePoint is [Contour.SetCurvePoint] on contour ci.
func (p *Path) SetCurvePoint(ci, i, idx int, pt Point) {
	p.Contour(ci).SetCurvePoint(i, idx, pt)
}

// DragCurvePoint is [Contour.DragCurvePoint] on contour ci.
func (p *Path) DragCurvePoint(ci, i, idx int, pt Point) {
	p.Contour(ci).DragCurvePoint(i, idx, pt)
}

// DragVertex is [Contour.DragVertex] on contour ci.
func (p *Path) DragVertex(ci, v int, pt Point) {
	p.Contour(ci).DragVertex(v, pt)
}

// DragCurve is [Contour.DragCurve] on contour ci.
func (p *Path) DragCurve(ci, i int, pt Point) bool {
	return p.Contour(ci).DragCurve(i, pt)
}

// SetKind is [Contour.SetKind] on contour ci.
func (p *Path) SetKind(ci, i int, kind SegmentKind) {
	p.Contour(ci).SetKind(i, kind)
}

// SetConstraint is [Contour.SetConstraint] on contour ci.
func (p *Path) SetConstraint(ci, v int, k Constraint) Constraint {
	return p.Contour(ci).SetConstraint(v, k)
}

// ResetWeight is [Contour.ResetWeight] on contour ci.
func (p *Path) ResetWeight(ci, i int) bool {
	return p.Contour(ci).ResetWeight(i)
}

// InsertPoint is [Contour.InsertPoint] on contour ci.
func (p *Path) InsertPoint(ci, i int, t float64) int {
	return p.Contour(ci).InsertPoint(i, t)
}

// RemovePoint removes vertex v of contour ci. A contour left without
// segments is deleted, which RemovePoint reports.
func (p *Path) RemovePoint(ci, v int) (deleted bool) {
	c := p.Contour(ci)
	if c.RemovePoint(v) {
		p.contours = slices.Delete(p.contours, ci, ci+1)
		Logger().Debug("removed contour", "contour", c.id)
		return true
	}
	return false
}

// Close closes contour ci; see [Contour.Close].
func (p *Path) Close(ci int) {
	p.Contour(ci).Close()
}

// Append joins contour cj onto the end of contour ci and deletes cj. Both
// must be open. Contour indices after cj shift down by one.
func (p *Path) Append(ci, cj int) {
	a, b := p.Contour(ci), p.Contour(cj)
	a.Append(b)
	p.contours = slices.Delete(p.contours, cj, cj+1)
}

// Split removes segment i of contour ci; see [Contour.Split]. The resulting
// contours take ci's place in order. Pieces without segments are dropped.
func (p *Path) Split(ci, i int) {
	head, tail := p.Contour(ci).Split(i)
	var repl []*Contour
	if head != nil {
		repl = append(repl, head)
	}
	if tail != nil {
		repl = append(repl, tail)
	}
	p.contours = slices.Replace(p.contours, ci, ci+1, repl...)
}

// Transform applies aff to every contour.
func (p *Path) Transform(aff Affine) {
	for _, c := range p.contours {
		c.Transform(aff)
	}
}

// BoundingBox returns a rectangle containing every point and control point
// of the path. It reports false for a path without contours.
func (p *Path) BoundingBox() (Rect, bool) {
	if len(p.contours) == 0 {
		return Rect{}, false
	}
	r := p.contours[0].BoundingBox()
	for _, c := range p.contours[1:] {
		r = r.Union(c.BoundingBox())
	}
	return r, true
}

// Hit is a point of a path found by [Path.Nearest]. Point numbers the point
// within the segment as [Segment.Points] does.
type Hit struct {
	Contour int
	Segment int
	Point   int
}

// Nearest returns the point closest to pt within radius, considering
// vertices and the control and shoulder points of curves. Each vertex is
// reported once, as point 0 of the segment leaving it or, at the end of an
// open contour, as point 3 of the last segment. If accept is not nil,
// points it rejects are skipped.
func (p *Path) Nearest(pt Point, radius float64, accept func(Hit) bool) (Hit, bool) {
	var best Hit
	bestD := radius * radius
	found := false
	try := func(h Hit, q Point) {
		d := pt.Sub(q).Hypot2()
		if d >= bestD {
			return
		}
		if accept != nil && !accept(h) {
			return
		}
		best, bestD, found = h, d, true
	}
	for ci, c := range p.contours {
		for i, seg := range c.segments {
			pts := seg.Points()
			try(Hit{ci, i, 0}, pts[0])
			switch seg.Kind {
			case CubicKind, ConicKind:
				try(Hit{ci, i, 1}, pts[1])
				try(Hit{ci, i, 2}, pts[2])
			case QuadKind:
				try(Hit{ci, i, 1}, pts[1])
			}
			if !c.closed && i == len(c.segments)-1 {
				try(Hit{ci, i, 3}, pts[3])
			}
		}
	}
	return best, found
}

// CurveHit is a point on a curve found by [Path.NearestCurve].
type CurveHit struct {
	Contour int
	Segment int
	T       float64
	Point   Point
}

// NearestCurve returns the point on the path's curves closest to pt, if it
// lies within radius.
func (p *Path) NearestCurve(pt Point, radius float64) (CurveHit, bool) {
	var best CurveHit
	bestD := radius * radius
	found := false
	for ci, c := range p.contours {
		for i, seg := range c.segments {
			if !seg.ControlBox().Inflate(radius, radius).Contains(pt) {
				continue
			}
			d, t := seg.Nearest(pt)
			if d < bestD {
				best = CurveHit{ci, i, t, seg.Eval(t)}
				bestD, found = d, true
			}
		}
	}
	return best, found
}

func (p *Path) validate() error {
	for ci, c := range p.contours {
		if err := c.validate(); err != nil {
			return fmt.Errorf("contour %d: %w", ci, err)
		}
	}
	return nil
}
