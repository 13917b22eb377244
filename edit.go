package pathedit

import (
	"fmt"
	"slices"
)

// translateVertex moves vertex v to pt and shifts the cubic control points
// next to it by the same offset, so the curves keep their local shape.
func (c *Contour) translateVertex(v int, pt Point) {
	c.checkVertex(v)
	d := pt.Sub(c.Point(v))
	c.setPoint(v, pt)
	if i, ok := c.CurveInto(v); ok && c.segments[i].Kind == CubicKind {
		c.segments[i].Ctrl2 = c.segments[i].Ctrl2.Translate(d)
	}
	if i, ok := c.CurveOutOf(v); ok && c.segments[i].Kind == CubicKind {
		c.segments[i].Ctrl1 = c.segments[i].Ctrl1.Translate(d)
	}
}

// DragVertex moves vertex v to pt, carrying the neighboring cubic control
// points along, and re-establishes the constraints at v and at the far end
// of both segments touching it.
func (c *Contour) DragVertex(v int, pt Point) {
	c.translateVertex(v, pt)
	c.Apply(c.VertexEditPlan(v))
}

// SetCurvePoint sets point idx of segment i, as numbered by [Segment.Points],
// without maintaining any constraint. Setting point 2 of a conic moves its
// shoulder, which changes the weight; see [ComputeWeight]. The weight never
// drops below [MinConicWeight]. Lines have no points 1 and 2.
func (c *Contour) SetCurvePoint(i, idx int, pt Point) {
	c.checkSegment(i)
	seg := &c.segments[i]
	switch idx {
	case 0:
		c.setPoint(c.StartVertex(i), pt)
	case 3:
		c.setPoint(c.EndVertex(i), pt)
	case 1, 2:
		switch seg.Kind {
		case LineKind:
			panic(fmt.Sprintf("line segment has no point %d", idx))
		case CubicKind:
			if idx == 1 {
				seg.Ctrl1 = pt
			} else {
				seg.Ctrl2 = pt
			}
		case QuadKind:
			seg.Ctrl1 = pt
		case ConicKind:
			if idx == 1 {
				seg.Ctrl1 = pt
			} else {
				seg.Weight = max(ComputeWeight(seg.Start, seg.Ctrl1, seg.End, pt), MinConicWeight)
			}
		default:
			panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
		}
	default:
		panic(fmt.Sprintf("invalid point index %d", idx))
	}
}

// DragCurvePoint moves point idx of segment i the way an interactive drag
// does. Points 0 and 3 are vertices and behave like [Contour.DragVertex].
//
// Moving a cubic control point turns an Auto vertex at that end into Smooth
// and makes the other side of both ends adapt. The control point of a
// quadratic or conic touches both ends, so both lose Auto and both
// neighbors adapt. Point 2 of a conic is its shoulder and only changes the
// weight.
func (c *Contour) DragCurvePoint(i, idx int, pt Point) {
	c.checkSegment(i)
	switch idx {
	case 0:
		c.DragVertex(c.StartVertex(i), pt)
		return
	case 3:
		c.DragVertex(c.EndVertex(i), pt)
		return
	}
	seg := c.segments[i]
	switch seg.Kind {
	case CubicKind:
		v := c.StartVertex(i)
		if idx == 2 {
			v = c.EndVertex(i)
		}
		c.DropAutomatic(v)
		c.SetCurvePoint(i, idx, pt)
		c.Apply(c.ControlEditPlan(i, idx))
	case ConicKind:
		if idx == 2 {
			c.SetCurvePoint(i, idx, pt)
			return
		}
		fallthrough
	case QuadKind:
		c.DropAutomatic(c.StartVertex(i))
		c.DropAutomatic(c.EndVertex(i))
		c.SetCurvePoint(i, 1, pt)
		c.Apply(c.CurveDragPlan(i))
	default:
		c.SetCurvePoint(i, idx, pt)
	}
}

// DragCurve reshapes cubic segment i so that it passes through pt, keeping
// its end points. Both ends lose Auto and the neighboring segments adapt to
// the new tangents. Other kinds are left alone and DragCurve reports false,
// as it does when pt lies on the segment's chord line.
func (c *Contour) DragCurve(i int, pt Point) bool {
	c.checkSegment(i)
	seg := &c.segments[i]
	if seg.Kind != CubicKind {
		Logger().Debug("curve drag on non-cubic segment", "contour", c.id, "segment", i, "kind", seg.Kind)
		return false
	}
	c1, c2 := BezierThrough(seg.Start, pt, seg.End)
	if c1.IsNaN() || c2.IsNaN() || c1.IsInf() || c2.IsInf() {
		Logger().Debug("no cubic through point", "contour", c.id, "segment", i, "point", pt)
		return false
	}
	seg.Ctrl1, seg.Ctrl2 = c1, c2
	c.DropAutomatic(c.StartVertex(i))
	c.DropAutomatic(c.EndVertex(i))
	c.Apply(c.CurveDragPlan(i))
	return true
}

// demoteIneligible turns vertex v into a cusp if its neighbors no longer
// allow a constraint.
func (c *Contour) demoteIneligible(v int) {
	if c.vertices[v].Constraint != Cusp && !c.CanConstrain(v) {
		Logger().Debug("demoting vertex to cusp", "contour", c.id, "vertex", v, "constraint", c.vertices[v].Constraint)
		c.vertices[v].Constraint = Cusp
	}
}

// SetKind converts segment i to kind as described by [Segment.WithKind].
// Vertices at either end that can no longer hold their constraint become
// cusps; the others are re-established with the neighbors winning.
func (c *Contour) SetKind(i int, kind SegmentKind) {
	c.checkSegment(i)
	if c.segments[i].Kind == kind {
		return
	}
	Logger().Debug("converting segment", "contour", c.id, "segment", i, "from", c.segments[i].Kind, "to", kind)
	c.segments[i] = c.segments[i].WithKind(kind)
	c.demoteIneligible(c.StartVertex(i))
	c.demoteIneligible(c.EndVertex(i))
	c.Apply(c.CurveEditPlan(i))
}

// ResetWeight sets the weight of conic segment i back to 1. It reports false
// for other kinds.
func (c *Contour) ResetWeight(i int) bool {
	c.checkSegment(i)
	if c.segments[i].Kind != ConicKind {
		return false
	}
	c.segments[i].Weight = 1
	return true
}

// InsertPoint splits segment i at t, which must lie in (0, 1), and returns
// the index of the new vertex. The new vertex is Smooth.
func (c *Contour) InsertPoint(i int, t float64) int {
	c.checkSegment(i)
	if !(t > 0 && t < 1) {
		panic(fmt.Sprintf("split parameter %g not in (0, 1)", t))
	}
	seg := c.segments[i]
	a, b := seg.Split(t)
	if seg.Kind != ConicKind {
		a.Weight, b.Weight = seg.Weight, seg.Weight
	}
	c.segments[i] = a
	c.segments = slices.Insert(c.segments, i+1, b)
	v := i + 1
	c.vertices = slices.Insert(c.vertices, v, Vertex{ID: VertexID(c.alloc.next()), Constraint: Smooth})
	c.Apply(Plan{{v, PreserveEqual}})
	return v
}

// normalizeEnds clears constraints that mean nothing at the ends of an open
// contour. Only Auto has an end point rule.
func (c *Contour) normalizeEnds() {
	if c.closed {
		return
	}
	for _, v := range []int{0, len(c.vertices) - 1} {
		switch c.vertices[v].Constraint {
		case Smooth, Symmetric:
			c.vertices[v].Constraint = Cusp
		case Auto:
			c.demoteIneligible(v)
		}
	}
}

// RemovePoint removes vertex v. At the ends of an open contour the segment
// touching v is dropped. Elsewhere the two segments meeting at v are merged
// into one of the incoming segment's kind, keeping the outer control points.
// RemovePoint reports whether the contour is left without segments; an
// empty contour keeps a single start vertex.
func (c *Contour) RemovePoint(v int) (empty bool) {
	c.checkVertex(v)
	n := len(c.segments)
	switch {
	case n == 0:
		return true

	case c.closed && n == 1:
		c.start = c.segments[0].Start
		c.segments = nil
		c.closed = false
		c.vertices[0].Constraint = Cusp
		return true

	case !c.closed && v == 0:
		c.start = c.segments[0].End
		c.segments = slices.Delete(c.segments, 0, 1)
		c.vertices = slices.Delete(c.vertices, 0, 1)

	case !c.closed && v == n:
		c.start = c.segments[n-1].Start
		c.segments = c.segments[:n-1]
		c.vertices = c.vertices[:n]

	default:
		in, _ := c.CurveInto(v)
		out, _ := c.CurveOutOf(v)
		a, b := c.segments[in], c.segments[out]
		merged := a
		merged.End = b.End
		if a.Kind == CubicKind {
			if b.Kind == CubicKind {
				merged.Ctrl2 = b.Ctrl2
			} else {
				merged.Ctrl2 = b.End.Lerp(b.EndHandle(), 2.0/3.0)
			}
		}
		c.segments[in] = merged
		c.segments = slices.Delete(c.segments, out, out+1)
		c.vertices = slices.Delete(c.vertices, v, v+1)
		if out < in {
			in--
		}
		c.demoteIneligible(c.StartVertex(in))
		c.demoteIneligible(c.EndVertex(in))
		c.Apply(c.CurveEditPlan(in))
	}

	if len(c.segments) == 0 {
		c.vertices[0].Constraint = Cusp
		return true
	}
	c.normalizeEnds()
	return false
}

// Close closes an open contour. If its end point lies within
// [CollinearTolerance] of its start point, the last segment is snapped onto
// the start and the end vertex merges into the start vertex; otherwise a line
// is added. The junction vertices get constraints inferred from their
// geometry. Closing a closed or empty contour does nothing.
func (c *Contour) Close() {
	if c.closed || len(c.segments) == 0 {
		return
	}
	start, end := c.StartPoint(), c.EndPoint()
	last := len(c.vertices) - 1
	if end.Near(start, CollinearTolerance) {
		c.segments[len(c.segments)-1].End = start
		c.vertices = c.vertices[:last]
		c.closed = true
		c.vertices[0].Constraint = c.InferConstraint(0)
	} else {
		c.segments = append(c.segments, Segment{Kind: LineKind, Start: end, End: start})
		c.closed = true
		c.vertices[0].Constraint = c.InferConstraint(0)
		c.vertices[last].Constraint = c.InferConstraint(last)
	}
	Logger().Debug("closed contour", "contour", c.id, "segments", len(c.segments))
}

// Append joins other onto the end of c. Both must be open. If c's end point
// and other's start point do not coincide within [CollinearTolerance], a line
// connects them. Vertices keep their IDs; other must not be used afterwards.
func (c *Contour) Append(other *Contour) {
	if c == other {
		panic("cannot append a contour to itself")
	}
	if c.closed || other.closed {
		panic("cannot append closed contours")
	}
	if c.alloc != other.alloc {
		for i := range other.vertices {
			other.vertices[i].ID = VertexID(c.alloc.next())
		}
	}
	junction := len(c.vertices) - 1
	end, start := c.EndPoint(), other.StartPoint()
	if end.Near(start, CollinearTolerance) {
		if len(other.segments) > 0 {
			other.segments[0].Start = end
		}
		c.segments = append(c.segments, other.segments...)
		c.vertices = append(c.vertices, other.vertices[1:]...)
	} else {
		c.segments = append(c.segments, Segment{Kind: LineKind, Start: end, End: start})
		c.segments = append(c.segments, other.segments...)
		c.vertices = append(c.vertices, other.vertices...)
		c.vertices[junction+1].Constraint = c.InferConstraint(junction + 1)
	}
	c.vertices[junction].Constraint = c.InferConstraint(junction)
	c.normalizeEnds()
	other.segments = nil
	other.vertices = nil
	Logger().Debug("appended contour", "contour", c.id, "other", other.id, "segments", len(c.segments))
}

// Split removes segment i. A closed contour becomes a single open contour
// running from the segment's end round to its start, returned as head. An
// open contour becomes the part before the segment (head) and the part after
// it (tail). Parts without segments are returned as nil. Head reuses c and
// its ID; tail gets a new ID. Vertices keep their IDs.
func (c *Contour) Split(i int) (head, tail *Contour) {
	c.checkSegment(i)
	n := len(c.segments)
	if c.closed {
		e := c.EndVertex(i)
		segs := make([]Segment, 0, n-1)
		segs = append(segs, c.segments[i+1:]...)
		segs = append(segs, c.segments[:i]...)
		verts := make([]Vertex, 0, n)
		if e == 0 {
			verts = append(verts, c.vertices...)
		} else {
			verts = append(verts, c.vertices[e:]...)
			verts = append(verts, c.vertices[:i+1]...)
		}
		c.start = c.segments[i].End
		c.segments = segs
		c.vertices = verts
		c.closed = false
		Logger().Debug("opened contour", "contour", c.id, "segments", len(segs))
		if len(segs) == 0 {
			return nil, nil
		}
		c.normalizeEnds()
		return c, nil
	}

	if i+1 < n {
		tail = &Contour{
			id:       ContourID(c.alloc.next()),
			alloc:    c.alloc,
			start:    c.segments[i].End,
			segments: slices.Clone(c.segments[i+1:]),
			vertices: slices.Clone(c.vertices[i+1:]),
		}
		tail.normalizeEnds()
	}
	c.start = c.segments[i].Start
	c.segments = c.segments[:i:i]
	c.vertices = c.vertices[: i+1 : i+1]
	if i > 0 {
		head = c
		c.normalizeEnds()
	}
	Logger().Debug("split contour", "contour", c.id, "segment", i)
	return head, tail
}
