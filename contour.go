package pathedit

import (
	"fmt"
	"iter"
)

// VertexID identifies a vertex across structural edits. IDs are never reused
// within a [Path].
type VertexID uint64

// ContourID identifies a contour across structural edits.
type ContourID uint64

type idAlloc struct {
	n uint64
}

func (a *idAlloc) next() uint64 {
	a.n++
	return a.n
}

// Vertex is an on-curve point shared by up to two segments. Its position is
// stored in the segments; the vertex carries identity and the constraint
// that governs the tangents of the segments meeting at it.
type Vertex struct {
	ID         VertexID
	Constraint Constraint
}

// Contour is an ordered chain of segments that share end points, optionally
// closed into a loop.
//
// Segment i runs from vertex i to vertex i+1. An open contour with n segments
// has n+1 vertices; a closed one has n and its last segment ends at vertex 0.
// A contour without segments has a single bare start vertex.
type Contour struct {
	id       ContourID
	alloc    *idAlloc
	start    Point
	segments []Segment
	vertices []Vertex
	closed   bool
}

// NewContour returns an empty open contour whose only vertex is at start.
func NewContour(start Point) *Contour {
	return newContour(&idAlloc{}, start)
}

func newContour(alloc *idAlloc, start Point) *Contour {
	return &Contour{
		id:       ContourID(alloc.next()),
		alloc:    alloc,
		start:    start,
		vertices: []Vertex{{ID: VertexID(alloc.next())}},
	}
}

func (c *Contour) String() string {
	return fmt.Sprintf("Contour(%d, %d segments, closed=%t)", c.id, len(c.segments), c.closed)
}

func (c *Contour) ID() ContourID { return c.id }

func (c *Contour) Closed() bool { return c.closed }

// Len returns the number of segments.
func (c *Contour) Len() int { return len(c.segments) }

// Empty reports whether the contour has no segments.
func (c *Contour) Empty() bool { return len(c.segments) == 0 }

// NumVertices returns the number of vertices, which is Len()+1 for open
// contours and Len() for closed ones.
func (c *Contour) NumVertices() int { return len(c.vertices) }

func (c *Contour) checkSegment(i int) {
	if i < 0 || i >= len(c.segments) {
		panic(fmt.Sprintf("segment index %d out of range [0, %d)", i, len(c.segments)))
	}
}

func (c *Contour) checkVertex(v int) {
	if v < 0 || v >= len(c.vertices) {
		panic(fmt.Sprintf("vertex index %d out of range [0, %d)", v, len(c.vertices)))
	}
}

// Segment returns segment i.
func (c *Contour) Segment(i int) Segment {
	c.checkSegment(i)
	return c.segments[i]
}

// Segments returns an iterator over the contour's segments and their indices.
func (c *Contour) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, seg := range c.segments {
			if !yield(i, seg) {
				return
			}
		}
	}
}

// Vertex returns vertex v.
func (c *Contour) Vertex(v int) Vertex {
	c.checkVertex(v)
	return c.vertices[v]
}

// VertexIndex returns the current index of the vertex with the given ID.
func (c *Contour) VertexIndex(id VertexID) (int, bool) {
	for i, vtx := range c.vertices {
		if vtx.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Constraint returns the constraint of vertex v.
func (c *Contour) Constraint(v int) Constraint {
	return c.Vertex(v).Constraint
}

// StartVertex returns the vertex segment i starts at.
func (c *Contour) StartVertex(i int) int {
	c.checkSegment(i)
	return i
}

// EndVertex returns the vertex segment i ends at. For the last segment of a
// closed contour this wraps around to 0.
func (c *Contour) EndVertex(i int) int {
	c.checkSegment(i)
	if c.closed && i == len(c.segments)-1 {
		return 0
	}
	return i + 1
}

// CurveInto returns the segment ending at vertex v. The first vertex of an
// open contour has none.
func (c *Contour) CurveInto(v int) (int, bool) {
	c.checkVertex(v)
	if len(c.segments) == 0 {
		return 0, false
	}
	if v > 0 {
		return v - 1, true
	}
	if c.closed {
		return len(c.segments) - 1, true
	}
	return 0, false
}

// CurveOutOf returns the segment starting at vertex v. The last vertex of an
// open contour has none.
func (c *Contour) CurveOutOf(v int) (int, bool) {
	c.checkVertex(v)
	if v < len(c.segments) {
		return v, true
	}
	return 0, false
}

// Point returns the position of vertex v.
func (c *Contour) Point(v int) Point {
	if out, ok := c.CurveOutOf(v); ok {
		return c.segments[out].Start
	}
	if in, ok := c.CurveInto(v); ok {
		return c.segments[in].End
	}
	return c.start
}

// setPoint moves vertex v, updating both segments that share it.
func (c *Contour) setPoint(v int, pt Point) {
	if in, ok := c.CurveInto(v); ok {
		c.segments[in].End = pt
	}
	if out, ok := c.CurveOutOf(v); ok {
		c.segments[out].Start = pt
	}
	if len(c.segments) == 0 {
		c.start = pt
	}
}

// StartPoint returns the position of vertex 0.
func (c *Contour) StartPoint() Point { return c.Point(0) }

// EndPoint returns the position of the last vertex. For closed contours this
// is the same as StartPoint.
func (c *Contour) EndPoint() Point {
	if c.closed {
		return c.StartPoint()
	}
	return c.Point(len(c.vertices) - 1)
}

// Curve returns the kind and points of segment i in the form used for
// display and hit testing. See [Segment.Points].
func (c *Contour) Curve(i int) (SegmentKind, [4]Point) {
	seg := c.Segment(i)
	return seg.Kind, seg.Points()
}

func (c *Contour) push(seg Segment) {
	if c.closed {
		panic("cannot extend a closed contour")
	}
	seg.Start = c.EndPoint()
	c.segments = append(c.segments, seg)
	c.vertices = append(c.vertices, Vertex{ID: VertexID(c.alloc.next())})
}

// LineTo extends the open contour with a line to pt.
func (c *Contour) LineTo(pt Point) {
	c.push(Segment{Kind: LineKind, End: pt})
}

// QuadTo extends the open contour with a quadratic Bézier.
func (c *Contour) QuadTo(p1, p2 Point) {
	c.push(Segment{Kind: QuadKind, Ctrl1: p1, End: p2})
}

// CubicTo extends the open contour with a cubic Bézier.
func (c *Contour) CubicTo(p1, p2, p3 Point) {
	c.push(Segment{Kind: CubicKind, Ctrl1: p1, Ctrl2: p2, End: p3})
}

// ConicTo extends the open contour with a conic of weight w.
func (c *Contour) ConicTo(p1, p2 Point, w float64) {
	if w <= 0 {
		panic(fmt.Sprintf("invalid conic weight %g", w))
	}
	c.push(Segment{Kind: ConicKind, Ctrl1: p1, End: p2, Weight: w})
}

// PathElements returns the contour as path elements: a MoveTo, one element
// per segment and, for closed contours, a ClosePath.
func (c *Contour) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(c.StartPoint())) {
			return
		}
		for _, seg := range c.segments {
			if !yield(seg.PathElement()) {
				return
			}
		}
		if c.closed {
			yield(ClosePath())
		}
	}
}

// Transform applies aff to every point of the contour. Constraints are kept;
// affine maps preserve collinearity, though not length ratios.
func (c *Contour) Transform(aff Affine) {
	c.start = c.start.Transform(aff)
	for i := range c.segments {
		c.segments[i] = c.segments[i].Transform(aff)
	}
}

// BoundingBox returns a rectangle containing the contour's points and control
// points.
func (c *Contour) BoundingBox() Rect {
	if len(c.segments) == 0 {
		return NewRectFromPoints(c.start, c.start)
	}
	r := c.segments[0].ControlBox()
	for _, seg := range c.segments[1:] {
		r = r.Union(seg.ControlBox())
	}
	return r
}

// validate checks the structural invariants of the contour.
func (c *Contour) validate() error {
	want := len(c.segments) + 1
	if c.closed {
		want = len(c.segments)
	}
	if len(c.segments) == 0 {
		if c.closed {
			return fmt.Errorf("empty contour is closed")
		}
		want = 1
	}
	if len(c.vertices) != want {
		return fmt.Errorf("have %d vertices for %d segments (closed=%t)", len(c.vertices), len(c.segments), c.closed)
	}
	for i, seg := range c.segments {
		next := i + 1
		if next == len(c.segments) {
			if !c.closed {
				break
			}
			next = 0
		}
		if seg.End != c.segments[next].Start {
			return fmt.Errorf("segment %d ends at %v but segment %d starts at %v", i, seg.End, next, c.segments[next].Start)
		}
	}
	seen := make(map[VertexID]bool, len(c.vertices))
	for _, vtx := range c.vertices {
		if seen[vtx.ID] {
			return fmt.Errorf("duplicate vertex ID %d", vtx.ID)
		}
		seen[vtx.ID] = true
	}
	return nil
}
