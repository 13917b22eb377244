package pathedit

// DefaultClickRadius is the hit-testing radius of a new [Session].
const DefaultClickRadius = 5

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}

func (opt option[T]) get() (T, bool) {
	return opt.value, opt.isSet
}

// Handle names a point of a path by vertex ID, so that it stays valid across
// structural edits. Point 0 is the vertex itself. Points 1 and 2 belong to
// the segment leaving the vertex and are numbered as in [Segment.Points].
type Handle struct {
	Vertex VertexID
	Point  int
}

// Session is the state of an interactive editor working on a [Path]: which
// point is hovered, selected or being dragged, which curve is being molded,
// and which vertex or curve has its handles shown. All of it refers to
// vertices by ID. Points and curves that disappear through edits are
// forgotten.
type Session struct {
	// Edit enables editing. Without it no handle is visible and nothing
	// can be dragged.
	Edit bool
	// Radius is the distance within which points and curves are hit.
	Radius float64

	path *Path

	selected option[Handle]
	hovered  option[Handle]
	dragged  option[Handle]
	// Segments are named by the vertex they start at.
	molded       option[VertexID]
	editedVertex option[VertexID]
	editedCurve  option[VertexID]
}

// NewSession returns a session editing p.
func NewSession(p *Path) *Session {
	return &Session{
		Edit:   true,
		Radius: DefaultClickRadius,
		path:   p,
	}
}

func (s *Session) Path() *Path { return s.path }

func (s *Session) Selected() (Handle, bool) { return s.selected.get() }
func (s *Session) Hovered() (Handle, bool) { return s.hovered.get() }
func (s *Session) Dragged() (Handle, bool) { return s.dragged.get() }
func (s *Session) Molded() (VertexID, bool) { return s.molded.get() }
func (s *Session) EditedVertex() (VertexID, bool) { return s.editedVertex.get() }
func (s *Session) EditedCurve() (VertexID, bool) { return s.editedCurve.get() }
func (s *Session) Select(h Handle) { s.selected.set(h) }
func (s *Session) ClearSelection() { s.selected.clear() }

// LoadPath replaces the path being edited and forgets all state.
func (s *Session) LoadPath(p *Path) {
	s.path = p
	s.selected.clear()
	s.hovered.clear()
	s.dragged.clear()
	s.molded.clear()
	s.editedVertex.clear()
	s.editedCurve.clear()
}

// vertex resolves a vertex ID to current indices.
func (s *Session) vertex(id VertexID) (c *Contour, ci, v int, ok bool) {
	ci, v, ok = s.path.FindVertex(id)
	if !ok {
		return nil, 0, 0, false
	}
	return s.path.contours[ci], ci, v, true
}

// segment resolves the segment starting at vertex id.
func (s *Session) segment(id VertexID) (c *Contour, ci, i int, ok bool) {
	c, ci, v, ok := s.vertex(id)
	if !ok {
		return nil, 0, 0, false
	}
	i, ok = c.CurveOutOf(v)
	return c, ci, i, ok
}

func (s *Session) valid(h Handle) bool {
	if h.Point == 0 {
		_, _, _, ok := s.vertex(h.Vertex)
		return ok
	}
	_, _, _, ok := s.segment(h.Vertex)
	return ok
}

// handle converts a hit into a handle.
func (s *Session) handle(hit Hit) Handle {
	c := s.path.contours[hit.Contour]
	switch hit.Point {
	case 0:
		return Handle{c.vertices[c.StartVertex(hit.Segment)].ID, 0}
	case 3:
		return Handle{c.vertices[c.EndVertex(hit.Segment)].ID, 0}
	default:
		return Handle{c.vertices[c.StartVertex(hit.Segment)].ID, hit.Point}
	}
}

// Position returns the current position of the point named by h.
func (s *Session) Position(h Handle) (Point, bool) {
	if h.Point == 0 {
		c, _, v, ok := s.vertex(h.Vertex)
		if !ok {
			return Point{}, false
		}
		return c.Point(v), true
	}
	c, _, i, ok := s.segment(h.Vertex)
	if !ok {
		return Point{}, false
	}
	return c.segments[i].Points()[h.Point], true
}

// PointIsVisible reports whether the point named by h is meaningful to show
// and to drag. Vertices always are. Control points are shown for the curve
// being edited and around the vertex being edited: a cubic's control point
// next to that vertex, or the control point of a conic or quadratic touching
// it. A conic's shoulder point is shown only while its curve is edited.
func (s *Session) PointIsVisible(h Handle) bool {
	if !s.Edit {
		return false
	}
	if h.Point == 0 {
		_, _, _, ok := s.vertex(h.Vertex)
		return ok
	}
	c, _, i, ok := s.segment(h.Vertex)
	if !ok {
		return false
	}
	seg := c.segments[i]
	if seg.Kind == LineKind {
		return false
	}
	if seg.Kind == QuadKind && h.Point == 2 {
		return false
	}
	if id, ok := s.editedCurve.get(); ok && id == h.Vertex {
		return true
	}
	ev, ok := s.editedVertex.get()
	if !ok {
		return false
	}
	endID := c.vertices[c.EndVertex(i)].ID
	switch h.Point {
	case 1:
		switch seg.Kind {
		case CubicKind:
			return ev == h.Vertex
		case QuadKind, ConicKind:
			return ev == h.Vertex || ev == endID
		}
	case 2:
		return seg.Kind == CubicKind && ev == endID
	}
	return false
}

// ToggleEditVertex shows the handles around vertex id, or hides them if they
// are shown. Showing them stops editing any curve.
func (s *Session) ToggleEditVertex(id VertexID) {
	if cur, ok := s.editedVertex.get(); ok && cur == id {
		s.editedVertex.clear()
		return
	}
	s.editedVertex.set(id)
	s.editedCurve.clear()
}

// ToggleEditCurve shows the handles of the segment starting at vertex id, or
// hides them if they are shown. Showing them stops editing any vertex.
func (s *Session) ToggleEditCurve(id VertexID) {
	if cur, ok := s.editedCurve.get(); ok && cur == id {
		s.editedCurve.clear()
		return
	}
	s.editedCurve.set(id)
	s.editedVertex.clear()
}

// HandleAt returns the visible point within the session's radius of pt.
func (s *Session) HandleAt(pt Point) (Handle, bool) {
	hit, ok := s.path.Nearest(pt, s.Radius, func(h Hit) bool {
		return s.PointIsVisible(s.handle(h))
	})
	if !ok {
		return Handle{}, false
	}
	return s.handle(hit), true
}

// Hover updates the hovered point and reports whether there is one.
func (s *Session) Hover(pt Point) bool {
	h, ok := s.HandleAt(pt)
	if !ok {
		s.hovered.clear()
		return false
	}
	s.hovered.set(h)
	return true
}

// BeginDrag starts a drag at pt. A visible point there is dragged and
// selected. A hidden point there blocks the drag. Otherwise a curve near pt
// is molded; lines are turned into cubics first since they cannot bend.
// BeginDrag reports whether a drag started.
func (s *Session) BeginDrag(pt Point) bool {
	if !s.Edit {
		return false
	}
	s.dragged.clear()
	s.molded.clear()
	if hit, ok := s.path.Nearest(pt, s.Radius, nil); ok {
		h := s.handle(hit)
		if !s.PointIsVisible(h) {
			return false
		}
		s.dragged.set(h)
		s.selected.set(h)
		return true
	}
	if hit, ok := s.path.NearestCurve(pt, s.Radius); ok {
		c := s.path.contours[hit.Contour]
		if c.segments[hit.Segment].Kind == LineKind {
			c.SetKind(hit.Segment, CubicKind)
		}
		s.molded.set(c.vertices[c.StartVertex(hit.Segment)].ID)
		return true
	}
	return false
}

// DragTo continues the current drag to pt. It reports false if nothing is
// being dragged or the dragged point no longer exists.
func (s *Session) DragTo(pt Point) bool {
	if h, ok := s.dragged.get(); ok {
		if h.Point == 0 {
			c, _, v, ok := s.vertex(h.Vertex)
			if !ok {
				s.dragged.clear()
				return false
			}
			c.DragVertex(v, pt)
			return true
		}
		c, _, i, ok := s.segment(h.Vertex)
		if !ok {
			s.dragged.clear()
			return false
		}
		c.DragCurvePoint(i, h.Point, pt)
		return true
	}
	if id, ok := s.molded.get(); ok {
		c, _, i, ok := s.segment(id)
		if !ok {
			s.molded.clear()
			return false
		}
		return c.DragCurve(i, pt)
	}
	return false
}

// EndDrag finishes the current drag at pt.
func (s *Session) EndDrag(pt Point) {
	s.DragTo(pt)
	s.dragged.clear()
	s.molded.clear()
}

// forget drops state that refers to points that no longer exist.
func (s *Session) forget() {
	for _, opt := range []*option[Handle]{&s.selected, &s.hovered, &s.dragged} {
		if h, ok := opt.get(); ok && !s.valid(h) {
			opt.clear()
		}
	}
	if id, ok := s.molded.get(); ok {
		if _, _, _, ok := s.segment(id); !ok {
			s.molded.clear()
		}
	}
	if id, ok := s.editedCurve.get(); ok {
		if _, _, _, ok := s.segment(id); !ok {
			s.editedCurve.clear()
		}
	}
	if id, ok := s.editedVertex.get(); ok {
		if _, _, _, ok := s.vertex(id); !ok {
			s.editedVertex.clear()
		}
	}
}

func (s *Session) stale(op string, id VertexID) {
	Logger().Debug("stale vertex ID", "op", op, "vertex", id)
}

// SetConstraint sets the constraint of vertex id and returns the constraint
// that was actually set.
func (s *Session) SetConstraint(id VertexID, k Constraint) (Constraint, bool) {
	c, _, v, ok := s.vertex(id)
	if !ok {
		s.stale("set constraint", id)
		return 0, false
	}
	return c.SetConstraint(v, k), true
}

// SetKind converts the segment starting at vertex id.
func (s *Session) SetKind(id VertexID, kind SegmentKind) bool {
	c, _, i, ok := s.segment(id)
	if !ok {
		s.stale("set kind", id)
		return false
	}
	c.SetKind(i, kind)
	s.forget()
	return true
}

// ResetWeight resets the weight of the conic starting at vertex id.
func (s *Session) ResetWeight(id VertexID) bool {
	c, _, i, ok := s.segment(id)
	if !ok {
		s.stale("reset weight", id)
		return false
	}
	return c.ResetWeight(i)
}

// InsertPoint splits the segment starting at vertex id at t and returns the
// new vertex's ID.
func (s *Session) InsertPoint(id VertexID, t float64) (VertexID, bool) {
	c, _, i, ok := s.segment(id)
	if !ok {
		s.stale("insert point", id)
		return 0, false
	}
	v := c.InsertPoint(i, t)
	return c.vertices[v].ID, true
}

// RemovePoint removes vertex id, deleting its contour if no segments remain.
func (s *Session) RemovePoint(id VertexID) bool {
	_, ci, v, ok := s.vertex(id)
	if !ok {
		s.stale("remove point", id)
		return false
	}
	s.path.RemovePoint(ci, v)
	s.forget()
	return true
}

// Close closes the contour containing vertex id.
func (s *Session) Close(id VertexID) bool {
	_, ci, _, ok := s.vertex(id)
	if !ok {
		s.stale("close", id)
		return false
	}
	s.path.Close(ci)
	s.forget()
	return true
}

// Split removes the segment starting at vertex id, splitting its contour.
func (s *Session) Split(id VertexID) bool {
	_, ci, i, ok := s.segment(id)
	if !ok {
		s.stale("split", id)
		return false
	}
	s.path.Split(ci, i)
	s.forget()
	return true
}

// Append joins the contour containing vertex b onto the end of the one
// containing vertex a. Both contours must be distinct and open.
func (s *Session) Append(a, b VertexID) bool {
	ca, ci, _, ok := s.vertex(a)
	if !ok {
		s.stale("append", a)
		return false
	}
	cb, cj, _, ok := s.vertex(b)
	if !ok {
		s.stale("append", b)
		return false
	}
	if ca == cb || ca.closed || cb.closed {
		return false
	}
	s.path.Append(ci, cj)
	s.forget()
	return true
}
