package pathedit

import "fmt"

// Constraint governs how the tangents of the two segments meeting at a vertex
// relate to each other.
type Constraint int

const (
	// Cusp enforces nothing.
	Cusp Constraint = iota
	// Smooth keeps both tangents on one line, pointing away from each other.
	Smooth
	// Symmetric is Smooth with equal control point distances. It only
	// applies between two cubics.
	Symmetric
	// Auto derives direction and distances from the neighboring vertices.
	// It decays to Smooth once a control point at the vertex is moved by
	// hand.
	Auto
)

func (k Constraint) String() string {
	switch k {
	case Cusp:
		return "cusp"
	case Smooth:
		return "smooth"
	case Symmetric:
		return "symmetric"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("Constraint(%d)", int(k))
	}
}

// ParseConstraint parses the names returned by [Constraint.String].
func ParseConstraint(s string) (Constraint, bool) {
	switch s {
	case "cusp":
		return Cusp, true
	case "smooth":
		return Smooth, true
	case "symmetric":
		return Symmetric, true
	case "auto":
		return Auto, true
	default:
		return 0, false
	}
}

// PreserveMode selects which side of a vertex is left alone when the
// constraint at the vertex is re-established.
type PreserveMode int

const (
	// PreserveEqual adjusts both sides.
	PreserveEqual PreserveMode = iota
	// PreserveIn keeps the segment ending at the vertex and adjusts the one
	// starting there.
	PreserveIn
	// PreserveOut keeps the segment starting at the vertex and adjusts the
	// one ending there.
	PreserveOut
)

func (m PreserveMode) String() string {
	switch m {
	case PreserveEqual:
		return "equal"
	case PreserveIn:
		return "in"
	case PreserveOut:
		return "out"
	default:
		return fmt.Sprintf("PreserveMode(%d)", int(m))
	}
}

// Step re-establishes the constraint at one vertex.
type Step struct {
	Vertex int
	Mode   PreserveMode
}

// Plan is an ordered list of steps. Each vertex appears at most once; the
// first step naming a vertex wins.
type Plan []Step

func (p Plan) add(v int, mode PreserveMode) Plan {
	for _, s := range p {
		if s.Vertex == v {
			return p
		}
	}
	return append(p, Step{v, mode})
}

// neighbors returns the segments ending and starting at vertex v. Either may
// be nil. In a closed contour with a single segment both are the same.
func (c *Contour) neighbors(v int) (in, out *Segment) {
	if i, ok := c.CurveInto(v); ok {
		in = &c.segments[i]
	}
	if i, ok := c.CurveOutOf(v); ok {
		out = &c.segments[i]
	}
	return in, out
}

// CanConstrain reports whether vertex v may hold a constraint other than
// Cusp, which is the case when every segment touching it is a cubic.
func (c *Contour) CanConstrain(v int) bool {
	in, out := c.neighbors(v)
	if in == nil && out == nil {
		return false
	}
	return (in == nil || in.Kind == CubicKind) && (out == nil || out.Kind == CubicKind)
}

// SetConstraint sets the constraint of vertex v and re-establishes it,
// adjusting both sides equally. Vertices that fail [Contour.CanConstrain]
// become Cusp instead. It returns the constraint that was set.
func (c *Contour) SetConstraint(v int, k Constraint) Constraint {
	c.checkVertex(v)
	if k != Cusp && !c.CanConstrain(v) {
		Logger().Debug("vertex cannot be constrained", "contour", c.id, "vertex", v, "constraint", k)
		k = Cusp
	}
	c.vertices[v].Constraint = k
	c.Apply(Plan{{v, PreserveEqual}})
	return k
}

// DropAutomatic demotes an Auto vertex to Smooth.
func (c *Contour) DropAutomatic(v int) {
	c.checkVertex(v)
	if c.vertices[v].Constraint == Auto {
		c.vertices[v].Constraint = Smooth
	}
}

// InferConstraint returns Smooth if the segments meeting at vertex v already
// leave it in opposite directions along one line, within
// [CollinearTolerance], and Cusp otherwise.
func (c *Contour) InferConstraint(v int) Constraint {
	in, out := c.neighbors(v)
	if in == nil || out == nil {
		return Cusp
	}
	p := c.Point(v)
	a := in.EndHandle()
	b := out.StartHandle()
	if a.Sub(p).Dot(b.Sub(p)) >= 0 {
		return Cusp
	}
	if !Collinear(p, a, b) {
		return Cusp
	}
	return Smooth
}

// MaintainSmoothness makes the tangents at vertex v line up, unless the vertex
// is a cusp.
//
// Between two cubics the control points are rotated about the vertex,
// keeping their distances. Between a cubic and another kind, the other
// segment's tangent is the reference. A line next to a quadratic or conic
// moves the latter's control point onto the line. Between two quadratics or
// conics both control points are moved onto a shared line through the
// vertex; this only keeps the tangent direction and is not exact for
// differing conic weights.
func (c *Contour) MaintainSmoothness(v int, mode PreserveMode) {
	c.checkVertex(v)
	if c.vertices[v].Constraint == Cusp {
		return
	}
	in, out := c.neighbors(v)
	if in == nil || out == nil {
		return
	}
	p := c.Point(v)

	switch {
	case in.Kind == LineKind && out.Kind == LineKind:

	case in.Kind == CubicKind && out.Kind == CubicKind:
		lin := p.Distance(in.Ctrl2)
		lout := p.Distance(out.Ctrl1)
		switch mode {
		case PreserveIn:
			if lin == 0 {
				return
			}
			out.Ctrl1 = OppositePoint(p, in.Ctrl2, lout)
		case PreserveOut:
			if lout == 0 {
				return
			}
			in.Ctrl2 = OppositePoint(p, out.Ctrl1, lin)
		case PreserveEqual:
			if lin == 0 || lout == 0 {
				return
			}
			din := p.Sub(in.Ctrl2).Div(lin)
			dout := out.Ctrl1.Sub(p).Div(lout)
			dir := din.Add(dout)
			if dir.Hypot2() < 1e-12 {
				// The handles point the same way; any bisector is as good
				// as the incoming direction.
				dir = din
			} else {
				dir = dir.Normalize()
			}
			in.Ctrl2 = p.Translate(dir.Mul(-lin))
			out.Ctrl1 = p.Translate(dir.Mul(lout))
		}

	case out.Kind == CubicKind:
		ref := in.EndHandle()
		if ref == p {
			return
		}
		out.Ctrl1 = OppositePoint(p, ref, p.Distance(out.Ctrl1))

	case in.Kind == CubicKind:
		ref := out.StartHandle()
		if ref == p {
			return
		}
		in.Ctrl2 = OppositePoint(p, ref, p.Distance(in.Ctrl2))

	case in.Kind == LineKind:
		if u, ok := LineIntersection(in.Start, in.End, out.Ctrl1, out.End); ok {
			out.Ctrl1 = u
		} else {
			Logger().Debug("no tangent intersection", "contour", c.id, "vertex", v)
		}

	case out.Kind == LineKind:
		if u, ok := LineIntersection(out.Start, out.End, in.Start, in.Ctrl1); ok {
			in.Ctrl1 = u
		} else {
			Logger().Debug("no tangent intersection", "contour", c.id, "vertex", v)
		}

	default:
		// Quadratics and conics on both sides.
		var a, b Point
		var okA, okB bool
		switch mode {
		case PreserveIn:
			a, okA = in.Ctrl1, true
			b, okB = LineIntersection(in.Ctrl1, p, out.Ctrl1, out.End)
		case PreserveOut:
			a, okA = LineIntersection(out.Ctrl1, p, in.Start, in.Ctrl1)
			b, okB = out.Ctrl1, true
		case PreserveEqual:
			h := p.Translate(out.Ctrl1.Sub(in.Ctrl1))
			a, okA = LineIntersection(p, h, in.Start, in.Ctrl1)
			b, okB = LineIntersection(p, h, out.Ctrl1, out.End)
		}
		if !okA || !okB {
			Logger().Debug("no tangent intersection", "contour", c.id, "vertex", v)
			return
		}
		in.Ctrl1 = a
		out.Ctrl1 = b
	}
}

// MaintainSymmetry equalizes the control point distances at a Symmetric
// vertex between two cubics. The preserved side's distance wins and its
// control point is left alone; PreserveEqual uses the mean.
func (c *Contour) MaintainSymmetry(v int, mode PreserveMode) {
	c.checkVertex(v)
	if c.vertices[v].Constraint != Symmetric {
		return
	}
	in, out := c.neighbors(v)
	if in == nil || out == nil || in.Kind != CubicKind || out.Kind != CubicKind {
		return
	}
	p := c.Point(v)
	l1 := p.Distance(in.Ctrl2)
	l2 := p.Distance(out.Ctrl1)
	if l1 == l2 {
		return
	}
	var l float64
	switch mode {
	case PreserveIn:
		l = l1
	case PreserveOut:
		l = l2
	default:
		l = (l1 + l2) / 2
	}
	if l1 != 0 && mode != PreserveIn {
		in.Ctrl2 = ScalePoint(p, in.Ctrl2, l)
	}
	if l2 != 0 && mode != PreserveOut {
		out.Ctrl1 = ScalePoint(p, out.Ctrl1, l)
	}
}

// updateAutomatic places the control points at an Auto vertex. Between two
// cubics they go on a line perpendicular to the bisector of the directions
// to the neighboring vertices, at a third of the distance to each neighbor.
// At the end of an open contour the control point goes halfway between the
// vertex and the segment's other control point.
func (c *Contour) updateAutomatic(v int) {
	if c.vertices[v].Constraint != Auto {
		return
	}
	in, out := c.neighbors(v)
	p := c.Point(v)
	switch {
	case in != nil && out != nil:
		if in.Kind != CubicKind || out.Kind != CubicKind {
			return
		}
		p1 := in.Start
		p2 := out.End
		a := p2.Translate(p.Sub(p1))
		if a == p {
			return
		}
		l1 := p.Distance(p1)
		l2 := p.Distance(p2)
		out.Ctrl1 = ScalePoint(p, a, l2/3)
		in.Ctrl2 = OppositePoint(p, a, l1/3)
	case out != nil:
		if out.Kind == CubicKind {
			out.Ctrl1 = p.Midpoint(out.Ctrl2)
		}
	case in != nil:
		if in.Kind == CubicKind {
			in.Ctrl2 = p.Midpoint(in.Ctrl1)
		}
	}
}

// MaintainAutomatic recomputes the control points of vertex v and of its
// neighboring vertices, each if it is Auto. Neighbors depend on v's position
// through their distances.
func (c *Contour) MaintainAutomatic(v int) {
	c.checkVertex(v)
	c.updateAutomatic(v)
	if i, ok := c.CurveInto(v); ok {
		if u := c.StartVertex(i); u != v {
			c.updateAutomatic(u)
		}
	}
	if i, ok := c.CurveOutOf(v); ok {
		if w := c.EndVertex(i); w != v {
			c.updateAutomatic(w)
		}
	}
}

// Apply runs the plan's steps in order. Each step re-establishes smoothness,
// then symmetry, then automatic placement at its vertex.
func (c *Contour) Apply(plan Plan) {
	for _, s := range plan {
		c.MaintainSmoothness(s.Vertex, s.Mode)
		c.MaintainSymmetry(s.Vertex, s.Mode)
		c.MaintainAutomatic(s.Vertex)
	}
}

// VertexEditPlan is the plan after moving vertex v: v itself on equal terms,
// then the far ends of both segments touching v, each keeping the geometry
// beyond it.
func (c *Contour) VertexEditPlan(v int) Plan {
	c.checkVertex(v)
	plan := Plan{{v, PreserveEqual}}
	if i, ok := c.CurveInto(v); ok {
		plan = plan.add(c.StartVertex(i), PreserveIn)
	}
	if i, ok := c.CurveOutOf(v); ok {
		plan = plan.add(c.EndVertex(i), PreserveOut)
	}
	return plan
}

// ControlEditPlan is the plan after moving control point idx (1 or 2) of
// segment i. Both ends of the segment are visited; for idx 1 the segment
// starting at each end wins, for idx 2 the segment ending there.
func (c *Contour) ControlEditPlan(i, idx int) Plan {
	var mode PreserveMode
	switch idx {
	case 1:
		mode = PreserveOut
	case 2:
		mode = PreserveIn
	default:
		panic(fmt.Sprintf("invalid control point index %d", idx))
	}
	var plan Plan
	plan = plan.add(c.StartVertex(i), mode)
	plan = plan.add(c.EndVertex(i), mode)
	return plan
}

// CurveEditPlan is the plan after segment i changed representation. Its
// neighbors win at both ends and segment i adapts.
func (c *Contour) CurveEditPlan(i int) Plan {
	var plan Plan
	plan = plan.add(c.StartVertex(i), PreserveIn)
	plan = plan.add(c.EndVertex(i), PreserveOut)
	return plan
}

// CurveDragPlan is the plan after segment i was reshaped by hand. Segment i
// wins at both ends and its neighbors adapt.
func (c *Contour) CurveDragPlan(i int) Plan {
	var plan Plan
	plan = plan.add(c.StartVertex(i), PreserveOut)
	plan = plan.add(c.EndVertex(i), PreserveIn)
	return plan
}
