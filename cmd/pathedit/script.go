package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"honnef.co/go/pathedit"
)

// Script is a list of edit steps, written in TOML as an array of [[step]]
// tables:
//
//	[[step]]
//	op = "drag-point"
//	contour = 0
//	segment = 1
//	point = 2
//	to = [40, 25]
//
// Steps address contours, segments and vertices by index, and indices are
// re-evaluated after every step.
type Script struct {
	Steps []Step `toml:"step"`
}

// Step is one edit. Which fields are used depends on Op.
//
//	drag-point      contour, segment, point (0-3), to
//	drag-vertex     contour, vertex, to
//	drag-curve      contour, segment, to
//	set-kind        contour, segment, kind
//	set-constraint  contour, vertex, constraint
//	insert          contour, segment, t
//	remove          contour, vertex
//	close           contour
//	split           contour, segment
//	append          contour, other
//	reset-weight    contour, segment
//	translate       to
type Step struct {
	Op         string     `toml:"op"`
	Contour    int        `toml:"contour"`
	Other      int        `toml:"other"`
	Segment    int        `toml:"segment"`
	Vertex     int        `toml:"vertex"`
	Point      int        `toml:"point"`
	T          float64    `toml:"t"`
	To         [2]float64 `toml:"to"`
	Kind       string     `toml:"kind"`
	Constraint string     `toml:"constraint"`
}

var errUnknownOp = errors.New("unknown operation")

// DecodeScript reads a script. Unknown keys are rejected.
func DecodeScript(r io.Reader) (*Script, error) {
	var s Script
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	return &s, nil
}

// Apply runs the script's steps on p in order. It stops at the first step
// that is invalid for the current state of the path.
func (s *Script) Apply(p *pathedit.Path, logger *slog.Logger) error {
	for i, st := range s.Steps {
		logger.Debug("applying step", "step", i+1, "op", st.Op)
		if err := st.apply(p, logger); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}

func (st Step) to() pathedit.Point {
	return pathedit.Pt(st.To[0], st.To[1])
}

func contour(p *pathedit.Path, ci int) (*pathedit.Contour, error) {
	if ci < 0 || ci >= p.Len() {
		return nil, fmt.Errorf("contour %d out of range [0, %d)", ci, p.Len())
	}
	return p.Contour(ci), nil
}

func segment(p *pathedit.Path, ci, i int) (*pathedit.Contour, error) {
	c, err := contour(p, ci)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= c.Len() {
		return nil, fmt.Errorf("segment %d out of range [0, %d)", i, c.Len())
	}
	return c, nil
}

func vertex(p *pathedit.Path, ci, v int) (*pathedit.Contour, error) {
	c, err := contour(p, ci)
	if err != nil {
		return nil, err
	}
	if v < 0 || v >= c.NumVertices() {
		return nil, fmt.Errorf("vertex %d out of range [0, %d)", v, c.NumVertices())
	}
	return c, nil
}

func (st Step) apply(p *pathedit.Path, logger *slog.Logger) error {
	switch st.Op {
	case "drag-point":
		c, err := segment(p, st.Contour, st.Segment)
		if err != nil {
			return err
		}
		if st.Point < 0 || st.Point > 3 {
			return fmt.Errorf("point %d out of range [0, 3]", st.Point)
		}
		if kind := c.Segment(st.Segment).Kind; kind == pathedit.LineKind && (st.Point == 1 || st.Point == 2) {
			return fmt.Errorf("%s segment has no point %d", kind, st.Point)
		}
		p.DragCurvePoint(st.Contour, st.Segment, st.Point, st.to())

	case "drag-vertex":
		if _, err := vertex(p, st.Contour, st.Vertex); err != nil {
			return err
		}
		p.DragVertex(st.Contour, st.Vertex, st.to())

	case "drag-curve":
		if _, err := segment(p, st.Contour, st.Segment); err != nil {
			return err
		}
		if !p.DragCurve(st.Contour, st.Segment, st.to()) {
			logger.Warn("curve left unchanged", "contour", st.Contour, "segment", st.Segment)
		}

	case "set-kind":
		if _, err := segment(p, st.Contour, st.Segment); err != nil {
			return err
		}
		kind, ok := pathedit.ParseSegmentKind(st.Kind)
		if !ok {
			return fmt.Errorf("invalid segment kind %q", st.Kind)
		}
		p.SetKind(st.Contour, st.Segment, kind)

	case "set-constraint":
		if _, err := vertex(p, st.Contour, st.Vertex); err != nil {
			return err
		}
		k, ok := pathedit.ParseConstraint(st.Constraint)
		if !ok {
			return fmt.Errorf("invalid constraint %q", st.Constraint)
		}
		if got := p.SetConstraint(st.Contour, st.Vertex, k); got != k {
			logger.Warn("vertex cannot hold constraint", "contour", st.Contour, "vertex", st.Vertex, "constraint", k, "set", got)
		}

	case "insert":
		if _, err := segment(p, st.Contour, st.Segment); err != nil {
			return err
		}
		if !(st.T > 0 && st.T < 1) {
			return fmt.Errorf("t = %g not in (0, 1)", st.T)
		}
		p.InsertPoint(st.Contour, st.Segment, st.T)

	case "remove":
		if _, err := vertex(p, st.Contour, st.Vertex); err != nil {
			return err
		}
		if p.RemovePoint(st.Contour, st.Vertex) {
			logger.Info("removed empty contour", "contour", st.Contour)
		}

	case "close":
		if _, err := contour(p, st.Contour); err != nil {
			return err
		}
		p.Close(st.Contour)

	case "split":
		if _, err := segment(p, st.Contour, st.Segment); err != nil {
			return err
		}
		p.Split(st.Contour, st.Segment)

	case "append":
		a, err := contour(p, st.Contour)
		if err != nil {
			return err
		}
		b, err := contour(p, st.Other)
		if err != nil {
			return err
		}
		if a == b {
			return fmt.Errorf("cannot append contour %d to itself", st.Contour)
		}
		if a.Closed() || b.Closed() {
			return errors.New("cannot append closed contours")
		}
		p.Append(st.Contour, st.Other)

	case "reset-weight":
		if _, err := segment(p, st.Contour, st.Segment); err != nil {
			return err
		}
		if !p.ResetWeight(st.Contour, st.Segment) {
			logger.Warn("segment is not a conic", "contour", st.Contour, "segment", st.Segment)
		}

	case "translate":
		p.Transform(pathedit.Translate(pathedit.Vec(st.To[0], st.To[1])))

	default:
		return fmt.Errorf("%w %q", errUnknownOp, st.Op)
	}
	return nil
}
