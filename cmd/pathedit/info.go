package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"honnef.co/go/pathedit"
)

// writeInfo lists every contour of p with its segments and vertices.
func writeInfo(w io.Writer, p *pathedit.Path) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for ci, c := range p.Contours() {
		state := "open"
		if c.Closed() {
			state = "closed"
		}
		fmt.Fprintf(tw, "contour %d\t%s\t%d segments\n", ci, state, c.Len())
		for v := range c.NumVertices() {
			fmt.Fprintf(tw, "  vertex %d\t%s\t%s\n", v, c.Constraint(v), c.Point(v))
			if i, ok := c.CurveOutOf(v); ok {
				seg := c.Segment(i)
				if seg.Kind == pathedit.ConicKind {
					fmt.Fprintf(tw, "  segment %d\t%s\tweight %g\n", i, seg.Kind, seg.Weight)
				} else {
					fmt.Fprintf(tw, "  segment %d\t%s\t\n", i, seg.Kind)
				}
			}
		}
	}
	if r, ok := p.BoundingBox(); ok {
		fmt.Fprintf(tw, "bounds\t%s\t\n", r)
	}
	return tw.Flush()
}
