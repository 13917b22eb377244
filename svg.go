package pathedit

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// SVG has no rational quadratic command. Conics are written with the
// nonstandard O command, "O x1,y1 x2,y2 w", which [ParseSVG] understands.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	write := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	pt := func(p Point) string {
		return format(p.X) + "," + format(p.Y)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s", pt(el.P0))
		case LineToKind:
			writef("L%s", pt(el.P0))
		case QuadToKind:
			writef("Q%s %s", pt(el.P0), pt(el.P1))
		case CubicToKind:
			writef("C%s %s %s", pt(el.P0), pt(el.P1), pt(el.P2))
		case ConicToKind:
			writef("O%s %s %s", pt(el.P0), pt(el.P1), format(el.Weight))
		case ClosePathKind:
			write("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}

// ErrSyntax is returned by [ParseSVG] for malformed path data.
var ErrSyntax = errors.New("invalid path data")

type svgScanner struct {
	b   []byte
	pos int
}

func (s *svgScanner) skip() {
	for s.pos < len(s.b) {
		switch s.b[s.pos] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			s.pos++
		default:
			return
		}
	}
}

func (s *svgScanner) atNumber() bool {
	s.skip()
	if s.pos >= len(s.b) {
		return false
	}
	c := s.b[s.pos]
	return c == '-' || c == '+' || c == '.' || ('0' <= c && c <= '9')
}

func (s *svgScanner) number() (float64, error) {
	s.skip()
	f, n := pstrconv.ParseFloat(s.b[s.pos:])
	if n == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, s.pos)
	}
	s.pos += n
	return f, nil
}

func (s *svgScanner) point(rel bool, cur Point) (Point, error) {
	x, err := s.number()
	if err != nil {
		return Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return Point{}, err
	}
	if rel {
		return Pt(cur.X+x, cur.Y+y), nil
	}
	return Pt(x, y), nil
}

// ParseSVG parses SVG path data into a BezPath. It supports the M, L, H, V,
// Q, C and Z commands in their absolute and relative forms, as well as the O
// command written by [WriteSVG] for conics. Arcs and the smooth curve
// shorthands are not supported.
func ParseSVG(data string) (BezPath, error) {
	s := &svgScanner{b: []byte(data)}
	var out BezPath
	var cur, start Point
	var cmd byte
	for {
		s.skip()
		if s.pos >= len(s.b) {
			break
		}
		if c := s.b[s.pos]; !s.atNumber() {
			cmd = c
			s.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("%w: number without command at offset %d", ErrSyntax, s.pos)
		}
		rel := cmd >= 'a'
		switch cmd {
		case 'M', 'm':
			p, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			out.MoveTo(p)
			cur, start = p, p
			// Further coordinate pairs are implicit line commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			p, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			out.LineTo(p)
			cur = p
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = Pt(x, cur.Y)
			out.LineTo(cur)
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = Pt(cur.X, y)
			out.LineTo(cur)
		case 'Q', 'q':
			p1, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p2, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			out.QuadTo(p1, p2)
			cur = p2
		case 'C', 'c':
			p1, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p2, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p3, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			out.CubicTo(p1, p2, p3)
			cur = p3
		case 'O', 'o':
			p1, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p2, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			w, err := s.number()
			if err != nil {
				return nil, err
			}
			if !(w > 0) {
				return nil, fmt.Errorf("%w: conic weight %g is not positive", ErrSyntax, w)
			}
			out.ConicTo(p1, p2, w)
			cur = p2
		case 'Z', 'z':
			out.ClosePath()
			cur = start
		default:
			return nil, fmt.Errorf("%w: unknown command %q at offset %d", ErrSyntax, cmd, s.pos-1)
		}
		if len(out) > 0 && out[0].Kind != MoveToKind {
			return nil, fmt.Errorf("%w: path must start with a move", ErrSyntax)
		}
	}
	return out, nil
}
