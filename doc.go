// Package pathedit is a kernel for interactively editing vector paths. It
// represents paths as contours of typed segments (lines, quadratic and cubic
// Béziers, and conics) and provides the editing operations of a path editor:
// dragging points and curves, converting segment kinds, inserting and
// removing points, and closing, joining and splitting contours, all while
// keeping the tangents at constrained vertices continuous.
//
// # Geometry
//
// [Point], [Vec2], [Line], [QuadBez], [CubicBez] and [ConicBez] are plain
// value types. Conics are rational quadratic Béziers; their weight can be
// manipulated through a shoulder point that lies on the curve (see
// [ShoulderPoint] and [ComputeWeight]). [BezierThrough] finds the cubic
// between two end points that passes through a third point, which is what
// dragging the body of a curve uses.
//
// # Contours
//
// A [Contour] is a chain of [Segment] values sharing end points, open or
// closed. Every vertex carries a [Constraint]:
//
//   - [Cusp] leaves the tangents alone.
//   - [Smooth] keeps them on a line.
//   - [Symmetric] additionally keeps the control point distances equal.
//   - [Auto] places the control points from the neighboring vertices.
//
// After an edit, constraints are re-established by a [Plan], an ordered list
// of vertices together with the side of each vertex that must not move (see
// [PreserveMode]). Edit operations build the plan that fits them; it can also
// be built and applied by hand with [Contour.Apply].
//
// # Paths and sessions
//
// A [Path] is the ordered collection of contours being edited. It is built
// from and flattened to a [BezPath], whose text form is SVG path data (see
// [ParseSVG] and [SVG]). Path methods take indices, which shift under
// structural edits. A [Session] holds the interactive state of an editor
// (hover, selection, drag, which handles are shown) by stable [VertexID] and
// stays valid across such edits.
//
// # Errors
//
// Invalid indices and operations on the wrong kind of segment are
// programming errors and panic. Degenerate geometry, such as parallel
// tangents, makes operations fall back to simpler constructions and is
// logged at debug level; see [SetLogger].
package pathedit
