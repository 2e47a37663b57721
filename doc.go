// Package bezier finds the intersections of cubic Bézier curves using
// Bézier clipping.
//
// The central operations are [Intersect], which narrows a pair of curves to a
// single intersection parameter pair, and [Intersections], which enumerates
// all crossings of a pair of curves (up to the Bézout bound of nine).
//
// # Bézier clipping
//
// A cubic Bézier always lies within the convex hull of its four control
// points. Projecting the control points onto the normal of the curve's chord
// gives a "fat line": a strip bounded by two parallel lines that is
// guaranteed to contain the whole curve. Clipping a second curve against that
// strip, using the piecewise-linear graph of its control-point distances as a
// conservative proxy, discards the portions of its parameter domain that
// cannot contain an intersection. Alternating the roles of the two curves
// shrinks both parameter intervals geometrically until they converge on the
// intersection.
//
// The supporting pieces are exposed as well: [Line] is a normalized implicit
// line with signed-distance queries, [Cubic] provides evaluation and
// de Casteljau subdivision, [Cubic.FatLine] builds bounding strips, and
// [Cubic.ClipAgainstLine] and [Clip] perform single clipping steps. They are
// read-only queries, so external tooling (for example debug overlays) can
// call them freely without disturbing a solve.
//
// All types are plain float64 value types and all functions are pure;
// distinct solves share no state and may run concurrently.
//
// # Literature
//
//   - [A Primer on Bézier Curves], in particular the section on
//     curve/curve intersection
//   - Sederberg, Nishita, "Curve intersection using Bézier clipping" (1990)
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package bezier
