// Package outline converts font outlines into msdf shapes.
//
// A font engine describes each contour as a ring of points tagged
// on-curve, quadratic off-curve or cubic off-curve. Decode walks that
// ring with a small state machine: consecutive on-curve points become
// lines, a quadratic control point between on-curve points becomes a
// quadratic edge (two consecutive quadratic controls imply an on-curve
// midpoint), and two cubic controls become a cubic edge. Walking starts
// at the first point of a contour, skips leading off-curve points, and
// wraps past the end until it has returned to the first on-curve point,
// so every contour comes out closed.
//
// Coordinates are scaled from font units into glyph space, where one em
// is font.ReferenceSize units.
package outline
