// Package layout breaks text into lines and places glyphs along them.
//
// Layout works in pixels at the font's point size. The draw scale and the
// final origin are applied later, when quads are built, so a run can be
// drawn at any scale without laying it out again. Advances come from a
// Metrics table built once per face and character set.
package layout
