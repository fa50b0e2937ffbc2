// Package msdf generates multi-channel signed distance fields from glyph
// shapes.
//
// A Shape is a set of closed contours made of linear, quadratic and
// cubic edges. ColorEdgesSimple assigns each edge a subset of the RGB
// channels so that the two edges meeting at a corner never share all
// channels; Generate then stores, per channel, the distance to the
// nearest edge of that channel. Taking the median of the three channels
// in a shader reconstructs the outline with sharp corners.
//
// # Usage
//
//	shape.InverseYAxis = true
//	shape.Normalize()
//	msdf.ColorEdgesSimple(shape, msdf.DefaultAngleThreshold, 0)
//	bm := msdf.NewBitmap(w, h)
//	err := msdf.Generate(bm, shape, 4, msdf.Point{X: 2, Y: 2}, translate)
//
// Distances are positive inside the shape. Generation is single-threaded
// and deterministic.
//
// # References
//
//   - msdfgen: https://github.com/Chlumsky/msdfgen
//   - "Shape Decomposition for Multi-channel Distance Fields", V. Chlumsky
package msdf
