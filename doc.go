// Package sdftext renders text from multi-channel signed distance field
// atlases.
//
// # Overview
//
// sdftext turns font outlines into distance field tiles, packs them into
// texture atlases, lays strings out along those glyphs and produces
// batched quads for a GPU renderer. Distance fields stay sharp under
// scaling, so one atlas serves every point size of a font.
//
// # Quick Start
//
//	import "github.com/gogpu/sdftext"
//
//	face, err := font.LoadFile("Roboto-Regular.ttf")
//	f, err := font.New(face, 24)
//
//	// Build (or reuse) the atlas for the default character set.
//	t, err := sdftext.New(f)
//
//	// Quads for one line of text at a baseline.
//	batches, err := t.DrawString("Hello, world", r2.Point{X: 20, Y: 40},
//	    quad.DefaultDrawOptions(), nil)
//
//	for _, b := range batches {
//	    // Upload b.VertexBytes() and b.IndexBytes(), bind t.Texture(b.Texture),
//	    // and draw with the program from t.Program(opts).
//	}
//
// # Architecture
//
// The library is organized into:
//   - font: font engine contract, x/image sfnt backend, name registry
//   - outline: raw point streams to Bezier contours
//   - msdf: edge coloring and distance field generation
//   - atlas: tile packing, atlas textures, the process-wide atlas cache
//   - layout: glyph metrics, line breaking, pen positions
//   - quad: quads, clipping, vertex and index buffers
//   - shader: default WGSL shaders and their uniforms
//
// # Caching
//
// Atlases are cached per font family, style, character set and tile size
// for the life of the process, and glyph metrics per face and character
// set. Teardown releases both caches.
//
// # Thread Safety
//
// A Text is immutable after New and safe for concurrent use. The caches
// are guarded, and a given atlas is built at most once.
package sdftext
