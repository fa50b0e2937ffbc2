// Package font defines the font engine contract used by the SDF atlas
// builder and text layout, and provides a default engine backed by
// golang.org/x/image/font/sfnt.
//
// A [Face] exposes raw glyph outlines as FreeType-style point/tag streams,
// character to glyph mapping, design-unit metrics and advances. A [Font]
// pairs a face with a point size and converts metrics into glyph space,
// the normalized coordinate system shared by outline decoding, atlas
// generation and layout (see [ReferenceSize]).
//
// A [Registry] maps font names to files and resolves loosely spelled
// names ("helvetica bold") to the closest registered entry.
//
//	face, err := font.LoadFile("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf")
//	if err != nil {
//	    return err
//	}
//	f, err := font.New(face, 24)
package font
