// Package atlas renders the glyphs of a character set into MSDF texture
// atlases.
//
// Every glyph occupies one tile of a uniform grid. The tile size is
// derived from the largest glyph in the set. Inside a tile the glyph
// origin sits SdfPadding.X units from the left edge and
// |OriginOffset.Y| + SdfPadding.Y units above the bottom edge.
// Tiles are filled row-major in increasing glyph-index order; a new
// texture starts when one is full.
//
// Building is expensive, so atlases are shared through a Cache keyed by
// face, character set, texture size and tile size. Cached atlases live
// until Teardown.
package atlas
