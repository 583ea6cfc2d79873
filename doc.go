// Package sfnt parses TrueType-outline sfnt fonts and rasterizes
// individual glyphs. The pipeline is parse once at Open, then per glyph:
// resolve a code point to a glyph index, fetch its outline, scale it to a
// device resolution, and rasterize it into an 8-bit coverage bitmap.
package sfnt
