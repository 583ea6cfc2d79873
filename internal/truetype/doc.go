// Package truetype parses the sfnt container and the subset of tables
// needed to rasterize TrueType-outline glyphs: the table directory and its
// checksums, head, maxp, loca, cmap, and glyf. It does not interpret
// hinting instructions, kerning, OpenType layout, or CFF outlines.
package truetype
