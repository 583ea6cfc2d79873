package truetype

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Font is a parsed sfnt TrueType font: the table directory has been
// verified and every table SPEC_FULL.md's load path requires has been
// decoded into memory. All I/O happens during Parse; everything after is
// served out of the decoded tables.
type Font struct {
	head *headTable
	maxp *maxpTable
	cmap *cmapTable
	glyf *glyfTable
	name *nameTable
}

// Parse reads a table directory from r, verifies every non-head table's
// checksum, and decodes head/maxp/loca/cmap/glyf. Required tables missing
// from the directory, or present but structurally unsupported, abort the
// parse; "name" is read best-effort and never aborts it.
func Parse(r io.ReadSeeker) (*Font, error) {
	br := newByteReader(r)

	ot, err := parseOffsetTable(br)
	if err != nil {
		return nil, err
	}

	trs, err := parseTableRecords(br, ot.numTables)
	if err != nil {
		return nil, err
	}

	for _, name := range [...]string{"cmap", "glyf", "head", "loca", "maxp"} {
		if !trs.has(name) {
			return nil, ErrMissingTable
		}
	}

	if err := verifyChecksums(br, trs); err != nil {
		return nil, err
	}

	head, err := parseHead(br, trs)
	if err != nil {
		return nil, err
	}
	maxp, err := parseMaxp(br, trs)
	if err != nil {
		return nil, err
	}
	loca, err := parseLoca(br, trs, head, maxp)
	if err != nil {
		return nil, err
	}
	cmap, err := parseCmap(br, trs)
	if err != nil {
		return nil, err
	}
	glyf, err := parseGlyf(br, trs, loca)
	if err != nil {
		return nil, err
	}

	return &Font{
		head: head,
		maxp: maxp,
		cmap: cmap,
		glyf: glyf,
		name: parseName(br, trs),
	}, nil
}

// UnitsPerEm is the font's design-space unit scale ("head.unitsPerEm").
func (f *Font) UnitsPerEm() uint16 { return f.head.unitsPerEm }

// BBox is the font-wide bounding box recorded in "head".
func (f *Font) BBox() (xMin, yMin, xMax, yMax int16) {
	return f.head.xMin, f.head.yMin, f.head.xMax, f.head.yMax
}

// NumGlyphs is the glyph count recorded in "maxp".
func (f *Font) NumGlyphs() int { return int(f.maxp.numGlyphs) }

// FamilyName is the font's family name (nameID 1), or "" if "name" was
// absent, malformed, or carried no usable platform encoding.
func (f *Font) FamilyName() string { return f.name.byID(nameIDFamily) }

// Name returns the first decodable "name" table string with the given
// nameID, or "" if none exists.
func (f *Font) Name(nameID int) string { return f.name.byID(nameID) }

// GlyphIndex resolves a Unicode code point to a glyph index via the
// selected cmap subtable.
func (f *Font) GlyphIndex(cp rune) (GlyphIndex, bool) {
	return f.cmap.lookup(cp)
}

// Outline fetches gid's decoded outline, recursing through compound
// components up to maxp's component-depth limit.
func (f *Font) Outline(gid GlyphIndex) (*Outline, error) {
	out, err := f.glyf.outline(gid, int(f.maxp.maxComponentDepth))
	if err != nil {
		logrus.Debugf("truetype: outline for gid %d: %v", gid, err)
		return nil, err
	}
	return out, nil
}
