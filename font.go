package sfnt

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gviegas/sfntglyph/internal/truetype"
)

// Font is a parsed sfnt font, immutable once Open returns. All table data
// needed for glyph production has already been decoded; producing a Glyph
// performs no further I/O.
type Font struct {
	tt *truetype.Font
}

// Open reads and validates the sfnt font at path: its table directory,
// per-table checksums (head excepted), and the head/maxp/loca/cmap/glyf
// tables. The file is opened, parsed, and closed within this call; Font
// does not hold the descriptor past Open's return.
func Open(path string) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify("Open", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse is Open's underlying step, exposed for callers already holding an
// io.ReadSeeker (an in-memory font blob, for instance).
func Parse(r io.ReadSeeker) (*Font, error) {
	logrus.Trace("sfnt: parsing font")
	tt, err := truetype.Parse(r)
	if err != nil {
		return nil, classify("Parse", err)
	}
	logrus.Debugf("sfnt: loaded font %q, %d glyphs, upem=%d", tt.FamilyName(), tt.NumGlyphs(), tt.UnitsPerEm())
	return &Font{tt: tt}, nil
}

// UnitsPerEm is the font's design-space unit scale.
func (f *Font) UnitsPerEm() uint16 { return f.tt.UnitsPerEm() }

// BBox is the font-wide bounding box recorded in "head", in font units.
func (f *Font) BBox() (xMin, yMin, xMax, yMax int16) { return f.tt.BBox() }

// NumGlyphs is the glyph count recorded in "maxp".
func (f *Font) NumGlyphs() int { return f.tt.NumGlyphs() }

// FamilyName is the font's family name (name ID 1), or "" if the "name"
// table was absent, malformed, or carried no usable platform encoding.
// Per SPEC_FULL.md §3.1 this never affects Open's success.
func (f *Font) FamilyName() string { return f.tt.FamilyName() }

// Name returns the first decodable "name" table string with the given
// nameID, or "" if none exists.
func (f *Font) Name(nameID int) string { return f.tt.Name(nameID) }
