package sfnt

import (
	"github.com/sirupsen/logrus"

	"github.com/gviegas/sfntglyph/internal/raster"
	"github.com/gviegas/sfntglyph/internal/scale"
)

// Glyph is a rasterized glyph: an 8-bit coverage bitmap in raster
// coordinates (x increasing right, y increasing up; row 0 is the bottom
// row in world space), plus its pixel extent.
type Glyph struct {
	w, h int
	pix  []byte
}

// Extent returns the glyph's pixel width and height.
func (g Glyph) Extent() (w, h uint16) { return uint16(g.w), uint16(g.h) }

// Data returns the glyph's coverage bitmap, row-major with no padding,
// length w*h. A 0×0 glyph returns nil.
func (g Glyph) Data() []byte { return g.pix }

// Glyph resolves r to a glyph index, fetches its outline, scales it to the
// resolution implied by points and dpi, and rasterizes it into an 8-bit
// coverage bitmap using the binary ray-cast baseline. An unmapped code
// point, an empty outline, or a glyph this build cannot decode (compound
// point-match composition) all produce the same 0×0 result, per
// spec.md §7's "per-glyph errors do not exist in the supported subset."
func (f *Font) Glyph(r rune, points, dpi uint16) Glyph {
	return f.glyph(r, points, dpi, raster.Options{})
}

// GlyphSupersampled is the same pipeline as Glyph, but rasterizes with an
// n×n sub-pixel grid averaged into an anti-aliased coverage value, per
// spec.md §4.G's supersampling extension. n <= 1 behaves like Glyph.
func (f *Font) GlyphSupersampled(r rune, points, dpi uint16, n int) Glyph {
	return f.glyph(r, points, dpi, raster.Options{Supersample: n})
}

func (f *Font) glyph(r rune, points, dpi uint16, opts raster.Options) Glyph {
	gid, ok := f.tt.GlyphIndex(r)
	if !ok {
		return Glyph{}
	}

	out, err := f.tt.Outline(gid)
	if err != nil {
		logrus.Debugf("sfnt: glyph %q (gid %d): %v", r, gid, err)
		return Glyph{}
	}
	if len(out.Components) == 0 {
		return Glyph{}
	}

	factor := scale.Factor(float64(points), float64(dpi), f.tt.UnitsPerEm())
	scaled := scale.Scale(out, factor)

	bm := raster.Rasterize(scaled, opts)
	if bm.W == 0 || bm.H == 0 {
		return Glyph{}
	}
	return Glyph{w: bm.W, h: bm.H, pix: bm.Pix}
}
