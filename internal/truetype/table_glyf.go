package truetype

import "encoding/binary"

// flag bits of a simple glyph's per-point flag byte.
const (
	flagOnCurve      = 1 << 0
	flagXShort       = 1 << 1
	flagYShort       = 1 << 2
	flagRepeat       = 1 << 3
	flagXSame        = 1 << 4 // x is same as previous, or the sign bit when XShort
	flagYSame        = 1 << 5 // y is same as previous, or the sign bit when YShort
)

// compound-component flag bits.
const (
	compArgsAreWords    = 1 << 0
	compArgsAreXY       = 1 << 1
	compHaveScale       = 1 << 3
	compMoreComponents  = 1 << 5
	compHaveXYScale     = 1 << 6
	compHave2x2         = 1 << 7
)

// Point is one outline point in font design units.
type Point struct {
	X, Y    int32
	OnCurve bool
}

// Component is one contour set in an outline, either from a simple glyph
// or contributed by a compound glyph's sub-call.
type Component struct {
	Points      []Point
	ContourEnds []int
}

// Outline is every component making up one glyph's shape, in font design
// units, alongside the glyph's declared bounding box.
type Outline struct {
	Components []Component
	XMin, YMin int16
	XMax, YMax int16
}

// glyfTable holds the raw "glyf" blob (length rounded up to an even byte
// count, so 16-bit reads stay aligned) and the loca offsets needed to
// slice individual glyph records out of it.
type glyfTable struct {
	blob []byte
	loca *locaTable
}

func parseGlyf(r *byteReader, trs *tableRecords, loca *locaTable) (*glyfTable, error) {
	rec, ok, err := trs.seekTo(r, "glyf")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingTable
	}

	n := int(rec.length)
	if n%2 != 0 {
		n++
	}
	data, err := r.readBytes(int(rec.length))
	if err != nil {
		return nil, err
	}
	if len(data) < n {
		data = append(data, 0)
	}

	return &glyfTable{blob: data, loca: loca}, nil
}

// outline fetches gid's decoded outline, recursively resolving compound
// components up to maxDepth levels deep and rejecting any glyph that
// refers back to one of its own ancestors.
func (g *glyfTable) outline(gid GlyphIndex, maxDepth int) (*Outline, error) {
	return g.outlineRec(gid, maxDepth, map[GlyphIndex]bool{})
}

func (g *glyfTable) outlineRec(gid GlyphIndex, maxDepth int, inFlight map[GlyphIndex]bool) (*Outline, error) {
	if inFlight[gid] {
		return nil, ErrUnsupported
	}

	start, end, ok := g.loca.glyphRange(gid)
	if !ok {
		return nil, ErrMalformed
	}
	if start == end {
		return &Outline{}, nil // empty glyph, e.g. the space.
	}
	if end > uint32(len(g.blob)) {
		return nil, ErrMalformed
	}

	data := g.blob[start:end]
	if len(data) < 10 {
		return nil, ErrMalformed
	}

	numContours := int16(binary.BigEndian.Uint16(data))
	out := &Outline{
		XMin: int16(binary.BigEndian.Uint16(data[2:])),
		YMin: int16(binary.BigEndian.Uint16(data[4:])),
		XMax: int16(binary.BigEndian.Uint16(data[6:])),
		YMax: int16(binary.BigEndian.Uint16(data[8:])),
	}

	if numContours >= 0 {
		comp, err := decodeSimpleGlyph(data[10:], int(numContours))
		if err != nil {
			return nil, err
		}
		out.Components = []Component{comp}
		return out, nil
	}

	if maxDepth <= 0 {
		return nil, ErrUnsupported
	}

	inFlight[gid] = true
	comps, err := g.decodeCompoundGlyph(data[10:], maxDepth, inFlight)
	delete(inFlight, gid)
	if err != nil {
		return nil, err
	}
	out.Components = comps
	return out, nil
}

// decodeSimpleGlyph implements SPEC_FULL.md's simple-glyph decoding steps:
// contour ends, an ignored instruction block, a run-length flag stream,
// then x- and y-delta streams whose widths are controlled by the flags.
func decodeSimpleGlyph(data []byte, numContours int) (Component, error) {
	var comp Component
	if numContours == 0 {
		return comp, nil
	}

	off := 0
	if off+numContours*2 > len(data) {
		return comp, ErrMalformed
	}
	contourEnds := make([]int, numContours)
	for i := 0; i < numContours; i++ {
		contourEnds[i] = int(binary.BigEndian.Uint16(data[off+i*2:]))
	}
	off += numContours * 2

	if off+2 > len(data) {
		return comp, ErrMalformed
	}
	instructionLength := int(binary.BigEndian.Uint16(data[off:]))
	off += 2 + instructionLength
	if off > len(data) {
		return comp, ErrMalformed
	}

	lastPt := contourEnds[numContours-1]
	numPoints := lastPt + 1

	flags := make([]byte, 0, numPoints)
	for len(flags) < numPoints {
		if off >= len(data) {
			return comp, ErrMalformed
		}
		f := data[off]
		off++
		if f&flagRepeat != 0 {
			if off >= len(data) {
				return comp, ErrMalformed
			}
			repeat := int(data[off])
			off++
			for i := 0; i <= repeat && len(flags) < numPoints; i++ {
				flags = append(flags, f)
			}
		} else {
			flags = append(flags, f)
		}
	}
	if len(flags) != numPoints {
		return comp, ErrMalformed
	}

	xs := make([]int32, numPoints)
	x := int32(0)
	for i, f := range flags {
		switch {
		case f&flagXShort != 0:
			if off >= len(data) {
				return comp, ErrMalformed
			}
			d := int32(data[off])
			off++
			if f&flagXSame == 0 {
				d = -d
			}
			x += d
		case f&flagXSame == 0:
			if off+2 > len(data) {
				return comp, ErrMalformed
			}
			x += int32(int16(binary.BigEndian.Uint16(data[off:])))
			off += 2
		}
		xs[i] = x
	}

	ys := make([]int32, numPoints)
	y := int32(0)
	for i, f := range flags {
		switch {
		case f&flagYShort != 0:
			if off >= len(data) {
				return comp, ErrMalformed
			}
			d := int32(data[off])
			off++
			if f&flagYSame == 0 {
				d = -d
			}
			y += d
		case f&flagYSame == 0:
			if off+2 > len(data) {
				return comp, ErrMalformed
			}
			y += int32(int16(binary.BigEndian.Uint16(data[off:])))
			off += 2
		}
		ys[i] = y
	}

	comp.Points = make([]Point, numPoints)
	for i := range comp.Points {
		comp.Points[i] = Point{X: xs[i], Y: ys[i], OnCurve: flags[i]&flagOnCurve != 0}
	}
	comp.ContourEnds = contourEnds
	return comp, nil
}

// decodeCompoundGlyph implements SPEC_FULL.md's compound-glyph decoding
// loop: fetch each referenced glyph, apply its 2×2 transform and offset to
// every point it contributes, and repeat while the "more components" flag
// is set.
func (g *glyfTable) decodeCompoundGlyph(data []byte, maxDepth int, inFlight map[GlyphIndex]bool) ([]Component, error) {
	var out []Component
	off := 0

	for {
		if off+4 > len(data) {
			return nil, ErrMalformed
		}
		flags := binary.BigEndian.Uint16(data[off:])
		childGID := GlyphIndex(binary.BigEndian.Uint16(data[off+2:]))
		off += 4

		var arg1, arg2 int32
		if flags&compArgsAreWords != 0 {
			if off+4 > len(data) {
				return nil, ErrMalformed
			}
			arg1 = int32(int16(binary.BigEndian.Uint16(data[off:])))
			arg2 = int32(int16(binary.BigEndian.Uint16(data[off+2:])))
			off += 4
		} else {
			if off+2 > len(data) {
				return nil, ErrMalformed
			}
			arg1 = int32(int8(data[off]))
			arg2 = int32(int8(data[off+1]))
			off += 2
		}
		if flags&compArgsAreXY == 0 {
			// Point-match composition: arg1/arg2 name anchor points rather
			// than an (x, y) offset. Not implemented; see DESIGN.md.
			return nil, ErrUnsupported
		}

		a, b, c, d := 1.0, 0.0, 0.0, 1.0
		switch {
		case flags&compHave2x2 != 0:
			if off+8 > len(data) {
				return nil, ErrMalformed
			}
			a = readF2Dot14(data[off:])
			b = readF2Dot14(data[off+2:])
			c = readF2Dot14(data[off+4:])
			d = readF2Dot14(data[off+6:])
			off += 8
		case flags&compHaveXYScale != 0:
			if off+4 > len(data) {
				return nil, ErrMalformed
			}
			a = readF2Dot14(data[off:])
			d = readF2Dot14(data[off+2:])
			off += 4
		case flags&compHaveScale != 0:
			if off+2 > len(data) {
				return nil, ErrMalformed
			}
			a = readF2Dot14(data[off:])
			d = a
			off += 2
		}

		child, err := g.outlineRec(childGID, maxDepth-1, inFlight)
		if err != nil {
			return nil, err
		}
		for _, comp := range child.Components {
			pts := make([]Point, len(comp.Points))
			for i, p := range comp.Points {
				fx := float64(p.X)*a + float64(p.Y)*c
				fy := float64(p.X)*b + float64(p.Y)*d
				pts[i] = Point{
					X:       int32(fx) + arg1,
					Y:       int32(fy) + arg2,
					OnCurve: p.OnCurve,
				}
			}
			out = append(out, Component{Points: pts, ContourEnds: comp.ContourEnds})
		}

		if flags&compMoreComponents == 0 {
			break
		}
	}

	return out, nil
}

func readF2Dot14(b []byte) float64 {
	return f2dot14(int16(binary.BigEndian.Uint16(b))).Float64()
}
