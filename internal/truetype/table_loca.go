package truetype

// locaTable holds the per-glyph byte offsets into "glyf". It has
// numGlyphs+1 entries; entry i+1 minus entry i is glyph i's data length,
// and equal consecutive entries mean an empty glyph (e.g. the space).
type locaTable struct {
	offsets []uint32
}

func parseLoca(r *byteReader, trs *tableRecords, head *headTable, maxp *maxpTable) (*locaTable, error) {
	if _, ok, err := trs.seekTo(r, "loca"); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrMissingTable
	}

	n := int(maxp.numGlyphs) + 1
	l := &locaTable{offsets: make([]uint32, n)}

	switch head.indexToLocFormat {
	case 0: // short format: offsets are uint16, in units of 2 bytes.
		raw, err := r.u16Slice(n)
		if err != nil {
			return nil, err
		}
		for i, v := range raw {
			l.offsets[i] = uint32(v) * 2
		}
	case 1: // long format: offsets are uint32, already in bytes.
		raw, err := r.u32Slice(n)
		if err != nil {
			return nil, err
		}
		l.offsets = raw
	default:
		return nil, ErrUnsupported
	}

	for i := 1; i < len(l.offsets); i++ {
		if l.offsets[i] < l.offsets[i-1] {
			return nil, ErrMalformed
		}
	}

	return l, nil
}

// glyphRange returns the [start, end) byte range of gid's outline data
// within "glyf". start == end means the glyph has no outline.
func (l *locaTable) glyphRange(gid GlyphIndex) (start, end uint32, ok bool) {
	i := int(gid)
	if i < 0 || i+1 >= len(l.offsets) {
		return 0, 0, false
	}
	return l.offsets[i], l.offsets[i+1], true
}
