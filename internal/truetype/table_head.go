package truetype

// headTable carries the font-wide fields this spec needs out of "head":
// units-per-em, the global bounding box, and the loca offset format.
type headTable struct {
	unitsPerEm       uint16
	xMin, yMin       int16
	xMax, yMax       int16
	indexToLocFormat int16
}

func parseHead(r *byteReader, trs *tableRecords) (*headTable, error) {
	if _, ok, err := trs.seekTo(r, "head"); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrMissingTable
	}

	// majorVersion, minorVersion, fontRevision (Fixed), checkSumAdjustment,
	// magicNumber: 2+2+4+4+4 = 16 bytes, none of which this spec reads.
	if _, err := r.readBytes(16); err != nil {
		return nil, err
	}

	// flags: not used.
	if _, err := r.u16(); err != nil {
		return nil, err
	}

	h := &headTable{}
	var err error
	if h.unitsPerEm, err = r.u16(); err != nil {
		return nil, err
	}
	if h.unitsPerEm == 0 {
		return nil, ErrMalformed
	}

	// created, modified: two LONGDATETIME (8 bytes each), not used.
	if _, err := r.readBytes(16); err != nil {
		return nil, err
	}

	if h.xMin, err = r.i16(); err != nil {
		return nil, err
	}
	if h.yMin, err = r.i16(); err != nil {
		return nil, err
	}
	if h.xMax, err = r.i16(); err != nil {
		return nil, err
	}
	if h.yMax, err = r.i16(); err != nil {
		return nil, err
	}

	// macStyle, lowestRecPPEM, fontDirectionHint: 2+2+2 = 6 bytes, not used.
	if _, err := r.readBytes(6); err != nil {
		return nil, err
	}

	format, err := r.i16()
	if err != nil {
		return nil, err
	}
	if format != 0 && format != 1 {
		return nil, ErrUnsupported
	}
	h.indexToLocFormat = format

	// glyphDataFormat: not used, and may be absent on truncated fixtures.

	return h, nil
}
