package truetype

// maxComponentDepthDefault is used when a version 0.5 "maxp" table doesn't
// carry maxComponentDepth, per SPEC_FULL.md's compound-recursion limit.
const maxComponentDepthDefault = 16

// maxpTable carries the glyph count and, on version 1.0 tables, the
// component-recursion ceiling SPEC_FULL.md uses to reject runaway compounds.
type maxpTable struct {
	numGlyphs          uint16
	maxComponentDepth  uint16
}

func parseMaxp(r *byteReader, trs *tableRecords) (*maxpTable, error) {
	if _, ok, err := trs.seekTo(r, "maxp"); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrMissingTable
	}

	version, err := r.u32()
	if err != nil {
		return nil, err
	}

	m := &maxpTable{maxComponentDepth: maxComponentDepthDefault}
	if m.numGlyphs, err = r.u16(); err != nil {
		return nil, err
	}

	if version != 0x00010000 {
		// Version 0.5: no further fields. CFF-flavored fonts use this, but
		// those were already rejected at the offset-table stage.
		return m, nil
	}

	// maxPoints, maxContours, maxCompositePoints, maxCompositeContours,
	// maxZones, maxTwilightPoints, maxStorage, maxFunctionDefs,
	// maxInstructionDefs, maxStackElements, maxSizeOfInstructions,
	// maxComponentElements: 12 uint16 fields this spec doesn't use.
	if _, err := r.u16Slice(12); err != nil {
		return nil, err
	}

	depth, err := r.u16()
	if err != nil {
		return nil, err
	}
	if depth > 0 {
		m.maxComponentDepth = depth
	}

	return m, nil
}
