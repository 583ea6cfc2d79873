package truetype

// offsetTable is the 12-byte sfnt header preceding the table records.
type offsetTable struct {
	sfntVersion   tag
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

var (
	tagTrueType = tag{0x00, 0x01, 0x00, 0x00} // version 1.0
	tagTrue     = makeTag("true")             // Apple's TrueType tag
	tagOpenType = makeTag("OTTO")              // CFF-flavored OpenType
	tagTTC      = makeTag("ttcf")              // font collection
)

func parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	sfntVersion, err := r.tag()
	if err != nil {
		return nil, err
	}
	ot.sfntVersion = sfntVersion

	if sfntVersion == tagOpenType || sfntVersion == tagTTC {
		return nil, ErrUnsupported
	}
	if sfntVersion != tagTrueType && sfntVersion != tagTrue {
		return nil, ErrUnsupported
	}

	if ot.numTables, err = r.u16(); err != nil {
		return nil, err
	}
	if ot.searchRange, err = r.u16(); err != nil {
		return nil, err
	}
	if ot.entrySelector, err = r.u16(); err != nil {
		return nil, err
	}
	if ot.rangeShift, err = r.u16(); err != nil {
		return nil, err
	}
	return ot, nil
}
