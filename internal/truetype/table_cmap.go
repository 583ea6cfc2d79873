package truetype

import "encoding/binary"

// cmapTable is the resolved code-point-to-glyph-index mapping, built
// eagerly from the single encoding record SPEC_FULL.md's preference order
// selects.
type cmapTable struct {
	m map[rune]GlyphIndex
}

func (c *cmapTable) lookup(cp rune) (GlyphIndex, bool) {
	gid, ok := c.m[cp]
	return gid, ok
}

// cmapPreference is one (platformID, platformSpecificID, subtable format)
// candidate, tried in the order SPEC_FULL.md pins. A matching subtable must
// also carry language 0.
type cmapPreference struct {
	platformID uint16
	encodingID uint16
	format     uint16
}

var cmapPreferences = []cmapPreference{
	{0, 3, 4}, // Unicode BMP, segmented-to-delta
	{1, 0, 6}, // Macintosh Roman, trimmed-array
	{3, 1, 4}, // Windows Unicode BMP, segmented-to-delta
}

func parseCmap(r *byteReader, trs *tableRecords) (*cmapTable, error) {
	rec, ok, err := trs.seekTo(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingTable
	}

	data, err := r.readBytes(int(rec.length))
	if err != nil {
		return nil, err
	}
	if len(data) < 4 {
		return nil, ErrMalformed
	}
	if binary.BigEndian.Uint16(data) != 0 {
		return nil, ErrUnsupported
	}
	numTables := int(binary.BigEndian.Uint16(data[2:]))
	if len(data) < 4+numTables*8 {
		return nil, ErrMalformed
	}

	type encodingRecord struct {
		platformID, encodingID uint16
		offset                 uint32
	}
	records := make([]encodingRecord, numTables)
	for i := range records {
		base := 4 + i*8
		records[i] = encodingRecord{
			platformID: binary.BigEndian.Uint16(data[base:]),
			encodingID: binary.BigEndian.Uint16(data[base+2:]),
			offset:     binary.BigEndian.Uint32(data[base+4:]),
		}
	}

	for _, pref := range cmapPreferences {
		for _, rec := range records {
			if rec.platformID != pref.platformID || rec.encodingID != pref.encodingID {
				continue
			}
			off := int(rec.offset)
			if off+6 > len(data) || binary.BigEndian.Uint16(data[off:]) != pref.format {
				continue
			}
			if binary.BigEndian.Uint16(data[off+4:]) != 0 { // language
				continue
			}

			var m map[rune]GlyphIndex
			var err error
			switch pref.format {
			case 4:
				m, err = decodeCmapFormat4(data, off)
			case 6:
				m, err = decodeCmapFormat6(data, off)
			}
			if err != nil || len(m) == 0 {
				continue
			}
			return &cmapTable{m: m}, nil
		}
	}

	return nil, ErrUnsupported
}

// decodeCmapFormat4 builds the mapping for a segmented-to-delta subtable,
// iterating every code in each segment exactly as the sfnt spec describes.
func decodeCmapFormat4(data []byte, offset int) (map[rune]GlyphIndex, error) {
	if offset+14 > len(data) {
		return nil, ErrMalformed
	}
	length := int(binary.BigEndian.Uint16(data[offset+2:]))
	if length < 14 || offset+length > len(data) {
		return nil, ErrMalformed
	}
	sub := data[offset : offset+length]

	segCountX2 := int(binary.BigEndian.Uint16(sub[6:]))
	segCount := segCountX2 / 2

	endCodeOff := 14
	startCodeOff := endCodeOff + segCountX2 + 2 // +2 skips reservedPad
	idDeltaOff := startCodeOff + segCountX2
	idRangeOffOff := idDeltaOff + segCountX2
	glyphIdArrayOff := idRangeOffOff + segCountX2
	if glyphIdArrayOff > len(sub) {
		return nil, ErrMalformed
	}
	glyphIdArrayLen := (len(sub) - glyphIdArrayOff) / 2

	m := make(map[rune]GlyphIndex)
	for i := 0; i < segCount; i++ {
		endCode := binary.BigEndian.Uint16(sub[endCodeOff+i*2:])
		if endCode == 0xFFFF {
			continue
		}
		startCode := binary.BigEndian.Uint16(sub[startCodeOff+i*2:])
		idDelta := int16(binary.BigEndian.Uint16(sub[idDeltaOff+i*2:]))
		idRangeOffset := binary.BigEndian.Uint16(sub[idRangeOffOff+i*2:])

		for c := int(startCode); c <= int(endCode); c++ {
			var gid uint16
			if idRangeOffset == 0 {
				gid = uint16((c + int(idDelta)) % 0x10000)
			} else {
				index := int(idRangeOffset)/2 + (c - int(startCode)) - (segCount - i)
				if index < 0 || index >= glyphIdArrayLen {
					continue
				}
				raw := binary.BigEndian.Uint16(sub[glyphIdArrayOff+index*2:])
				if raw == 0 {
					continue
				}
				gid = uint16((int(raw) + int(idDelta)) % 0x10000)
			}
			if gid == 0 {
				continue
			}
			m[rune(c)] = GlyphIndex(gid)
		}
	}
	return m, nil
}

// decodeCmapFormat6 builds the mapping for a trimmed-array subtable.
func decodeCmapFormat6(data []byte, offset int) (map[rune]GlyphIndex, error) {
	if offset+10 > len(data) {
		return nil, ErrMalformed
	}
	length := int(binary.BigEndian.Uint16(data[offset+2:]))
	if length < 10 || offset+length > len(data) {
		return nil, ErrMalformed
	}

	firstCode := binary.BigEndian.Uint16(data[offset+6:])
	entryCount := int(binary.BigEndian.Uint16(data[offset+8:]))
	if offset+10+entryCount*2 > len(data) {
		return nil, ErrMalformed
	}

	m := make(map[rune]GlyphIndex, entryCount)
	for k := 0; k < entryCount; k++ {
		gid := binary.BigEndian.Uint16(data[offset+10+k*2:])
		if gid == 0 {
			continue
		}
		m[rune(int(firstCode)+k)] = GlyphIndex(gid)
	}
	return m, nil
}
