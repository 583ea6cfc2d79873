package truetype

import (
	"bytes"
	"unicode/utf16"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

const nameIDFamily = 1

// nameRecord is one entry of the "name" table's string storage, as
// described by the naming-table section of the sfnt spec.
type nameRecord struct {
	platformID, encodingID, languageID, nameID uint16
	length                                     uint16
	offset                                     offset16
	data                                       []byte
}

// nameTable is the decoded "name" table: every string record with its raw
// bytes already fetched, ready for on-demand decoding by nameID.
type nameTable struct {
	records []nameRecord
}

// byID returns the first decoded record matching nameID, preferring none
// platform over another: it returns the first usable decode in directory
// order, matching the teacher's GetNameByID.
func (t *nameTable) byID(nameID int) string {
	if t == nil {
		return ""
	}
	for _, nr := range t.records {
		if int(nr.nameID) != nameID {
			continue
		}
		if s := decodeNameRecord(nr); s != "" {
			return s
		}
	}
	return ""
}

// parseName is best-effort: a font missing or malformed "name" data is not
// a load failure, per SPEC_FULL.md §3.1. Errors are swallowed (only an
// unsupported table format is logged, at debug level), yielding a nil
// table (every lookup then returns "").
func parseName(r *byteReader, trs *tableRecords) *nameTable {
	rec, ok, err := trs.seekTo(r, "name")
	if err != nil || !ok {
		return nil
	}

	var format, count uint16
	var stringOffset offset16
	if format, err = r.u16(); err != nil {
		return nil
	}
	if count, err = r.u16(); err != nil {
		return nil
	}
	if stringOffset, err = r.offset16(); err != nil {
		return nil
	}
	if format > 1 {
		logrus.Debugf("truetype: name table format %d unsupported", format)
		return nil
	}

	records := make([]nameRecord, count)
	for i := range records {
		nr := &records[i]
		var err error
		if nr.platformID, err = r.u16(); err != nil {
			return nil
		}
		if nr.encodingID, err = r.u16(); err != nil {
			return nil
		}
		if nr.languageID, err = r.u16(); err != nil {
			return nil
		}
		if nr.nameID, err = r.u16(); err != nil {
			return nil
		}
		if nr.length, err = r.u16(); err != nil {
			return nil
		}
		if nr.offset, err = r.offset16(); err != nil {
			return nil
		}
	}

	for i := range records {
		nr := &records[i]
		if uint32(stringOffset)+uint32(nr.offset)+uint32(nr.length) > rec.length {
			continue
		}
		if err := r.seekTo(int64(rec.offset) + int64(stringOffset) + int64(nr.offset)); err != nil {
			continue
		}
		data, err := r.readBytes(int(nr.length))
		if err != nil {
			continue
		}
		nr.data = data
	}

	return &nameTable{records: records}
}

// decodeNameRecord converts one name record's raw bytes to a string,
// following the encoding convention of its platform ID.
func decodeNameRecord(nr nameRecord) string {
	switch nr.platformID {
	case 1: // Macintosh, typically Mac-Roman single-byte encoding.
		var buf bytes.Buffer
		for _, b := range nr.data {
			buf.WriteRune(charmap.Macintosh.DecodeByte(b))
		}
		return buf.String()
	case 0, 3: // Unicode / Windows, both UTF-16BE.
		return utf16BEToString(nr.data)
	default:
		return ""
	}
}

func utf16BEToString(b []byte) string {
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return string(utf16.Decode(units))
}
