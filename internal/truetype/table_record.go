package truetype

import (
	"github.com/sirupsen/logrus"
)

// tableRecord is one 16-byte directory entry: tag, checksum, offset, length.
type tableRecord struct {
	tableTag tag
	checksum uint32
	offset   offset32
	length   uint32
}

// tableRecords indexes every directory entry by tag for O(1) lookup.
type tableRecords struct {
	list  []tableRecord
	byTag map[string]tableRecord
}

func parseTableRecords(r *byteReader, numTables uint16) (*tableRecords, error) {
	trs := &tableRecords{byTag: make(map[string]tableRecord, numTables)}

	for i := 0; i < int(numTables); i++ {
		var rec tableRecord
		var err error
		if rec.tableTag, err = r.tag(); err != nil {
			return nil, err
		}
		if rec.checksum, err = r.u32(); err != nil {
			return nil, err
		}
		if rec.offset, err = r.offset32(); err != nil {
			return nil, err
		}
		if rec.length, err = r.u32(); err != nil {
			return nil, err
		}
		trs.list = append(trs.list, rec)
		trs.byTag[rec.tableTag.String()] = rec
	}
	return trs, nil
}

// has reports whether the directory carries a record for tableName.
func (trs *tableRecords) has(tableName string) bool {
	_, ok := trs.byTag[tableName]
	return ok
}

// seekTo positions r at the start of tableName's bytes, returning its
// record. ok is false when the table is absent.
func (trs *tableRecords) seekTo(r *byteReader, tableName string) (rec tableRecord, ok bool, err error) {
	rec, ok = trs.byTag[tableName]
	if !ok {
		return rec, false, nil
	}
	if err = r.seekTo(int64(rec.offset)); err != nil {
		return rec, false, err
	}
	return rec, true, nil
}

// checksum computes the sfnt table checksum: the big-endian uint32 words of
// data, padded with zero bytes to a 4-byte boundary, summed with uint32
// wraparound.
func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:min(i+4, len(data))])
		sum += uint32(word[0])<<24 | uint32(word[1])<<16 | uint32(word[2])<<8 | uint32(word[3])
	}
	return sum
}

// verifyChecksums re-reads every table except head and compares its
// recomputed checksum against the directory's recorded value.
func verifyChecksums(r *byteReader, trs *tableRecords) error {
	for _, rec := range trs.list {
		name := rec.tableTag.String()
		if name == "head" {
			continue // head's own checkSumAdjustment field perturbs the sum.
		}

		if err := r.seekTo(int64(rec.offset)); err != nil {
			return err
		}
		data, err := r.readBytes(int(rec.length))
		if err != nil {
			return err
		}

		got := checksum(data)
		if got != rec.checksum {
			logrus.Debugf("truetype: checksum mismatch for %q: got %#x want %#x", name, got, rec.checksum)
			return ErrChecksum
		}
	}
	return nil
}
