package truetype

import (
	"bufio"
	"encoding/binary"
	"io"
)

// byteReader wraps an io.ReadSeeker with buffering and absolute-seek typed
// reads for the big-endian integers and blobs a table directory is built
// from.
type byteReader struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
}

func newByteReader(rs io.ReadSeeker) *byteReader {
	return &byteReader{rs: rs, reader: bufio.NewReader(rs)}
}

// Offset returns the current absolute read position.
func (r *byteReader) Offset() int64 {
	off, _ := r.rs.Seek(0, io.SeekCurrent)
	return off - int64(r.reader.Buffered())
}

// seekTo repositions the reader to an absolute byte offset.
func (r *byteReader) seekTo(offset int64) error {
	if _, err := r.rs.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	r.reader.Reset(r.rs)
	return nil
}

func (r *byteReader) readBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *byteReader) u8() (uint8, error) {
	var v uint8
	err := binary.Read(r.reader, binary.BigEndian, &v)
	return v, err
}

func (r *byteReader) i8() (int8, error) {
	var v int8
	err := binary.Read(r.reader, binary.BigEndian, &v)
	return v, err
}

func (r *byteReader) u16() (uint16, error) {
	var v uint16
	err := binary.Read(r.reader, binary.BigEndian, &v)
	return v, err
}

func (r *byteReader) i16() (int16, error) {
	var v int16
	err := binary.Read(r.reader, binary.BigEndian, &v)
	return v, err
}

func (r *byteReader) u32() (uint32, error) {
	var v uint32
	err := binary.Read(r.reader, binary.BigEndian, &v)
	return v, err
}

func (r *byteReader) tag() (tag, error) {
	var v tag
	err := binary.Read(r.reader, binary.BigEndian, &v)
	return v, err
}

func (r *byteReader) offset16() (offset16, error) {
	v, err := r.u16()
	return offset16(v), err
}

func (r *byteReader) offset32() (offset32, error) {
	v, err := r.u32()
	return offset32(v), err
}

func (r *byteReader) f2dot14() (f2dot14, error) {
	v, err := r.i16()
	return f2dot14(v), err
}

// u16Slice reads n consecutive big-endian uint16 values.
func (r *byteReader) u16Slice(n int) ([]uint16, error) {
	out := make([]uint16, n)
	for i := range out {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// u32Slice reads n consecutive big-endian uint32 values.
func (r *byteReader) u32Slice(n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
