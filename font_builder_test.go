package sfnt

import (
	"bytes"
	"encoding/binary"
)

// These helpers assemble the same minimal synthetic fonts
// internal/truetype's own tests use, duplicated at this level so the
// public-API tests in this package don't reach into an internal package's
// test-only scaffolding.

func checksumBytes(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		end := i + 4
		if end > len(data) {
			end = len(data)
		}
		copy(word[:], data[i:end])
		sum += uint32(word[0])<<24 | uint32(word[1])<<16 | uint32(word[2])<<8 | uint32(word[3])
	}
	return sum
}

type testFontBuilder struct {
	order  []string
	tables map[string][]byte
}

func newTestFontBuilder() *testFontBuilder {
	return &testFontBuilder{tables: make(map[string][]byte)}
}

func (b *testFontBuilder) add(tag string, data []byte) *testFontBuilder {
	if _, ok := b.tables[tag]; !ok {
		b.order = append(b.order, tag)
	}
	b.tables[tag] = data
	return b
}

func (b *testFontBuilder) build() []byte {
	var body bytes.Buffer
	type rec struct {
		tag    string
		offset uint32
		length uint32
	}
	var recs []rec
	for _, tag := range b.order {
		data := b.tables[tag]
		recs = append(recs, rec{tag: tag, offset: uint32(body.Len()), length: uint32(len(data))})
		body.Write(data)
	}

	numTables := uint16(len(b.order))
	headerLen := uint32(12 + int(numTables)*16)

	var out bytes.Buffer
	out.Write([]byte{0x00, 0x01, 0x00, 0x00})
	binary.Write(&out, binary.BigEndian, numTables)
	binary.Write(&out, binary.BigEndian, uint16(0))
	binary.Write(&out, binary.BigEndian, uint16(0))
	binary.Write(&out, binary.BigEndian, uint16(0))

	for _, r := range recs {
		out.WriteString(r.tag)
		var sum uint32
		if r.tag != "head" {
			sum = checksumBytes(b.tables[r.tag])
		}
		binary.Write(&out, binary.BigEndian, sum)
		binary.Write(&out, binary.BigEndian, headerLen+r.offset)
		binary.Write(&out, binary.BigEndian, r.length)
	}

	out.Write(body.Bytes())
	return out.Bytes()
}

func testBuildHead(unitsPerEm uint16, xMin, yMin, xMax, yMax int16, indexToLocFormat int16) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 16))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, unitsPerEm)
	buf.Write(make([]byte, 16))
	binary.Write(&buf, binary.BigEndian, xMin)
	binary.Write(&buf, binary.BigEndian, yMin)
	binary.Write(&buf, binary.BigEndian, xMax)
	binary.Write(&buf, binary.BigEndian, yMax)
	buf.Write(make([]byte, 6))
	binary.Write(&buf, binary.BigEndian, indexToLocFormat)
	return buf.Bytes()
}

func testBuildMaxp(numGlyphs, maxComponentDepth uint16) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(0x00010000))
	binary.Write(&buf, binary.BigEndian, numGlyphs)
	buf.Write(make([]byte, 24))
	binary.Write(&buf, binary.BigEndian, maxComponentDepth)
	return buf.Bytes()
}

func testBuildLocaLong(offsets []uint32) []byte {
	var buf bytes.Buffer
	for _, o := range offsets {
		binary.Write(&buf, binary.BigEndian, o)
	}
	return buf.Bytes()
}

func testBuildCmapFormat4Single(startCode, endCode uint16, idDelta int16) []byte {
	var sub bytes.Buffer
	binary.Write(&sub, binary.BigEndian, uint16(4))
	binary.Write(&sub, binary.BigEndian, uint16(16+8))
	binary.Write(&sub, binary.BigEndian, uint16(0))
	binary.Write(&sub, binary.BigEndian, uint16(2))
	binary.Write(&sub, binary.BigEndian, uint16(2))
	binary.Write(&sub, binary.BigEndian, uint16(0))
	binary.Write(&sub, binary.BigEndian, uint16(0))
	binary.Write(&sub, binary.BigEndian, endCode)
	binary.Write(&sub, binary.BigEndian, uint16(0))
	binary.Write(&sub, binary.BigEndian, startCode)
	binary.Write(&sub, binary.BigEndian, idDelta)
	binary.Write(&sub, binary.BigEndian, uint16(0))

	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(1))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(3))
	binary.Write(&buf, binary.BigEndian, uint32(12))
	buf.Write(sub.Bytes())
	return buf.Bytes()
}

// testBuildSimpleGlyph encodes a one-contour simple glyph with on-curve
// points only, using plain 2-byte signed coordinate deltas.
func testBuildSimpleGlyph(xMin, yMin, xMax, yMax int16, points [][2]int32) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, int16(1))
	binary.Write(&buf, binary.BigEndian, xMin)
	binary.Write(&buf, binary.BigEndian, yMin)
	binary.Write(&buf, binary.BigEndian, xMax)
	binary.Write(&buf, binary.BigEndian, yMax)
	binary.Write(&buf, binary.BigEndian, uint16(len(points)-1))
	binary.Write(&buf, binary.BigEndian, uint16(0))

	const onCurve = 1
	for range points {
		buf.WriteByte(onCurve)
	}
	prevX, prevY := int32(0), int32(0)
	for _, p := range points {
		binary.Write(&buf, binary.BigEndian, int16(p[0]-prevX))
		prevX = p[0]
	}
	for _, p := range points {
		binary.Write(&buf, binary.BigEndian, int16(p[1]-prevY))
		prevY = p[1]
	}
	return buf.Bytes()
}

func testGlyfAndLoca(glyphs map[int][]byte, numGlyphs int) (glyf []byte, loca []uint32) {
	loca = make([]uint32, numGlyphs+1)
	var buf bytes.Buffer
	for gid := 0; gid < numGlyphs; gid++ {
		loca[gid] = uint32(buf.Len())
		buf.Write(glyphs[gid])
	}
	loca[numGlyphs] = uint32(buf.Len())
	return buf.Bytes(), loca
}

// buildSquareFont assembles S2's synthesized font.
func buildSquareFont() []byte {
	square := [][2]int32{{0, 0}, {500, 0}, {500, 500}, {0, 500}}
	glyf, loca := testGlyfAndLoca(map[int][]byte{1: testBuildSimpleGlyph(0, 0, 500, 500, square)}, 2)

	b := newTestFontBuilder()
	b.add("head", testBuildHead(1000, 0, 0, 500, 500, 1))
	b.add("maxp", testBuildMaxp(2, 16))
	b.add("loca", testBuildLocaLong(loca))
	b.add("cmap", testBuildCmapFormat4Single(0x41, 0x41, -0x40))
	b.add("glyf", glyf)
	return b.build()
}

// buildAnnulusFont assembles S3's synthesized font: an outer square minus
// a nested, oppositely-wound inner square.
func buildAnnulusFont() []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, int16(2)) // numberOfContours
	binary.Write(&buf, binary.BigEndian, int16(0))
	binary.Write(&buf, binary.BigEndian, int16(0))
	binary.Write(&buf, binary.BigEndian, int16(500))
	binary.Write(&buf, binary.BigEndian, int16(500))
	binary.Write(&buf, binary.BigEndian, uint16(3)) // outer contour ends at point 3
	binary.Write(&buf, binary.BigEndian, uint16(7)) // inner contour ends at point 7
	binary.Write(&buf, binary.BigEndian, uint16(0)) // instructionLength

	points := [][2]int32{
		{0, 0}, {500, 0}, {500, 500}, {0, 500}, // outer, CCW
		{100, 100}, {100, 400}, {400, 400}, {400, 100}, // inner, CW
	}
	for range points {
		buf.WriteByte(1) // onCurve
	}
	prevX, prevY := int32(0), int32(0)
	for _, p := range points {
		binary.Write(&buf, binary.BigEndian, int16(p[0]-prevX))
		prevX = p[0]
	}
	for _, p := range points {
		binary.Write(&buf, binary.BigEndian, int16(p[1]-prevY))
		prevY = p[1]
	}

	glyf, loca := testGlyfAndLoca(map[int][]byte{1: buf.Bytes()}, 2)

	b := newTestFontBuilder()
	b.add("head", testBuildHead(1000, 0, 0, 500, 500, 1))
	b.add("maxp", testBuildMaxp(2, 16))
	b.add("loca", testBuildLocaLong(loca))
	b.add("cmap", testBuildCmapFormat4Single(0x41, 0x41, -0x40))
	b.add("glyf", glyf)
	return b.build()
}
