// Package raster fills a scaled polygon outline into a binary (or
// super-sampled) coverage bitmap using a nonzero-winding ray-cast test:
// a sample is inside when the signed crossings of its +X ray sum to a
// nonzero value.
package raster

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gviegas/sfntglyph/internal/scale"
)

// Options controls rasterization beyond the binary baseline.
type Options struct {
	// Supersample is the per-axis sub-pixel sample grid; 0 or 1 selects the
	// binary 0/255 baseline algorithm. A value N>1 averages an N×N grid of
	// sub-pixel samples into an 8-bit coverage value.
	Supersample int
}

// Bitmap is an 8-bit single-channel coverage buffer, row-major, no padding,
// in raster coordinates (row 0 is the bottom row in world space).
type Bitmap struct {
	W, H int
	Pix  []byte
}

// winding classifies a directed segment's contribution to the ray-cast
// accumulator.
type winding int8

const (
	windingNone winding = 0
	windingUp   winding = 1
	windingDown winding = -1
)

type point struct{ x, y float64 }

type segment struct {
	a, b point
	w    winding
}

// Rasterize fills src into a bitmap whose dimensions are derived from src's
// bbox via ceil(max-min), per the scaler's output contract.
func Rasterize(src *scale.Outline, opts Options) *Bitmap {
	width := ceil(src.XMax - src.XMin)
	height := ceil(src.YMax - src.YMin)
	if width <= 0 || height <= 0 {
		return &Bitmap{}
	}

	segs := buildSegments(src)
	if len(segs) == 0 {
		return &Bitmap{}
	}

	bm := &Bitmap{W: width, H: height, Pix: make([]byte, width*height)}

	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ss == 1 {
				wx := float64(x) + 0.5 + src.XMin
				wy := float64(y) + 0.5 + src.YMin
				if inside(wx, wy, segs) {
					bm.Pix[y*width+x] = 255
				}
				continue
			}

			var hits int
			for sy := 0; sy < ss; sy++ {
				for sx := 0; sx < ss; sx++ {
					wx := float64(x) + (float64(sx)+0.5)/float64(ss) + src.XMin
					wy := float64(y) + (float64(sy)+0.5)/float64(ss) + src.YMin
					if inside(wx, wy, segs) {
						hits++
					}
				}
			}
			bm.Pix[y*width+x] = byte(hits * 255 / (ss * ss))
		}
	}

	return bm
}

func ceil(v float64) int {
	return fixed.Int26_6(math.Round(v * 64)).Ceil()
}

// buildSegments turns every contour of src into the directed-segment list
// the ray-cast test consumes: consecutive points within a contour, plus the
// closing segment from the contour's last point back to its first.
func buildSegments(src *scale.Outline) []segment {
	var segs []segment
	for _, comp := range src.Components {
		start := 0
		for _, end := range comp.ContourEnds {
			pts := comp.Points[start : end+1]
			for i := range pts {
				a := pts[i]
				b := pts[(i+1)%len(pts)]
				segs = append(segs, makeSegment(point{a.X, a.Y}, point{b.X, b.Y}))
			}
			start = end + 1
		}
	}
	return segs
}

func makeSegment(a, b point) segment {
	w := windingNone
	switch {
	case a.y < b.y:
		w = windingUp
	case a.y > b.y:
		w = windingDown
	}
	return segment{a: a, b: b, w: w}
}

// dir is the 2D orientation predicate: negative when a->b->c turns left
// (counter-clockwise), positive when it turns right, zero when collinear.
func dir(a, b, c point) float64 {
	return (c.x-a.x)*(b.y-a.y) - (b.x-a.x)*(c.y-a.y)
}

// inside rasterizes a single point by casting a ray toward +X and summing
// the winding contribution of every segment it properly crosses.
func inside(px, py float64, segs []segment) bool {
	const rayFar = 1e7
	p := point{px, py}
	far := point{px + rayFar, py}

	acc := 0
	for _, s := range segs {
		if s.w == windingNone {
			continue
		}
		if onSegment(p, s) {
			return true
		}
		if rayCrosses(p, far, s) {
			acc += int(s.w)
		}
	}
	return acc != 0
}

// onSegment reports whether p lies on segment s, within floating-point
// tolerance, accounting for both the orientation predicate and s's
// bounding box.
func onSegment(p point, s segment) bool {
	const eps = 1e-9
	if math.Abs(dir(s.a, s.b, p)) > eps {
		return false
	}
	minX, maxX := math.Min(s.a.x, s.b.x), math.Max(s.a.x, s.b.x)
	minY, maxY := math.Min(s.a.y, s.b.y), math.Max(s.a.y, s.b.y)
	return p.x >= minX-eps && p.x <= maxX+eps && p.y >= minY-eps && p.y <= maxY+eps
}

// rayCrosses tests whether the ray from p to far properly intersects s,
// using the orientation predicate as the standard two-segment test.
func rayCrosses(p, far point, s segment) bool {
	d1 := dir(p, far, s.a)
	d2 := dir(p, far, s.b)
	d3 := dir(s.a, s.b, p)
	d4 := dir(s.a, s.b, far)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}
