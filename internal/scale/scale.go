// Package scale converts an integer font-unit outline into a scaled,
// pure-polygon outline: implied on-curve points are manufactured and
// every quadratic Bézier is tessellated into line segments.
package scale

import (
	"math"

	"github.com/gviegas/sfntglyph/internal/truetype"
)

// Point is a scaled outline vertex, always on-curve.
type Point struct {
	X, Y float64
}

// Component is one contour set of a scaled outline.
type Component struct {
	Points      []Point
	ContourEnds []int
}

// Outline is a scaled outline: every component of the source glyph,
// tessellated into line segments, plus the source bbox scaled by factor.
type Outline struct {
	Components []Component
	XMin, YMin float64
	XMax, YMax float64
}

// Factor computes reso/(72*upem), the scalar applied to every font-unit
// coordinate to reach device space at the given rendering resolution.
func Factor(points, dpi float64, upem uint16) float64 {
	reso := points * dpi
	return reso / (72 * float64(upem))
}

// Scale converts src into a device-space polygon outline at the given
// scale factor.
func Scale(src *truetype.Outline, factor float64) *Outline {
	out := &Outline{
		XMin: float64(src.XMin) * factor,
		YMin: float64(src.YMin) * factor,
		XMax: float64(src.XMax) * factor,
		YMax: float64(src.YMax) * factor,
	}
	for _, comp := range src.Components {
		out.Components = append(out.Components, scaleComponent(comp, factor))
	}
	return out
}

func scaleComponent(comp truetype.Component, factor float64) Component {
	var out Component
	start := 0
	for _, end := range comp.ContourEnds {
		pts := comp.Points[start : end+1]
		emitContour(pts, factor, &out)
		if len(out.Points) > 0 {
			out.ContourEnds = append(out.ContourEnds, len(out.Points)-1)
		}
		start = end + 1
	}
	return out
}

func scaled(p truetype.Point, factor float64) Point {
	return Point{X: float64(p.X) * factor, Y: float64(p.Y) * factor}
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// emitContour walks pts in order, manufacturing implied on-curve points
// between consecutive off-curve points and tessellating every quadratic
// Bézier so formed, appending the result to out.Points.
func emitContour(pts []truetype.Point, factor float64, out *Component) {
	n := len(pts)
	if n == 0 {
		return
	}

	for i, p1 := range pts {
		if p1.OnCurve {
			out.Points = append(out.Points, scaled(p1, factor))
			continue
		}

		p0 := pts[(i-1+n)%n]
		p2 := pts[(i+1)%n]

		var P0 Point
		if p0.OnCurve {
			P0 = scaled(p0, factor)
		} else {
			P0 = mid(scaled(p0, factor), scaled(p1, factor))
		}
		P1 := scaled(p1, factor)
		var P2 Point
		if p2.OnCurve {
			P2 = scaled(p2, factor)
		} else {
			P2 = mid(scaled(p1, factor), scaled(p2, factor))
		}

		tessellateQuadratic(P0, P1, P2, out)
	}
}

// tessellateQuadratic emits the interior points (t = 1/N .. (N-1)/N) of the
// quadratic Bézier with endpoints P0, P2 and control point P1. The
// endpoints themselves are contributed by the surrounding on-curve points
// and must not be duplicated here.
func tessellateQuadratic(P0, P1, P2 Point, out *Component) {
	d1 := dist(P0, P1)
	d2 := dist(P2, P1)
	n := int(math.Round((d1 + d2) * 0.25))
	if n < 4 {
		n = 4
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		out.Points = append(out.Points, bezierPoint(P0, P1, P2, t))
	}
}

func bezierPoint(P0, P1, P2 Point, t float64) Point {
	omt := 1 - t
	return Point{
		X: omt*omt*P0.X + 2*t*omt*P1.X + t*t*P2.X,
		Y: omt*omt*P0.Y + 2*t*omt*P1.Y + t*t*P2.Y,
	}
}

func dist(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
