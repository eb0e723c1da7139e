package starrating

import (
	"math"

	"github.com/gogpu/gg"
)

// StarPoints is the number of vertices in a star outline: five outer tips
// alternating with five inner notches.
const StarPoints = 10

// InnerRadiusRatio is the inner notch radius as a fraction of the outer radius.
const InnerRadiusRatio = 0.4

// Rect is an axis-aligned rectangle in widget-local coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the rectangle's center point.
func (r Rect) Center() gg.Point {
	return gg.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Inset shrinks the rectangle by d on every side. The result never has a
// negative size; an over-inset rectangle collapses onto its center.
func (r Rect) Inset(d float64) Rect {
	if d <= 0 {
		return r
	}
	c := r.Center()
	w := math.Max(0, r.W-2*d)
	h := math.Max(0, r.H-2*d)
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Outline returns the vertices of a five-pointed star inscribed in a
// width x height box anchored at the origin.
//
// The outer radius is min(width, height)/2 and the inner radius is
// InnerRadiusRatio times that. Vertex 0 is the top tip (angle -90 degrees);
// vertices follow clockwise in screen space, 36 degrees apart, alternating
// outer and inner. A zero-size box yields every vertex at the center.
func Outline(width, height float64) [StarPoints]gg.Point {
	return OutlineIn(Rect{W: width, H: height})
}

// OutlineIn is like Outline but for an arbitrary box.
func OutlineIn(box Rect) [StarPoints]gg.Point {
	var pts [StarPoints]gg.Point
	center := box.Center()
	outer := math.Max(0, math.Min(box.W, box.H)/2)
	inner := outer * InnerRadiusRatio
	step := math.Pi / 5
	for i := range pts {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := float64(i)*step - math.Pi/2
		pts[i] = gg.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
	}
	return pts
}

// traceStar appends the outline to the context's current path.
func traceStar(dc *gg.Context, pts [StarPoints]gg.Point) {
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
}

// FillMask returns the rectangle that reveals a star's fill: the left
// fraction of the bounding box, spanning its full height. fill is clamped
// to [0, 1].
func FillMask(width, height, fill float64) Rect {
	return Rect{W: width * clamp01(fill), H: height}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
