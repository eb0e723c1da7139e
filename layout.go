package starrating

import "math"

// RowFrames lays n square cells out left to right in a width x height box.
// Cells share the width equally after subtracting the gaps; each cell is as
// tall as it is wide (capped at height) and centered vertically.
func RowFrames(width, height, spacing float64, n int) []Rect {
	if n <= 0 {
		return nil
	}
	spacing = math.Max(0, spacing)
	cell := math.Max(0, (width-spacing*float64(n-1))/float64(n))
	side := math.Min(cell, math.Max(0, height))
	y := (height - side) / 2

	frames := make([]Rect, n)
	for k := range frames {
		frames[k] = Rect{X: float64(k) * (cell + spacing), Y: y, W: cell, H: side}
	}
	return frames
}

func (r *Rating) layout() {
	frames := RowFrames(r.width, r.height, r.spacing, NumStars)
	for i, f := range frames {
		r.frames[i] = f
		r.stars[i].SetBounds(f.W, f.H)
	}
}
