package starrating

import (
	"math"
	"time"

	"github.com/gogpu/gg"
)

// NumStars is the number of stars owned by a Rating.
const NumStars = 3

// DefaultSpacing is the gap between stars in a new Rating.
const DefaultSpacing = 8.0

// StarFills maps a rating in [0, 1] onto n per-star fill values. Stars fill
// whole from the left; the star on the boundary gets the fractional part.
// For n = 3 and rating 0.5 the result is [1, 0.5, 0].
func StarFills(rating float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	total := clamp01(rating) * float64(n)
	fills := make([]float64, n)
	for k := range fills {
		fills[k] = clamp01(total - float64(k))
	}
	return fills
}

// Rating is a row of NumStars stars driven by one rating value.
//
// The stars belong to the rating: their fills are derived from the rating
// and are not reachable by callers.
type Rating struct {
	width, height float64

	rating    float64
	starColor gg.RGBA
	spacing   float64

	stars  [NumStars]*Star
	frames [NumStars]Rect

	invalidate func()
}

// NewRating creates a rating of 0 with NumStars empty stars.
func NewRating(opts ...RatingOption) *Rating {
	o := defaultRatingOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Rating{
		starColor: o.starColor,
		spacing:   math.Max(0, o.spacing),
	}
	for i := range r.stars {
		s := NewStar(o.starOpts...)
		s.SetStarColor(o.starColor)
		s.SetInvalidator(r.setNeedsDisplay)
		r.stars[i] = s
	}
	r.applyFills()
	return r
}

// Rating returns the clamped rating value.
func (r *Rating) Rating() float64 {
	return r.rating
}

// SetRating clamps v to [0, 1] and animates every star to its share of it.
func (r *Rating) SetRating(v float64) {
	r.rating = clamp01(v)
	Logger().Debug("rating changed", "rating", r.rating)
	r.applyFills()
}

func (r *Rating) applyFills() {
	for k, f := range StarFills(r.rating, NumStars) {
		r.stars[k].SetFillValue(f, true)
	}
}

// Fills returns the model fill value of each star, left to right.
func (r *Rating) Fills() []float64 {
	out := make([]float64, NumStars)
	for i, s := range r.stars {
		out[i] = s.FillValue()
	}
	return out
}

// PresentedFills returns the fill value each star currently draws.
func (r *Rating) PresentedFills() []float64 {
	out := make([]float64, NumStars)
	for i, s := range r.stars {
		out[i] = s.PresentedFill()
	}
	return out
}

// StarColor returns the color shared by all stars.
func (r *Rating) StarColor() gg.RGBA {
	return r.starColor
}

// SetStarColor pushes c to every star immediately.
func (r *Rating) SetStarColor(c gg.RGBA) {
	r.starColor = c
	for _, s := range r.stars {
		s.SetStarColor(c)
	}
}

// Spacing returns the gap between stars.
func (r *Rating) Spacing() float64 {
	return r.spacing
}

// SetSpacing changes the gap between stars and lays them out again.
func (r *Rating) SetSpacing(v float64) {
	r.spacing = math.Max(0, v)
	r.layout()
	r.setNeedsDisplay()
}

// Bounds returns the size last delivered by SetBounds.
func (r *Rating) Bounds() (width, height float64) {
	return r.width, r.height
}

// SetBounds lays the stars out in a width x height box.
func (r *Rating) SetBounds(width, height float64) {
	r.width = math.Max(0, width)
	r.height = math.Max(0, height)
	r.layout()
	r.setNeedsDisplay()
}

// Frames returns each star's frame in the rating's coordinates.
func (r *Rating) Frames() []Rect {
	out := make([]Rect, NumStars)
	copy(out, r.frames[:])
	return out
}

// SetInvalidator registers the redraw request callback. Redraw requests
// from the owned stars are forwarded to it.
func (r *Rating) SetInvalidator(fn func()) {
	r.invalidate = fn
}

// Animating reports whether any star is running a fill transition.
func (r *Rating) Animating() bool {
	for _, s := range r.stars {
		if s.Animating() {
			return true
		}
	}
	return false
}

// Tick advances every star's transition by dt.
func (r *Rating) Tick(dt time.Duration) bool {
	running := false
	for _, s := range r.stars {
		if s.Tick(dt) {
			running = true
		}
	}
	return running
}

// Draw renders the stars left to right.
func (r *Rating) Draw(dc *gg.Context) error {
	for i, s := range r.stars {
		f := r.frames[i]
		dc.Push()
		dc.Translate(f.X, f.Y)
		err := s.Draw(dc)
		dc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Rating) setNeedsDisplay() {
	if r.invalidate != nil {
		r.invalidate()
	}
}
