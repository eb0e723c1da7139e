package starrating

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gg"
)

// Default star appearance.
var (
	// DefaultStarColor is the yellow used for the outline and fill.
	DefaultStarColor = gg.Hex("#FFCC00")

	// DefaultBorderColor is the container frame color.
	DefaultBorderColor = gg.Black
)

// DefaultBorderWidth is the outline stroke width of a new star.
const DefaultBorderWidth = 1.0

// Star is a single star widget with a fractional left-to-right fill.
//
// The fill value set by callers is the model value. While an animated
// change is running, the star draws an intermediate presented value that
// converges on the model value as the host calls Tick.
//
// Star is NOT safe for concurrent use.
type Star struct {
	width, height float64

	fill      float64
	presented float64

	strokeColor          gg.RGBA
	fillColor            gg.RGBA
	borderWidth          float64
	borderColor          gg.RGBA
	containerBorderWidth float64
	inset                float64

	duration   time.Duration
	animator   Animator
	transition Transition

	outline    [StarPoints]gg.Point
	invalidate func()
}

// NewStar creates an empty star with the default appearance.
func NewStar(opts ...StarOption) *Star {
	s := &Star{
		strokeColor: DefaultStarColor,
		fillColor:   DefaultStarColor,
		borderWidth: DefaultBorderWidth,
		borderColor: DefaultBorderColor,
		duration:    DefaultAnimationDuration,
		animator:    Linear,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.layout()
	return s
}

// FillValue returns the model fill value in [0, 1].
func (s *Star) FillValue() float64 {
	return s.fill
}

// SetFillValue clamps v to [0, 1] and stores it. When animated is true and
// the star has a non-zero animation duration, the drawn fill moves from its
// current presented value to v through the star's Animator; otherwise it
// jumps immediately. Either way a redraw is requested.
func (s *Star) SetFillValue(v float64, animated bool) {
	v = clamp01(v)
	s.fill = v
	s.transition = nil
	if animated && s.duration > 0 && s.animator != nil && v != s.presented {
		t := s.animator(s.presented, v, s.duration)
		// Transitions that finish without elapsed time apply at once.
		if _, done := t.Step(0); !done {
			s.transition = t
		}
	}
	if s.transition == nil {
		s.presented = v
	}
	Logger().Debug("star fill changed", "fill", v, "animated", s.transition != nil)
	s.setNeedsDisplay()
}

// PresentedFill returns the fill value currently drawn.
func (s *Star) PresentedFill() float64 {
	return s.presented
}

// Animating reports whether a fill transition is running.
func (s *Star) Animating() bool {
	return s.transition != nil
}

// Tick advances the running fill transition by dt.
func (s *Star) Tick(dt time.Duration) bool {
	if s.transition == nil {
		return false
	}
	v, done := s.transition.Step(dt)
	s.presented = clamp01(v)
	if done {
		s.transition = nil
		s.presented = s.fill
	}
	s.setNeedsDisplay()
	return !done
}

// StarColor returns the color shared by the outline and the fill.
func (s *Star) StarColor() gg.RGBA {
	return s.fillColor
}

// SetStarColor sets the outline stroke color and the fill color together.
func (s *Star) SetStarColor(c gg.RGBA) {
	s.strokeColor = c
	s.fillColor = c
	s.setNeedsDisplay()
}

// StrokeColor returns the outline color.
func (s *Star) StrokeColor() gg.RGBA { return s.strokeColor }

// FillColor returns the fill color.
func (s *Star) FillColor() gg.RGBA { return s.fillColor }

// BorderWidth returns the outline stroke width.
func (s *Star) BorderWidth() float64 {
	return s.borderWidth
}

// SetBorderWidth sets the outline stroke width. Negative widths become 0,
// which hides the outline.
func (s *Star) SetBorderWidth(w float64) {
	s.borderWidth = math.Max(0, w)
	s.setNeedsDisplay()
}

// BorderColor returns the container frame color.
func (s *Star) BorderColor() gg.RGBA {
	return s.borderColor
}

// SetBorderColor sets the color of the rectangular container frame. It does
// not change the star outline, which always uses the star color. The frame
// is only drawn once SetContainerBorderWidth gives it a positive width.
func (s *Star) SetBorderColor(c gg.RGBA) {
	s.borderColor = c
	s.setNeedsDisplay()
}

// ContainerBorderWidth returns the container frame width (0 by default).
func (s *Star) ContainerBorderWidth() float64 {
	return s.containerBorderWidth
}

// SetContainerBorderWidth sets the container frame width.
func (s *Star) SetContainerBorderWidth(w float64) {
	s.containerBorderWidth = math.Max(0, w)
	s.setNeedsDisplay()
}

// Inset returns the padding between the bounds and the star geometry.
func (s *Star) Inset() float64 {
	return s.inset
}

// SetInset shrinks the box the star is inscribed in by px on every side.
// The fill mask still spans the full bounds.
func (s *Star) SetInset(px float64) {
	s.inset = math.Max(0, px)
	s.layout()
	s.setNeedsDisplay()
}

// AnimationDuration returns the duration of animated fill changes.
func (s *Star) AnimationDuration() time.Duration {
	return s.duration
}

// SetAnimationDuration sets the duration of animated fill changes. A zero
// or negative duration makes every change instant.
func (s *Star) SetAnimationDuration(d time.Duration) {
	s.duration = d
}

// SetAnimator replaces the transition strategy. nil disables animation.
func (s *Star) SetAnimator(a Animator) {
	s.animator = a
}

// Bounds returns the size last delivered by SetBounds.
func (s *Star) Bounds() (width, height float64) {
	return s.width, s.height
}

// SetBounds recomputes the outline and fill mask for a new size.
func (s *Star) SetBounds(width, height float64) {
	s.width = math.Max(0, width)
	s.height = math.Max(0, height)
	s.layout()
	Logger().Debug("star bounds changed", "width", s.width, "height", s.height)
	s.setNeedsDisplay()
}

// SetInvalidator registers the redraw request callback.
func (s *Star) SetInvalidator(fn func()) {
	s.invalidate = fn
}

// Outline returns the current star vertices in local coordinates.
func (s *Star) Outline() [StarPoints]gg.Point {
	return s.outline
}

// FillMask returns the clip rectangle for the model fill value.
func (s *Star) FillMask() Rect {
	return FillMask(s.width, s.height, s.fill)
}

// PresentedFillMask returns the clip rectangle for the drawn fill value.
func (s *Star) PresentedFillMask() Rect {
	return FillMask(s.width, s.height, s.presented)
}

// Draw renders the fill beneath the outline, then the container frame.
func (s *Star) Draw(dc *gg.Context) error {
	if s.width <= 0 || s.height <= 0 {
		return nil
	}

	if m := s.PresentedFillMask(); !m.Empty() {
		dc.Push()
		dc.ClipRect(m.X, m.Y, m.W, m.H)
		traceStar(dc, s.outline)
		setColor(dc, s.fillColor)
		err := dc.Fill()
		dc.Pop()
		if err != nil {
			return fmt.Errorf("starrating: fill star: %w", err)
		}
	}

	if s.borderWidth > 0 {
		traceStar(dc, s.outline)
		setColor(dc, s.strokeColor)
		dc.SetLineWidth(s.borderWidth)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("starrating: stroke star: %w", err)
		}
	}

	if s.containerBorderWidth > 0 {
		dc.DrawRectangle(0, 0, s.width, s.height)
		setColor(dc, s.borderColor)
		dc.SetLineWidth(s.containerBorderWidth)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("starrating: stroke frame: %w", err)
		}
	}
	return nil
}

func (s *Star) layout() {
	s.outline = OutlineIn(Rect{W: s.width, H: s.height}.Inset(s.inset))
}

func (s *Star) setNeedsDisplay() {
	if s.invalidate != nil {
		s.invalidate()
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
