package starrating

import (
	"time"

	"github.com/gogpu/gg"
)

// StarOption configures a Star during creation.
//
// Example:
//
//	s := starrating.NewStar(
//	    starrating.WithStarColor(gg.Hex("#3366FF")),
//	    starrating.WithBorderWidth(2),
//	)
type StarOption func(*Star)

// WithStarColor sets the outline and fill color.
func WithStarColor(c gg.RGBA) StarOption {
	return func(s *Star) {
		s.strokeColor = c
		s.fillColor = c
	}
}

// WithBorderWidth sets the outline stroke width.
func WithBorderWidth(w float64) StarOption {
	return func(s *Star) {
		if w < 0 {
			w = 0
		}
		s.borderWidth = w
	}
}

// WithBorderColor sets the container frame color.
func WithBorderColor(c gg.RGBA) StarOption {
	return func(s *Star) {
		s.borderColor = c
	}
}

// WithContainerBorderWidth sets the container frame width.
func WithContainerBorderWidth(w float64) StarOption {
	return func(s *Star) {
		if w < 0 {
			w = 0
		}
		s.containerBorderWidth = w
	}
}

// WithInset sets the padding between the bounds and the star geometry.
func WithInset(px float64) StarOption {
	return func(s *Star) {
		if px < 0 {
			px = 0
		}
		s.inset = px
	}
}

// WithAnimationDuration sets the duration of animated fill changes.
func WithAnimationDuration(d time.Duration) StarOption {
	return func(s *Star) {
		s.duration = d
	}
}

// WithAnimator sets the fill transition strategy.
func WithAnimator(a Animator) StarOption {
	return func(s *Star) {
		s.animator = a
	}
}

// WithFillValue sets the initial fill without animation.
func WithFillValue(v float64) StarOption {
	return func(s *Star) {
		s.fill = clamp01(v)
		s.presented = s.fill
	}
}

// RatingOption configures a Rating during creation.
type RatingOption func(*ratingOptions)

type ratingOptions struct {
	starColor gg.RGBA
	spacing   float64
	starOpts  []StarOption
}

func defaultRatingOptions() ratingOptions {
	return ratingOptions{
		starColor: DefaultStarColor,
		spacing:   DefaultSpacing,
	}
}

// WithRatingStarColor sets the color shared by every star.
func WithRatingStarColor(c gg.RGBA) RatingOption {
	return func(o *ratingOptions) {
		o.starColor = c
	}
}

// WithSpacing sets the horizontal gap between stars.
func WithSpacing(s float64) RatingOption {
	return func(o *ratingOptions) {
		o.spacing = s
	}
}

// WithStarOptions applies opts to every star the rating creates. The
// rating's own star color wins over a WithStarColor passed here.
func WithStarOptions(opts ...StarOption) RatingOption {
	return func(o *ratingOptions) {
		o.starOpts = append(o.starOpts, opts...)
	}
}
