// Package snapshot renders widgets to PNG in one shot, without a window.
package snapshot

import (
	"io"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/integration/starcanvas"
	"github.com/gogpu/starrating/internal/config"
)

// Star writes a width x height PNG of one star filled to fill.
func Star(w io.Writer, cfg *config.Config, fill float64, width, height int) error {
	opts := append(cfg.Star.StarOptions(), starrating.WithFillValue(fill))
	return encode(w, cfg, width, height, starrating.NewStar(opts...))
}

// Rating writes a width x height PNG of a rating row showing rating. The
// fills are applied instantly; a snapshot has no frames to animate.
func Rating(w io.Writer, cfg *config.Config, rating float64, width, height int) error {
	opts := append(cfg.RatingOptions(),
		starrating.WithStarOptions(starrating.WithAnimator(starrating.Instant)))
	r := starrating.NewRating(opts...)
	r.SetRating(rating)
	return encode(w, cfg, width, height, r)
}

func encode(w io.Writer, cfg *config.Config, width, height int, widget starrating.Widget) error {
	cv, err := starcanvas.New(nil, width, height, widget,
		starcanvas.WithBackground(cfg.Render.BackgroundColor()))
	if err != nil {
		return err
	}
	defer func() { _ = cv.Close() }()
	return cv.EncodePNG(w)
}
