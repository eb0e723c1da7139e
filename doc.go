// Package starrating provides star-shaped rating widgets drawn with gg.
//
// # Overview
//
// A [Star] displays a single five-pointed star with a fractional fill in
// the range [0, 1]. A [Rating] arranges three stars left to right and drives
// all of them from one rating value in the range [0, 1].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/starrating"
//	)
//
//	r := starrating.NewRating(starrating.WithRatingStarColor(gg.Hex("#FFCC00")))
//	r.SetBounds(300, 100)
//	r.SetRating(0.5) // first star full, second half, third empty
//
//	dc := gg.NewContext(300, 100)
//	_ = r.Draw(dc)
//	_ = dc.SavePNG("rating.png")
//
// # Fill Model
//
// The fill is a left-to-right wipe: a fill value of 0.5 reveals the left
// half of the star's bounding box, not half of the star's area. The fill is
// drawn beneath the outline so the stroke stays visible.
//
// # Hosting
//
// Widgets implement [Widget]. A host delivers bounds through SetBounds,
// advances running fill transitions through Tick and redraws when a widget
// calls its invalidator. See the integration/starcanvas package for a host
// backed by a gg.Context.
//
// # Coordinate System
//
// Same as gg: origin at top-left, X grows right, Y grows down. Every widget
// draws in its own local coordinates starting at (0, 0).
package starrating
