package starrating

import (
	"time"

	"github.com/gogpu/gg"
)

// Widget is the capability set a host needs to lay out, animate and draw a
// custom-drawn control.
//
// All methods must be called from the host's UI goroutine.
type Widget interface {
	// SetBounds tells the widget the size of the box it has been given.
	SetBounds(width, height float64)

	// Draw renders the widget into dc in local coordinates (origin at the
	// widget's top-left corner).
	Draw(dc *gg.Context) error

	// Tick advances running transitions by dt and reports whether any are
	// still running afterwards.
	Tick(dt time.Duration) bool

	// SetInvalidator registers the callback the widget uses to request a
	// redraw. The host decides when the redraw actually happens.
	SetInvalidator(fn func())
}

var (
	_ Widget = (*Star)(nil)
	_ Widget = (*Rating)(nil)
)
