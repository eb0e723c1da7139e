// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package starcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/starrating"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("starcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("starcanvas: invalid dimensions")

	// ErrNilWidget is returned when New is called without a widget.
	ErrNilWidget = errors.New("starcanvas: nil widget")
)

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithBackground sets the color the canvas is cleared to before every
// redraw. The default is transparent.
func WithBackground(c gg.RGBA) Option {
	return func(cv *Canvas) {
		cv.background = c
	}
}

// Canvas hosts one widget on a gg.Context.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx        *gg.Context
	provider   gpucontext.DeviceProvider
	root       starrating.Widget
	background gg.RGBA

	dirty   bool // widget asked for a redraw
	redraws int

	width  int
	height int
	closed bool
}

// New creates a canvas of the given size hosting root. The widget receives
// its bounds immediately and its redraw requests mark the canvas dirty.
//
// provider may be nil for headless use (PNG output, terminal preview). When
// non-nil it should come from gogpu.App.GPUContextProvider(); it is handed
// to gg's registered accelerator so rendering shares the window's device.
func New(provider gpucontext.DeviceProvider, width, height int, root starrating.Widget, opts ...Option) (*Canvas, error) {
	if root == nil {
		return nil, ErrNilWidget
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	if provider != nil {
		// Non-fatal: the accelerator may not support device sharing.
		_ = gg.SetAcceleratorDeviceProvider(provider)
	}

	c := &Canvas{
		ctx:        gg.NewContext(width, height),
		provider:   provider,
		root:       root,
		background: gg.Transparent,
		width:      width,
		height:     height,
		dirty:      true,
	}
	for _, opt := range opts {
		opt(c)
	}

	root.SetInvalidator(c.MarkDirty)
	root.SetBounds(float64(width), float64(height))

	starrating.Logger().Info("starcanvas: created", "width", width, "height", height, "gpu", provider != nil)
	return c, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(provider gpucontext.DeviceProvider, width, height int, root starrating.Widget, opts ...Option) *Canvas {
	c, err := New(provider, width, height, root, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context. Returns nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty schedules a redraw on the next Render. It is the invalidator
// handed to the hosted widget.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether a redraw is pending.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Redraws returns how many times the widget has actually been drawn.
func (c *Canvas) Redraws() int {
	return c.redraws
}

// Resize changes canvas dimensions and tells the widget its new bounds.
//
// Returns error if dimensions are invalid or canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if c.width == width && c.height == height {
		return nil
	}

	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("starcanvas: context resize failed: %w", err)
	}

	c.width = width
	c.height = height
	c.root.SetBounds(float64(width), float64(height))
	c.dirty = true

	return nil
}

// Advance moves the widget's running transitions forward by dt and reports
// whether any are still running. Transitions request their own redraws.
func (c *Canvas) Advance(dt time.Duration) bool {
	if c.closed {
		return false
	}
	return c.root.Tick(dt)
}

// Render redraws the widget if a redraw is pending.
func (c *Canvas) Render() error {
	if c.closed {
		return ErrCanvasClosed
	}
	if !c.dirty {
		return nil
	}

	c.ctx.ClearWithColor(c.background)
	if err := c.root.Draw(c.ctx); err != nil {
		return fmt.Errorf("starcanvas: draw: %w", err)
	}
	c.dirty = false
	c.redraws++
	starrating.Logger().Debug("starcanvas: redraw", "count", c.redraws)
	return nil
}

// Image renders pending changes and returns the canvas pixels.
func (c *Canvas) Image() (image.Image, error) {
	if err := c.Render(); err != nil {
		return nil, err
	}
	return c.ctx.Image(), nil
}

// EncodePNG renders pending changes and writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.Render(); err != nil {
		return err
	}
	return c.ctx.EncodePNG(w)
}

// SavePNG renders pending changes and writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.Render(); err != nil {
		return err
	}
	return c.ctx.SavePNG(path)
}

// Settle advances transitions in frame-sized steps until they finish or
// limit elapses, then renders.
func (c *Canvas) Settle(frame, limit time.Duration) error {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	for elapsed := time.Duration(0); elapsed < limit && c.Advance(frame); elapsed += frame {
	}
	return c.Render()
}

// Close releases all resources associated with the Canvas.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}

	c.root.SetInvalidator(nil)
	c.provider = nil
	return nil
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed or headless.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}
