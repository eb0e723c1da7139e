// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package starcanvas hosts a starrating widget on a gg drawing context.
//
// The canvas plays the part of the host UI framework: it delivers the
// widget's bounds, collects its redraw requests, advances its fill
// transitions and redraws on the caller's cadence. The data flow is:
//
//	Widget (state) -> gg.Context (draw) -> Pixmap -> PNG / image.Image
//
// # Redraw Coalescing
//
// Widgets never draw synchronously. Any number of property changes between
// two calls to Render produce a single redraw.
//
// # Animation
//
// The canvas owns no timer. The caller (an event loop, a bubbletea program,
// a gogpu window) calls Advance with the time elapsed since its previous
// frame and then Render.
//
// # Usage
//
//	r := starrating.NewRating()
//	c, _ := starcanvas.New(nil, 300, 100, r)
//	defer c.Close()
//
//	r.SetRating(0.5)
//	for c.Advance(16 * time.Millisecond) {
//	    _ = c.Render()
//	}
//	_ = c.SavePNG("rating.png")
//
// Inside a gogpu window, pass app.GPUContextProvider() as the provider so
// gg's accelerator shares the window's GPU device.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package starcanvas
