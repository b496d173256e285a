// Package app is the lifecycle shell shared by every example: it opens the
// window, owns at most one live Application, and translates window, keyboard,
// and redraw events into calls on it.
package app

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"
)

// Application is the per-example state driven by the Shell. All methods are
// called from the event loop thread.
type Application interface {
	// SetWindowResized records new drawable dimensions. The surface is not
	// reconfigured here; that happens on the next frame via
	// ResizeSurfaceIfNeeded.
	SetWindowResized(width, height int32)

	// ResizeSurfaceIfNeeded applies a previously recorded resize, at most
	// once per recorded size change.
	ResizeSurfaceIfNeeded() error

	// KeyboardInput handles a key event and reports whether it was
	// consumed.
	KeyboardInput(event *sdl.KeyboardEvent) bool

	// Update advances animation state before a frame is rendered.
	Update()

	// Render draws and presents one frame.
	Render() error

	// Destroy releases all GPU and window resources.
	Destroy()
}

// Constructor builds an Application against a live window. Construction may
// do long-running device negotiation; the shell blocks the event loop until
// it completes.
type Constructor[A Application] func(ctx context.Context, window *sdl.Window) (A, error)
