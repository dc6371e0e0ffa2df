// This file is part of GameGL.
//
// GameGL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameGL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameGL.  If not, see <https://www.gnu.org/licenses/>.

package platform

import (
	"time"
	"unsafe"
)

// Config is a framebuffer configuration supported by the Display. Configs are
// immutable.
type Config interface {
	AlphaSize() int
	SupportsTransparency() bool
	NumSamples() int
	String() string
}

// Display is the connection to the windowing system.
type Display interface {
	Backend() Backend

	// Configs returns every config that matches the template. The list may be
	// empty
	Configs(template Template) ([]Config, error)

	// CreateWindow creates a window compatible with the config
	CreateWindow(attrs WindowAttributes, config Config) (Window, error)

	// CreateContext creates a context for the config. The window is only
	// used as a reference for the pixel format. The returned context is not
	// current
	CreateContext(config Config, window Window, attrs ContextAttributes) (Context, error)

	// CreateSurface creates a drawable surface for the window
	CreateSurface(window Window, config Config, width int, height int) (Surface, error)

	// GetProcAddress returns the address of the named GL function for the
	// current context
	GetProcAddress(name string) unsafe.Pointer

	// Terminate releases the display explicitly. Only required for backends
	// that do not release the display automatically
	Terminate() error
}

// Window is a native window.
type Window interface {
	Size() (int, int)

	// RequestRedraw causes a RedrawRequested event to be delivered with the
	// next batch of events
	RequestRedraw()

	Destroy() error
}

// Surface is the drawable part of a window.
type Surface interface {
	Size() (int, int)

	// Resize must be called when the window changes size. Some backends do
	// not track size changes automatically
	Resize(width int, height int)

	// SetSwapInterval turns vsync on or off. The context must be current on
	// the surface
	SetSwapInterval(context Context, vsync bool) error

	// SwapBuffers presents the back buffer
	SwapBuffers(context Context) error

	Destroy() error
}

// Context is a native GL context.
type Context interface {
	Attributes() ContextAttributes

	// MakeCurrent binds the context to the surface on the calling thread
	MakeCurrent(surface Surface) error

	// MakeNotCurrent unbinds the context from the calling thread and from any
	// surface
	MakeNotCurrent() error

	IsCurrent() bool

	Destroy() error
}

// EventLoop is the source of platform events.
type EventLoop interface {
	Display() Display

	// Wait blocks until at least one event is pending or the timeout has
	// been reached and returns every pending event. The end of the batch is
	// the point at which events have been drained. A nil batch is valid.
	Wait(timeout time.Duration) ([]Event, error)
}
