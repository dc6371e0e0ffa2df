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

package simulated

import (
	"fmt"
	"unsafe"

	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/gltable/recorder"
	"github.com/jetsetilly/gamegl/platform"
)

// Display implements the platform.Display interface.
type Display struct {
	backend platform.Backend
	configs []platform.Config

	// the table returned by the Loader(). replaced when a new context is
	// created
	GL *recorder.Recorder

	// number of calls to CreateContext() that will fail
	ContextFailures int

	FailWindow       bool
	FailSurface      bool
	FailSwapInterval bool
	FailSwap         bool
	FailLoad         bool

	// every context requested, in order
	Attempts []platform.ContextAttributes

	Windows        int
	LiveWindows    int
	Surfaces       int
	LiveSurfaces   int
	Contexts       int
	Swaps          int
	VSync          bool
	Terminated     bool
	LastAttributes platform.WindowAttributes

	current *Context
	redraw  bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(backend platform.Backend, configs ...platform.Config) *Display {
	return &Display{
		backend: backend,
		configs: configs,
		GL:      recorder.NewRecorder(),
	}
}

// Backend implements the platform.Display interface.
func (d *Display) Backend() platform.Backend {
	return d.backend
}

// Configs implements the platform.Display interface. Configs with too
// little alpha or too many samples for the template are filtered out.
func (d *Display) Configs(template platform.Template) ([]platform.Config, error) {
	if d.Terminated {
		return nil, fmt.Errorf("simulated: display terminated")
	}
	var cfgs []platform.Config
	for _, c := range d.configs {
		if c.AlphaSize() >= template.AlphaSize && c.NumSamples() <= template.MaxSamples {
			cfgs = append(cfgs, c)
		}
	}
	return cfgs, nil
}

// CreateWindow implements the platform.Display interface.
func (d *Display) CreateWindow(attrs platform.WindowAttributes, config platform.Config) (platform.Window, error) {
	if d.FailWindow {
		return nil, fmt.Errorf("simulated: window creation failed")
	}
	d.Windows++
	d.LiveWindows++
	d.LastAttributes = attrs
	return &Window{
		display: d,
		width:   attrs.Width,
		height:  attrs.Height,
	}, nil
}

// CreateContext implements the platform.Display interface.
func (d *Display) CreateContext(config platform.Config, window platform.Window, attrs platform.ContextAttributes) (platform.Context, error) {
	d.Attempts = append(d.Attempts, attrs)
	if d.ContextFailures > 0 {
		d.ContextFailures--
		return nil, fmt.Errorf("simulated: %s context not supported", attrs)
	}
	if w, ok := window.(*Window); !ok || w.destroyed {
		return nil, fmt.Errorf("simulated: context requires a live window")
	}
	d.Contexts++
	d.GL = recorder.NewRecorder()
	return &Context{
		display: d,
		attrs:   attrs,
	}, nil
}

// CreateSurface implements the platform.Display interface.
func (d *Display) CreateSurface(window platform.Window, config platform.Config, width int, height int) (platform.Surface, error) {
	if d.FailSurface {
		return nil, fmt.Errorf("simulated: surface creation failed")
	}
	w, ok := window.(*Window)
	if !ok || w.destroyed {
		return nil, fmt.Errorf("simulated: surface requires a live window")
	}
	d.Surfaces++
	d.LiveSurfaces++
	return &Surface{
		display: d,
		width:   width,
		height:  height,
	}, nil
}

// GetProcAddress implements the platform.Display interface. Always returns
// nil.
func (d *Display) GetProcAddress(name string) unsafe.Pointer {
	return nil
}

// Terminate implements the platform.Display interface.
func (d *Display) Terminate() error {
	if d.Terminated {
		return fmt.Errorf("simulated: display already terminated")
	}
	d.Terminated = true
	return nil
}

// Loader returns a gltable.Loader that serves the recorder of the most
// recently created context.
func (d *Display) Loader() gltable.Loader {
	return func(es bool, getProcAddress func(string) unsafe.Pointer) (gltable.Table, error) {
		if d.FailLoad {
			return nil, fmt.Errorf("simulated: function loading failed")
		}
		if d.current == nil {
			return nil, fmt.Errorf("simulated: no current context")
		}
		return d.GL, nil
	}
}

// Current returns the context that is current. Returns nil if no context is
// current.
func (d *Display) Current() *Context {
	return d.current
}

// Window implements the platform.Window interface.
type Window struct {
	display   *Display
	width     int
	height    int
	destroyed bool
}

// Size implements the platform.Window interface.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// SetSize changes the size of the window. The platform.Resized event is not
// sent automatically.
func (w *Window) SetSize(width int, height int) {
	w.width = width
	w.height = height
}

// RequestRedraw implements the platform.Window interface.
func (w *Window) RequestRedraw() {
	if !w.destroyed {
		w.display.redraw = true
	}
}

// Destroy implements the platform.Window interface.
func (w *Window) Destroy() error {
	if w.destroyed {
		return fmt.Errorf("simulated: window already destroyed")
	}
	w.destroyed = true
	w.display.LiveWindows--
	return nil
}

// Surface implements the platform.Surface interface.
type Surface struct {
	display   *Display
	width     int
	height    int
	destroyed bool
}

// Size implements the platform.Surface interface.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize implements the platform.Surface interface.
func (s *Surface) Resize(width int, height int) {
	s.width = width
	s.height = height
}

func (s *Surface) currentWith(context platform.Context) error {
	c, ok := context.(*Context)
	if !ok || s.display.current != c || c.surface != s {
		return fmt.Errorf("simulated: context is not current on the surface")
	}
	return nil
}

// SetSwapInterval implements the platform.Surface interface.
func (s *Surface) SetSwapInterval(context platform.Context, vsync bool) error {
	if err := s.currentWith(context); err != nil {
		return err
	}
	if s.display.FailSwapInterval {
		return fmt.Errorf("simulated: swap interval not supported")
	}
	s.display.VSync = vsync
	return nil
}

// SwapBuffers implements the platform.Surface interface.
func (s *Surface) SwapBuffers(context platform.Context) error {
	if s.destroyed {
		return fmt.Errorf("simulated: surface destroyed")
	}
	if err := s.currentWith(context); err != nil {
		return err
	}
	if s.display.FailSwap {
		return fmt.Errorf("simulated: swap failed")
	}
	s.display.Swaps++
	return nil
}

// Destroy implements the platform.Surface interface.
func (s *Surface) Destroy() error {
	if s.destroyed {
		return fmt.Errorf("simulated: surface already destroyed")
	}
	s.destroyed = true
	s.display.LiveSurfaces--
	return nil
}

// Context implements the platform.Context interface.
type Context struct {
	display   *Display
	attrs     platform.ContextAttributes
	surface   *Surface
	destroyed bool
}

// Attributes implements the platform.Context interface.
func (c *Context) Attributes() platform.ContextAttributes {
	return c.attrs
}

// MakeCurrent implements the platform.Context interface.
func (c *Context) MakeCurrent(surface platform.Surface) error {
	if c.destroyed {
		return fmt.Errorf("simulated: context destroyed")
	}
	s, ok := surface.(*Surface)
	if !ok || s.destroyed {
		return fmt.Errorf("simulated: context requires a live surface")
	}
	if c.display.current != nil && c.display.current != c {
		c.display.current.surface = nil
	}
	c.surface = s
	c.display.current = c
	return nil
}

// MakeNotCurrent implements the platform.Context interface.
func (c *Context) MakeNotCurrent() error {
	if c.display.current == c {
		c.display.current = nil
	}
	c.surface = nil
	return nil
}

// IsCurrent implements the platform.Context interface.
func (c *Context) IsCurrent() bool {
	return c.display.current == c
}

// Destroy implements the platform.Context interface.
func (c *Context) Destroy() error {
	if c.destroyed {
		return fmt.Errorf("simulated: context already destroyed")
	}
	_ = c.MakeNotCurrent()
	c.destroyed = true
	return nil
}
