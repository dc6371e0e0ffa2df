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

package device

import (
	"fmt"

	"github.com/jetsetilly/gamegl/assert"
	"github.com/jetsetilly/gamegl/curated"
	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/negotiate"
	"github.com/jetsetilly/gamegl/platform"
)

// ResumeResult is returned by a successful call to Resume().
type ResumeResult struct {
	// the function table was created by this call to Resume(). this happens
	// once for the life of the context
	Created bool
}

// Controller owns the config, context, function table and the current
// window and surface.
type Controller struct {
	thread assert.Thread

	template platform.Template
	attrs    platform.WindowAttributes
	loader   gltable.Loader
	vsync    bool

	state   State
	display platform.Display
	config  platform.Config
	context platform.Context
	session *session

	gl    *gltable.Handle
	probe gltable.Probe
}

// NewController is the preferred method of initialisation for the Controller
// type. The loader is used to create the function table once the context is
// current for the first time.
func NewController(template platform.Template, attrs platform.WindowAttributes, loader gltable.Loader) *Controller {
	return &Controller{
		thread:   assert.NewThread(),
		template: template,
		attrs:    attrs,
		loader:   loader,
		vsync:    true,
	}
}

// SetVSync sets whether vsync is requested on resume. The default is true.
// Takes effect on the next Resume().
func (c *Controller) SetVSync(vsync bool) {
	c.vsync = vsync
}

// State returns the current state of the controller.
func (c *Controller) State() State {
	return c.state
}

// HasSurfaceAndContext returns true if there is a surface and the context is
// current on it.
func (c *Controller) HasSurfaceAndContext() bool {
	return c.session != nil && c.context != nil && c.context.IsCurrent()
}

// Functions returns the root handle of the function table. Returns nil if the
// table has not been created.
func (c *Controller) Functions() *gltable.Handle {
	return c.gl
}

// Probe returns the capabilities reported by the driver. The zero value is
// returned if the table has not been created.
func (c *Controller) Probe() gltable.Probe {
	return c.probe
}

// Config returns the config chosen by the first call to Resume().
func (c *Controller) Config() platform.Config {
	return c.config
}

// SurfaceSize returns the size of the surface. The ok value is false if there
// is no surface.
func (c *Controller) SurfaceSize() (w int, h int, ok bool) {
	if c.session == nil {
		return 0, 0, false
	}
	w, h = c.session.surface.Size()
	return w, h, true
}

// create the config, window and context. the window is returned so it can be
// used for the first session
func (c *Controller) initialise(display platform.Display) (platform.Window, error) {
	cfg, err := negotiate.PickConfig(display, c.template)
	if err != nil {
		return nil, err
	}

	window, err := display.CreateWindow(c.attrs, cfg)
	if err != nil {
		return nil, curated.Errorf(WindowCreation, err)
	}
	c.state = WindowCreated

	ctx, err := negotiate.CreateContext(display, window, cfg)
	if err != nil {
		if err := window.Destroy(); err != nil {
			logger.Logf(logger.Allow, "device", "destroying window: %v", err)
		}
		return nil, err
	}

	c.display = display
	c.config = cfg
	c.context = ctx
	c.state = ContextCreated
	logger.Logf(logger.Allow, "device", "%s display with %s context", display.Backend(), ctx.Attributes())

	return window, nil
}

// Resume creates the window and surface and makes the context current. On the
// first call the config and context are also created.
//
// Calling Resume() when already resumed does nothing.
func (c *Controller) Resume(display platform.Display) (ResumeResult, error) {
	c.thread.Check("resume")

	switch c.state {
	case Resumed:
		logger.Log(logger.Allow, "device", "resume: already resumed")
		return ResumeResult{}, nil
	case Exited:
		return ResumeResult{}, curated.Errorf(HasExited)
	}

	var window platform.Window
	var err error

	if c.context == nil {
		window, err = c.initialise(display)
		if err != nil {
			return ResumeResult{}, err
		}
	} else {
		window, err = c.display.CreateWindow(c.attrs, c.config)
		if err != nil {
			return ResumeResult{}, curated.Errorf(WindowCreation, err)
		}
	}

	w, h := window.Size()
	surface, err := c.display.CreateSurface(window, c.config, w, h)
	if err != nil {
		if err := window.Destroy(); err != nil {
			logger.Logf(logger.Allow, "device", "destroying window: %v", err)
		}
		return ResumeResult{}, curated.Errorf(SurfaceCreation, err)
	}

	s := &session{window: window, surface: surface}

	err = c.context.MakeCurrent(surface)
	if err != nil {
		s.destroy()
		return ResumeResult{}, curated.Errorf(MakeCurrent, err)
	}

	c.session = s
	c.state = Resumed

	err = surface.SetSwapInterval(c.context, c.vsync)
	if err != nil {
		logger.Logf(logger.Allow, "device", "vsync: %v", err)
	}

	var res ResumeResult
	if c.gl == nil {
		ca := c.context.Attributes()
		if ca.Legacy() {
			return ResumeResult{}, curated.Errorf(FunctionLoad,
				fmt.Errorf("%s context is too old", ca))
		}
		es := ca.API == platform.OpenGLES
		t, err := c.loader(es, c.display.GetProcAddress)
		if err != nil {
			return ResumeResult{}, curated.Errorf(FunctionLoad, err)
		}
		c.gl = gltable.NewHandle(t)
		c.probe = gltable.NewProbe(c.gl)
		logger.Logf(logger.Allow, "device", "vendor: %s", c.probe.Vendor)
		logger.Logf(logger.Allow, "device", "renderer: %s", c.probe.Renderer)
		logger.Logf(logger.Allow, "device", "version: %s", c.probe.Version)
		logger.Logf(logger.Allow, "device", "shading language: %s", c.probe.ShadingLanguage)
		res.Created = true
	}

	logger.Logf(logger.Allow, "device", "resumed (%dx%d)", w, h)

	return res, nil
}

// Suspend destroys the surface and window and makes the context not current.
// Does nothing if the controller is not resumed. The function table is kept.
func (c *Controller) Suspend() {
	c.thread.Check("suspend")

	if c.state != Resumed {
		return
	}

	c.session.destroy()
	c.session = nil

	if err := c.context.MakeNotCurrent(); err != nil {
		logger.Logf(logger.Allow, "device", "suspend: %v", err)
	}

	c.state = Suspended
	logger.Log(logger.Allow, "device", "suspended")
}

// Resize the surface. Does nothing if there is no surface or if either
// dimension is zero.
func (c *Controller) Resize(w int, h int) {
	c.thread.Check("resize")

	if c.session == nil || w <= 0 || h <= 0 {
		return
	}
	c.session.surface.Resize(w, h)
}

// RequestRedraw asks the window for a redraw. Does nothing if there is no
// window.
func (c *Controller) RequestRedraw() {
	c.thread.Check("request redraw")

	if c.session == nil {
		return
	}
	c.session.window.RequestRedraw()
}

// SwapBuffers requests a redraw of the window and presents the surface. Does
// nothing if there is no surface.
func (c *Controller) SwapBuffers() {
	c.thread.Check("swap buffers")

	if c.session == nil {
		return
	}
	c.session.window.RequestRedraw()
	if err := c.session.surface.SwapBuffers(c.context); err != nil {
		logger.Logf(logger.Allow, "device", "swap buffers: %v", err)
	}
}

// Exit tears down the controller. The root handle of the function table must
// be the only live handle, otherwise the LeakedResources error is returned and
// the controller is left unchanged.
//
// Calling Exit() more than once has no effect.
func (c *Controller) Exit() error {
	c.thread.Check("exit")

	if c.state == Exited {
		return nil
	}

	if c.gl != nil {
		if n := c.gl.Count(); n != 1 {
			return curated.Errorf(LeakedResources, n-1)
		}
		c.gl.Release()
		c.gl = nil
	}

	if c.session != nil {
		c.session.destroy()
		c.session = nil
	}

	if c.context != nil {
		if err := c.context.MakeNotCurrent(); err != nil {
			logger.Logf(logger.Allow, "device", "exit: %v", err)
		}
		if err := c.context.Destroy(); err != nil {
			logger.Logf(logger.Allow, "device", "exit: %v", err)
		}
		c.context = nil
	}

	if c.display != nil {
		// the EGL display must be terminated explicitly. some drivers crash
		// on exit otherwise
		if c.display.Backend() == platform.BackendEGL {
			if err := c.display.Terminate(); err != nil {
				logger.Logf(logger.Allow, "device", "exit: %v", err)
			}
		}
		c.display = nil
	}

	c.state = Exited
	logger.Log(logger.Allow, "device", "exited")

	return nil
}
