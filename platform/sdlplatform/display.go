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

package sdlplatform

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
)

// Display implements the platform.Display interface.
type Display struct {
	backend platform.Backend
	mode    sdl.DisplayMode

	// the window most recently made current. used when making a context not
	// current because SDL requires a window for the operation
	current *sdl.Window

	// set by Window.RequestRedraw() and cleared by EventLoop.Wait()
	redraw bool

	terminated bool
}

// NewDisplay initialises SDL. The calling goroutine is locked to the OS
// thread.
func NewDisplay() (*Display, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	dsp := &Display{
		backend: platform.BackendSDL,
	}

	// SDL uses EGL on android and the display must be terminated explicitly
	if runtime.GOOS == "android" {
		dsp.backend = platform.BackendEGL
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	dsp.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "display mode: %dx%d (%dHz)", dsp.mode.W, dsp.mode.H, dsp.mode.RefreshRate)

	return dsp, nil
}

// Backend implements the platform.Display interface.
func (dsp *Display) Backend() platform.Backend {
	return dsp.backend
}

// Configs implements the platform.Display interface.
func (dsp *Display) Configs(template platform.Template) ([]platform.Config, error) {
	if dsp.terminated {
		return nil, fmt.Errorf("sdl: display terminated")
	}
	return candidates(template), nil
}

func setAttribute(attr sdl.GLattr, value int) error {
	err := sdl.GLSetAttribute(attr, value)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// CreateWindow implements the platform.Display interface.
func (dsp *Display) CreateWindow(attrs platform.WindowAttributes, cfg platform.Config) (platform.Window, error) {
	err := setAttribute(sdl.GL_DOUBLEBUFFER, 1)
	if err != nil {
		return nil, err
	}
	err = setAttribute(sdl.GL_ALPHA_SIZE, cfg.AlphaSize())
	if err != nil {
		return nil, err
	}

	var buffers int
	if cfg.NumSamples() > 0 {
		buffers = 1
	}
	err = setAttribute(sdl.GL_MULTISAMPLEBUFFERS, buffers)
	if err != nil {
		return nil, err
	}
	err = setAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.NumSamples())
	if err != nil {
		return nil, err
	}

	// default window size is a proportion of the display
	w, h := int32(attrs.Width), int32(attrs.Height)
	if w <= 0 || h <= 0 {
		w = int32(float32(dsp.mode.W) * 0.80)
		h = int32(float32(dsp.mode.H) * 0.80)
	}

	win, err := sdl.CreateWindow(attrs.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &Window{
		display: dsp,
		window:  win,
	}, nil
}

// CreateContext implements the platform.Display interface.
func (dsp *Display) CreateContext(cfg platform.Config, window platform.Window, attrs platform.ContextAttributes) (platform.Context, error) {
	win, ok := window.(*Window)
	if !ok || win.window == nil {
		return nil, fmt.Errorf("sdl: context requires a live sdl window")
	}

	var profile int
	var flags int
	switch {
	case attrs.API == platform.OpenGLES:
		profile = sdl.GL_CONTEXT_PROFILE_ES
	case attrs.Core:
		profile = sdl.GL_CONTEXT_PROFILE_CORE
		flags = sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG
	default:
		profile = sdl.GL_CONTEXT_PROFILE_COMPATIBILITY
	}

	err := setAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, attrs.Major)
	if err != nil {
		return nil, err
	}
	err = setAttribute(sdl.GL_CONTEXT_MINOR_VERSION, attrs.Minor)
	if err != nil {
		return nil, err
	}
	err = setAttribute(sdl.GL_CONTEXT_PROFILE_MASK, profile)
	if err != nil {
		return nil, err
	}
	err = setAttribute(sdl.GL_CONTEXT_FLAGS, flags)
	if err != nil {
		return nil, err
	}

	glContext, err := win.window.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("sdl: %s: %w", attrs, err)
	}

	// SDL makes the new context current. contexts are returned not current
	err = win.window.GLMakeCurrent(nil)
	if err != nil {
		sdl.GLDeleteContext(glContext)
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &Context{
		display:   dsp,
		glContext: glContext,
		attrs:     attrs,
	}, nil
}

// CreateSurface implements the platform.Display interface. The width and
// height are ignored because the surface is always the size of the window.
func (dsp *Display) CreateSurface(window platform.Window, cfg platform.Config, width int, height int) (platform.Surface, error) {
	win, ok := window.(*Window)
	if !ok || win.window == nil {
		return nil, fmt.Errorf("sdl: surface requires a live sdl window")
	}
	return &Surface{
		window: win,
	}, nil
}

// GetProcAddress implements the platform.Display interface.
func (dsp *Display) GetProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// Terminate implements the platform.Display interface. SDL is shut down and
// no other functions should be called afterwards. Calling Terminate() more
// than once has no effect.
func (dsp *Display) Terminate() error {
	if dsp.terminated {
		return nil
	}
	dsp.terminated = true
	sdl.GLUnloadLibrary()
	sdl.Quit()
	logger.Log(logger.Allow, "sdl", "terminated")
	return nil
}
