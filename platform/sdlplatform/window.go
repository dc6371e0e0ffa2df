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

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
)

// list of swap interval values expected by the SDL.GLSetSwapInterval()
// function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
	syncAdaptive            = -1
)

// Window implements the platform.Window interface.
type Window struct {
	display *Display
	window  *sdl.Window
}

// Size implements the platform.Window interface. The size is in pixels and
// may differ from the size requested on high DPI displays.
func (win *Window) Size() (int, int) {
	if win.window == nil {
		return 0, 0
	}
	w, h := win.window.GLGetDrawableSize()
	return int(w), int(h)
}

// RequestRedraw implements the platform.Window interface.
func (win *Window) RequestRedraw() {
	if win.window != nil {
		win.display.redraw = true
	}
}

// Destroy implements the platform.Window interface.
func (win *Window) Destroy() error {
	if win.window == nil {
		return nil
	}
	if win.display.current == win.window {
		win.display.current = nil
	}
	err := win.window.Destroy()
	win.window = nil
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Surface implements the platform.Surface interface.
type Surface struct {
	window *Window
}

// Size implements the platform.Surface interface.
func (srf *Surface) Size() (int, int) {
	return srf.window.Size()
}

// Resize implements the platform.Surface interface. SDL tracks the size of the
// window so there is nothing to do.
func (srf *Surface) Resize(width int, height int) {
}

func (srf *Surface) currentWith(context platform.Context) error {
	ctx, ok := context.(*Context)
	if !ok || !ctx.IsCurrent() || srf.window.window == nil {
		return fmt.Errorf("sdl: context is not current on the surface")
	}
	return nil
}

// SetSwapInterval implements the platform.Surface interface. Adaptive vsync is
// tried first and regular vsync used if it is not available.
func (srf *Surface) SetSwapInterval(context platform.Context, vsync bool) error {
	err := srf.currentWith(context)
	if err != nil {
		return err
	}

	if !vsync {
		err = sdl.GLSetSwapInterval(syncImmediateUpdate)
		if err != nil {
			return fmt.Errorf("sdl: GLSetSwapInterval(%d): %w", syncImmediateUpdate, err)
		}
		return nil
	}

	err = sdl.GLSetSwapInterval(syncAdaptive)
	if err == nil {
		return nil
	}
	logger.Logf(logger.Allow, "sdl", "adaptive vsync not available: %v", err)

	err = sdl.GLSetSwapInterval(syncWithVerticalRetrace)
	if err != nil {
		return fmt.Errorf("sdl: GLSetSwapInterval(%d): %w", syncWithVerticalRetrace, err)
	}
	return nil
}

// SwapBuffers implements the platform.Surface interface.
func (srf *Surface) SwapBuffers(context platform.Context) error {
	err := srf.currentWith(context)
	if err != nil {
		return err
	}
	srf.window.window.GLSwap()
	return nil
}

// Destroy implements the platform.Surface interface. The window is not
// destroyed.
func (srf *Surface) Destroy() error {
	return nil
}
