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

	"github.com/jetsetilly/gamegl/platform"
)

// Context implements the platform.Context interface.
type Context struct {
	display   *Display
	glContext sdl.GLContext
	attrs     platform.ContextAttributes
}

// Attributes implements the platform.Context interface.
func (ctx *Context) Attributes() platform.ContextAttributes {
	return ctx.attrs
}

// MakeCurrent implements the platform.Context interface.
func (ctx *Context) MakeCurrent(surface platform.Surface) error {
	srf, ok := surface.(*Surface)
	if !ok || srf.window.window == nil {
		return fmt.Errorf("sdl: make current requires a live sdl surface")
	}
	if ctx.glContext == nil {
		return fmt.Errorf("sdl: context has been destroyed")
	}
	err := srf.window.window.GLMakeCurrent(ctx.glContext)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	ctx.display.current = srf.window.window
	return nil
}

// MakeNotCurrent implements the platform.Context interface.
func (ctx *Context) MakeNotCurrent() error {
	if !ctx.IsCurrent() {
		return nil
	}

	// a nil window is acceptable to SDL when the context is nil
	err := ctx.display.current.GLMakeCurrent(nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	ctx.display.current = nil
	return nil
}

// IsCurrent implements the platform.Context interface.
func (ctx *Context) IsCurrent() bool {
	return ctx.glContext != nil && sdl.GLGetCurrentContext() == ctx.glContext
}

// Destroy implements the platform.Context interface.
func (ctx *Context) Destroy() error {
	if ctx.glContext == nil {
		return nil
	}
	if err := ctx.MakeNotCurrent(); err != nil {
		return err
	}
	sdl.GLDeleteContext(ctx.glContext)
	ctx.glContext = nil
	return nil
}
