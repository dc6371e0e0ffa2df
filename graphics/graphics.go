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

package graphics

import (
	"github.com/jetsetilly/gamegl/curated"
	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/logger"
)

// the colour used by Clear()
var clearColor = [4]float32{1.0, 0.2, 0.3, 1.0}

// Graphics tracks the device and the size of the surface. The zero value is
// ready to use but every function other than Create() will do nothing or
// return the NoDevice error until Create() is called.
type Graphics struct {
	gl     *gltable.Handle
	width  int
	height int
}

// Create sets the default GL state and keeps a clone of the handle. Should be
// called from Runner.CreateDevice().
func (g *Graphics) Create(h *gltable.Handle) {
	if g.gl != nil {
		g.gl.Release()
	}
	g.gl = h.Clone()

	t := g.gl

	t.Enable(gltable.CULL_FACE)
	t.CullFace(gltable.BACK)

	t.Enable(gltable.BLEND)
	t.BlendFunc(gltable.SRC_ALPHA, gltable.ONE_MINUS_SRC_ALPHA)

	t.Disable(gltable.DEPTH_TEST)
	t.DepthMask(false)

	gltable.CheckError(t, "graphics", "create")
}

// Destroy releases the handle kept by Create(). Should be called from
// Runner.DestroyDevice().
func (g *Graphics) Destroy() {
	if g.gl == nil {
		return
	}
	g.gl.Release()
	g.gl = nil
}

// Resize the viewport to cover the surface. Should be called from
// Runner.ResizeDevice().
func (g *Graphics) Resize(width int, height int) {
	g.width = width
	g.height = height
	logger.Logf(logger.Allow, "graphics", "resize: %dx%d", width, height)

	if g.gl == nil {
		return
	}
	g.gl.Viewport(0, 0, int32(width), int32(height))
}

// Resolution returns the size given to the most recent call to Resize().
func (g *Graphics) Resolution() (int, int) {
	return g.width, g.height
}

// Clear the colour and depth buffers.
func (g *Graphics) Clear() {
	if g.gl == nil {
		return
	}
	t := g.gl
	t.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	t.ClearDepth(1.0)
	t.Clear(gltable.COLOR_BUFFER_BIT | gltable.DEPTH_BUFFER_BIT)
}

// ClearDepth clears the depth buffer only.
func (g *Graphics) ClearDepth() {
	if g.gl == nil {
		return
	}
	t := g.gl
	t.ClearDepth(1.0)
	t.Clear(gltable.DEPTH_BUFFER_BIT)
}

func (g *Graphics) handle() (*gltable.Handle, error) {
	if g.gl == nil {
		return nil, curated.Errorf(NoDevice)
	}
	return g.gl, nil
}
