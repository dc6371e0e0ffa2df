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

package example

import (
	"math"
	"unsafe"

	"github.com/jetsetilly/gamegl/example/shaders"
	"github.com/jetsetilly/gamegl/gameloop"
	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/graphics"
	"github.com/jetsetilly/gamegl/input"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/resource"
	"github.com/jetsetilly/gamegl/version"
)

// TextureAsset is the name of the asset used for the quad texture.
const TextureAsset = "example.png"

// size of the font texture glyphs
const fontSize = 32

// position and texture coordinate
type vertex [4]float32

var quad = []vertex{
	{-0.5, -0.5, 0.0, 1.0},
	{-0.5, 0.5, 0.0, 0.0},
	{0.5, -0.5, 1.0, 1.0},
	{0.5, 0.5, 1.0, 0.0},
}

// std140 layout of the Settings uniform block
type settings struct {
	Colour [4]float32
	Layer  [4]float32
}

// number of seconds each layer of the texture is shown for
const layerPeriod = 0.5

// Example implements the gameloop.Runner interface.
type Example struct {
	ctx *gameloop.GameContext
	gfx graphics.Graphics

	vao     *resource.VertexArray
	vbo     *resource.VertexBuffer[vertex]
	ibo     *resource.IndexBuffer
	ubo     *resource.UniformBuffer[settings]
	texture *resource.Texture
	shader  *resource.Shader

	settings settings
	time     float64

	// counts of callbacks. useful for headless runs
	Frames  int
	Updates int
	Devices int
}

// NewExample is the preferred method of initialisation for the Example type.
func NewExample() *Example {
	return &Example{
		settings: settings{
			Colour: [4]float32{0.5, 0.9, 0.9, 1.0},
		},
	}
}

// Title implements the gameloop.Runner interface.
func (ex *Example) Title() string {
	return version.String()
}

// Init implements the gameloop.Runner interface.
func (ex *Example) Init(ctx *gameloop.GameContext) {
	logger.Log(logger.Allow, "example", "init")
	ex.ctx = ctx
}

// Cleanup implements the gameloop.Runner interface.
func (ex *Example) Cleanup() {
	logger.Log(logger.Allow, "example", "cleanup")
	ex.ctx = nil
}

// Input implements the gameloop.Runner interface.
func (ex *Example) Input(events []input.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case input.Key:
			if ev.Name == "Escape" && !ev.Pressed && ex.ctx != nil {
				ex.ctx.Exit()
			}
		case input.CursorMoved:
			// too many to log
		default:
			logger.Log(logger.Allow, "example", ev)
		}
	}
}

// Update implements the gameloop.Runner interface.
func (ex *Example) Update(elapsed float32) {
	ex.Updates++
	ex.time += float64(elapsed)

	if ex.texture == nil {
		return
	}

	layer := math.Mod(math.Floor(ex.time/layerPeriod), float64(ex.texture.Layers()))
	if float32(layer) != ex.settings.Layer[0] {
		ex.settings.Layer[0] = float32(layer)
		ex.ubo.Update(&ex.settings)
	}
}

// Render implements the gameloop.Runner interface.
func (ex *Example) Render(gl *gltable.Handle) {
	ex.Frames++
	ex.gfx.Clear()

	if ex.shader == nil {
		return
	}

	ex.vao.Bind()
	ex.ibo.Bind()
	ex.texture.Bind(1)
	ex.ubo.Bind(1)

	ex.shader.Bind()
	ex.shader.LinkTexture(1, "t_Sampler")
	ex.shader.LinkUniform(1, "Settings")
	ex.shader.DrawElements(gltable.TRIANGLE_STRIP, ex.ibo.Count())
	ex.shader.Unbind()

	ex.ubo.Unbind()
	ex.texture.Unbind()
	ex.ibo.Unbind()
	ex.vao.Unbind()
}

func (ex *Example) createTexture() *resource.Texture {
	if ex.ctx != nil && ex.ctx.Assets() != nil {
		tex, err := ex.gfx.CreateTextureFromAssets(ex.ctx.Assets(), TextureAsset)
		if err == nil {
			return tex
		}
		logger.Logf(logger.Allow, "example", "using font texture: %v", err)
	}

	tex, err := ex.gfx.CreateFontTexture(nil, fontSize)
	if err != nil {
		// the default font is always available
		panic(err)
	}
	return tex
}

// CreateDevice implements the gameloop.Runner interface.
func (ex *Example) CreateDevice(gl *gltable.Handle) {
	ex.Devices++
	probe := gltable.NewProbe(gl)
	logger.Logf(logger.Allow, "example", "create device: %s", probe)

	ex.gfx.Create(gl)

	// the index buffer is part of the vertex array state
	ex.vao = resource.NewVertexArray(gl)
	ex.vao.Bind()
	ex.vbo = resource.NewVertexBuffer(gl, resource.StaticDraw, quad)
	ex.ibo = resource.NewIndexBuffer(gl, resource.StaticDraw, []uint32{0, 1, 2, 3})
	ex.ubo = resource.NewUniformBuffer(gl, resource.DynamicDraw, &ex.settings)
	ex.texture = ex.createTexture()

	ex.shader = resource.NewShader(gl,
		shaders.Source(probe.ES(), shaders.QuadVertexShader),
		shaders.Source(probe.ES(), shaders.QuadFragmentShader),
	)

	stride := int(unsafe.Sizeof(vertex{}))
	ex.vao.BindAttrib(ex.vbo, 0, resource.Attrib{Count: 2, Type: gltable.FLOAT, Stride: stride})
	ex.vao.BindAttrib(ex.vbo, 1, resource.Attrib{Count: 2, Type: gltable.FLOAT, Offset: 2 * 4, Stride: stride})
	ex.vao.Unbind()
}

// DestroyDevice implements the gameloop.Runner interface.
func (ex *Example) DestroyDevice(gl *gltable.Handle) {
	logger.Log(logger.Allow, "example", "destroy device")

	for _, r := range []resource.Resource{ex.vao, ex.vbo, ex.ibo, ex.ubo, ex.texture, ex.shader} {
		r.Release()
	}
	ex.vao = nil
	ex.vbo = nil
	ex.ibo = nil
	ex.ubo = nil
	ex.texture = nil
	ex.shader = nil

	ex.gfx.Destroy()
}

// ResizeDevice implements the gameloop.Runner interface.
func (ex *Example) ResizeDevice(gl *gltable.Handle, width int, height int) {
	ex.gfx.Resize(width, height)
}
