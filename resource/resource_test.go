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

package resource_test

import (
	"encoding/binary"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/gltable/recorder"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/resource"
	"github.com/jetsetilly/gamegl/test"
)

const vertSource = `#version 330 core
uniform Camera { mat4 proj; };
layout(location = 0) in vec2 position;
void main() {
	gl_Position = proj * vec4(position, 0.0, 1.0);
}
`

const fragSource = `#version 330 core
uniform sampler2DArray tex;
out vec4 colour;
void main() {
	colour = vec4(1.0);
}
`

// logged returns true if an entry with the tag contains the detail
func logged(tag string, detail string) bool {
	var found bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == tag && strings.Contains(e.Detail, detail) {
				found = true
			}
		}
	})
	return found
}

type vertex struct {
	X, Y float32
}

func TestVertexBuffer(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	vbo := resource.NewVertexBuffer(h, resource.DynamicDraw, []vertex{{0, 0}, {1, 0}, {0, 1}})
	test.ExpectEquality(t, h.Count(), 2)
	test.ExpectEquality(t, vbo.Count(), 3)
	test.ExpectEquality(t, vbo.MaxCount(), 3)
	test.ExpectEquality(t, len(rec.Buffers[vbo.ID()].Data), 24)
	test.ExpectEquality(t, rec.Buffers[vbo.ID()].Usage, gltable.DYNAMIC_DRAW)

	// smaller updates are allowed
	vbo.Update([]vertex{{2, 2}})
	test.ExpectEquality(t, vbo.Count(), 1)
	test.ExpectEquality(t, vbo.MaxCount(), 3)

	// but not larger than the initial data
	test.ExpectPanic(t, func() {
		vbo.Update(make([]vertex, 4))
	})

	test.ExpectEquality(t, rec.PendingErrors(), 0)
	test.ExpectEquality(t, rec.ArrayBuffer, uint32(0))

	vbo.Release()
	test.ExpectSuccess(t, vbo.Released())
	test.ExpectEquality(t, h.Count(), 1)
	test.ExpectEquality(t, rec.Live(), 0)

	// releasing more than once has no effect
	vbo.Release()
	test.ExpectEquality(t, h.Count(), 1)

	// use after release is a programming error
	test.ExpectPanic(t, func() {
		vbo.Bind()
	})
}

func TestIndexBuffer(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	vao := resource.NewVertexArray(h)
	vao.Bind()
	ibo := resource.NewIndexBuffer(h, resource.StaticDraw, []uint32{0, 1, 2, 2, 3, 0})
	test.ExpectEquality(t, rec.VertexArrays[vao.ID()].ElementBuffer, ibo.ID())
	test.ExpectEquality(t, ibo.MaxCount(), 6)

	ibo.Update([]uint32{0, 1, 2})
	test.ExpectEquality(t, ibo.Count(), 3)
	test.ExpectPanic(t, func() {
		ibo.Update(make([]uint32, 7))
	})
	test.ExpectEquality(t, rec.PendingErrors(), 0)

	ibo.Release()
	vao.Release()
	test.ExpectEquality(t, h.Count(), 1)
	test.ExpectEquality(t, rec.Live(), 0)
}

func TestVertexArray(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	vbo := resource.NewVertexBuffer(h, resource.StaticDraw, []vertex{{0, 0}, {1, 1}})
	vao := resource.NewVertexArray(h)
	vao.Bind()
	test.ExpectEquality(t, rec.BoundVAO, vao.ID())

	vao.BindAttrib(vbo, 0, resource.Attrib{Count: 2, Type: gltable.FLOAT, Stride: 8})
	vao.BindAttrib(vbo, 5, resource.Attrib{Count: 1, Type: gltable.FLOAT, Offset: 4, Stride: 8, Divisor: 1})
	test.ExpectEquality(t, rec.PendingErrors(), 0)
	test.ExpectEquality(t, rec.ArrayBuffer, uint32(0))

	state := rec.VertexArrays[vao.ID()]
	test.ExpectSuccess(t, state.Attribs[0].Enabled)
	test.ExpectEquality(t, state.Attribs[0].Buffer, vbo.ID())
	test.ExpectEquality(t, state.Attribs[0].Size, int32(2))
	test.ExpectSuccess(t, state.Attribs[5].Enabled)
	test.ExpectEquality(t, state.Attribs[5].Offset, 4)
	test.ExpectEquality(t, state.Attribs[5].Divisor, uint32(1))
	test.ExpectSuccess(t, vao.AttribActive(5))
	test.ExpectFailure(t, vao.AttribActive(1))

	// a slot cannot be enabled twice and must be in range
	test.ExpectPanic(t, func() {
		vao.BindAttrib(vbo, 0, resource.Attrib{Count: 2, Type: gltable.FLOAT})
	})
	test.ExpectPanic(t, func() {
		vao.BindAttrib(vbo, resource.MaxSlots, resource.Attrib{Count: 2, Type: gltable.FLOAT})
	})

	// clearing disables exactly the slots that were enabled
	vao.ClearAttribs()
	test.ExpectFailure(t, state.Attribs[0].Enabled)
	test.ExpectFailure(t, state.Attribs[5].Enabled)
	test.ExpectEquality(t, state.Attribs[5].Divisor, uint32(0))
	test.ExpectEquality(t, rec.Called("DisableVertexAttribArray"), 2)
	test.ExpectFailure(t, vao.AttribActive(5))

	// and the slots can be used again
	vao.BindAttrib(vbo, 0, resource.Attrib{Count: 2, Type: gltable.FLOAT, Stride: 8})
	vao.ClearAttribs()

	vao.Unbind()
	test.ExpectEquality(t, rec.BoundVAO, uint32(0))

	vao.Release()
	vbo.Release()
	test.ExpectEquality(t, h.Count(), 1)
	test.ExpectEquality(t, rec.Live(), 0)
}

type camera struct {
	Proj [16]float32
}

func TestUniformBuffer(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	cam := camera{}
	cam.Proj[0] = 1.0
	ubo := resource.NewUniformBuffer(h, resource.DynamicDraw, &cam)
	test.ExpectEquality(t, len(rec.Buffers[ubo.ID()].Data), 64)

	ubo.Bind(0)
	ubo.Bind(3)
	test.ExpectEquality(t, rec.UniformBindings[0], ubo.ID())
	test.ExpectEquality(t, rec.UniformBindings[3], ubo.ID())
	test.ExpectSuccess(t, ubo.Bound(3))
	test.ExpectPanic(t, func() {
		ubo.Bind(3)
	})

	cam.Proj[15] = 2.0
	ubo.Update(&cam)
	test.ExpectEquality(t, rec.PendingErrors(), 0)
	test.ExpectEquality(t, rec.UniformBuffer, uint32(0))

	ubo.Unbind()
	test.ExpectEquality(t, rec.UniformBindings[0], uint32(0))
	test.ExpectEquality(t, rec.UniformBindings[3], uint32(0))
	test.ExpectFailure(t, ubo.Bound(3))

	ubo.Release()
	test.ExpectEquality(t, h.Count(), 1)
}

func TestUniformBufferEmpty(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	// storage is allocated without initial data
	ubo := resource.NewUniformBuffer[camera](h, resource.DynamicDraw, nil)
	test.ExpectEquality(t, rec.PendingErrors(), 0)
	test.ExpectEquality(t, len(rec.Buffers[ubo.ID()].Data), 64)

	cam := camera{}
	cam.Proj[0] = 1.0
	ubo.Update(&cam)
	test.ExpectEquality(t, rec.PendingErrors(), 0)
	test.ExpectInequality(t, rec.Buffers[ubo.ID()].Data[3], byte(0))

	ubo.Release()
	test.ExpectEquality(t, h.Count(), 1)
}

func TestTexture(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	images := make([]resource.Pixels, 3)
	for i := range images {
		images[i] = resource.Pixels{
			Layout: resource.RGBA8,
			Width:  64,
			Height: 64,
			Data:   make([]byte, 64*64*4),
		}
		images[i].Data[0] = byte(i + 1)
	}

	tex := resource.NewTexture(h, images)
	test.ExpectEquality(t, rec.PendingErrors(), 0)
	test.ExpectEquality(t, rec.Called("GenTexture"), 1)
	test.ExpectEquality(t, tex.Layers(), 3)
	test.ExpectEquality(t, tex.Levels(), 7)

	state := rec.Textures[tex.ID()]
	test.ExpectEquality(t, state.Target, gltable.TEXTURE_2D_ARRAY)
	test.ExpectEquality(t, len(state.Levels), 7)
	test.ExpectEquality(t, state.Levels[0].Depth, int32(3))
	test.ExpectEquality(t, state.Levels[0].InternalFormat, gltable.RGBA8)
	test.ExpectEquality(t, state.Levels[6].Width, int32(1))
	test.ExpectEquality(t, len(state.Layers), 3)
	test.ExpectEquality(t, state.Layers[2][0], byte(3))
	test.ExpectSuccess(t, state.MipmapsGenerated)
	test.ExpectEquality(t, state.Params[gltable.TEXTURE_MIN_FILTER], int32(gltable.LINEAR))
	test.ExpectEquality(t, state.Params[gltable.TEXTURE_WRAP_S], int32(gltable.CLAMP_TO_EDGE))
	test.ExpectEquality(t, state.Params[gltable.TEXTURE_MAX_LEVEL], int32(6))

	// texture construction leaves no texture bound
	test.ExpectEquality(t, rec.TextureUnits[0], uint32(0))

	tex.Bind(2)
	test.ExpectEquality(t, rec.TextureUnits[2], tex.ID())
	test.ExpectPanic(t, func() {
		tex.Bind(2)
	})
	tex.Unbind()
	test.ExpectEquality(t, rec.TextureUnits[2], uint32(0))
	test.ExpectFailure(t, tex.Bound(2))

	tex.Release()
	test.ExpectEquality(t, h.Count(), 1)
	test.ExpectEquality(t, rec.Live(), 0)
}

func TestTextureOddWidth(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	for _, layout := range []resource.Layout{resource.Gray8, resource.RGB8, resource.RGB16} {
		p := resource.Pixels{
			Layout: layout,
			Width:  5,
			Height: 5,
			Data:   make([]byte, 5*5*layout.BytesPerPixel()),
		}
		p.Data[len(p.Data)-1] = 0xff

		tex := resource.NewTexture(h, []resource.Pixels{p})
		test.ExpectEquality(t, rec.PendingErrors(), 0, layout)
		test.ExpectEquality(t, rec.UnpackAlignment, int32(1), layout)

		layer := rec.Textures[tex.ID()].Layers[0]
		test.ExpectEquality(t, len(layer), len(p.Data), layout)
		test.ExpectEquality(t, layer[len(layer)-1], byte(0xff), layout)
		tex.Release()
	}
}

func TestTextureMismatch(t *testing.T) {
	h := gltable.NewHandle(recorder.NewRecorder())

	test.ExpectPanic(t, func() {
		resource.NewTexture(h, nil)
	})

	a := resource.Pixels{Layout: resource.Gray8, Width: 4, Height: 4, Data: make([]byte, 16)}
	b := resource.Pixels{Layout: resource.Gray8, Width: 4, Height: 2, Data: make([]byte, 8)}
	test.ExpectPanic(t, func() {
		resource.NewTexture(h, []resource.Pixels{a, b})
	})

	// data does not match the dimensions
	c := resource.Pixels{Layout: resource.RGB8, Width: 4, Height: 4, Data: make([]byte, 16)}
	test.ExpectPanic(t, func() {
		resource.NewTexture(h, []resource.Pixels{c})
	})

	// no resources remain after the failures
	test.ExpectEquality(t, h.Count(), 1)
}

func TestTextureFormats(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	for _, tc := range []struct {
		layout   resource.Layout
		format   gltable.Enum
		xtype    gltable.Enum
		internal gltable.Enum
	}{
		{resource.Gray8, gltable.RED, gltable.UNSIGNED_BYTE, gltable.R8},
		{resource.RGB8, gltable.RGB, gltable.UNSIGNED_BYTE, gltable.RGB8},
		{resource.RGB16, gltable.RGB, gltable.UNSIGNED_SHORT, gltable.RGBA16F},
		{resource.RGBA8, gltable.RGBA, gltable.UNSIGNED_BYTE, gltable.RGBA8},
		{resource.RGBA16, gltable.RGBA, gltable.UNSIGNED_SHORT, gltable.RGBA16F},
	} {
		p := resource.Pixels{
			Layout: tc.layout,
			Width:  8,
			Height: 4,
			Data:   make([]byte, 8*4*tc.layout.BytesPerPixel()),
		}
		tex := resource.NewTexture(h, []resource.Pixels{p})
		l := rec.Textures[tex.ID()].Levels[0]
		test.ExpectEquality(t, l.Format, tc.format, tc.layout)
		test.ExpectEquality(t, l.Type, tc.xtype, tc.layout)
		test.ExpectEquality(t, l.InternalFormat, tc.internal, tc.layout)
		test.ExpectEquality(t, tex.Levels(), 3, tc.layout)
		tex.Release()
	}

	test.ExpectEquality(t, rec.PendingErrors(), 0)
}

func TestPixelsFromImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(2, 1, color.Gray{Y: 200})
	p := resource.PixelsFromImage(gray)
	test.ExpectEquality(t, p.Layout, resource.Gray8)
	test.ExpectSuccess(t, p.Valid())
	test.ExpectEquality(t, p.Data[5], byte(200))

	// subimages are packed tightly
	p = resource.PixelsFromImage(gray.SubImage(image.Rect(1, 1, 3, 2)))
	test.ExpectEquality(t, p.Width, 2)
	test.ExpectEquality(t, len(p.Data), 2)
	test.ExpectEquality(t, p.Data[1], byte(200))

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	p = resource.PixelsFromImage(rgba)
	test.ExpectEquality(t, p.Layout, resource.RGBA8)
	test.ExpectSuccess(t, p.Valid())
	test.ExpectEquality(t, p.Data[4], byte(10))
	test.ExpectEquality(t, p.Data[7], byte(255))

	deep := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	deep.SetNRGBA64(0, 0, color.NRGBA64{R: 0x1234, A: 0xffff})
	p = resource.PixelsFromImage(deep)
	test.ExpectEquality(t, p.Layout, resource.RGBA16)
	test.ExpectSuccess(t, p.Valid())

	// little-endian
	test.ExpectEquality(t, p.Data[0], byte(0x34))
	test.ExpectEquality(t, p.Data[1], byte(0x12))
}

func TestPixelsFromImageTranslucent(t *testing.T) {
	// the same half transparent red at both depths
	shallow := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	shallow.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0x80})
	p := resource.PixelsFromImage(shallow)
	test.ExpectEquality(t, p.Layout, resource.RGBA8)
	test.ExpectEquality(t, p.Data[0], byte(0xff))
	test.ExpectEquality(t, p.Data[3], byte(0x80))

	deep := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	deep.SetNRGBA64(0, 0, color.NRGBA64{R: 0xffff, A: 0x8000})
	p = resource.PixelsFromImage(deep)
	test.ExpectEquality(t, p.Layout, resource.RGBA16)
	test.ExpectEquality(t, binary.LittleEndian.Uint16(p.Data[0:]), uint16(0xffff))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(p.Data[6:]), uint16(0x8000))

	// premultiplied sources are converted
	pre := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	pre.SetRGBA64(0, 0, color.RGBA64{R: 0x8000, A: 0x8000})
	p = resource.PixelsFromImage(pre)
	test.ExpectEquality(t, binary.LittleEndian.Uint16(p.Data[0:]), uint16(0xffff))
}

func TestShader(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	sh := resource.NewShader(h, []byte(vertSource), []byte(fragSource))
	test.ExpectSuccess(t, sh.Compiled())
	test.ExpectSuccess(t, sh.Linked())
	test.ExpectEquality(t, h.Count(), 2)

	sh.Bind()
	test.ExpectEquality(t, rec.CurrentProgram, sh.ID())

	sh.LinkUniform(4, "Camera")
	test.ExpectEquality(t, rec.Programs[sh.ID()].Bindings[0], uint32(4))

	sh.LinkTexture(2, "tex")
	test.ExpectEquality(t, rec.Programs[sh.ID()].Values[0], int32(2))

	// names are looked up once
	sh.LinkTexture(1, "tex")
	test.ExpectEquality(t, rec.Called("GetUniformLocation"), 1)

	// unknown names are logged and ignored
	logger.Clear()
	sh.LinkUniform(0, "Lights")
	test.ExpectSuccess(t, logged("shader", "no uniform block named Lights"))
	sh.LinkTexture(0, "normals")
	test.ExpectSuccess(t, logged("shader", "no sampler named normals"))

	sh.DrawElementsInstanced(gltable.TRIANGLES, 6, 10)
	sh.DrawArrays(gltable.TRIANGLES, 0, 3)
	test.ExpectEquality(t, len(rec.Draws), 2)
	test.ExpectEquality(t, rec.Draws[0].Type, gltable.UNSIGNED_INT)
	test.ExpectEquality(t, rec.Draws[0].Instances, int32(10))
	test.ExpectEquality(t, rec.Draws[1].Indexed, false)
	test.ExpectEquality(t, rec.PendingErrors(), 0)

	sh.Unbind()
	test.ExpectEquality(t, rec.CurrentProgram, uint32(0))

	sh.Release()
	test.ExpectEquality(t, h.Count(), 1)
	test.ExpectEquality(t, rec.Live(), 0)
	test.ExpectEquality(t, rec.Called("DetachShader"), 2)
}

func TestShaderCompileFailure(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)
	logger.Clear()

	sh := resource.NewShader(h, []byte(vertSource), []byte("void mian() {}"))
	test.ExpectFailure(t, sh.Compiled())
	test.ExpectFailure(t, sh.Linked())
	test.ExpectSuccess(t, logged("shader", "fragment shader failed to compile"))
	test.ExpectSuccess(t, logged("shader", "link failed"))

	// binding is still possible but the driver refuses the program
	sh.Bind()
	test.ExpectEquality(t, rec.CurrentProgram, uint32(0))

	sh.Release()
	test.ExpectEquality(t, h.Count(), 1)
	test.ExpectEquality(t, rec.Live(), 0)
}

func TestShaderSourceTruncation(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	// everything after an interior NUL is ignored
	frag := []byte("void main() {}\x00this is not glsl")
	sh := resource.NewShader(h, []byte(vertSource), frag)
	test.ExpectSuccess(t, sh.Linked())

	var found bool
	for _, s := range rec.Shaders {
		if s.Source == "void main() {}" {
			found = true
		}
	}
	test.ExpectSuccess(t, found)

	// the caller's slice is not modified
	test.ExpectEquality(t, len(frag), 31)

	sh.Release()
}
