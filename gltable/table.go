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

package gltable

import "unsafe"

// Loader creates a Table for the context that is current on the calling
// thread. The es argument is true if the context is an OpenGL ES context.
type Loader func(es bool, getProcAddress func(name string) unsafe.Pointer) (Table, error)

// Table is the set of OpenGL entry points used by GameGL.
//
// Object names are returned and accepted as uint32. Data is passed as byte
// slices and an empty or nil slice means "no data". Offsets into bound
// buffers are byte offsets.
type Table interface {
	GetError() Enum
	GetString(name Enum) string

	Enable(capability Enum)
	Disable(capability Enum)
	CullFace(mode Enum)
	BlendFunc(sfactor Enum, dfactor Enum)
	DepthMask(flag bool)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	Clear(mask Enum)

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target Enum, buffer uint32)
	BindBufferBase(target Enum, index uint32, buffer uint32)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	GenVertexArray() uint32
	DeleteVertexArray(array uint32)
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)
	VertexAttribDivisor(index uint32, divisor uint32)

	GenTexture() uint32
	DeleteTexture(texture uint32)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	TexParameteri(target Enum, pname Enum, param int32)
	PixelStorei(pname Enum, param int32)
	TexImage3D(target Enum, level int32, internalFormat Enum, width, height, depth int32, format Enum, xtype Enum, data []byte)
	TexSubImage3D(target Enum, level int32, xoffset, yoffset, zoffset, width, height, depth int32, format Enum, xtype Enum, data []byte)
	GenerateMipmap(target Enum)

	CreateShader(xtype Enum) uint32
	DeleteShader(shader uint32)
	// the source must be terminated by a NUL byte
	ShaderSource(shader uint32, source []byte)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string

	CreateProgram() uint32
	DeleteProgram(program uint32)
	AttachShader(program uint32, shader uint32)
	DetachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	GetUniformBlockIndex(program uint32, name string) uint32
	UniformBlockBinding(program uint32, blockIndex uint32, binding uint32)
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)

	DrawArrays(mode Enum, first int32, count int32)
	DrawElements(mode Enum, count int32, xtype Enum, offset int)
	DrawElementsInstanced(mode Enum, count int32, xtype Enum, offset int, instances int32)
}
