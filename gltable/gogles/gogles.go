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

// Package gogles implements gltable.Table with the OpenGL ES binding from go-gl. It is
// used when the context is created with the ES API.
package gogles

import (
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/jetsetilly/gamegl/gltable"
)

// Load the GL entry points using the supplied function to find the address of
// each function. The context must be current when Load() is called.
//
// The go-gl binding stores the entry points in package level variables so
// there is only ever one set of functions per process.
func Load(getProcAddress func(name string) unsafe.Pointer) (gltable.Table, error) {
	err := gl.InitWithProcAddrFunc(getProcAddress)
	if err != nil {
		return nil, err
	}
	return &Table{}, nil
}

var _ gltable.Table = (*Table)(nil)

// Table implements the gltable.Table interface.
type Table struct{}

// pointer to the first element of data or nil if data is empty
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// GetError implements the gltable.Table interface.
func (_ *Table) GetError() gltable.Enum {
	return gl.GetError()
}

// GetString implements the gltable.Table interface.
func (_ *Table) GetString(name gltable.Enum) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

// Enable implements the gltable.Table interface.
func (_ *Table) Enable(capability gltable.Enum) {
	gl.Enable(capability)
}

// Disable implements the gltable.Table interface.
func (_ *Table) Disable(capability gltable.Enum) {
	gl.Disable(capability)
}

// CullFace implements the gltable.Table interface.
func (_ *Table) CullFace(mode gltable.Enum) {
	gl.CullFace(mode)
}

// BlendFunc implements the gltable.Table interface.
func (_ *Table) BlendFunc(sfactor gltable.Enum, dfactor gltable.Enum) {
	gl.BlendFunc(sfactor, dfactor)
}

// DepthMask implements the gltable.Table interface.
func (_ *Table) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

// Viewport implements the gltable.Table interface.
func (_ *Table) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// ClearColor implements the gltable.Table interface.
func (_ *Table) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// ClearDepth implements the gltable.Table interface.
func (_ *Table) ClearDepth(depth float32) {
	gl.ClearDepthf(depth)
}

// Clear implements the gltable.Table interface.
func (_ *Table) Clear(mask gltable.Enum) {
	gl.Clear(mask)
}

// GenBuffer implements the gltable.Table interface.
func (_ *Table) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

// DeleteBuffer implements the gltable.Table interface.
func (_ *Table) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// BindBuffer implements the gltable.Table interface.
func (_ *Table) BindBuffer(target gltable.Enum, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

// BindBufferBase implements the gltable.Table interface.
func (_ *Table) BindBufferBase(target gltable.Enum, index uint32, buffer uint32) {
	gl.BindBufferBase(target, index, buffer)
}

// BufferData implements the gltable.Table interface.
func (_ *Table) BufferData(target gltable.Enum, size int, data []byte, usage gltable.Enum) {
	gl.BufferData(target, size, ptr(data), usage)
}

// BufferSubData implements the gltable.Table interface.
func (_ *Table) BufferSubData(target gltable.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(target, offset, len(data), ptr(data))
}

// GenVertexArray implements the gltable.Table interface.
func (_ *Table) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

// DeleteVertexArray implements the gltable.Table interface.
func (_ *Table) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

// BindVertexArray implements the gltable.Table interface.
func (_ *Table) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

// EnableVertexAttribArray implements the gltable.Table interface.
func (_ *Table) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// DisableVertexAttribArray implements the gltable.Table interface.
func (_ *Table) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

// VertexAttribPointer implements the gltable.Table interface.
func (_ *Table) VertexAttribPointer(index uint32, size int32, xtype gltable.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

// VertexAttribDivisor implements the gltable.Table interface.
func (_ *Table) VertexAttribDivisor(index uint32, divisor uint32) {
	gl.VertexAttribDivisor(index, divisor)
}

// GenTexture implements the gltable.Table interface.
func (_ *Table) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

// DeleteTexture implements the gltable.Table interface.
func (_ *Table) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// ActiveTexture implements the gltable.Table interface.
func (_ *Table) ActiveTexture(unit gltable.Enum) {
	gl.ActiveTexture(unit)
}

// BindTexture implements the gltable.Table interface.
func (_ *Table) BindTexture(target gltable.Enum, texture uint32) {
	gl.BindTexture(target, texture)
}

// TexParameteri implements the gltable.Table interface.
func (_ *Table) TexParameteri(target gltable.Enum, pname gltable.Enum, param int32) {
	gl.TexParameteri(target, pname, param)
}

// TexImage3D implements the gltable.Table interface.
func (_ *Table) TexImage3D(target gltable.Enum, level int32, internalFormat gltable.Enum, width, height, depth int32, format gltable.Enum, xtype gltable.Enum, data []byte) {
	gl.TexImage3D(target, level, int32(internalFormat), width, height, depth, 0, format, xtype, ptr(data))
}

// PixelStorei implements the gltable.Table interface.
func (_ *Table) PixelStorei(pname gltable.Enum, param int32) {
	gl.PixelStorei(pname, param)
}

// TexSubImage3D implements the gltable.Table interface.
func (_ *Table) TexSubImage3D(target gltable.Enum, level int32, xoffset, yoffset, zoffset, width, height, depth int32, format gltable.Enum, xtype gltable.Enum, data []byte) {
	gl.TexSubImage3D(target, level, xoffset, yoffset, zoffset, width, height, depth, format, xtype, ptr(data))
}

// GenerateMipmap implements the gltable.Table interface.
func (_ *Table) GenerateMipmap(target gltable.Enum) {
	gl.GenerateMipmap(target)
}

// CreateShader implements the gltable.Table interface.
func (_ *Table) CreateShader(xtype gltable.Enum) uint32 {
	return gl.CreateShader(xtype)
}

// DeleteShader implements the gltable.Table interface.
func (_ *Table) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// ShaderSource implements the gltable.Table interface.
func (_ *Table) ShaderSource(shader uint32, source []byte) {
	csource, free := gl.Strs(string(source))
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

// CompileShader implements the gltable.Table interface.
func (_ *Table) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// GetShaderi implements the gltable.Table interface.
func (_ *Table) GetShaderi(shader uint32, pname gltable.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

// GetShaderInfoLog implements the gltable.Table interface.
func (t *Table) GetShaderInfoLog(shader uint32) string {
	logLength := t.GetShaderi(shader, gltable.INFO_LOG_LENGTH)
	if logLength <= 0 {
		return ""
	}

	// the log length includes the NUL character
	log := make([]byte, logLength)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

// CreateProgram implements the gltable.Table interface.
func (_ *Table) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// DeleteProgram implements the gltable.Table interface.
func (_ *Table) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// AttachShader implements the gltable.Table interface.
func (_ *Table) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

// DetachShader implements the gltable.Table interface.
func (_ *Table) DetachShader(program uint32, shader uint32) {
	gl.DetachShader(program, shader)
}

// LinkProgram implements the gltable.Table interface.
func (_ *Table) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// GetProgrami implements the gltable.Table interface.
func (_ *Table) GetProgrami(program uint32, pname gltable.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

// GetProgramInfoLog implements the gltable.Table interface.
func (t *Table) GetProgramInfoLog(program uint32) string {
	logLength := t.GetProgrami(program, gltable.INFO_LOG_LENGTH)
	if logLength <= 0 {
		return ""
	}

	// the log length includes the NUL character
	log := make([]byte, logLength)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

// UseProgram implements the gltable.Table interface.
func (_ *Table) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// GetUniformBlockIndex implements the gltable.Table interface.
func (_ *Table) GetUniformBlockIndex(program uint32, name string) uint32 {
	return gl.GetUniformBlockIndex(program, gl.Str(name+"\x00"))
}

// UniformBlockBinding implements the gltable.Table interface.
func (_ *Table) UniformBlockBinding(program uint32, blockIndex uint32, binding uint32) {
	gl.UniformBlockBinding(program, blockIndex, binding)
}

// GetUniformLocation implements the gltable.Table interface.
func (_ *Table) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform1i implements the gltable.Table interface.
func (_ *Table) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

// DrawArrays implements the gltable.Table interface.
func (_ *Table) DrawArrays(mode gltable.Enum, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

// DrawElements implements the gltable.Table interface.
func (_ *Table) DrawElements(mode gltable.Enum, count int32, xtype gltable.Enum, offset int) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(offset))
}

// DrawElementsInstanced implements the gltable.Table interface.
func (_ *Table) DrawElementsInstanced(mode gltable.Enum, count int32, xtype gltable.Enum, offset int, instances int32) {
	gl.DrawElementsInstanced(mode, count, xtype, gl.PtrOffset(offset), instances)
}
