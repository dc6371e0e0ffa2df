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

package resource

import (
	"github.com/jetsetilly/gamegl/gltable"
)

// ArrayBuffer is implemented by buffers that can be the source of vertex
// attributes. All VertexBuffer types implement this interface.
type ArrayBuffer interface {
	arrayBuffer() uint32
}

// Attrib describes the layout of a single vertex attribute in an
// ArrayBuffer.
type Attrib struct {
	// number of components. between one and four
	Count int32

	// type of each component. for example, gltable.FLOAT
	Type gltable.Enum

	Normalized bool

	// offset of the first component in bytes from the start of the vertex,
	// and the distance in bytes between consecutive vertices
	Offset int
	Stride int

	// zero for per-vertex attributes. a non-zero divisor makes the attribute
	// advance once per divisor instances
	Divisor uint32
}

// VertexArray wraps a vertex array object.
type VertexArray struct {
	object
	attribs slots
}

// NewVertexArray creates a new vertex array object.
func NewVertexArray(h *gltable.Handle) *VertexArray {
	vao := &VertexArray{
		object: newObject(h, "vertex array", func(t gltable.Table) uint32 {
			return t.GenVertexArray()
		}),
	}
	detectLeak(vao)
	return vao
}

// Bind the vertex array.
func (vao *VertexArray) Bind() {
	gl := vao.live()
	gl.BindVertexArray(vao.id)
	vao.check("bind")
}

// Unbind the vertex array.
func (vao *VertexArray) Unbind() {
	gl := vao.live()
	gl.BindVertexArray(0)
	vao.check("unbind")
}

// BindAttrib enables the attribute slot, sourcing data from the buffer with
// the supplied layout. The vertex array must be bound.
func (vao *VertexArray) BindAttrib(buffer ArrayBuffer, slot uint32, attrib Attrib) {
	gl := vao.live()
	vao.attribs.acquire(slot, "attribute")

	gl.BindBuffer(gltable.ARRAY_BUFFER, buffer.arrayBuffer())
	vao.check("bind vertex buffer")
	gl.VertexAttribPointer(slot, attrib.Count, attrib.Type, attrib.Normalized, int32(attrib.Stride), attrib.Offset)
	vao.check("vertex attrib pointer")
	gl.VertexAttribDivisor(slot, attrib.Divisor)
	vao.check("vertex attrib divisor")
	gl.EnableVertexAttribArray(slot)
	vao.check("enable vertex attrib")
	gl.BindBuffer(gltable.ARRAY_BUFFER, 0)
}

// ClearAttribs disables every attribute slot enabled by BindAttrib(). The
// vertex array must be bound.
func (vao *VertexArray) ClearAttribs() {
	gl := vao.live()
	vao.attribs.release(func(slot uint32) {
		gl.VertexAttribDivisor(slot, 0)
		gl.DisableVertexAttribArray(slot)
		vao.check("clear attrib")
	})
}

// AttribActive returns true if the attribute slot has been enabled by
// BindAttrib() and not yet cleared.
func (vao *VertexArray) AttribActive(slot uint32) bool {
	return vao.attribs.active(slot)
}

// Release implements the Resource interface.
func (vao *VertexArray) Release() {
	vao.release(func(t gltable.Table) {
		t.DeleteVertexArray(vao.id)
	})
}
