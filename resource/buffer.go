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
	"fmt"

	"github.com/jetsetilly/gamegl/gltable"
)

// VertexBuffer wraps a buffer object holding vertices of type T. T must be a
// plain value type with no pointers, with a memory layout matching the
// attributes it is bound with.
//
// The capacity of the buffer is fixed by the number of vertices it is
// created with.
type VertexBuffer[T any] struct {
	object
	count    int
	maxCount int
}

// NewVertexBuffer creates a new vertex buffer with the initial data. The
// number of vertices in the initial data is the capacity of the buffer.
func NewVertexBuffer[T any](h *gltable.Handle, usage Usage, data []T) *VertexBuffer[T] {
	vbo := &VertexBuffer[T]{
		object: newObject(h, "vertex buffer", func(t gltable.Table) uint32 {
			return t.GenBuffer()
		}),
		count:    len(data),
		maxCount: len(data),
	}

	vbo.gl.BindBuffer(gltable.ARRAY_BUFFER, vbo.id)
	vbo.gl.BufferData(gltable.ARRAY_BUFFER, len(data)*sizeOf[T](), bytesOf(data), usage.enum())
	vbo.gl.BindBuffer(gltable.ARRAY_BUFFER, 0)
	vbo.check("buffer data")

	detectLeak(vbo)
	return vbo
}

func (vbo *VertexBuffer[T]) arrayBuffer() uint32 {
	vbo.live()
	return vbo.id
}

// Bind the buffer to the array buffer target.
func (vbo *VertexBuffer[T]) Bind() {
	gl := vbo.live()
	gl.BindBuffer(gltable.ARRAY_BUFFER, vbo.id)
	vbo.check("bind")
}

// Unbind the array buffer target.
func (vbo *VertexBuffer[T]) Unbind() {
	gl := vbo.live()
	gl.BindBuffer(gltable.ARRAY_BUFFER, 0)
	vbo.check("unbind")
}

// Update the contents of the buffer from the start. The number of vertices
// must not be more than MaxCount().
func (vbo *VertexBuffer[T]) Update(data []T) {
	gl := vbo.live()
	if len(data) > vbo.maxCount {
		panic(fmt.Sprintf("resource: update of %d vertices does not fit vertex buffer of %d", len(data), vbo.maxCount))
	}
	gl.BindBuffer(gltable.ARRAY_BUFFER, vbo.id)
	gl.BufferSubData(gltable.ARRAY_BUFFER, 0, bytesOf(data))
	gl.BindBuffer(gltable.ARRAY_BUFFER, 0)
	vbo.check("update")
	vbo.count = len(data)
}

// Count returns the number of vertices in the most recent update.
func (vbo *VertexBuffer[T]) Count() int {
	return vbo.count
}

// MaxCount returns the capacity of the buffer in vertices.
func (vbo *VertexBuffer[T]) MaxCount() int {
	return vbo.maxCount
}

// Release implements the Resource interface.
func (vbo *VertexBuffer[T]) Release() {
	vbo.release(func(t gltable.Table) {
		t.DeleteBuffer(vbo.id)
	})
}

// IndexBuffer wraps a buffer object holding uint32 indices.
type IndexBuffer struct {
	object
	count    int
	maxCount int
}

// NewIndexBuffer creates a new index buffer with the initial indices. The
// number of indices is the capacity of the buffer.
//
// The element array binding is part of the vertex array state. The vertex
// array that the buffer will be used with must be bound before calling
// NewIndexBuffer(); core profiles have no default vertex array and the upload
// will fail without one. The buffer is left bound to the vertex array.
func NewIndexBuffer(h *gltable.Handle, usage Usage, indices []uint32) *IndexBuffer {
	ibo := &IndexBuffer{
		object: newObject(h, "index buffer", func(t gltable.Table) uint32 {
			return t.GenBuffer()
		}),
		count:    len(indices),
		maxCount: len(indices),
	}

	ibo.gl.BindBuffer(gltable.ELEMENT_ARRAY_BUFFER, ibo.id)
	ibo.gl.BufferData(gltable.ELEMENT_ARRAY_BUFFER, len(indices)*4, bytesOf(indices), usage.enum())
	ibo.check("buffer data")

	detectLeak(ibo)
	return ibo
}

// Bind the buffer to the element array target.
func (ibo *IndexBuffer) Bind() {
	gl := ibo.live()
	gl.BindBuffer(gltable.ELEMENT_ARRAY_BUFFER, ibo.id)
	ibo.check("bind")
}

// Unbind the element array target.
func (ibo *IndexBuffer) Unbind() {
	gl := ibo.live()
	gl.BindBuffer(gltable.ELEMENT_ARRAY_BUFFER, 0)
	ibo.check("unbind")
}

// Update the contents of the buffer from the start. The number of indices
// must not be more than MaxCount(). The buffer is left bound.
func (ibo *IndexBuffer) Update(indices []uint32) {
	gl := ibo.live()
	if len(indices) > ibo.maxCount {
		panic(fmt.Sprintf("resource: update of %d indices does not fit index buffer of %d", len(indices), ibo.maxCount))
	}
	gl.BindBuffer(gltable.ELEMENT_ARRAY_BUFFER, ibo.id)
	gl.BufferSubData(gltable.ELEMENT_ARRAY_BUFFER, 0, bytesOf(indices))
	ibo.check("update")
	ibo.count = len(indices)
}

// Count returns the number of indices in the most recent update.
func (ibo *IndexBuffer) Count() int {
	return ibo.count
}

// MaxCount returns the capacity of the buffer in indices.
func (ibo *IndexBuffer) MaxCount() int {
	return ibo.maxCount
}

// Release implements the Resource interface.
func (ibo *IndexBuffer) Release() {
	ibo.release(func(t gltable.Table) {
		t.DeleteBuffer(ibo.id)
	})
}
