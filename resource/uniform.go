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
	"unsafe"

	"github.com/jetsetilly/gamegl/gltable"
)

// UniformBuffer wraps a buffer object holding a single value of type T, for
// use as the backing store of a uniform block. T must be a plain value type
// laid out according to the std140 rules.
type UniformBuffer[T any] struct {
	object
	units slots
}

// returns nil for a nil value
func valueBytes[T any](v *T) []byte {
	if v == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), sizeOf[T]())
}

// NewUniformBuffer creates a new uniform buffer from the initial value. If data
// is nil the storage is allocated but left undefined.
func NewUniformBuffer[T any](h *gltable.Handle, usage Usage, data *T) *UniformBuffer[T] {
	ubo := &UniformBuffer[T]{
		object: newObject(h, "uniform buffer", func(t gltable.Table) uint32 {
			return t.GenBuffer()
		}),
	}

	ubo.gl.BindBuffer(gltable.UNIFORM_BUFFER, ubo.id)
	ubo.gl.BufferData(gltable.UNIFORM_BUFFER, sizeOf[T](), valueBytes(data), usage.enum())
	ubo.gl.BindBuffer(gltable.UNIFORM_BUFFER, 0)
	ubo.check("buffer data")

	detectLeak(ubo)
	return ubo
}

// Bind the buffer to the uniform buffer binding point.
func (ubo *UniformBuffer[T]) Bind(unit uint32) {
	gl := ubo.live()
	ubo.units.acquire(unit, "uniform buffer")
	gl.BindBufferBase(gltable.UNIFORM_BUFFER, unit, ubo.id)
	ubo.check("bind")
}

// Unbind every binding point set by Bind().
func (ubo *UniformBuffer[T]) Unbind() {
	gl := ubo.live()
	ubo.units.release(func(unit uint32) {
		gl.BindBufferBase(gltable.UNIFORM_BUFFER, unit, 0)
		ubo.check("unbind")
	})
}

// Bound returns true if the buffer is bound to the binding point.
func (ubo *UniformBuffer[T]) Bound(unit uint32) bool {
	return ubo.units.active(unit)
}

// Update the contents of the buffer.
func (ubo *UniformBuffer[T]) Update(data *T) {
	gl := ubo.live()
	gl.BindBuffer(gltable.UNIFORM_BUFFER, ubo.id)
	gl.BufferSubData(gltable.UNIFORM_BUFFER, 0, valueBytes(data))
	gl.BindBuffer(gltable.UNIFORM_BUFFER, 0)
	ubo.check("update")
}

// Release implements the Resource interface.
func (ubo *UniformBuffer[T]) Release() {
	ubo.release(func(t gltable.Table) {
		t.DeleteBuffer(ubo.id)
	})
}
