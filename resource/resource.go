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
	"runtime"
	"unsafe"

	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/logger"
)

// MaxSlots is the number of indexed slots tracked by a resource.
const MaxSlots = 32

// Usage is a hint to the driver about how a buffer will be used.
type Usage int

// List of valid Usage values.
const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

func (u Usage) String() string {
	switch u {
	case StaticDraw:
		return "static"
	case DynamicDraw:
		return "dynamic"
	case StreamDraw:
		return "stream"
	}
	return "unknown"
}

func (u Usage) enum() gltable.Enum {
	switch u {
	case DynamicDraw:
		return gltable.DYNAMIC_DRAW
	case StreamDraw:
		return gltable.STREAM_DRAW
	}
	return gltable.STATIC_DRAW
}

// Resource is implemented by all GPU resource wrappers.
type Resource interface {
	// Release the GL object and the handle clone held by the resource
	Release()

	// Released returns true if Release() has been called
	Released() bool
}

// the part of a resource common to all wrapper types
type object struct {
	gl   *gltable.Handle
	id   uint32
	kind string
}

func newObject(h *gltable.Handle, kind string, gen func(t gltable.Table) uint32) object {
	o := object{
		gl:   h.Clone(),
		kind: kind,
	}

	o.id = gen(o.gl)
	if gltable.CheckError(o.gl, "gl", fmt.Sprintf("create %s", kind)) || o.id == 0 {
		o.gl.Release()
		panic(fmt.Sprintf("resource: failed to create %s", kind))
	}

	logger.Logf(logger.Allow, "resource", "created %s %d", kind, o.id)

	return o
}

// ID returns the GL name of the object.
func (o *object) ID() uint32 {
	return o.id
}

// Released implements the Resource interface.
func (o *object) Released() bool {
	return o.gl == nil
}

// live returns the table for the object. panics if the object has been
// released
func (o *object) live() *gltable.Handle {
	if o.gl == nil {
		panic(fmt.Sprintf("resource: use of released %s %d", o.kind, o.id))
	}
	return o.gl
}

// check for and log any GL errors for the operation
func (o *object) check(op string) bool {
	return gltable.CheckError(o.gl, "gl", fmt.Sprintf("%s %d: %s", o.kind, o.id, op))
}

// release deletes the GL object with the supplied function and releases the
// handle clone. returns false if the object has already been released
func (o *object) release(del func(t gltable.Table)) bool {
	if o.gl == nil {
		return false
	}
	del(o.gl)
	o.check("release")
	logger.Logf(logger.Allow, "resource", "deleted %s %d", o.kind, o.id)
	o.gl.Release()
	o.gl = nil
	return true
}

func (o *object) leaked() (string, uint32, bool) {
	return o.kind, o.id, o.gl != nil
}

type leakable interface {
	leaked() (string, uint32, bool)
}

// attach the leak detector to a resource. the finalizer must not reach the
// table because the context may have gone
func detectLeak(r leakable) {
	runtime.SetFinalizer(r, func(r leakable) {
		if kind, id, leaked := r.leaked(); leaked {
			logger.Logf(logger.Allow, "resource", "%s %d was not released", kind, id)
		}
	})
}

// slots is a table of active indexed bindings
type slots [MaxSlots]bool

func (s *slots) acquire(slot uint32, kind string) {
	if slot >= MaxSlots {
		panic(fmt.Sprintf("resource: %s slot %d out of range", kind, slot))
	}
	if s[slot] {
		panic(fmt.Sprintf("resource: %s slot %d is already active", kind, slot))
	}
	s[slot] = true
}

// release every active slot, calling f() for each one
func (s *slots) release(f func(slot uint32)) {
	for i := range s {
		if s[i] {
			f(uint32(i))
			s[i] = false
		}
	}
}

// active returns true if the slot is active
func (s *slots) active(slot uint32) bool {
	return slot < MaxSlots && s[slot]
}

// bytesOf reinterprets a slice of plain values as bytes. T must not contain
// pointers
func bytesOf[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*int(unsafe.Sizeof(zero)))
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
