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

// Package resource contains the wrappers for GPU objects: vertex arrays,
// vertex, index and uniform buffers, textures and shader programs.
//
// Every wrapper is created from a gltable.Handle and clones the handle for
// its own use. The clone is released when the wrapper is released. The device
// controller uses the handle count to detect wrappers that have not been
// released before the context is torn down.
//
// Release() must be called explicitly, and must be called while the context
// that the wrapper was created with is still current. A finalizer is attached
// to every wrapper but it only logs the leak. It never deletes the GL object
// because there is no guarantee that the context is current, or even exists,
// when the finalizer runs. Calling Release() more than once is allowed.
//
// Resources that bind to indexed slots (vertex attributes, uniform buffer
// binding points and texture units) keep a table of the slots they have set.
// Unbind() (or ClearAttribs() for the VertexArray) releases exactly those
// slots. Binding a slot that the resource already holds, or a slot outside
// the range of the table, is a programming error and will panic. In the same
// way, updating a buffer with more data than it was created with will panic,
// as will any use of a resource after it has been released.
package resource
