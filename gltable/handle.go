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

// shared between all handles cloned from the same root handle
type shared struct {
	table Table
	refs  int
}

// Handle is a reference-counted holder of a Table. The Table methods can be
// called directly on the Handle.
//
// Handles are not safe for concurrent use. All GL calls happen on the thread
// that the context is current on.
type Handle struct {
	Table
	s *shared
}

// NewHandle creates a root handle for the table with a reference count of
// one.
func NewHandle(t Table) *Handle {
	return &Handle{
		Table: t,
		s: &shared{
			table: t,
			refs:  1,
		},
	}
}

// Clone returns a new handle sharing the same table. The reference count is
// increased by one. It is a programming error to clone a released handle.
func (h *Handle) Clone() *Handle {
	if h.s == nil {
		panic("gltable: clone of released handle")
	}
	h.s.refs++
	return &Handle{
		Table: h.s.table,
		s:     h.s,
	}
}

// Release the handle and decrease the reference count by one. A released
// handle can no longer be used to call the Table. Releasing a handle more
// than once has no effect.
func (h *Handle) Release() {
	if h.s == nil {
		return
	}
	h.s.refs--
	h.s = nil
	h.Table = nil
}

// Released returns true if Release() has been called on this handle.
func (h *Handle) Released() bool {
	return h.s == nil
}

// Count returns the number of live handles sharing the table. Returns zero if
// this handle has been released.
func (h *Handle) Count() int {
	if h.s == nil {
		return 0
	}
	return h.s.refs
}
