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

// Package assert contains functions that help check the single-thread
// discipline of the device and resource packages.
//
// Checks made with a Thread are only active when the program is built with
// the "assertions" build tag.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread records the goroutine that it was created on.
type Thread struct {
	id uint64
}

// NewThread creates a Thread for the calling goroutine.
func NewThread() Thread {
	return Thread{id: GetGoRoutineID()}
}

// Same returns true if the calling goroutine is the goroutine that created the
// Thread.
func (t Thread) Same() bool {
	return t.id == GetGoRoutineID()
}
