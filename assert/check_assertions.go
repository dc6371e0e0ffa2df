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

//go:build assertions

package assert

import "fmt"

// Check panics if the calling goroutine is not the goroutine that created
// the Thread.
func (t Thread) Check(op string) {
	if id := GetGoRoutineID(); id != t.id {
		panic(fmt.Sprintf("assert: %s: called from goroutine %d but owned by goroutine %d", op, id, t.id))
	}
}
