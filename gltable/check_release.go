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

//go:build release

package gltable

// CheckError drains the GL error queue and logs every error found. The tag
// should identify the subsystem and the op the GL call that preceded the
// check.
//
// In release builds CheckError() does nothing.
func CheckError(t Table, tag string, op string) bool {
	return false
}
