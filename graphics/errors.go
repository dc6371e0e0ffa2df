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

package graphics

// Sentinel error patterns.
const (
	NoDevice      = "graphics: no device"
	NoImages      = "graphics: no images"
	DecodeFailure = "graphics: decoding image %d: %v"
	SizeMismatch  = "graphics: image %d is %dx%d not %dx%d"
	FontFailure   = "graphics: font: %v"
)
