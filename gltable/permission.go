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

import (
	"github.com/jetsetilly/gamegl/logger"
)

// permission used by CheckError() when logging
var permission logger.Permission = logger.Allow

// SetLogPermission changes the permission used when logging GL errors. A nil
// permission restores the default, which is to always log.
func SetLogPermission(p logger.Permission) {
	if p == nil {
		p = logger.Allow
	}
	permission = p
}
