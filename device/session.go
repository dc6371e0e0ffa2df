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

package device

import (
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
)

// a window and the surface that draws to it. the two are always created and
// destroyed together
type session struct {
	window  platform.Window
	surface platform.Surface
}

// the surface is destroyed before the window
func (s *session) destroy() {
	if err := s.surface.Destroy(); err != nil {
		logger.Logf(logger.Allow, "device", "destroying surface: %v", err)
	}
	if err := s.window.Destroy(); err != nil {
		logger.Logf(logger.Allow, "device", "destroying window: %v", err)
	}
}
