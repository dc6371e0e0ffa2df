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

// Package sdlplatform implements the platform interfaces with SDL2.
//
// SDL does not expose framebuffer configs so Configs() synthesises a
// candidate for each multisample count allowed by the template. The
// attributes of the chosen config are applied when the window is created.
//
// SDL draws directly to the window so the Surface type is a thin wrapper
// around the window it was created for.
//
// All functions must be called from the thread that called NewDisplay().
// NewDisplay() locks the calling goroutine to the OS thread and the lock is
// never released.
package sdlplatform
