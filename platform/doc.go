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

// Package platform abstracts the windowing system and the native GL context
// API. The device package drives the lifecycle of the types defined here and
// the gameloop package consumes the events.
//
// A Display is the connection to the windowing system. From it are created
// the Window, a Context for the negotiated Config and a Surface that links the
// two. Only the Display and Context survive a suspend. The Window and Surface
// are created again on every resume.
//
// Implementations are not safe for concurrent use. Every method must be
// called from the goroutine that created the Display and on some platforms
// that goroutine must be locked to the main OS thread.
package platform
