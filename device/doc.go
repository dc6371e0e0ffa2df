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

// Package device manages the lifecycle of the window, surface and GL context
// on behalf of the game loop.
//
// The Controller moves through the following states:
//
//	Uninitialized -> WindowCreated -> ContextCreated -> Resumed <-> Suspended -> Exited
//
// The first call to Resume() picks a config, creates the window and then the
// context. Later calls to Resume() create a new window with the same config.
// Every Resume() creates a surface and makes the context current on it. The
// GL function table is loaded the first time the context becomes current and
// is kept until Exit().
//
// Suspend() destroys the surface and window and leaves the context not
// current. All GPU resources should be released before calling Suspend().
//
// Exit() checks that every resource created with a clone of the function
// table has been released. If any are still live the LeakedResources error is
// returned and nothing is torn down.
package device
