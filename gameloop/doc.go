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

// Package gameloop drives a Runner from the events of a platform.EventLoop.
//
// Lifecycle events are handed to the device.Controller as they arrive. Input
// events are collected and delivered to the Runner as a single batch once the
// events for the tick have been drained. After the input is delivered the
// Runner is updated with the time elapsed since the previous tick and a
// redraw is requested. Rendering happens when the platform delivers the
// redraw.
//
// The order of the device callbacks is:
//
//	CreateDevice    after every successful resume
//	ResizeDevice    after every resume and every non-zero resize
//	DestroyDevice   before every suspend and before exit
//
// Every DestroyDevice is matched by an earlier CreateDevice. The function
// table itself is built once for the lifetime of the GL context and the same
// handle is passed to every callback.
//
// When the window is closed, or the Runner asks to exit through the
// GameContext, the loop stops. Cleanup() is called exactly once before Run()
// returns.
package gameloop
