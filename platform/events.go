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

package platform

import (
	"fmt"

	"github.com/jetsetilly/gamegl/input"
)

// Event is implemented by all events returned by EventLoop.Wait().
type Event interface {
	String() string
}

// Resized is sent when the size of the window has changed. Width and Height
// are in pixels.
type Resized struct {
	Width  int
	Height int
}

func (ev Resized) String() string {
	return fmt.Sprintf("resized %dx%d", ev.Width, ev.Height)
}

// CloseRequested is sent when the window has been asked to close.
type CloseRequested struct{}

func (ev CloseRequested) String() string {
	return "close requested"
}

// Resumed is sent when the application can create a window. On desktop
// platforms it is sent once at startup.
type Resumed struct{}

func (ev Resumed) String() string {
	return "resumed"
}

// Suspended is sent when the application must release its window.
type Suspended struct{}

func (ev Suspended) String() string {
	return "suspended"
}

// RedrawRequested is sent after Window.RequestRedraw() has been called.
type RedrawRequested struct{}

func (ev RedrawRequested) String() string {
	return "redraw requested"
}

// Input wraps an event from the input package.
type Input struct {
	input.Event
}
