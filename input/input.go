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

package input

import "fmt"

// Event is implemented by every input event type.
type Event interface {
	String() string
}

// CursorMoved is sent when the mouse cursor moves over the window.
type CursorMoved struct {
	X, Y float64
}

func (ev CursorMoved) String() string {
	return fmt.Sprintf("cursor moved (%.1f, %.1f)", ev.X, ev.Y)
}

// Button identifies a mouse button.
type Button int

// List of valid Button values.
const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonOther
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "other"
}

// MouseButton is sent when a mouse button is pressed or released.
type MouseButton struct {
	Button  Button
	Pressed bool
}

func (ev MouseButton) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s button pressed", ev.Button)
	}
	return fmt.Sprintf("%s button released", ev.Button)
}

// Phase is the stage of a touch.
type Phase int

// List of valid Phase values.
const (
	Started Phase = iota
	Moved
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Moved:
		return "moved"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Touch is sent for each change to a finger on a touch screen. The ID is
// stable for the life of the touch.
type Touch struct {
	ID    int64
	Phase Phase
	X, Y  float64
}

func (ev Touch) String() string {
	return fmt.Sprintf("touch %d %s (%.1f, %.1f)", ev.ID, ev.Phase, ev.X, ev.Y)
}

// Key is sent when a key is pressed or released. Name is the platform's name
// for the key and Code the platform independent scancode.
type Key struct {
	Name    string
	Code    int
	Pressed bool
	Repeat  bool
}

func (ev Key) String() string {
	s := "released"
	if ev.Pressed {
		s = "pressed"
		if ev.Repeat {
			s = "repeated"
		}
	}
	return fmt.Sprintf("key %s %s", ev.Name, s)
}
