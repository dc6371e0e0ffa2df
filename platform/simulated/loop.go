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

package simulated

import (
	"time"

	"github.com/jetsetilly/gamegl/platform"
)

// EventLoop implements the platform.EventLoop interface.
type EventLoop struct {
	display *Display
	script  [][]platform.Event

	// number of calls to Wait()
	Waits int
}

// NewEventLoop is the preferred method of initialisation for the EventLoop
// type.
func NewEventLoop(display *Display) *EventLoop {
	return &EventLoop{
		display: display,
	}
}

// Push adds a batch of events to the end of the script.
func (l *EventLoop) Push(events ...platform.Event) {
	l.script = append(l.script, events)
}

// Idle adds the number of empty batches to the end of the script. Each empty
// batch is a single tick of the game loop.
func (l *EventLoop) Idle(ticks int) {
	for i := 0; i < ticks; i++ {
		l.script = append(l.script, nil)
	}
}

// Pending returns the number of batches remaining in the script.
func (l *EventLoop) Pending() int {
	return len(l.script)
}

// Display implements the platform.EventLoop interface.
func (l *EventLoop) Display() platform.Display {
	return l.display
}

// Wait implements the platform.EventLoop interface. The timeout is ignored.
func (l *EventLoop) Wait(_ time.Duration) ([]platform.Event, error) {
	l.Waits++

	var batch []platform.Event
	if l.display.redraw {
		l.display.redraw = false
		batch = append(batch, platform.RedrawRequested{})
	}

	if len(l.script) == 0 {
		return append(batch, platform.CloseRequested{}), nil
	}

	batch = append(batch, l.script[0]...)
	l.script = l.script[1:]
	return batch, nil
}
