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

package sdlplatform

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gamegl/input"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
)

// EventLoop implements the platform.EventLoop interface.
type EventLoop struct {
	display *Display

	// the application is resumed when the loop first runs
	started bool
}

// NewEventLoop is the preferred method of initialisation for the EventLoop
// type.
func NewEventLoop(dsp *Display) *EventLoop {
	return &EventLoop{
		display: dsp,
	}
}

// Display implements the platform.EventLoop interface.
func (l *EventLoop) Display() platform.Display {
	return l.display
}

// Wait implements the platform.EventLoop interface.
func (l *EventLoop) Wait(timeout time.Duration) ([]platform.Event, error) {
	var batch []platform.Event

	if !l.started {
		l.started = true
		batch = append(batch, platform.Resumed{})
	}

	if l.display.redraw {
		l.display.redraw = false
		batch = append(batch, platform.RedrawRequested{})
	}

	// do not wait if there are events already
	var ev sdl.Event
	if len(batch) > 0 || timeout <= 0 {
		ev = sdl.PollEvent()
	} else {
		ev = sdl.WaitEventTimeout(int(timeout.Milliseconds()))
	}

	for ; ev != nil; ev = sdl.PollEvent() {
		if e := l.convert(ev); e != nil {
			batch = append(batch, e)
		}
	}

	return batch, nil
}

// convert returns nil if the event is not of interest
func (l *EventLoop) convert(ev sdl.Event) platform.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return platform.CloseRequested{}

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return platform.CloseRequested{}
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			w, h := l.drawableSize(ev.Data1, ev.Data2)
			return platform.Resized{Width: w, Height: h}
		case sdl.WINDOWEVENT_EXPOSED:
			return platform.RedrawRequested{}
		}

	case *sdl.KeyboardEvent:
		return platform.Input{Event: input.Key{
			Name:    sdl.GetKeyName(ev.Keysym.Sym),
			Code:    int(ev.Keysym.Scancode),
			Pressed: ev.Type == sdl.KEYDOWN,
			Repeat:  ev.Repeat != 0,
		}}

	case *sdl.MouseMotionEvent:
		return platform.Input{Event: input.CursorMoved{
			X: float64(ev.X),
			Y: float64(ev.Y),
		}}

	case *sdl.MouseButtonEvent:
		return platform.Input{Event: input.MouseButton{
			Button:  mouseButton(ev.Button),
			Pressed: ev.State == sdl.PRESSED,
		}}

	case *sdl.TouchFingerEvent:
		// touch coordinates are normalised to the window
		w, h := l.drawableSize(1, 1)
		return platform.Input{Event: input.Touch{
			ID:    int64(ev.FingerID),
			Phase: touchPhase(ev.Type),
			X:     float64(ev.X) * float64(w),
			Y:     float64(ev.Y) * float64(h),
		}}

	case *sdl.CommonEvent:
		switch ev.Type {
		case sdl.APP_WILLENTERBACKGROUND:
			return platform.Suspended{}
		case sdl.APP_DIDENTERFOREGROUND:
			return platform.Resumed{}
		case sdl.APP_TERMINATING:
			return platform.CloseRequested{}
		case sdl.APP_LOWMEMORY:
			logger.Log(logger.Allow, "sdl", "low memory")
		}
	}

	return nil
}

// the size of the current window in pixels or the fallback values if there
// is no current window
func (l *EventLoop) drawableSize(fallbackW int32, fallbackH int32) (int, int) {
	if l.display.current == nil {
		return int(fallbackW), int(fallbackH)
	}
	w, h := l.display.current.GLGetDrawableSize()
	return int(w), int(h)
}

func mouseButton(button uint8) input.Button {
	switch button {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	}
	return input.ButtonOther
}

func touchPhase(typ uint32) input.Phase {
	switch typ {
	case sdl.FINGERDOWN:
		return input.Started
	case sdl.FINGERMOTION:
		return input.Moved
	case sdl.FINGERUP:
		return input.Ended
	}
	return input.Cancelled
}

// Interrupt causes a CloseRequested event to be delivered with the next batch
// of events. Unlike other functions it is safe to call Interrupt() from any
// goroutine.
func (l *EventLoop) Interrupt() {
	_, err := sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT})
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "interrupt: %v", err)
	}
}
