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

package gameloop

import (
	"time"

	"github.com/jetsetilly/gamegl/assets"
	"github.com/jetsetilly/gamegl/device"
	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/input"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
)

// DefaultPollTimeout is the PollTimeout used when Options.PollTimeout is zero.
const DefaultPollTimeout = 10 * time.Millisecond

// Options for a Game.
type Options struct {
	// config requirements for the first resume
	Template platform.Template

	// window title. if empty the title is taken from the Runner
	Title string

	// initial size of the window
	Width  int
	Height int

	VSync bool

	// creates the function table for the context
	Loader gltable.Loader

	// the longest time to wait for events before running a tick
	PollTimeout time.Duration

	// the largest elapsed time, in seconds, given to a single call to
	// Update(). zero for no limit
	UpdateLimit float32

	// made available to the Runner through the GameContext. may be nil
	Assets assets.Source

	// source of time. the default is time.Now
	Now func() time.Time
}

// Game connects a Runner, an EventLoop and a device.Controller.
type Game struct {
	runner Runner
	loop   platform.EventLoop
	opts   Options
	ctl    *device.Controller
	ctx    *GameContext

	// the Runner has received CreateDevice() without a matching DestroyDevice()
	live bool

	events []input.Event
	last   time.Time
	done   bool
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(runner Runner, loop platform.EventLoop, opts Options) *Game {
	if opts.PollTimeout == 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	title := opts.Title
	if title == "" {
		title = runner.Title()
	}

	attrs := platform.WindowAttributes{
		Title:       title,
		Transparent: opts.Template.Transparency,
		Width:       opts.Width,
		Height:      opts.Height,
	}

	g := &Game{
		runner: runner,
		loop:   loop,
		opts:   opts,
		ctl:    device.NewController(opts.Template, attrs, opts.Loader),
		ctx:    &GameContext{assets: opts.Assets},
	}
	g.ctl.SetVSync(opts.VSync)

	return g
}

// Controller returns the device controller used by the game.
func (g *Game) Controller() *device.Controller {
	return g.ctl
}

// Run the game until the window is closed or the Runner requests an exit.
// Returns the first fatal error.
func (g *Game) Run() error {
	g.runner.Init(g.ctx)
	g.last = g.opts.Now()

	var err error
	for !g.done {
		var batch []platform.Event
		batch, err = g.loop.Wait(g.opts.PollTimeout)
		if err != nil {
			break
		}

		for _, ev := range batch {
			err = g.handle(ev)
			if err != nil || g.done {
				break
			}
		}
		if err != nil || g.done {
			break
		}

		g.drained()
	}

	return g.shutdown(err)
}

func (g *Game) handle(ev platform.Event) error {
	switch ev := ev.(type) {
	case platform.Input:
		g.events = append(g.events, ev.Event)

	case platform.RedrawRequested:
		if g.ctl.HasSurfaceAndContext() {
			g.runner.Render(g.ctl.Functions())
			g.ctl.SwapBuffers()
		}

	case platform.Resized:
		if ev.Width == 0 || ev.Height == 0 {
			return nil
		}
		if g.ctl.HasSurfaceAndContext() {
			g.ctl.Resize(ev.Width, ev.Height)
			g.runner.ResizeDevice(g.ctl.Functions(), ev.Width, ev.Height)
		}

	case platform.Resumed:
		res, err := g.ctl.Resume(g.loop.Display())
		if err != nil {
			return err
		}
		if res.Created {
			logger.Log(logger.Allow, "gameloop", "function table created")
		}
		if !g.live && g.ctl.HasSurfaceAndContext() {
			g.runner.CreateDevice(g.ctl.Functions())
			g.live = true
		}
		if w, h, ok := g.ctl.SurfaceSize(); ok && g.live {
			g.runner.ResizeDevice(g.ctl.Functions(), w, h)
		}

	case platform.Suspended:
		g.destroyDevice()
		g.ctl.Suspend()

	case platform.CloseRequested:
		logger.Log(logger.Allow, "gameloop", "close requested")
		g.done = true

	default:
		logger.Logf(logger.Allow, "gameloop", "unhandled event: %s", ev)
	}

	return nil
}

func (g *Game) destroyDevice() {
	if g.live && g.ctl.HasSurfaceAndContext() {
		g.runner.DestroyDevice(g.ctl.Functions())
	}
	g.live = false
}

// events for the tick have been drained
func (g *Game) drained() {
	now := g.opts.Now()
	elapsed := float32(now.Sub(g.last).Seconds())
	g.last = now
	if g.opts.UpdateLimit > 0 && elapsed > g.opts.UpdateLimit {
		elapsed = g.opts.UpdateLimit
	}

	events := g.events
	g.events = nil
	g.runner.Input(events)
	g.runner.Update(elapsed)

	if g.ctx.exit {
		logger.Log(logger.Allow, "gameloop", "exit requested")
		g.done = true
		return
	}

	g.ctl.RequestRedraw()
}

func (g *Game) shutdown(err error) error {
	g.destroyDevice()
	g.ctl.Suspend()
	g.runner.Cleanup()

	if exitErr := g.ctl.Exit(); exitErr != nil {
		if err != nil {
			logger.Logf(logger.Allow, "gameloop", "exit: %v", exitErr)
		} else {
			err = exitErr
		}
	}

	return err
}
