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

package simulated_test

import (
	"testing"

	"github.com/jetsetilly/gamegl/platform"
	"github.com/jetsetilly/gamegl/platform/simulated"
	"github.com/jetsetilly/gamegl/test"
)

var _ platform.Display = (*simulated.Display)(nil)
var _ platform.EventLoop = (*simulated.EventLoop)(nil)

func TestConfigs(t *testing.T) {
	d := simulated.NewDisplay(platform.BackendSimulated,
		simulated.Config{Alpha: 0, Samples: 0},
		simulated.Config{Alpha: 8, Samples: 4},
		simulated.Config{Alpha: 8, Samples: 16},
	)

	cfgs, err := d.Configs(platform.Template{AlphaSize: 8, MaxSamples: 8})
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(cfgs), 1)
	test.ExpectEquality(t, cfgs[0].NumSamples(), 4)
	test.ExpectEquality(t, cfgs[0].String(), "alpha 8, samples 4")
}

func TestCurrent(t *testing.T) {
	cfg := simulated.Config{Alpha: 8}
	d := simulated.NewDisplay(platform.BackendSimulated, cfg)

	w, err := d.CreateWindow(platform.WindowAttributes{Width: 320, Height: 200}, cfg)
	test.DemandSuccess(t, err)

	d.ContextFailures = 1
	_, err = d.CreateContext(cfg, w, platform.ContextAttributes{API: platform.OpenGL, Major: 3, Minor: 3})
	test.ExpectFailure(t, err)

	ctx, err := d.CreateContext(cfg, w, platform.ContextAttributes{API: platform.OpenGLES, Major: 3})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d.Attempts), 2)
	test.ExpectFailure(t, ctx.IsCurrent())

	s, err := d.CreateSurface(w, cfg, 320, 200)
	test.DemandSuccess(t, err)

	// swapping requires the context to be current
	test.ExpectFailure(t, s.SwapBuffers(ctx))

	test.ExpectSuccess(t, ctx.MakeCurrent(s))
	test.ExpectSuccess(t, ctx.IsCurrent())
	test.ExpectSuccess(t, s.SetSwapInterval(ctx, true))
	test.ExpectSuccess(t, d.VSync)
	test.ExpectSuccess(t, s.SwapBuffers(ctx))
	test.ExpectEquality(t, d.Swaps, 1)

	// the table is only available with a current context
	_, err = d.Loader()(true, d.GetProcAddress)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, s.Destroy())
	test.ExpectFailure(t, s.Destroy())
	test.ExpectSuccess(t, w.Destroy())
	test.ExpectSuccess(t, ctx.MakeNotCurrent())
	test.ExpectFailure(t, ctx.IsCurrent())
	test.ExpectEquality(t, d.LiveSurfaces, 0)
	test.ExpectEquality(t, d.LiveWindows, 0)

	_, err = d.Loader()(true, d.GetProcAddress)
	test.ExpectFailure(t, err)
}

func TestEventLoop(t *testing.T) {
	d := simulated.NewDisplay(platform.BackendSimulated)
	l := simulated.NewEventLoop(d)
	l.Push(platform.Resumed{})
	l.Idle(2)
	test.ExpectEquality(t, l.Pending(), 3)

	batch, err := l.Wait(0)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(batch), 1)
	test.ExpectEquality(t, batch[0].String(), "resumed")

	w, _ := d.CreateWindow(platform.WindowAttributes{}, simulated.Config{})
	w.RequestRedraw()

	// the redraw is delivered at the start of the next batch
	batch, _ = l.Wait(0)
	test.DemandEquality(t, len(batch), 1)
	test.ExpectEquality(t, batch[0], platform.Event(platform.RedrawRequested{}))

	batch, _ = l.Wait(0)
	test.ExpectEquality(t, len(batch), 0)

	// an exhausted script asks for the window to close
	batch, _ = l.Wait(0)
	test.DemandEquality(t, len(batch), 1)
	test.ExpectEquality(t, batch[0], platform.Event(platform.CloseRequested{}))
	test.ExpectEquality(t, l.Waits, 4)
}
