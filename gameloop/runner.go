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
	"github.com/jetsetilly/gamegl/assets"
	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/input"
)

// Runner is implemented by the game.
//
// The handle passed to the device callbacks and to Render() is the root handle
// of the function table. Resources should be created with it and must all be
// released by the end of DestroyDevice().
type Runner interface {
	// the title of the window
	Title() string

	Init(ctx *GameContext)
	Cleanup()

	// input events received since the previous tick, in the order they
	// were received. the slice is not reused
	Input(events []input.Event)

	// elapsed time is in seconds
	Update(elapsed float32)

	Render(gl *gltable.Handle)

	CreateDevice(gl *gltable.Handle)
	DestroyDevice(gl *gltable.Handle)
	ResizeDevice(gl *gltable.Handle, width int, height int)
}

// GameContext is given to the Runner during Init().
type GameContext struct {
	exit   bool
	assets assets.Source
}

// Exit requests that the game loop stop after the current update.
func (ctx *GameContext) Exit() {
	ctx.exit = true
}

// ExitRequested returns true if Exit() has been called.
func (ctx *GameContext) ExitRequested() bool {
	return ctx.exit
}

// Assets returns the asset source for the game. May be nil.
func (ctx *GameContext) Assets() assets.Source {
	return ctx.assets
}
