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

package platform_test

import (
	"testing"

	"github.com/jetsetilly/gamegl/input"
	"github.com/jetsetilly/gamegl/platform"
	"github.com/jetsetilly/gamegl/test"
)

func TestContextAttributes(t *testing.T) {
	core := platform.ContextAttributes{API: platform.OpenGL, Major: 3, Minor: 3, Core: true}
	test.ExpectEquality(t, core.String(), "OpenGL 3.3 core")

	es := platform.ContextAttributes{API: platform.OpenGLES, Major: 3, Minor: 0, Core: true}
	test.ExpectEquality(t, es.String(), "OpenGL ES 3.0")

	legacy := platform.ContextAttributes{API: platform.OpenGL, Major: 2, Minor: 1}
	test.ExpectEquality(t, legacy.String(), "OpenGL 2.1")

	test.ExpectFailure(t, core.Legacy())
	test.ExpectFailure(t, es.Legacy())
	test.ExpectSuccess(t, legacy.Legacy())
	test.ExpectSuccess(t, platform.ContextAttributes{API: platform.OpenGL, Major: 3, Minor: 2}.Legacy())
}

func TestEventStrings(t *testing.T) {
	var ev platform.Event

	ev = platform.Resized{Width: 800, Height: 600}
	test.ExpectEquality(t, ev.String(), "resized 800x600")

	ev = platform.Input{Event: input.Key{Name: "Return", Pressed: true}}
	test.ExpectEquality(t, ev.String(), "key Return pressed")
}
