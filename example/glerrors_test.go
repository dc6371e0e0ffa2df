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

//go:build !release

package example_test

import (
	"testing"

	"github.com/jetsetilly/gamegl/example"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
	"github.com/jetsetilly/gamegl/test"
)

// GL errors are only checked in non-release builds
func TestExampleIndexBuffer(t *testing.T) {
	logger.Clear()

	ex := example.NewExample()
	g, _, loop := newGame(ex, nil)

	loop.Push(platform.Resumed{})
	loop.Idle(2)
	loop.Push(platform.Suspended{})
	loop.Push(platform.Resumed{})
	loop.Idle(2)

	test.DemandSuccess(t, g.Run())

	// the index buffer uploads went to a bound vertex array
	test.ExpectFailure(t, logged("gl", "index buffer"))
	test.ExpectEquality(t, ex.Devices, 2)
}
