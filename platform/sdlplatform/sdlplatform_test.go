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
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gamegl/input"
	"github.com/jetsetilly/gamegl/platform"
	"github.com/jetsetilly/gamegl/test"
)

func TestCandidates(t *testing.T) {
	cfgs := candidates(platform.Template{AlphaSize: 8, MaxSamples: 4})
	test.DemandEquality(t, len(cfgs), 3)
	for i, n := range []int{0, 2, 4} {
		test.ExpectEquality(t, cfgs[i].NumSamples(), n)
		test.ExpectEquality(t, cfgs[i].AlphaSize(), 8)
		test.ExpectFailure(t, cfgs[i].SupportsTransparency())
	}

	cfgs = candidates(platform.Template{Transparency: true})
	test.DemandEquality(t, len(cfgs), 1)
	test.ExpectEquality(t, cfgs[0].NumSamples(), 0)
	test.ExpectSuccess(t, cfgs[0].SupportsTransparency())

	cfgs = candidates(platform.Template{MaxSamples: 64})
	test.ExpectEquality(t, len(cfgs), len(sampleCounts))
}

func TestMouseButton(t *testing.T) {
	test.ExpectEquality(t, mouseButton(sdl.BUTTON_LEFT), input.ButtonLeft)
	test.ExpectEquality(t, mouseButton(sdl.BUTTON_MIDDLE), input.ButtonMiddle)
	test.ExpectEquality(t, mouseButton(sdl.BUTTON_RIGHT), input.ButtonRight)
	test.ExpectEquality(t, mouseButton(sdl.BUTTON_X1), input.ButtonOther)
}

func TestTouchPhase(t *testing.T) {
	test.ExpectEquality(t, touchPhase(sdl.FINGERDOWN), input.Started)
	test.ExpectEquality(t, touchPhase(sdl.FINGERMOTION), input.Moved)
	test.ExpectEquality(t, touchPhase(sdl.FINGERUP), input.Ended)
	test.ExpectEquality(t, touchPhase(0), input.Cancelled)
}
