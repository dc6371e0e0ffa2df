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

package example_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gamegl/assets"
	"github.com/jetsetilly/gamegl/example"
	"github.com/jetsetilly/gamegl/gameloop"
	"github.com/jetsetilly/gamegl/input"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
	"github.com/jetsetilly/gamegl/platform/simulated"
	"github.com/jetsetilly/gamegl/test"
)

func newGame(ex *example.Example, src assets.Source) (*gameloop.Game, *simulated.Display, *simulated.EventLoop) {
	d := simulated.NewDisplay(platform.BackendSimulated,
		simulated.Config{Alpha: 8, Samples: 4},
	)
	loop := simulated.NewEventLoop(d)
	g := gameloop.NewGame(ex, loop, gameloop.Options{
		Template: platform.Template{AlphaSize: 8, MaxSamples: 4},
		Width:    320,
		Height:   240,
		Loader:   d.Loader(),
		Assets:   src,
	})
	return g, d, loop
}

func TestExample(t *testing.T) {
	ex := example.NewExample()
	g, d, loop := newGame(ex, nil)

	loop.Push(platform.Resumed{})
	loop.Idle(5)
	loop.Push(platform.Suspended{})
	loop.Push(platform.Resumed{})
	loop.Idle(5)

	test.DemandSuccess(t, g.Run())
	test.ExpectEquality(t, ex.Devices, 2)
	test.ExpectSuccess(t, ex.Frames > 0)
	test.ExpectSuccess(t, ex.Updates > 0)

	// the program is recreated after the resume and drawing continues with
	// the new program
	rec := d.GL
	draws := make(map[uint32]int)
	for _, dr := range rec.Draws {
		draws[dr.Program]++
	}
	test.ExpectEquality(t, len(draws), 2)
	for prog, n := range draws {
		test.ExpectInequality(t, prog, uint32(0))
		test.ExpectSuccess(t, n >= 4)
	}
	test.ExpectEquality(t, rec.Live(), 0)
	test.ExpectEquality(t, rec.ViewportWH, [2]int32{320, 240})
}

// logged returns true if an entry with the tag contains the detail
func logged(tag string, detail string) bool {
	var found bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == tag && strings.Contains(e.Detail, detail) {
				found = true
			}
		}
	})
	return found
}

func TestExampleAssetTexture(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 24, 24))
	img.Set(0, 0, color.White)
	var b bytes.Buffer
	test.DemandSuccess(t, png.Encode(&b, img))

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, example.TextureAsset), b.Bytes(), 0o644))

	logger.Clear()

	ex := example.NewExample()
	g, d, loop := newGame(ex, assets.NewDir(dir))

	loop.Push(platform.Resumed{})
	loop.Idle(1)

	test.DemandSuccess(t, g.Run())
	test.ExpectSuccess(t, logged("graphics", "decoded png image (24x24)"))
	test.ExpectFailure(t, logged("example", "using font texture"))
	test.ExpectEquality(t, d.GL.Live(), 0)
}

func TestExampleMissingAsset(t *testing.T) {
	logger.Clear()

	ex := example.NewExample()
	g, _, loop := newGame(ex, assets.NewDir(t.TempDir()))

	loop.Push(platform.Resumed{})
	loop.Idle(1)

	test.DemandSuccess(t, g.Run())
	test.ExpectSuccess(t, logged("example", "using font texture"))
}

func TestExampleEscape(t *testing.T) {
	ex := example.NewExample()
	g, _, loop := newGame(ex, nil)

	loop.Push(platform.Resumed{})
	loop.Push(platform.Input{Event: input.Key{Name: "Escape", Pressed: true}})
	loop.Push(platform.Input{Event: input.Key{Name: "Escape", Pressed: false}})
	loop.Idle(100)

	test.DemandSuccess(t, g.Run())
	test.ExpectEquality(t, ex.Updates, 3)
	test.ExpectSuccess(t, loop.Pending() > 0)
}
