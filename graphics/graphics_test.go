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

package graphics_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jetsetilly/gamegl/assets"
	"github.com/jetsetilly/gamegl/curated"
	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/gltable/recorder"
	"github.com/jetsetilly/gamegl/graphics"
	"github.com/jetsetilly/gamegl/resource"
	"github.com/jetsetilly/gamegl/test"
)

func newImage(w int, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var b bytes.Buffer
	test.DemandSuccess(t, png.Encode(&b, img))
	return b.Bytes()
}

func TestCreate(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	var g graphics.Graphics
	g.Create(h)
	test.ExpectEquality(t, h.Count(), 2)

	test.ExpectSuccess(t, rec.Enabled[gltable.CULL_FACE])
	test.ExpectEquality(t, rec.CullMode, gltable.BACK)
	test.ExpectSuccess(t, rec.Enabled[gltable.BLEND])
	test.ExpectEquality(t, rec.BlendSrc, gltable.SRC_ALPHA)
	test.ExpectEquality(t, rec.BlendDst, gltable.ONE_MINUS_SRC_ALPHA)
	test.ExpectFailure(t, rec.Enabled[gltable.DEPTH_TEST])
	test.ExpectFailure(t, rec.DepthWrite)

	// creating again does not leak the handle
	g.Create(h)
	test.ExpectEquality(t, h.Count(), 2)

	g.Resize(640, 480)
	w, ht := g.Resolution()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, ht, 480)
	test.ExpectEquality(t, rec.ViewportXY, [2]int32{0, 0})
	test.ExpectEquality(t, rec.ViewportWH, [2]int32{640, 480})

	g.Clear()
	test.ExpectEquality(t, rec.ClearRGBA, [4]float32{1.0, 0.2, 0.3, 1.0})
	test.ExpectEquality(t, rec.Depth, float32(1.0))
	test.ExpectEquality(t, rec.Clears, 1)

	g.ClearDepth()
	test.ExpectEquality(t, rec.Clears, 2)
	test.ExpectEquality(t, rec.PendingErrors(), 0)

	g.Destroy()
	test.ExpectEquality(t, h.Count(), 1)

	// destroying again has no effect
	g.Destroy()
	test.ExpectEquality(t, h.Count(), 1)
}

func TestNoDevice(t *testing.T) {
	var g graphics.Graphics

	// these do nothing without a device
	g.Resize(100, 100)
	g.Clear()
	g.ClearDepth()

	w, h := g.Resolution()
	test.ExpectEquality(t, w, 100)
	test.ExpectEquality(t, h, 100)

	_, err := g.CreateTexture(encodePNG(t, newImage(4, 4, color.White)))
	test.ExpectSuccess(t, curated.Is(err, graphics.NoDevice))

	_, err = g.CreateFontTexture(nil, 16)
	test.ExpectSuccess(t, curated.Is(err, graphics.NoDevice))
}

func TestDecodeImages(t *testing.T) {
	red := newImage(4, 4, color.NRGBA{R: 255, A: 255})

	var bmpData bytes.Buffer
	test.DemandSuccess(t, bmp.Encode(&bmpData, red))
	var tiffData bytes.Buffer
	test.DemandSuccess(t, tiff.Encode(&tiffData, red, nil))

	gray := image.NewGray(image.Rect(0, 0, 4, 4))

	pixels, err := graphics.DecodeImages(encodePNG(t, red), bmpData.Bytes(), tiffData.Bytes(), encodePNG(t, gray))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(pixels), 4)

	for i, p := range pixels {
		test.ExpectEquality(t, p.Layout, resource.RGBA8, i)
		test.ExpectEquality(t, p.Width, 4, i)
		test.ExpectEquality(t, p.Height, 4, i)
		test.ExpectSuccess(t, p.Valid(), i)
	}

	// first pixel of the red images
	for i := 0; i < 3; i++ {
		test.ExpectEquality(t, pixels[i].Data[0], uint8(255), i)
		test.ExpectEquality(t, pixels[i].Data[1], uint8(0), i)
		test.ExpectEquality(t, pixels[i].Data[3], uint8(255), i)
	}

	// gray images are converted too
	test.ExpectEquality(t, pixels[3].Data[0], uint8(0))
	test.ExpectEquality(t, pixels[3].Data[3], uint8(255))
}

func TestDecodeImagesErrors(t *testing.T) {
	_, err := graphics.DecodeImages()
	test.ExpectSuccess(t, curated.Is(err, graphics.NoImages))

	_, err = graphics.DecodeImages(encodePNG(t, newImage(4, 4, color.White)), []byte("not an image"))
	test.ExpectSuccess(t, curated.Is(err, graphics.DecodeFailure))

	_, err = graphics.DecodeImages(encodePNG(t, newImage(4, 4, color.White)), encodePNG(t, newImage(8, 4, color.White)))
	test.ExpectSuccess(t, curated.Is(err, graphics.SizeMismatch))
	test.ExpectEquality(t, err.Error(), "graphics: image 1 is 8x4 not 4x4")
}

func TestCreateTexture(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	var g graphics.Graphics
	g.Create(h)

	tex, err := g.CreateTexture(
		encodePNG(t, newImage(8, 8, color.White)),
		encodePNG(t, newImage(8, 8, color.Black)),
	)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tex.Layers(), 2)
	test.ExpectEquality(t, tex.Levels(), 4)
	test.ExpectEquality(t, tex.Layout(), resource.RGBA8)
	test.ExpectEquality(t, h.Count(), 3)

	tex.Release()
	g.Destroy()
	test.ExpectEquality(t, h.Count(), 1)
	test.ExpectEquality(t, rec.Live(), 0)
}

func TestCreateTextureFromAssets(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "tile.png"), encodePNG(t, newImage(2, 2, color.White)), 0o644)
	test.DemandSuccess(t, err)

	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	var g graphics.Graphics
	g.Create(h)
	defer g.Destroy()

	src := assets.NewDir(dir)

	tex, err := g.CreateTextureFromAssets(src, "tile.png", "tile.png")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tex.Layers(), 2)
	tex.Release()

	_, err = g.CreateTextureFromAssets(src, "missing.png")
	test.ExpectSuccess(t, curated.Is(err, assets.NotFound))
}

func TestRasteriseFont(t *testing.T) {
	glyphs, err := graphics.RasteriseFont(nil, 16)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(glyphs), graphics.FontGlyphs)

	for i, g := range glyphs {
		test.ExpectEquality(t, g.Layout, resource.Gray8, i)
		test.ExpectSuccess(t, g.Valid(), i)
		test.ExpectEquality(t, g.Width, 16, i)
		test.ExpectEquality(t, g.Height, 16, i)
	}

	coverage := func(p resource.Pixels) int {
		var n int
		for _, v := range p.Data {
			if v > 0 {
				n++
			}
		}
		return n
	}

	test.ExpectEquality(t, coverage(glyphs[' ']), 0)
	test.ExpectSuccess(t, coverage(glyphs['A']) > 0)
	test.ExpectSuccess(t, coverage(glyphs['W']) > coverage(glyphs['.']))

	_, err = graphics.RasteriseFont(nil, 0)
	test.ExpectSuccess(t, curated.Is(err, graphics.FontFailure))

	_, err = graphics.RasteriseFont([]byte("not a font"), 16)
	test.ExpectSuccess(t, curated.Is(err, graphics.FontFailure))
}

func TestCreateFontTexture(t *testing.T) {
	rec := recorder.NewRecorder()
	h := gltable.NewHandle(rec)

	var g graphics.Graphics
	g.Create(h)

	tex, err := g.CreateFontTexture(nil, 16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tex.Layers(), graphics.FontGlyphs)
	test.ExpectEquality(t, tex.Levels(), 5)
	test.ExpectEquality(t, tex.Layout(), resource.Gray8)

	w, ht := tex.Size()
	test.ExpectEquality(t, w, 16)
	test.ExpectEquality(t, ht, 16)

	tex.Release()
	g.Destroy()
	test.ExpectEquality(t, h.Count(), 1)
}
