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

package graphics

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/jetsetilly/gamegl/curated"
	"github.com/jetsetilly/gamegl/resource"
)

// FontGlyphs is the number of glyphs rendered by RasteriseFont(). Glyph n is
// in layer n of the texture.
const FontGlyphs = 128

// RasteriseFont renders the first FontGlyphs characters of the font as square
// Gray8 images of the given size. If ttf is nil the Go regular font is used.
//
// Characters without a glyph, and characters with an empty glyph, are blank.
func RasteriseFont(ttf []byte, size int) ([]resource.Pixels, error) {
	if size <= 0 {
		return nil, curated.Errorf(FontFailure, "size must be positive")
	}
	if ttf == nil {
		ttf = goregular.TTF
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, curated.Errorf(FontFailure, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, curated.Errorf(FontFailure, err)
	}
	defer face.Close()

	ascent := face.Metrics().Ascent

	glyphs := make([]resource.Pixels, 0, FontGlyphs)
	for c := 0; c < FontGlyphs; c++ {
		glyphs = append(glyphs, rasteriseGlyph(face, rune(c), size, ascent))
	}

	return glyphs, nil
}

func blankGlyph(size int) resource.Pixels {
	return resource.Pixels{
		Layout: resource.Gray8,
		Width:  size,
		Height: size,
		Data:   make([]byte, size*size),
	}
}

// the glyph is centred horizontally in an image at least size pixels wide
// with the baseline at the font's ascent. the image is then resampled to
// size by size
func rasteriseGlyph(face font.Face, c rune, size int, ascent fixed.Int26_6) resource.Pixels {
	bounds, _, ok := face.GlyphBounds(c)
	if !ok || bounds.Empty() {
		return blankGlyph(size)
	}

	minX := bounds.Min.X.Floor()
	glyphWidth := bounds.Max.X.Ceil() - minX
	offset := max(size-glyphWidth, 0) / 2

	img := image.NewGray(image.Rect(0, 0, max(glyphWidth, size), size))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(offset - minX),
			Y: ascent,
		},
	}
	d.DrawString(string(c))

	resized := imaging.Resize(img, size, size, imaging.CatmullRom)

	p := blankGlyph(size)
	for i := range p.Data {
		p.Data[i] = resized.Pix[i*4]
	}
	return p
}

// CreateFontTexture rasterises the font with RasteriseFont() and creates a
// texture with one layer for each glyph.
func (g *Graphics) CreateFontTexture(ttf []byte, size int) (*resource.Texture, error) {
	h, err := g.handle()
	if err != nil {
		return nil, err
	}
	glyphs, err := RasteriseFont(ttf, size)
	if err != nil {
		return nil, err
	}
	return resource.NewTexture(h, glyphs), nil
}
