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
	"bytes"
	"image"

	// decoders registered with the image package
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"github.com/jetsetilly/gamegl/assets"
	"github.com/jetsetilly/gamegl/curated"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/resource"
)

// DecodeImages decodes each image and converts it to RGBA8 pixels. All images
// must be the same size.
func DecodeImages(encoded ...[]byte) ([]resource.Pixels, error) {
	if len(encoded) == 0 {
		return nil, curated.Errorf(NoImages)
	}

	pixels := make([]resource.Pixels, 0, len(encoded))
	for i, data := range encoded {
		img, format, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, curated.Errorf(DecodeFailure, i, err)
		}

		// every layer of a texture has the same layout so everything is
		// converted to RGBA8 regardless of the source format
		nrgba := imaging.Clone(img)
		p := resource.Pixels{
			Layout: resource.RGBA8,
			Width:  nrgba.Rect.Dx(),
			Height: nrgba.Rect.Dy(),
			Data:   nrgba.Pix,
		}

		if len(pixels) > 0 {
			first := pixels[0]
			if p.Width != first.Width || p.Height != first.Height {
				return nil, curated.Errorf(SizeMismatch, i, p.Width, p.Height, first.Width, first.Height)
			}
		}

		logger.Logf(logger.Allow, "graphics", "decoded %s image (%dx%d)", format, p.Width, p.Height)
		pixels = append(pixels, p)
	}

	return pixels, nil
}

// CreateTexture decodes the images and creates a texture with one layer for
// each image.
func (g *Graphics) CreateTexture(encoded ...[]byte) (*resource.Texture, error) {
	h, err := g.handle()
	if err != nil {
		return nil, err
	}
	pixels, err := DecodeImages(encoded...)
	if err != nil {
		return nil, err
	}
	return resource.NewTexture(h, pixels), nil
}

// CreateTextureFromAssets loads each named asset and passes them to
// CreateTexture().
func (g *Graphics) CreateTextureFromAssets(src assets.Source, names ...string) (*resource.Texture, error) {
	encoded := make([][]byte, 0, len(names))
	for _, n := range names {
		b, err := assets.LoadBytes(src, n)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, b)
	}
	return g.CreateTexture(encoded...)
}
