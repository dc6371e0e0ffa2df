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

package resource

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/jetsetilly/gamegl/gltable"
)

// Layout is the channel layout and depth of pixel data.
type Layout int

// List of valid Layout values.
const (
	Gray8 Layout = iota
	RGB8
	RGB16
	RGBA8
	RGBA16
)

func (l Layout) String() string {
	switch l {
	case Gray8:
		return "gray8"
	case RGB8:
		return "rgb8"
	case RGB16:
		return "rgb16"
	case RGBA8:
		return "rgba8"
	case RGBA16:
		return "rgba16"
	}
	return "unknown"
}

// BytesPerPixel returns the size of a single pixel in the layout.
func (l Layout) BytesPerPixel() int {
	switch l {
	case Gray8:
		return 1
	case RGB8:
		return 3
	case RGB16:
		return 6
	case RGBA8:
		return 4
	case RGBA16:
		return 8
	}
	return 0
}

// format returns the pixel format, pixel type and internal format for the
// layout. 16 bit layouts are stored as half floats
func (l Layout) format() (format gltable.Enum, xtype gltable.Enum, internal gltable.Enum) {
	switch l {
	case Gray8:
		return gltable.RED, gltable.UNSIGNED_BYTE, gltable.R8
	case RGB8:
		return gltable.RGB, gltable.UNSIGNED_BYTE, gltable.RGB8
	case RGB16:
		return gltable.RGB, gltable.UNSIGNED_SHORT, gltable.RGBA16F
	case RGBA8:
		return gltable.RGBA, gltable.UNSIGNED_BYTE, gltable.RGBA8
	case RGBA16:
		return gltable.RGBA, gltable.UNSIGNED_SHORT, gltable.RGBA16F
	}
	panic(fmt.Sprintf("resource: unsupported pixel layout %d", l))
}

// Pixels is a single image of tightly packed rows, top row first. 16 bit
// channels are little-endian.
type Pixels struct {
	Layout Layout
	Width  int
	Height int
	Data   []byte
}

// Valid returns an error if the size of the data does not match the
// dimensions and layout.
func (p Pixels) Valid() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("resource: pixels have invalid dimensions %dx%d", p.Width, p.Height)
	}
	if n := p.Width * p.Height * p.Layout.BytesPerPixel(); n != len(p.Data) {
		return fmt.Errorf("resource: %s pixels %dx%d need %d bytes not %d", p.Layout, p.Width, p.Height, n, len(p.Data))
	}
	return nil
}

// PixelsFromImage converts an image to Pixels. Grayscale images use the Gray8
// layout and 16 bit images use RGBA16. Everything else is converted to
// non-premultiplied RGBA8.
func PixelsFromImage(img image.Image) Pixels {
	b := img.Bounds()
	p := Pixels{
		Width:  b.Dx(),
		Height: b.Dy(),
	}

	switch img := img.(type) {
	case *image.Gray:
		p.Layout = Gray8
		p.Data = make([]byte, 0, p.Width*p.Height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := img.PixOffset(b.Min.X, y)
			p.Data = append(p.Data, img.Pix[i:i+p.Width]...)
		}

	case *image.NRGBA64, *image.RGBA64, *image.Gray16:
		p.Layout = RGBA16
		p.Data = make([]byte, 0, p.Width*p.Height*8)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				// RGBA() is premultiplied. RGBA8 data is not
				c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
				p.Data = binary.LittleEndian.AppendUint16(p.Data, c.R)
				p.Data = binary.LittleEndian.AppendUint16(p.Data, c.G)
				p.Data = binary.LittleEndian.AppendUint16(p.Data, c.B)
				p.Data = binary.LittleEndian.AppendUint16(p.Data, c.A)
			}
		}

	default:
		p.Layout = RGBA8
		p.Data = imaging.Clone(img).Pix
	}

	return p
}
