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
	"fmt"
	"math/bits"

	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/logger"
)

// Texture wraps a 2D array texture. Every layer has the same dimensions and
// layout.
type Texture struct {
	object
	units  slots
	layers int
	levels int
	width  int
	height int
	layout Layout
}

// mip levels for a texture, from full size down to a single pixel along the
// shortest side
func mipLevels(width, height int) int {
	return bits.Len(uint(min(width, height)))
}

// NewTexture creates a 2D array texture with one layer for each of the
// images. Mipmaps are generated from the uploaded images.
//
// Panics if there are no images, if any image is invalid or if the images do
// not all share the same dimensions and layout.
func NewTexture(h *gltable.Handle, images []Pixels) *Texture {
	if len(images) == 0 {
		panic("resource: texture requires at least one image")
	}

	first := images[0]
	for i, img := range images {
		if err := img.Valid(); err != nil {
			panic(fmt.Sprintf("resource: texture layer %d: %v", i, err))
		}
		if img.Width != first.Width || img.Height != first.Height || img.Layout != first.Layout {
			panic(fmt.Sprintf("resource: texture layer %d is %s %dx%d and does not match layer 0 (%s %dx%d)",
				i, img.Layout, img.Width, img.Height, first.Layout, first.Width, first.Height))
		}
	}

	tex := &Texture{
		object: newObject(h, "texture", func(t gltable.Table) uint32 {
			return t.GenTexture()
		}),
		layers: len(images),
		levels: mipLevels(first.Width, first.Height),
		width:  first.Width,
		height: first.Height,
		layout: first.Layout,
	}

	format, xtype, internal := first.Layout.format()
	gl := tex.gl

	gl.BindTexture(gltable.TEXTURE_2D_ARRAY, tex.id)
	tex.check("bind")

	w, ht := int32(first.Width), int32(first.Height)
	for l := 0; l < tex.levels; l++ {
		gl.TexImage3D(gltable.TEXTURE_2D_ARRAY, int32(l), internal, w, ht, int32(tex.layers), format, xtype, nil)
		w = max(1, w/2)
		ht = max(1, ht/2)
	}
	tex.check("allocate")

	// pixel rows are tightly packed. the default alignment of 4 is wrong for
	// any layout other than RGBA8 when the width is not a multiple of 4
	gl.PixelStorei(gltable.UNPACK_ALIGNMENT, 1)
	for i, img := range images {
		gl.TexSubImage3D(gltable.TEXTURE_2D_ARRAY, 0, 0, 0, int32(i),
			int32(img.Width), int32(img.Height), 1, format, xtype, img.Data)
	}
	tex.check("upload")

	gl.TexParameteri(gltable.TEXTURE_2D_ARRAY, gltable.TEXTURE_MIN_FILTER, int32(gltable.LINEAR))
	gl.TexParameteri(gltable.TEXTURE_2D_ARRAY, gltable.TEXTURE_MAG_FILTER, int32(gltable.LINEAR))
	gl.TexParameteri(gltable.TEXTURE_2D_ARRAY, gltable.TEXTURE_WRAP_S, int32(gltable.CLAMP_TO_EDGE))
	gl.TexParameteri(gltable.TEXTURE_2D_ARRAY, gltable.TEXTURE_WRAP_T, int32(gltable.CLAMP_TO_EDGE))
	gl.TexParameteri(gltable.TEXTURE_2D_ARRAY, gltable.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gltable.TEXTURE_2D_ARRAY, gltable.TEXTURE_MAX_LEVEL, int32(tex.levels-1))
	tex.check("parameters")

	gl.GenerateMipmap(gltable.TEXTURE_2D_ARRAY)
	tex.check("generate mipmap")

	gl.BindTexture(gltable.TEXTURE_2D_ARRAY, 0)

	logger.Logf(logger.Allow, "texture", "%d: %s %dx%d, %d layers, %d levels",
		tex.id, tex.layout, tex.width, tex.height, tex.layers, tex.levels)

	detectLeak(tex)
	return tex
}

// Bind the texture to the texture unit.
func (tex *Texture) Bind(unit uint32) {
	gl := tex.live()
	tex.units.acquire(unit, "texture unit")
	gl.ActiveTexture(gltable.TEXTURE0 + unit)
	gl.BindTexture(gltable.TEXTURE_2D_ARRAY, tex.id)
	tex.check("bind")
}

// Unbind the texture from every unit it was bound to with Bind().
func (tex *Texture) Unbind() {
	gl := tex.live()
	tex.units.release(func(unit uint32) {
		gl.ActiveTexture(gltable.TEXTURE0 + unit)
		gl.BindTexture(gltable.TEXTURE_2D_ARRAY, 0)
		tex.check("unbind")
	})
}

// Bound returns true if the texture is bound to the unit.
func (tex *Texture) Bound(unit uint32) bool {
	return tex.units.active(unit)
}

// Layers returns the number of layers in the texture.
func (tex *Texture) Layers() int {
	return tex.layers
}

// Levels returns the number of mip levels in the texture.
func (tex *Texture) Levels() int {
	return tex.levels
}

// Size returns the width and height of the base level.
func (tex *Texture) Size() (int, int) {
	return tex.width, tex.height
}

// Layout returns the pixel layout the texture was created from.
func (tex *Texture) Layout() Layout {
	return tex.layout
}

// Release implements the Resource interface.
func (tex *Texture) Release() {
	tex.release(func(t gltable.Table) {
		t.DeleteTexture(tex.id)
	})
}
