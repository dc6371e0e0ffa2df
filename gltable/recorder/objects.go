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

package recorder

import (
	"github.com/jetsetilly/gamegl/gltable"
)

// Buffer records the state of a buffer object.
type Buffer struct {
	Target gltable.Enum
	Usage  gltable.Enum
	Data   []byte
}

// Attrib records the state of a single vertex attribute in a vertex array.
type Attrib struct {
	Enabled    bool
	Buffer     uint32
	Size       int32
	Type       gltable.Enum
	Normalized bool
	Stride     int32
	Offset     int
	Divisor    uint32
}

// MaxAttribs is the number of vertex attributes supported by the recorder.
const MaxAttribs = 32

// VertexArray records the state of a vertex array object.
type VertexArray struct {
	Attribs       [MaxAttribs]Attrib
	ElementBuffer uint32
}

// Level records the allocation of a single mip level of a texture.
type Level struct {
	Width          int32
	Height         int32
	Depth          int32
	InternalFormat gltable.Enum
	Format         gltable.Enum
	Type           gltable.Enum
}

// Texture records the state of a texture object.
type Texture struct {
	Target gltable.Enum
	Levels map[int32]Level
	Params map[gltable.Enum]int32

	// uploaded image data for level zero, one entry per layer
	Layers map[int32][]byte

	MipmapsGenerated bool
}

// Shader records the state of a shader object.
type Shader struct {
	Type     gltable.Enum
	Source   string
	Compiled bool
	Log      string
}

// Program records the state of a program object.
type Program struct {
	Shaders []uint32
	Linked  bool
	Log     string

	// uniform block names and their binding points
	Blocks   []string
	Bindings map[uint32]uint32

	// uniform variable names and the value set by Uniform1i()
	Uniforms []string
	Values   map[int32]int32
}

// Draw records a single draw call.
type Draw struct {
	Mode      gltable.Enum
	Program   uint32
	VAO       uint32
	First     int32
	Count     int32
	Type      gltable.Enum
	Offset    int
	Instances int32
	Indexed   bool
}
