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

package gltable

// Enum is the type of OpenGL enumerated values.
type Enum = uint32

// InvalidIndex is returned by GetUniformBlockIndex() for an unknown block.
const InvalidIndex = 0xffffffff

// OpenGL enumerations used by GameGL. Values are the same for desktop GL and
// GLES.
const (
	NO_ERROR                      Enum = 0x0000
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	VERSION                  Enum = 0x1F02
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	HALF_FLOAT     Enum = 0x140B

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8A11

	STREAM_DRAW  Enum = 0x88E0
	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8

	TEXTURE_2D       Enum = 0x0DE1
	TEXTURE_2D_ARRAY Enum = 0x8C1A
	TEXTURE0         Enum = 0x84C0

	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	TEXTURE_WRAP_R     Enum = 0x8072
	TEXTURE_BASE_LEVEL Enum = 0x813C
	TEXTURE_MAX_LEVEL  Enum = 0x813D

	UNPACK_ALIGNMENT Enum = 0x0CF5

	NEAREST              Enum = 0x2600
	LINEAR               Enum = 0x2601
	LINEAR_MIPMAP_LINEAR Enum = 0x2703
	CLAMP_TO_EDGE        Enum = 0x812F
	REPEAT               Enum = 0x2901

	RED  Enum = 0x1903
	RGB  Enum = 0x1907
	RGBA Enum = 0x1908

	R8      Enum = 0x8229
	RGB8    Enum = 0x8051
	RGBA8   Enum = 0x8058
	RGBA16F Enum = 0x881A

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	CULL_FACE  Enum = 0x0B44
	DEPTH_TEST Enum = 0x0B71
	BLEND      Enum = 0x0BE2
	BACK       Enum = 0x0405

	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303

	DEPTH_BUFFER_BIT Enum = 0x00000100
	COLOR_BUFFER_BIT Enum = 0x00004000
)

// ErrorString returns a readable form of a GL error code.
func ErrorString(code Enum) string {
	switch code {
	case NO_ERROR:
		return "no error"
	case INVALID_ENUM:
		return "invalid enum"
	case INVALID_VALUE:
		return "invalid value"
	case INVALID_OPERATION:
		return "invalid operation"
	case OUT_OF_MEMORY:
		return "out of memory"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	}
	return "unknown error"
}
