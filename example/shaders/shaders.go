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

package shaders

import _ "embed"

// the sources do not have a #version line. see Header()

//go:embed "quad.vert"
var QuadVertexShader []byte

//go:embed "quad.frag"
var QuadFragmentShader []byte

const coreHeader = "#version 330 core\n"

const esHeader = "#version 300 es\n" +
	"precision mediump float;\n" +
	"precision mediump sampler2DArray;\n"

// Source prefixes the shader source with the version header for the context.
func Source(es bool, src []byte) []byte {
	hdr := coreHeader
	if es {
		hdr = esHeader
	}
	return append([]byte(hdr), src...)
}
