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
	"bytes"
	"strings"

	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/logger"
)

// Shader wraps a program object linked from a vertex and a fragment shader.
type Shader struct {
	object
	vert uint32
	frag uint32

	compiled bool
	linked   bool

	blocks   map[string]uint32
	samplers map[string]int32
}

// source returns the shader source terminated by a single NUL. anything
// after an interior NUL is discarded
func source(src []byte) []byte {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return src[:i+1]
	}
	return append(bytes.Clone(src), 0)
}

// NewShader compiles the vertex and fragment sources and links them into a
// program.
//
// Compilation and link failures are logged and do not prevent the Shader
// from being created. Use Compiled() and Linked() to check the outcome.
func NewShader(h *gltable.Handle, vert []byte, frag []byte) *Shader {
	sh := &Shader{
		object: newObject(h, "shader program", func(t gltable.Table) uint32 {
			return t.CreateProgram()
		}),
		blocks:   make(map[string]uint32),
		samplers: make(map[string]int32),
	}

	gl := sh.gl
	sh.vert = gl.CreateShader(gltable.VERTEX_SHADER)
	sh.frag = gl.CreateShader(gltable.FRAGMENT_SHADER)
	sh.check("create shaders")

	vertOk := sh.compile(sh.vert, "vertex", vert)
	fragOk := sh.compile(sh.frag, "fragment", frag)
	sh.compiled = vertOk && fragOk

	gl.AttachShader(sh.id, sh.vert)
	gl.AttachShader(sh.id, sh.frag)
	gl.LinkProgram(sh.id)
	sh.check("link")

	sh.linked = gl.GetProgrami(sh.id, gltable.LINK_STATUS) != 0
	if !sh.linked {
		logger.Logf(logger.Allow, "shader", "program %d: link failed: %s", sh.id, infoLog(gl.GetProgramInfoLog(sh.id)))
	}

	detectLeak(sh)
	return sh
}

func (sh *Shader) compile(shader uint32, stage string, src []byte) bool {
	gl := sh.gl
	gl.ShaderSource(shader, source(src))
	gl.CompileShader(shader)
	sh.check("compile " + stage)

	if gl.GetShaderi(shader, gltable.COMPILE_STATUS) == 0 {
		logger.Logf(logger.Allow, "shader", "program %d: %s shader failed to compile: %s", sh.id, stage, infoLog(gl.GetShaderInfoLog(shader)))
		return false
	}
	return true
}

// info logs are sometimes returned with trailing NULs and newlines
func infoLog(log string) string {
	log = strings.TrimRight(log, "\x00\r\n ")
	if log == "" {
		return "no log"
	}
	return log
}

// Compiled returns true if both shader stages compiled successfully.
func (sh *Shader) Compiled() bool {
	return sh.compiled
}

// Linked returns true if the program linked successfully.
func (sh *Shader) Linked() bool {
	return sh.linked
}

// Bind the shader program for drawing.
func (sh *Shader) Bind() {
	gl := sh.live()
	gl.UseProgram(sh.id)
	sh.check("bind")
}

// Unbind the current shader program.
func (sh *Shader) Unbind() {
	gl := sh.live()
	gl.UseProgram(0)
	sh.check("unbind")
}

// LinkUniform connects the named uniform block to the uniform buffer binding
// point. An unknown block is logged and otherwise ignored.
func (sh *Shader) LinkUniform(binding uint32, block string) {
	gl := sh.live()

	idx, ok := sh.blocks[block]
	if !ok {
		idx = gl.GetUniformBlockIndex(sh.id, block)
		sh.check("uniform block index")
		sh.blocks[block] = idx
	}

	if idx == gltable.InvalidIndex {
		logger.Logf(logger.Allow, "shader", "program %d: no uniform block named %s", sh.id, block)
		return
	}

	gl.UniformBlockBinding(sh.id, idx, binding)
	sh.check("uniform block binding")
}

// LinkTexture connects the named sampler uniform to the texture unit. The
// shader must be bound. An unknown sampler is logged and otherwise ignored.
func (sh *Shader) LinkTexture(unit int32, sampler string) {
	gl := sh.live()

	loc, ok := sh.samplers[sampler]
	if !ok {
		loc = gl.GetUniformLocation(sh.id, sampler)
		sh.check("uniform location")
		sh.samplers[sampler] = loc
	}

	if loc < 0 {
		logger.Logf(logger.Allow, "shader", "program %d: no sampler named %s", sh.id, sampler)
		return
	}

	gl.Uniform1i(loc, unit)
	sh.check("link texture")
}

// DrawArrays draws count vertices from the bound vertex array, starting at
// first.
func (sh *Shader) DrawArrays(mode gltable.Enum, first int, count int) {
	gl := sh.live()
	gl.DrawArrays(mode, int32(first), int32(count))
	sh.check("draw arrays")
}

// DrawElements draws count indices from the start of the bound index buffer.
func (sh *Shader) DrawElements(mode gltable.Enum, count int) {
	gl := sh.live()
	gl.DrawElements(mode, int32(count), gltable.UNSIGNED_INT, 0)
	sh.check("draw elements")
}

// DrawElementsInstanced is the same as DrawElements() except that the
// elements are drawn the number of instances.
func (sh *Shader) DrawElementsInstanced(mode gltable.Enum, count int, instances int) {
	gl := sh.live()
	gl.DrawElementsInstanced(mode, int32(count), gltable.UNSIGNED_INT, 0, int32(instances))
	sh.check("draw elements instanced")
}

// Release implements the Resource interface.
func (sh *Shader) Release() {
	sh.release(func(t gltable.Table) {
		t.DetachShader(sh.id, sh.vert)
		t.DetachShader(sh.id, sh.frag)
		t.DeleteShader(sh.vert)
		t.DeleteShader(sh.frag)
		t.DeleteProgram(sh.id)
	})
}
