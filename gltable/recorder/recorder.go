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
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jetsetilly/gamegl/gltable"
)

// MaxTextureUnits is the number of texture units supported by the recorder.
const MaxTextureUnits = 32

// MaxUniformBindings is the number of uniform buffer binding points supported
// by the recorder.
const MaxUniformBindings = 32

var _ gltable.Table = (*Recorder)(nil)

// Recorder implements the gltable.Table interface.
type Recorder struct {
	// next object name. names are not reused
	next uint32

	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]*VertexArray
	Textures     map[uint32]*Texture
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program

	// binding state
	ArrayBuffer     uint32
	UniformBuffer   uint32
	BoundVAO        uint32
	CurrentProgram  uint32
	ActiveUnit      uint32
	TextureUnits    [MaxTextureUnits]uint32
	UniformBindings [MaxUniformBindings]uint32

	// fixed function state
	Enabled    map[gltable.Enum]bool
	CullMode   gltable.Enum
	BlendSrc   gltable.Enum
	BlendDst   gltable.Enum
	DepthWrite bool
	ViewportXY [2]int32
	ViewportWH [2]int32
	ClearRGBA  [4]float32

	// row alignment of pixel data read by TexImage3D() and TexSubImage3D()
	UnpackAlignment int32
	Depth      float32
	Clears     int

	Draws []Draw

	// strings returned by GetString()
	Strings map[gltable.Enum]string

	errors []gltable.Enum

	// every call made to the table, in order, by method name
	Calls []string
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder() *Recorder {
	return &Recorder{
		next:         1,
		Buffers:      make(map[uint32]*Buffer),
		VertexArrays: make(map[uint32]*VertexArray),
		Textures:     make(map[uint32]*Texture),
		Shaders:      make(map[uint32]*Shader),
		Programs:     make(map[uint32]*Program),
		Enabled:      make(map[gltable.Enum]bool),
		DepthWrite:   true,

		UnpackAlignment: 4,
		Strings: map[gltable.Enum]string{
			gltable.VENDOR:                   "GameGL",
			gltable.RENDERER:                 "Recorder",
			gltable.VERSION:                  "3.3 recorder",
			gltable.SHADING_LANGUAGE_VERSION: "3.30",
		},
	}
}

// Live returns the number of GL objects that have been generated but not
// deleted.
func (r *Recorder) Live() int {
	return len(r.Buffers) + len(r.VertexArrays) + len(r.Textures) + len(r.Shaders) + len(r.Programs)
}

// PendingErrors returns the number of errors that have been not been drained
// by GetError().
func (r *Recorder) PendingErrors() int {
	return len(r.errors)
}

// RaiseError adds an error to the error queue.
func (r *Recorder) RaiseError(code gltable.Enum) {
	r.errors = append(r.errors, code)
}

// Called returns the number of times the named method has been called.
func (r *Recorder) Called(method string) int {
	var n int
	for _, c := range r.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (r *Recorder) call(method string) {
	r.Calls = append(r.Calls, method)
}

func (r *Recorder) name() uint32 {
	n := r.next
	r.next++
	return n
}

// GetError implements the gltable.Table interface.
func (r *Recorder) GetError() gltable.Enum {
	if len(r.errors) == 0 {
		return gltable.NO_ERROR
	}
	e := r.errors[0]
	r.errors = r.errors[1:]
	return e
}

// GetString implements the gltable.Table interface.
func (r *Recorder) GetString(name gltable.Enum) string {
	r.call("GetString")
	s, ok := r.Strings[name]
	if !ok {
		r.RaiseError(gltable.INVALID_ENUM)
	}
	return s
}

// Enable implements the gltable.Table interface.
func (r *Recorder) Enable(capability gltable.Enum) {
	r.call("Enable")
	r.Enabled[capability] = true
}

// Disable implements the gltable.Table interface.
func (r *Recorder) Disable(capability gltable.Enum) {
	r.call("Disable")
	r.Enabled[capability] = false
}

// CullFace implements the gltable.Table interface.
func (r *Recorder) CullFace(mode gltable.Enum) {
	r.call("CullFace")
	r.CullMode = mode
}

// BlendFunc implements the gltable.Table interface.
func (r *Recorder) BlendFunc(sfactor gltable.Enum, dfactor gltable.Enum) {
	r.call("BlendFunc")
	r.BlendSrc = sfactor
	r.BlendDst = dfactor
}

// DepthMask implements the gltable.Table interface.
func (r *Recorder) DepthMask(flag bool) {
	r.call("DepthMask")
	r.DepthWrite = flag
}

// Viewport implements the gltable.Table interface.
func (r *Recorder) Viewport(x, y, width, height int32) {
	r.call("Viewport")
	if width < 0 || height < 0 {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	r.ViewportXY = [2]int32{x, y}
	r.ViewportWH = [2]int32{width, height}
}

// ClearColor implements the gltable.Table interface.
func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.call("ClearColor")
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

// ClearDepth implements the gltable.Table interface.
func (r *Recorder) ClearDepth(depth float32) {
	r.call("ClearDepth")
	r.Depth = depth
}

// Clear implements the gltable.Table interface.
func (r *Recorder) Clear(mask gltable.Enum) {
	r.call("Clear")
	if mask&^(gltable.COLOR_BUFFER_BIT|gltable.DEPTH_BUFFER_BIT) != 0 {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	r.Clears++
}

// GenBuffer implements the gltable.Table interface.
func (r *Recorder) GenBuffer() uint32 {
	r.call("GenBuffer")
	n := r.name()
	r.Buffers[n] = &Buffer{}
	return n
}

// DeleteBuffer implements the gltable.Table interface.
func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.call("DeleteBuffer")
	delete(r.Buffers, buffer)
	if r.ArrayBuffer == buffer {
		r.ArrayBuffer = 0
	}
	if r.UniformBuffer == buffer {
		r.UniformBuffer = 0
	}
	for i := range r.UniformBindings {
		if r.UniformBindings[i] == buffer {
			r.UniformBindings[i] = 0
		}
	}
}

// BindBuffer implements the gltable.Table interface.
func (r *Recorder) BindBuffer(target gltable.Enum, buffer uint32) {
	r.call("BindBuffer")
	if buffer != 0 {
		b, ok := r.Buffers[buffer]
		if !ok {
			r.RaiseError(gltable.INVALID_OPERATION)
			return
		}
		b.Target = target
	}

	switch target {
	case gltable.ARRAY_BUFFER:
		r.ArrayBuffer = buffer
	case gltable.UNIFORM_BUFFER:
		r.UniformBuffer = buffer
	case gltable.ELEMENT_ARRAY_BUFFER:
		// the element buffer binding is part of the vertex array state
		if vao, ok := r.VertexArrays[r.BoundVAO]; ok {
			vao.ElementBuffer = buffer
		}
	default:
		r.RaiseError(gltable.INVALID_ENUM)
	}
}

// BindBufferBase implements the gltable.Table interface.
func (r *Recorder) BindBufferBase(target gltable.Enum, index uint32, buffer uint32) {
	r.call("BindBufferBase")
	if target != gltable.UNIFORM_BUFFER {
		r.RaiseError(gltable.INVALID_ENUM)
		return
	}
	if index >= MaxUniformBindings {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	if _, ok := r.Buffers[buffer]; buffer != 0 && !ok {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	r.UniformBindings[index] = buffer
	r.UniformBuffer = buffer
}

// bound returns the buffer bound to the target
func (r *Recorder) bound(target gltable.Enum) *Buffer {
	var n uint32
	switch target {
	case gltable.ELEMENT_ARRAY_BUFFER:
		if vao, ok := r.VertexArrays[r.BoundVAO]; ok {
			n = vao.ElementBuffer
		}
	case gltable.UNIFORM_BUFFER:
		n = r.UniformBuffer
	default:
		n = r.ArrayBuffer
	}
	return r.Buffers[n]
}

// BufferData implements the gltable.Table interface.
func (r *Recorder) BufferData(target gltable.Enum, size int, data []byte, usage gltable.Enum) {
	r.call("BufferData")
	b := r.bound(target)
	if b == nil {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	if size < 0 || len(data) > size {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	b.Usage = usage
	b.Data = make([]byte, size)
	copy(b.Data, data)
}

// BufferSubData implements the gltable.Table interface.
func (r *Recorder) BufferSubData(target gltable.Enum, offset int, data []byte) {
	r.call("BufferSubData")
	b := r.bound(target)
	if b == nil {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	if offset < 0 || offset+len(data) > len(b.Data) {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	copy(b.Data[offset:], data)
}

// GenVertexArray implements the gltable.Table interface.
func (r *Recorder) GenVertexArray() uint32 {
	r.call("GenVertexArray")
	n := r.name()
	r.VertexArrays[n] = &VertexArray{}
	return n
}

// DeleteVertexArray implements the gltable.Table interface.
func (r *Recorder) DeleteVertexArray(array uint32) {
	r.call("DeleteVertexArray")
	delete(r.VertexArrays, array)
	if r.BoundVAO == array {
		r.BoundVAO = 0
	}
}

// BindVertexArray implements the gltable.Table interface.
func (r *Recorder) BindVertexArray(array uint32) {
	r.call("BindVertexArray")
	if _, ok := r.VertexArrays[array]; array != 0 && !ok {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	r.BoundVAO = array
}

func (r *Recorder) attrib(index uint32) *Attrib {
	vao, ok := r.VertexArrays[r.BoundVAO]
	if !ok {
		r.RaiseError(gltable.INVALID_OPERATION)
		return nil
	}
	if index >= MaxAttribs {
		r.RaiseError(gltable.INVALID_VALUE)
		return nil
	}
	return &vao.Attribs[index]
}

// EnableVertexAttribArray implements the gltable.Table interface.
func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.call("EnableVertexAttribArray")
	if a := r.attrib(index); a != nil {
		a.Enabled = true
	}
}

// DisableVertexAttribArray implements the gltable.Table interface.
func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.call("DisableVertexAttribArray")
	if a := r.attrib(index); a != nil {
		a.Enabled = false
	}
}

// VertexAttribPointer implements the gltable.Table interface.
func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype gltable.Enum, normalized bool, stride int32, offset int) {
	r.call("VertexAttribPointer")
	if size < 1 || size > 4 || stride < 0 {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	if r.ArrayBuffer == 0 {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	if a := r.attrib(index); a != nil {
		a.Buffer = r.ArrayBuffer
		a.Size = size
		a.Type = xtype
		a.Normalized = normalized
		a.Stride = stride
		a.Offset = offset
	}
}

// VertexAttribDivisor implements the gltable.Table interface.
func (r *Recorder) VertexAttribDivisor(index uint32, divisor uint32) {
	r.call("VertexAttribDivisor")
	if a := r.attrib(index); a != nil {
		a.Divisor = divisor
	}
}

// GenTexture implements the gltable.Table interface.
func (r *Recorder) GenTexture() uint32 {
	r.call("GenTexture")
	n := r.name()
	r.Textures[n] = &Texture{
		Levels: make(map[int32]Level),
		Params: make(map[gltable.Enum]int32),
		Layers: make(map[int32][]byte),
	}
	return n
}

// DeleteTexture implements the gltable.Table interface.
func (r *Recorder) DeleteTexture(texture uint32) {
	r.call("DeleteTexture")
	delete(r.Textures, texture)
	for i := range r.TextureUnits {
		if r.TextureUnits[i] == texture {
			r.TextureUnits[i] = 0
		}
	}
}

// ActiveTexture implements the gltable.Table interface.
func (r *Recorder) ActiveTexture(unit gltable.Enum) {
	r.call("ActiveTexture")
	if unit < gltable.TEXTURE0 || unit >= gltable.TEXTURE0+MaxTextureUnits {
		r.RaiseError(gltable.INVALID_ENUM)
		return
	}
	r.ActiveUnit = unit - gltable.TEXTURE0
}

// BindTexture implements the gltable.Table interface.
func (r *Recorder) BindTexture(target gltable.Enum, texture uint32) {
	r.call("BindTexture")
	if texture != 0 {
		t, ok := r.Textures[texture]
		if !ok {
			r.RaiseError(gltable.INVALID_OPERATION)
			return
		}
		// a texture is given its target the first time it is bound and
		// cannot be bound to a different target
		if t.Target == 0 {
			t.Target = target
		} else if t.Target != target {
			r.RaiseError(gltable.INVALID_OPERATION)
			return
		}
	}
	r.TextureUnits[r.ActiveUnit] = texture
}

func (r *Recorder) boundTexture(target gltable.Enum) *Texture {
	t, ok := r.Textures[r.TextureUnits[r.ActiveUnit]]
	if !ok || t.Target != target {
		r.RaiseError(gltable.INVALID_OPERATION)
		return nil
	}
	return t
}

// TexParameteri implements the gltable.Table interface.
func (r *Recorder) TexParameteri(target gltable.Enum, pname gltable.Enum, param int32) {
	r.call("TexParameteri")
	if t := r.boundTexture(target); t != nil {
		t.Params[pname] = param
	}
}

// size of a single pixel in bytes
func pixelSize(format gltable.Enum, xtype gltable.Enum) int {
	var channels int
	switch format {
	case gltable.RED:
		channels = 1
	case gltable.RGB:
		channels = 3
	case gltable.RGBA:
		channels = 4
	default:
		return 0
	}
	switch xtype {
	case gltable.UNSIGNED_BYTE:
		return channels
	case gltable.UNSIGNED_SHORT, gltable.HALF_FLOAT:
		return channels * 2
	case gltable.FLOAT:
		return channels * 4
	}
	return 0
}

// PixelStorei implements the gltable.Table interface.
func (r *Recorder) PixelStorei(pname gltable.Enum, param int32) {
	r.call("PixelStorei")
	if pname != gltable.UNPACK_ALIGNMENT {
		r.RaiseError(gltable.INVALID_ENUM)
		return
	}
	switch param {
	case 1, 2, 4, 8:
		r.UnpackAlignment = param
	default:
		r.RaiseError(gltable.INVALID_VALUE)
	}
}

// length of a row of pixels in client memory, including any padding required
// by the unpack alignment
func (r *Recorder) rowStride(width int32, ps int) int {
	row := int(width) * ps
	a := int(r.UnpackAlignment)
	return (row + a - 1) / a * a
}

// number of bytes the driver reads for an upload of the given size. the last
// row is not padded
func (r *Recorder) unpackSize(width, height, depth int32, ps int) int {
	if width == 0 || height == 0 || depth == 0 {
		return 0
	}
	stride := r.rowStride(width, ps)
	return stride*int(height*depth-1) + int(width)*ps
}

// TexImage3D implements the gltable.Table interface.
func (r *Recorder) TexImage3D(target gltable.Enum, level int32, internalFormat gltable.Enum, width, height, depth int32, format gltable.Enum, xtype gltable.Enum, data []byte) {
	r.call("TexImage3D")
	t := r.boundTexture(target)
	if t == nil {
		return
	}
	if level < 0 || width < 0 || height < 0 || depth < 0 {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	ps := pixelSize(format, xtype)
	if ps == 0 {
		r.RaiseError(gltable.INVALID_ENUM)
		return
	}
	if len(data) > 0 && len(data) < r.unpackSize(width, height, depth, ps) {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	t.Levels[level] = Level{
		Width:          width,
		Height:         height,
		Depth:          depth,
		InternalFormat: internalFormat,
		Format:         format,
		Type:           xtype,
	}
}

// TexSubImage3D implements the gltable.Table interface.
func (r *Recorder) TexSubImage3D(target gltable.Enum, level int32, xoffset, yoffset, zoffset, width, height, depth int32, format gltable.Enum, xtype gltable.Enum, data []byte) {
	r.call("TexSubImage3D")
	t := r.boundTexture(target)
	if t == nil {
		return
	}
	l, ok := t.Levels[level]
	if !ok {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	if xoffset < 0 || yoffset < 0 || zoffset < 0 ||
		xoffset+width > l.Width || yoffset+height > l.Height || zoffset+depth > l.Depth {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	ps := pixelSize(format, xtype)
	if ps == 0 {
		r.RaiseError(gltable.INVALID_ENUM)
		return
	}
	// a real driver would read beyond the end of data
	if len(data) < r.unpackSize(width, height, depth, ps) {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	if level == 0 {
		// layers are kept tightly packed whatever the unpack alignment
		row := int(width) * ps
		stride := r.rowStride(width, ps)
		for z := int32(0); z < depth; z++ {
			layer := make([]byte, 0, row*int(height))
			for y := int32(0); y < height; y++ {
				o := (int(z*height) + int(y)) * stride
				layer = append(layer, data[o:o+row]...)
			}
			t.Layers[zoffset+z] = layer
		}
	}
}

// GenerateMipmap implements the gltable.Table interface.
func (r *Recorder) GenerateMipmap(target gltable.Enum) {
	r.call("GenerateMipmap")
	if t := r.boundTexture(target); t != nil {
		if _, ok := t.Levels[0]; !ok {
			r.RaiseError(gltable.INVALID_OPERATION)
			return
		}
		t.MipmapsGenerated = true
	}
}

// CreateShader implements the gltable.Table interface.
func (r *Recorder) CreateShader(xtype gltable.Enum) uint32 {
	r.call("CreateShader")
	if xtype != gltable.VERTEX_SHADER && xtype != gltable.FRAGMENT_SHADER {
		r.RaiseError(gltable.INVALID_ENUM)
		return 0
	}
	n := r.name()
	r.Shaders[n] = &Shader{Type: xtype}
	return n
}

// DeleteShader implements the gltable.Table interface.
func (r *Recorder) DeleteShader(shader uint32) {
	r.call("DeleteShader")
	delete(r.Shaders, shader)
}

// ShaderSource implements the gltable.Table interface.
func (r *Recorder) ShaderSource(shader uint32, source []byte) {
	r.call("ShaderSource")
	sh, ok := r.Shaders[shader]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}

	// the source is read up to the first NUL. a source without a NUL would
	// be read beyond the end of the buffer by a real driver
	i := bytes.IndexByte(source, 0)
	if i < 0 {
		sh.Source = ""
		sh.Log = "source is not NUL terminated"
		return
	}
	sh.Source = string(source[:i])
	sh.Log = ""
}

var mainFunction = regexp.MustCompile(`void\s+main\s*\(\s*(void)?\s*\)`)

// CompileShader implements the gltable.Table interface.
func (r *Recorder) CompileShader(shader uint32) {
	r.call("CompileShader")
	sh, ok := r.Shaders[shader]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	if sh.Log != "" {
		sh.Compiled = false
		return
	}
	sh.Compiled = mainFunction.MatchString(sh.Source)
	if !sh.Compiled {
		sh.Log = "ERROR: 0:1: 'main' : function not defined"
	}
}

func boolToInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

// length of info log including the terminating NUL, in the same way as a real
// driver
func logLength(log string) int32 {
	if log == "" {
		return 0
	}
	return int32(len(log) + 1)
}

// GetShaderi implements the gltable.Table interface.
func (r *Recorder) GetShaderi(shader uint32, pname gltable.Enum) int32 {
	r.call("GetShaderi")
	sh, ok := r.Shaders[shader]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gltable.COMPILE_STATUS:
		return boolToInt32(sh.Compiled)
	case gltable.INFO_LOG_LENGTH:
		return logLength(sh.Log)
	}
	r.RaiseError(gltable.INVALID_ENUM)
	return 0
}

// GetShaderInfoLog implements the gltable.Table interface.
func (r *Recorder) GetShaderInfoLog(shader uint32) string {
	r.call("GetShaderInfoLog")
	sh, ok := r.Shaders[shader]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return ""
	}
	return sh.Log
}

// CreateProgram implements the gltable.Table interface.
func (r *Recorder) CreateProgram() uint32 {
	r.call("CreateProgram")
	n := r.name()
	r.Programs[n] = &Program{
		Bindings: make(map[uint32]uint32),
		Values:   make(map[int32]int32),
	}
	return n
}

// DeleteProgram implements the gltable.Table interface.
func (r *Recorder) DeleteProgram(program uint32) {
	r.call("DeleteProgram")
	delete(r.Programs, program)
	if r.CurrentProgram == program {
		r.CurrentProgram = 0
	}
}

// AttachShader implements the gltable.Table interface.
func (r *Recorder) AttachShader(program uint32, shader uint32) {
	r.call("AttachShader")
	p, ok := r.Programs[program]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	if _, ok := r.Shaders[shader]; !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	if slices.Contains(p.Shaders, shader) {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	p.Shaders = append(p.Shaders, shader)
}

// DetachShader implements the gltable.Table interface.
func (r *Recorder) DetachShader(program uint32, shader uint32) {
	r.call("DetachShader")
	p, ok := r.Programs[program]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	i := slices.Index(p.Shaders, shader)
	if i < 0 {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	p.Shaders = slices.Delete(p.Shaders, i, i+1)
}

var uniformBlock = regexp.MustCompile(`uniform\s+(\w+)\s*\{`)
var uniformVariable = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

// LinkProgram implements the gltable.Table interface.
func (r *Recorder) LinkProgram(program uint32) {
	r.call("LinkProgram")
	p, ok := r.Programs[program]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}

	p.Linked = false
	p.Blocks = p.Blocks[:0]
	p.Uniforms = p.Uniforms[:0]

	var vert, frag bool
	for _, s := range p.Shaders {
		sh := r.Shaders[s]
		if !sh.Compiled {
			p.Log = fmt.Sprintf("ERROR: shader %d is not compiled", s)
			return
		}
		switch sh.Type {
		case gltable.VERTEX_SHADER:
			vert = true
		case gltable.FRAGMENT_SHADER:
			frag = true
		}
		for _, m := range uniformBlock.FindAllStringSubmatch(sh.Source, -1) {
			if !slices.Contains(p.Blocks, m[1]) {
				p.Blocks = append(p.Blocks, m[1])
			}
		}
		for _, m := range uniformVariable.FindAllStringSubmatch(sh.Source, -1) {
			if !slices.Contains(p.Uniforms, m[1]) {
				p.Uniforms = append(p.Uniforms, m[1])
			}
		}
	}

	if !vert || !frag {
		p.Log = "ERROR: program requires a vertex and a fragment shader"
		return
	}

	p.Linked = true
	p.Log = ""
}

// GetProgrami implements the gltable.Table interface.
func (r *Recorder) GetProgrami(program uint32, pname gltable.Enum) int32 {
	r.call("GetProgrami")
	p, ok := r.Programs[program]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gltable.LINK_STATUS:
		return boolToInt32(p.Linked)
	case gltable.INFO_LOG_LENGTH:
		return logLength(p.Log)
	}
	r.RaiseError(gltable.INVALID_ENUM)
	return 0
}

// GetProgramInfoLog implements the gltable.Table interface.
func (r *Recorder) GetProgramInfoLog(program uint32) string {
	r.call("GetProgramInfoLog")
	p, ok := r.Programs[program]
	if !ok {
		r.RaiseError(gltable.INVALID_VALUE)
		return ""
	}
	return p.Log
}

// UseProgram implements the gltable.Table interface.
func (r *Recorder) UseProgram(program uint32) {
	r.call("UseProgram")
	if program != 0 {
		p, ok := r.Programs[program]
		if !ok {
			r.RaiseError(gltable.INVALID_VALUE)
			return
		}
		if !p.Linked {
			r.RaiseError(gltable.INVALID_OPERATION)
			return
		}
	}
	r.CurrentProgram = program
}

// GetUniformBlockIndex implements the gltable.Table interface.
func (r *Recorder) GetUniformBlockIndex(program uint32, name string) uint32 {
	r.call("GetUniformBlockIndex")
	p, ok := r.Programs[program]
	if !ok || !p.Linked {
		r.RaiseError(gltable.INVALID_OPERATION)
		return gltable.InvalidIndex
	}
	i := slices.Index(p.Blocks, strings.TrimRight(name, "\x00"))
	if i < 0 {
		return gltable.InvalidIndex
	}
	return uint32(i)
}

// UniformBlockBinding implements the gltable.Table interface.
func (r *Recorder) UniformBlockBinding(program uint32, blockIndex uint32, binding uint32) {
	r.call("UniformBlockBinding")
	p, ok := r.Programs[program]
	if !ok || !p.Linked {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	if blockIndex >= uint32(len(p.Blocks)) || binding >= MaxUniformBindings {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	p.Bindings[blockIndex] = binding
}

// GetUniformLocation implements the gltable.Table interface.
func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.call("GetUniformLocation")
	p, ok := r.Programs[program]
	if !ok || !p.Linked {
		r.RaiseError(gltable.INVALID_OPERATION)
		return -1
	}
	return int32(slices.Index(p.Uniforms, strings.TrimRight(name, "\x00")))
}

// Uniform1i implements the gltable.Table interface.
func (r *Recorder) Uniform1i(location int32, v int32) {
	r.call("Uniform1i")
	// location -1 is silently ignored, the same as a real driver
	if location == -1 {
		return
	}
	p, ok := r.Programs[r.CurrentProgram]
	if !ok || location < 0 || int(location) >= len(p.Uniforms) {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	p.Values[location] = v
}

func (r *Recorder) draw(d Draw) {
	if r.CurrentProgram == 0 {
		r.RaiseError(gltable.INVALID_OPERATION)
		return
	}
	if d.Count < 0 || d.Instances < 0 {
		r.RaiseError(gltable.INVALID_VALUE)
		return
	}
	d.Program = r.CurrentProgram
	d.VAO = r.BoundVAO
	r.Draws = append(r.Draws, d)
}

// DrawArrays implements the gltable.Table interface.
func (r *Recorder) DrawArrays(mode gltable.Enum, first int32, count int32) {
	r.call("DrawArrays")
	r.draw(Draw{Mode: mode, First: first, Count: count, Instances: 1})
}

// DrawElements implements the gltable.Table interface.
func (r *Recorder) DrawElements(mode gltable.Enum, count int32, xtype gltable.Enum, offset int) {
	r.call("DrawElements")
	r.draw(Draw{Mode: mode, Count: count, Type: xtype, Offset: offset, Instances: 1, Indexed: true})
}

// DrawElementsInstanced implements the gltable.Table interface.
func (r *Recorder) DrawElementsInstanced(mode gltable.Enum, count int32, xtype gltable.Enum, offset int, instances int32) {
	r.call("DrawElementsInstanced")
	r.draw(Draw{Mode: mode, Count: count, Type: xtype, Offset: offset, Instances: instances, Indexed: true})
}
