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

package platform

import "fmt"

// Backend identifies the native context API underlying a Display.
type Backend int

// List of valid Backend values.
const (
	BackendSDL Backend = iota
	BackendEGL
	BackendSimulated
)

func (b Backend) String() string {
	switch b {
	case BackendSDL:
		return "SDL"
	case BackendEGL:
		return "EGL"
	case BackendSimulated:
		return "simulated"
	}
	return "unknown"
}

// API is the flavour of GL requested for a context.
type API int

// List of valid API values.
const (
	OpenGL API = iota
	OpenGLES
)

func (a API) String() string {
	switch a {
	case OpenGL:
		return "OpenGL"
	case OpenGLES:
		return "OpenGL ES"
	}
	return "unknown API"
}

// ContextAttributes describes a context to create.
type ContextAttributes struct {
	API   API
	Major int
	Minor int

	// request the core profile. only meaningful for the OpenGL API
	Core bool
}

// Legacy returns true for desktop contexts older than 3.3. The GL function
// tables require at least 3.3 or ES 3.0.
func (a ContextAttributes) Legacy() bool {
	return a.API == OpenGL && (a.Major < 3 || (a.Major == 3 && a.Minor < 3))
}

func (a ContextAttributes) String() string {
	s := fmt.Sprintf("%s %d.%d", a.API, a.Major, a.Minor)
	if a.Core && a.API == OpenGL {
		s = fmt.Sprintf("%s core", s)
	}
	return s
}

// Template is the set of requirements used to find matching Configs.
type Template struct {
	// minimum number of bits in the alpha channel
	AlphaSize int

	// prefer configs that support a transparent window
	Transparency bool

	// the highest number of samples per pixel that should be considered. zero
	// disables multisampling
	MaxSamples int
}

// WindowAttributes describes a window to create.
type WindowAttributes struct {
	Title       string
	Transparent bool
	Width       int
	Height      int
}
