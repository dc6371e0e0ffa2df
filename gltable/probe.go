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

import (
	"fmt"
	"strings"
)

// Probe is the set of strings describing the GPU and driver.
type Probe struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
}

// NewProbe queries the table for the GPU description strings. The context
// for the table must be current.
func NewProbe(t Table) Probe {
	return Probe{
		Vendor:          t.GetString(VENDOR),
		Renderer:        t.GetString(RENDERER),
		Version:         t.GetString(VERSION),
		ShadingLanguage: t.GetString(SHADING_LANGUAGE_VERSION),
	}
}

func (p Probe) String() string {
	return fmt.Sprintf("%s (%s) GLSL %s", p.Renderer, p.Version, p.ShadingLanguage)
}

// ES returns true if the version string is that of an OpenGL ES context.
func (p Probe) ES() bool {
	return strings.HasPrefix(p.Version, "OpenGL ES")
}
