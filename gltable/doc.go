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

// Package gltable defines the table of OpenGL entry points used by the rest
// of GameGL and the reference-counted Handle that shares the table between
// the device controller and the GPU resources created from it.
//
// The Table interface is deliberately narrow. It covers the subset of OpenGL
// 3.3 core (and the equivalent OpenGL ES 3) that the resource wrappers need,
// with Go types in place of C pointers. Implementations are found in the
// gogl and gogles sub-packages, for desktop GL and GLES respectively, and in
// the recorder sub-package which keeps the GL state in memory for testing.
//
// The Handle type is a leak detector as much as anything else. Every GPU
// resource clones the Handle when it is created and releases its clone when
// the resource is released. The device controller refuses to tear down the
// context while Count() is anything other than one.
package gltable
