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

// Package recorder is an implementation of gltable.Table that keeps the GL
// state in memory. No GPU or driver is required.
//
// Object names are allocated the same way a driver would allocate them and
// data uploaded to buffers and textures is kept so that it can be inspected.
// Errors are queued for invalid operations, such as binding an object that
// was never generated, and drained by GetError() in the same way as a real
// driver.
//
// Shaders compile if the source is NUL terminated and contains a main()
// function. Uniform blocks and uniform variables are found by a simple scan
// of the source so that GetUniformBlockIndex() and GetUniformLocation()
// behave sensibly.
//
// The recorder is used by the tests for the resource and device packages and
// by the headless mode of the example program.
package recorder
