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

// Package assets gives the application read access to its bundled files.
//
// On desktop builds the assets are found in a directory, by default
// "assets" in the current working directory. On packaged builds (for
// example, an Android APK) the assets are stored in a zip archive under a
// directory prefix. Both are represented by the Source interface so that
// application code does not need to know where the files are coming from.
//
//	src, err := assets.NewSource("assets")
//	if err != nil {
//		return err
//	}
//	vert, err := assets.LoadBytes(src, "shaders/triangle.vert")
package assets
