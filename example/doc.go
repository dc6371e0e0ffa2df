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

// Package example is a Runner that draws a single textured quad. It is used
// by the gamegl program to demonstrate the lifecycle of the device and the
// GPU resources.
//
// The texture is the asset named by TextureAsset if it can be loaded,
// otherwise a font texture. The quad cycles through the glyphs of the font
// texture.
//
// Releasing the Escape key requests an exit.
package example
