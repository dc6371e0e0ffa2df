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

// Package negotiate chooses the framebuffer config and creates the GL
// context for a Display.
//
// SelectConfig() reduces a list of configs to a single config. Configs that
// support transparency are always preferred. Between configs of equal
// transparency support the config with the most samples is preferred. When
// there is still no clear winner the first config is chosen.
//
// CreateContext() tries each entry in the Ladder in turn and the first
// context that can be created is returned.
package negotiate
