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

// Package paths contains functions to prepare paths to GameGL resources. For
// example, the preferences file and the assets directory for desktop builds.
//
// The ResourcePath() function returns the supplied resource prepended with
// the appropriate config directory. For example, the following will return
// the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences.toml")
//
// For development builds the base path is ".gamegl" in the program's current
// directory. For release builds (the "release" build tag) the base path is in
// the user's config directory, as returned by os.UserConfigDir() from the go
// standard library.
//
// In the example above, on a modern Linux system running a release build, the
// path returned will be:
//
//	/home/user/.config/gamegl/preferences.toml
//
// Directories in the path are created as required. The file itself is not
// created.
package paths
