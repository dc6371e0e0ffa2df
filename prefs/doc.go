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

// Package prefs facilitates the storage of preference values. Preference
// values are typed (Bool, Int, Float, String) and can have hooks attached
// which run whenever the value is set.
//
// To persist values between sessions they are added to a Disk instance. The
// Disk type stores values in a TOML file. The key used when adding a value to
// the Disk is the key used in the file.
//
// Values can be overridden for the duration of a session by pushing a
// command line group with PushCommandLineStack(). Any value found in the top
// group when the Disk is loaded takes precedence over the value on disk. The
// format of the command line group is:
//
//	key::value; key::value
package prefs
