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

// Package modalflag wraps the flag package to handle program modes. A mode is
// a non-flag argument that selects what the program does, each mode having
// its own set of flags. For example, the GameGL command line:
//
//	gamegl -log HEADLESS -frames 10
//
// has the -log flag at the top level and the -frames flag for the HEADLESS
// mode.
//
// Arguments are given once with NewArgs() and each layer is parsed in turn
// with Parse(). Flags and sub-modes for the next layer are added between calls
// to NewMode() and Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	log := md.AddBool("log", false, "echo log to stdout")
//	md.AddSubModes("RUN", "HEADLESS")
//
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not a listed sub-mode. Sub-modes are not case sensitive.
//
// A -help flag is handled automatically at every layer. The help message
// lists the flags and sub-modes of the layer and is written to the Output
// field.
package modalflag
