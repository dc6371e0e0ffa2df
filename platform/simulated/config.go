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

package simulated

import "fmt"

// Config implements the platform.Config interface.
type Config struct {
	Alpha       int
	Transparent bool
	Samples     int
}

// AlphaSize implements the platform.Config interface.
func (c Config) AlphaSize() int {
	return c.Alpha
}

// SupportsTransparency implements the platform.Config interface.
func (c Config) SupportsTransparency() bool {
	return c.Transparent
}

// NumSamples implements the platform.Config interface.
func (c Config) NumSamples() int {
	return c.Samples
}

func (c Config) String() string {
	s := fmt.Sprintf("alpha %d, samples %d", c.Alpha, c.Samples)
	if c.Transparent {
		s = fmt.Sprintf("%s, transparent", s)
	}
	return s
}
