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

package sdlplatform

import (
	"fmt"

	"github.com/jetsetilly/gamegl/platform"
)

// the sample counts that will be offered as configs. SDL will fail window
// creation if the count is not supported by the driver
var sampleCounts = []int{0, 2, 4, 8, 16}

type config struct {
	alpha       int
	transparent bool
	samples     int
}

func (c config) AlphaSize() int {
	return c.alpha
}

func (c config) SupportsTransparency() bool {
	return c.transparent
}

func (c config) NumSamples() int {
	return c.samples
}

func (c config) String() string {
	return fmt.Sprintf("sdl config (alpha %d, samples %d, transparent %v)", c.alpha, c.samples, c.transparent)
}

// candidates synthesises the configs for the template
func candidates(template platform.Template) []platform.Config {
	var cfgs []platform.Config
	for _, n := range sampleCounts {
		if n > template.MaxSamples {
			break
		}
		cfgs = append(cfgs, config{
			alpha:       template.AlphaSize,
			transparent: template.Transparency,
			samples:     n,
		})
	}
	return cfgs
}
