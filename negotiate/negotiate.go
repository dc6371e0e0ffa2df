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

package negotiate

import (
	"github.com/jetsetilly/gamegl/curated"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/platform"
)

// Sentinel error patterns.
const (
	NoConfig  = "negotiate: no compatible config"
	NoContext = "negotiate: no usable context: %v"
	Configs   = "negotiate: configs: %v"
)

// Ladder is the ordered list of contexts attempted by CreateContext().
//
// The final 2.1 rung is a legacy context. It can be created but no function
// table can be loaded for it, so the first resume fails with
// device.FunctionLoad naming the context. That is a clearer diagnostic for a
// driver that only offers 2.1 than a NoContext error.
var Ladder = []platform.ContextAttributes{
	{API: platform.OpenGL, Major: 3, Minor: 3, Core: true},
	{API: platform.OpenGLES, Major: 3, Minor: 0},
	{API: platform.OpenGL, Major: 2, Minor: 1},
}

// SelectConfig chooses a config from the list. Returns a NoConfig error if
// the list is empty.
func SelectConfig(configs []platform.Config) (platform.Config, error) {
	if len(configs) == 0 {
		return nil, curated.Errorf(NoConfig)
	}

	best := configs[0]
	for _, c := range configs[1:] {
		if c.SupportsTransparency() != best.SupportsTransparency() {
			if c.SupportsTransparency() {
				best = c
			}
			continue
		}
		if c.NumSamples() > best.NumSamples() {
			best = c
		}
	}

	return best, nil
}

// PickConfig finds the configs that match the template and chooses one
// with SelectConfig().
func PickConfig(display platform.Display, template platform.Template) (platform.Config, error) {
	configs, err := display.Configs(template)
	if err != nil {
		return nil, curated.Errorf(Configs, err)
	}

	cfg, err := SelectConfig(configs)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "negotiate", "chose config from %d candidates: %s", len(configs), cfg)
	logger.Logf(logger.Allow, "negotiate", "picked a config with %d samples", cfg.NumSamples())

	return cfg, nil
}

// CreateContext creates a context for the config, trying each rung of the
// Ladder in order. The context is returned not current. Returns a NoContext
// error wrapping the last failure if no context could be created.
func CreateContext(display platform.Display, window platform.Window, config platform.Config) (platform.Context, error) {
	var err error
	for _, attrs := range Ladder {
		var ctx platform.Context
		ctx, err = display.CreateContext(config, window, attrs)
		if err == nil {
			logger.Logf(logger.Allow, "negotiate", "created %s context", attrs)
			return ctx, nil
		}
		logger.Logf(logger.Allow, "negotiate", "%s context: %v", attrs, err)
	}
	return nil, curated.Errorf(NoContext, err)
}
