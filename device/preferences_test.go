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

package device

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gamegl/prefs"
	"github.com/jetsetilly/gamegl/test"
)

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs.toml")

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)

	tmpl := p.Template()
	test.ExpectEquality(t, tmpl.AlphaSize, 8)
	test.ExpectEquality(t, tmpl.MaxSamples, 4)
	test.ExpectFailure(t, tmpl.Transparency)
	test.ExpectSuccess(t, p.AllowLogging())

	test.ExpectSuccess(t, p.Multisampling.Set(8))
	test.ExpectSuccess(t, p.DebugLog.Set(false))
	test.ExpectSuccess(t, p.Save())

	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	// a new instance loads the saved values over the defaults
	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Template().MaxSamples, 8)
	test.ExpectFailure(t, q.AllowLogging())
	test.ExpectSuccess(t, q.VSync.Get().(bool))
}

func TestPreferencesCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs.toml")

	prefs.PushCommandLineStack("device.transparency::true; device.alphasize::0")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Template().Transparency)
	test.ExpectEquality(t, p.Template().AlphaSize, 0)
}

func TestPreferencesTitleAndLimit(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs.toml")

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Title.Get().(string), "")
	test.ExpectEquality(t, p.UpdateLimit.Get().(float64), 0.25)

	// negative limits are refused and the value is unchanged
	test.ExpectFailure(t, p.UpdateLimit.Set(-1.0))
	test.ExpectEquality(t, p.UpdateLimit.Get().(float64), 0.25)

	test.ExpectSuccess(t, p.Title.Set(strings.Repeat("x", 100)))
	test.ExpectEquality(t, len(p.Title.Get().(string)), maxTitleLen)

	test.ExpectSuccess(t, p.Title.Set("quad"))
	test.ExpectSuccess(t, p.UpdateLimit.Set(0.5))
	test.ExpectSuccess(t, p.Save())

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Title.Get().(string), "quad")
	test.ExpectEquality(t, q.UpdateLimit.Get().(float64), 0.5)

	// overrides arrive as strings
	prefs.PushCommandLineStack("gameloop.updatelimit::0.1; device.title::demo")
	defer prefs.PopCommandLineStack()
	r, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Title.Get().(string), "demo")
	test.ExpectEquality(t, r.UpdateLimit.Get().(float64), 0.1)
}
