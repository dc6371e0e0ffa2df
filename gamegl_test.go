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

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/gamegl/device"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/modalflag"
	"github.com/jetsetilly/gamegl/test"
)

func TestHeadless(t *testing.T) {
	// the preferences file is relative to the working directory for
	// non-release builds
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	prf, err := device.NewPreferences()
	test.DemandSuccess(t, err)

	md := &modalflag.Modes{}
	md.NewArgs([]string{"HEADLESS", "-frames", "3", "-cycles", "2"})
	md.AddSubModes("RUN", "HEADLESS")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "HEADLESS")

	out := &test.CompareWriter{}
	test.DemandSuccess(t, headless(md, prf, out))

	// the transparent config is preferred over multisampling
	s := out.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "alpha 8, samples 0, transparent:"), s)
	test.ExpectSuccess(t, strings.HasSuffix(s, "3 windows\n"), s)
}

func TestHeadlessMissingAssets(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	prf, err := device.NewPreferences()
	test.DemandSuccess(t, err)

	md := &modalflag.Modes{}
	md.NewArgs([]string{"-assets", "missing"})

	out := &test.CompareWriter{}
	test.ExpectFailure(t, headless(md, prf, out))
}

func TestLoadPreferencesOverride(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	logger.Clear()

	prf, err := loadPreferences("device.title::demo; gameloop.updatelimit::0.5; device.unknown::1")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.Title.Get().(string), "demo")
	test.ExpectEquality(t, prf.UpdateLimit.Get().(float64), 0.5)

	var unused bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "prefs" && strings.Contains(e.Detail, "device.unknown::1") {
				unused = true
			}
		}
	})
	test.ExpectSuccess(t, unused)

	// the override does not outlive the call
	prf, err = loadPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.Title.Get().(string), "")

	// an invalid override is an error
	_, err = loadPreferences("gameloop.updatelimit::-2")
	test.ExpectFailure(t, err)
}
