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
	"fmt"

	"github.com/jetsetilly/gamegl/paths"
	"github.com/jetsetilly/gamegl/platform"
	"github.com/jetsetilly/gamegl/prefs"
)

// Preferences for the device and GL layers.
type Preferences struct {
	dsk *prefs.Disk

	// request vsync when the context is made current
	VSync prefs.Bool

	// minimum number of alpha bits in the framebuffer
	AlphaSize prefs.Int

	// the maximum number of samples per pixel. zero disables multisampling
	Multisampling prefs.Int

	// prefer a config that supports a transparent window
	Transparency prefs.Bool

	// log errors reported by the GL driver. errors are never checked in
	// release builds
	DebugLog prefs.Bool

	// window title. the empty string leaves the title to the application
	Title prefs.String

	// the longest elapsed time, in seconds, passed to a single update. zero
	// for no limit
	UpdateLimit prefs.Float
}

// maximum length of the window title preference
const maxTitleLen = 64

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.Title.SetMaxLen(maxTitleLen)
	p.UpdateLimit.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return fmt.Errorf("update limit cannot be negative")
		}
		return nil
	})
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("device.vsync", &p.VSync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.alphasize", &p.AlphaSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.multisampling", &p.Multisampling)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.transparency", &p.Transparency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gl.debuglog", &p.DebugLog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("device.title", &p.Title)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gameloop.updatelimit", &p.UpdateLimit)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.VSync.Set(true)
	_ = p.AlphaSize.Set(8)
	_ = p.Multisampling.Set(4)
	_ = p.Transparency.Set(false)
	_ = p.DebugLog.Set(true)
	_ = p.Title.Set("")
	_ = p.UpdateLimit.Set(0.25)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Template returns the config template described by the preferences.
func (p *Preferences) Template() platform.Template {
	return platform.Template{
		AlphaSize:    p.AlphaSize.Get().(int),
		Transparency: p.Transparency.Get().(bool),
		MaxSamples:   p.Multisampling.Get().(int),
	}
}

// AllowLogging implements the logger.Permission interface. Suitable for use
// with gltable.SetLogPermission().
func (p *Preferences) AllowLogging() bool {
	return p.DebugLog.Get().(bool)
}
