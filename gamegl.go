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
	"fmt"
	"io"
	"os"
	"os/signal"
	"unsafe"

	"github.com/jetsetilly/gamegl/assets"
	"github.com/jetsetilly/gamegl/device"
	"github.com/jetsetilly/gamegl/example"
	"github.com/jetsetilly/gamegl/gameloop"
	"github.com/jetsetilly/gamegl/gltable"
	"github.com/jetsetilly/gamegl/gltable/gogl"
	"github.com/jetsetilly/gamegl/gltable/gogles"
	"github.com/jetsetilly/gamegl/logger"
	"github.com/jetsetilly/gamegl/modalflag"
	"github.com/jetsetilly/gamegl/platform"
	"github.com/jetsetilly/gamegl/platform/sdlplatform"
	"github.com/jetsetilly/gamegl/platform/simulated"
	"github.com/jetsetilly/gamegl/prefs"
	"github.com/jetsetilly/gamegl/statsview"
	"github.com/jetsetilly/gamegl/version"
)

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"device.vsync::false; device.title::demo\")")
	md.AddSubModes("RUN", "HEADLESS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	prf, err := loadPreferences(*prefsOverride)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
	gltable.SetLogPermission(prf)

	logger.Log(logger.Allow, "gamegl", version.String())

	switch md.Mode() {
	case "RUN":
		err = run(md, prf)
	case "HEADLESS":
		err = headless(md, prf, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// loadPreferences from disk with the override string taking precedence over
// the stored values. unused overrides are logged
func loadPreferences(override string) (*device.Preferences, error) {
	prefs.PushCommandLineStack(override)
	prf, err := device.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused overrides: %s", unused)
	}
	return prf, err
}

// loadTable is the gltable.Loader for real contexts
func loadTable(es bool, getProcAddress func(name string) unsafe.Pointer) (gltable.Table, error) {
	if es {
		return gogles.Load(getProcAddress)
	}
	return gogl.Load(getProcAddress)
}

func run(md *modalflag.Modes, prf *device.Preferences) error {
	md.NewMode()
	assetPath := md.AddString("assets", "", "assets directory or archive")
	width := md.AddInt("width", 0, "window width (zero for default)")
	height := md.AddInt("height", 0, "window height (zero for default)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var src assets.Source
	if *assetPath != "" {
		src, err = assets.NewSource(*assetPath)
		if err != nil {
			return err
		}
	}

	dsp, err := sdlplatform.NewDisplay()
	if err != nil {
		return err
	}
	defer dsp.Terminate()

	loop := sdlplatform.NewEventLoop(dsp)

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		for range intChan {
			loop.Interrupt()
		}
	}()

	g := gameloop.NewGame(example.NewExample(), loop, gameloop.Options{
		Template: prf.Template(),
		VSync:    prf.VSync.Get().(bool),
		Title:    prf.Title.Get().(string),
		Width:    *width,
		Height:   *height,
		Loader:   loadTable,
		Assets:   src,

		UpdateLimit: float32(prf.UpdateLimit.Get().(float64)),
	})

	return g.Run()
}

func headless(md *modalflag.Modes, prf *device.Preferences, output io.Writer) error {
	md.NewMode()
	frames := md.AddInt("frames", 60, "number of ticks in each resumed period")
	cycles := md.AddInt("cycles", 2, "number of suspend and resume cycles")
	assetPath := md.AddString("assets", "", "assets directory or archive")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var src assets.Source
	if *assetPath != "" {
		src, err = assets.NewSource(*assetPath)
		if err != nil {
			return err
		}
	}

	d := simulated.NewDisplay(platform.BackendSimulated,
		simulated.Config{Alpha: 8},
		simulated.Config{Alpha: 8, Samples: 4},
		simulated.Config{Alpha: 8, Transparent: true},
	)
	loop := simulated.NewEventLoop(d)

	loop.Push(platform.Resumed{})
	loop.Idle(*frames)
	for range *cycles {
		loop.Push(platform.Suspended{})
		loop.Push(platform.Resumed{})
		loop.Idle(*frames)
	}

	ex := example.NewExample()
	g := gameloop.NewGame(ex, loop, gameloop.Options{
		Template: prf.Template(),
		VSync:    prf.VSync.Get().(bool),
		Title:    prf.Title.Get().(string),
		Width:    640,
		Height:   480,
		Loader:   d.Loader(),
		Assets:   src,

		UpdateLimit: float32(prf.UpdateLimit.Get().(float64)),
	})

	err = g.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %d frames, %d updates, %d swaps, %d windows\n",
		g.Controller().Config(), ex.Frames, ex.Updates, d.Swaps, d.Windows)

	return nil
}
