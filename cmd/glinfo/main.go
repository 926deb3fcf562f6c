// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/breakout/core"
	"github.com/devblok/breakout/device"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	cfg := core.DefaultConfiguration.Window
	cfg.Title = "glinfo"
	window, err := device.NewWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	gl, err := device.NewOpenGL()
	if err != nil {
		log.Fatal(err)
	}

	if bytes, err := json.Marshal(gl.Info()); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		log.Fatal(err)
	}
}
