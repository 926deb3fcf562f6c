// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"runtime"

	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/breakout/core"
	"github.com/devblok/breakout/device"
	"github.com/devblok/breakout/game"
	"github.com/devblok/breakout/resource"
	"github.com/devblok/breakout/utility/kar"
)

func init() {
	runtime.LockOSThread()
}

var envFile = flag.String("env", "", "Load configuration from this dotenv file")

var clearColor = glm.Vec4{0.1, 0.1, 0.1, 1.0}

// input routes window input to the game and the viewport
type input struct {
	game *game.Game
	gl   *device.OpenGL
}

func (i input) Key(scancode int, pressed bool) {
	i.game.SetKey(scancode, pressed)
}

func (i input) Resize(width, height int32) {
	i.gl.Viewport(width, height)
}

func main() {
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	configuration, err := core.LoadConfiguration(files...)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := core.NewLogger(configuration.Log)
	if err != nil {
		log.Fatal(err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		logger.Fatal(err)
	}
	defer sdl.Quit()

	window, err := device.NewWindow(configuration.Window)
	if err != nil {
		logger.Fatal(err)
	}
	defer window.Destroy()

	gl, err := device.NewOpenGL()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load OpenGL")
	}
	info := gl.Info()
	logger.WithFields(log.Fields{
		"vendor":   info.Vendor,
		"renderer": info.Renderer,
		"version":  info.Version,
	}).Info("OpenGL initialised")
	gl.Configure(int32(configuration.Window.ScreenWidth), int32(configuration.Window.ScreenHeight))

	source, closeSource, err := assetSource(configuration.Resources)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeSource()

	cache := resource.NewCache(gl, source, resource.WithLogger(logger))
	defer cache.Clear()

	breakout := game.New(configuration.Window.ScreenWidth, configuration.Window.ScreenHeight)
	if err := breakout.Init(cache); err != nil {
		logger.Fatal(err)
	}

	time := core.NewTime(configuration.Time)
	defer time.Stop()
	handler := input{game: breakout, gl: gl}

	for range time.FpsTicker().C {
		if !window.PollEvents(handler) {
			logger.Info("Event loop exited")
			break
		}

		dt := time.Delta()
		breakout.ProcessInput(dt)
		breakout.Update(dt)

		gl.Clear(clearColor)
		breakout.Render()

		window.Swap()
	}
}

// assetSource layers the configured assets over the built in defaults
func assetSource(cfg core.ResourceConfiguration) (resource.Source, func(), error) {
	if cfg.Archive != "" {
		ar, err := kar.OpenFile(cfg.Archive)
		if err != nil {
			return nil, nil, err
		}
		return resource.Chain(resource.Archive(ar), resource.Defaults()), func() { ar.Close() }, nil
	}
	return resource.Chain(resource.Dir(cfg.AssetDirectory), resource.Defaults()), func() {}, nil
}
