// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Configuration defines a global game configuration setting
type Configuration struct {
	Window    WindowConfiguration
	Time      TimeConfiguration
	Resources ResourceConfiguration
	Log       LogConfiguration
}

// WindowConfiguration is used to configure the window and its context
type WindowConfiguration struct {
	Title        string
	ScreenWidth  uint32
	ScreenHeight uint32

	// GLMajor and GLMinor select the core profile version requested
	GLMajor int
	GLMinor int
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// ResourceConfiguration tells where assets are loaded from.
// Archive takes precedence over AssetDirectory when set.
type ResourceConfiguration struct {
	AssetDirectory string
	Archive        string
}

// LogConfiguration is used to configure logging
type LogConfiguration struct {
	Level string
}

// DefaultConfiguration is used for every setting not overridden
var DefaultConfiguration = Configuration{
	Window: WindowConfiguration{
		Title:        "Breakout",
		ScreenWidth:  800,
		ScreenHeight: 600,
		GLMajor:      4,
		GLMinor:      6,
	},
	Time: TimeConfiguration{
		FramesPerSecond: 60,
	},
	Resources: ResourceConfiguration{
		AssetDirectory: "./assets",
	},
	Log: LogConfiguration{
		Level: "info",
	},
}

// Environment keys read by LoadConfiguration
const (
	EnvTitle    = "BREAKOUT_TITLE"
	EnvWidth    = "BREAKOUT_WIDTH"
	EnvHeight   = "BREAKOUT_HEIGHT"
	EnvGLMajor  = "BREAKOUT_GL_MAJOR"
	EnvGLMinor  = "BREAKOUT_GL_MINOR"
	EnvFPS      = "BREAKOUT_FPS"
	EnvAssets   = "BREAKOUT_ASSETS"
	EnvArchive  = "BREAKOUT_ARCHIVE"
	EnvLogLevel = "BREAKOUT_LOG_LEVEL"
)

// LoadConfiguration starts from DefaultConfiguration and overrides it
// with values from the given dotenv files. The process environment
// (and a .env in the working directory) wins over the files.
func LoadConfiguration(files ...string) (Configuration, error) {
	fileVars := map[string]string{}
	if len(files) > 0 {
		vars, err := godotenv.Read(files...)
		if err != nil {
			return Configuration{}, errors.Wrap(err, "reading configuration files")
		}
		fileVars = vars
	}

	lookup := func(key string) (string, bool) {
		if v, err := envy.MustGet(key); err == nil {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	cfg := DefaultConfiguration
	p := parser{lookup: lookup}
	p.setString(EnvTitle, &cfg.Window.Title)
	p.setUint32(EnvWidth, &cfg.Window.ScreenWidth)
	p.setUint32(EnvHeight, &cfg.Window.ScreenHeight)
	p.setInt(EnvGLMajor, &cfg.Window.GLMajor)
	p.setInt(EnvGLMinor, &cfg.Window.GLMinor)
	p.setInt(EnvFPS, &cfg.Time.FramesPerSecond)
	p.setString(EnvAssets, &cfg.Resources.AssetDirectory)
	p.setString(EnvArchive, &cfg.Resources.Archive)
	p.setString(EnvLogLevel, &cfg.Log.Level)
	if p.err != nil {
		return Configuration{}, p.err
	}

	if cfg.Time.FramesPerSecond < 0 {
		return Configuration{}, errors.Errorf("%s must not be negative", EnvFPS)
	}
	return cfg, nil
}

// parser keeps the first error of a series of lookups
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) setString(key string, dst *string) {
	if v, ok := p.lookup(key); ok {
		*dst = v
	}
}

func (p *parser) setInt(key string, dst *int) {
	v, ok := p.lookup(key)
	if !ok || p.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.err = errors.Wrapf(err, "parsing %s", key)
		return
	}
	*dst = n
}

func (p *parser) setUint32(key string, dst *uint32) {
	v, ok := p.lookup(key)
	if !ok || p.err != nil {
		return
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		p.err = errors.Wrapf(err, "parsing %s", key)
		return
	}
	*dst = uint32(n)
}
