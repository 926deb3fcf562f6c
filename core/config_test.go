// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
)

func writeEnv(c *qt.C, contents string) string {
	path := filepath.Join(c.Mkdir(), "breakout.env")
	c.Assert(ioutil.WriteFile(path, []byte(contents), 0644), qt.IsNil)
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	c := qt.New(t)
	cfg, err := LoadConfiguration()
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, DefaultConfiguration)
}

func TestLoadConfigurationFromFile(t *testing.T) {
	c := qt.New(t)
	path := writeEnv(c, "BREAKOUT_WIDTH=1024\nBREAKOUT_HEIGHT=768\nBREAKOUT_ARCHIVE=assets.kar\nBREAKOUT_LOG_LEVEL=debug\n")

	cfg, err := LoadConfiguration(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Window.ScreenWidth, qt.Equals, uint32(1024))
	c.Assert(cfg.Window.ScreenHeight, qt.Equals, uint32(768))
	c.Assert(cfg.Resources.Archive, qt.Equals, "assets.kar")
	c.Assert(cfg.Log.Level, qt.Equals, "debug")
	c.Assert(cfg.Window.Title, qt.Equals, "Breakout")
}

func TestLoadConfigurationEnvironmentWins(t *testing.T) {
	c := qt.New(t)
	path := writeEnv(c, "BREAKOUT_FPS=30\nBREAKOUT_TITLE=From file\n")

	envy.Temp(func() {
		envy.Set(EnvFPS, "144")
		cfg, err := LoadConfiguration(path)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 144)
		c.Assert(cfg.Window.Title, qt.Equals, "From file")
	})
}

func TestLoadConfigurationInvalid(t *testing.T) {
	c := qt.New(t)

	_, err := LoadConfiguration(writeEnv(c, "BREAKOUT_WIDTH=wide\n"))
	c.Assert(err, qt.ErrorMatches, `parsing BREAKOUT_WIDTH: .*`)

	_, err = LoadConfiguration(writeEnv(c, "BREAKOUT_FPS=-1\n"))
	c.Assert(err, qt.ErrorMatches, `BREAKOUT_FPS must not be negative`)

	_, err = LoadConfiguration(filepath.Join(c.Mkdir(), "missing.env"))
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestNewLogger(t *testing.T) {
	c := qt.New(t)
	buf := bytes.NewBuffer(nil)

	logger, err := newLogger(LogConfiguration{Level: "warn"}, buf)
	c.Assert(err, qt.IsNil)
	c.Assert(logger.GetLevel(), qt.Equals, logrus.WarnLevel)

	logger.Info("hidden")
	logger.WithField("shader", "sprite").Warn("shown")
	c.Assert(buf.String(), qt.Not(qt.Contains), "hidden")
	c.Assert(buf.String(), qt.Contains, "shader=sprite")

	_, err = NewLogger(LogConfiguration{Level: "loud"})
	c.Assert(err, qt.ErrorMatches, `log level: .*`)
}

func TestTimeDelta(t *testing.T) {
	c := qt.New(t)
	tm := NewTime(TimeConfiguration{FramesPerSecond: 60})
	defer tm.Stop()
	c.Assert(tm.Fps(), qt.Equals, 60)

	start := time.Unix(100, 0)
	clock := start
	tm.now = func() time.Time { return clock }
	tm.lastFrame = start

	clock = start.Add(250 * time.Millisecond)
	c.Assert(tm.Delta(), qt.Equals, float32(0.25))
	clock = clock.Add(time.Second)
	c.Assert(tm.Delta(), qt.Equals, float32(1))
}

func TestTimeTicks(t *testing.T) {
	c := qt.New(t)
	tm := NewTime(TimeConfiguration{FramesPerSecond: 1000})
	defer tm.Stop()

	select {
	case <-tm.FpsTicker().C:
	case <-time.After(time.Second):
		c.Fatal("ticker did not fire")
	}
}
