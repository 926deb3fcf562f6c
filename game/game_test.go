// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package game_test

import (
	"os"
	"testing"

	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/devblok/breakout/game"
	"github.com/devblok/breakout/gfx"
	"github.com/devblok/breakout/gfx/gfxtest"
	"github.com/devblok/breakout/resource"
)

type emptySource struct{}

func (emptySource) ReadFile(name string) ([]byte, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
}

func TestNew(t *testing.T) {
	c := qt.New(t)
	g := game.New(800, 600)
	c.Assert(g.State, qt.Equals, game.Active)
	c.Assert(g.State.String(), qt.Equals, "active")
	c.Assert(g.Width, qt.Equals, uint32(800))
	c.Assert(g.Height, qt.Equals, uint32(600))
}

func TestSetKey(t *testing.T) {
	c := qt.New(t)
	g := game.New(800, 600)

	g.SetKey(44, true)
	c.Assert(g.Keys[44], qt.IsTrue)
	g.SetKey(44, false)
	c.Assert(g.Keys[44], qt.IsFalse)

	g.SetKey(game.KeyCount-1, true)
	c.Assert(g.Keys[game.KeyCount-1], qt.IsTrue)

	g.SetKey(-1, true)
	g.SetKey(game.KeyCount, true)
	g.SetKey(1073741906, true)
	pressed := 0
	for _, k := range g.Keys {
		if k {
			pressed++
		}
	}
	c.Assert(pressed, qt.Equals, 1)
}

func TestInit(t *testing.T) {
	c := qt.New(t)
	logger, _ := test.NewNullLogger()
	dev := gfxtest.NewDevice()
	cache := resource.NewCache(dev, resource.Defaults(), resource.WithLogger(logger))
	g := game.New(800, 600)

	c.Assert(g.Init(cache), qt.IsNil)

	shader, ok := cache.Shader(game.SpriteShader)
	c.Assert(ok, qt.IsTrue)
	c.Assert(dev.CurrentProgram, qt.Equals, shader.ID)
	uniforms := dev.Programs[shader.ID].Uniforms
	c.Assert(uniforms["image"], qt.Equals, int32(0))
	c.Assert(uniforms["projection"], qt.Equals, glm.Ortho(0, 800, 600, 0, -1, 1))

	blank, ok := cache.Texture(game.BlankTexture)
	c.Assert(ok, qt.IsTrue)
	c.Assert(blank.ImageFormat, qt.Equals, gfx.RGBA)
	c.Assert(blank.Width, qt.Equals, 1)
}

func TestInitMissingResources(t *testing.T) {
	c := qt.New(t)
	logger, _ := test.NewNullLogger()
	cache := resource.NewCache(gfxtest.NewDevice(), emptySource{}, resource.WithLogger(logger))

	err := game.New(800, 600).Init(cache)
	var fileErr *resource.FileError
	c.Assert(err, qt.ErrorAs, &fileErr)
	c.Assert(fileErr.Path, qt.Equals, "sprite.vert")
}

func TestProjection(t *testing.T) {
	c := qt.New(t)
	g := game.New(800, 600)

	topLeft := g.Projection().Mul4x1(glm.Vec4{0, 0, 0, 1})
	bottomRight := g.Projection().Mul4x1(glm.Vec4{800, 600, 0, 1})
	c.Assert(topLeft, qt.Equals, glm.Vec4{-1, 1, 0, 1})
	c.Assert(bottomRight.ApproxEqual(glm.Vec4{1, -1, 0, 1}), qt.IsTrue)
}
