// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/breakout/gfx"
	"github.com/devblok/breakout/gfx/gfxtest"
)

func TestTextureDefaults(t *testing.T) {
	c := qt.New(t)
	tex := gfx.NewTexture2D(gfxtest.NewDevice())

	c.Assert(tex.ID, qt.Not(qt.Equals), uint32(0))
	c.Assert(tex.Width, qt.Equals, 0)
	c.Assert(tex.Height, qt.Equals, 0)
	c.Assert(tex.InternalFormat, qt.Equals, gfx.RGB)
	c.Assert(tex.ImageFormat, qt.Equals, gfx.RGB)
	c.Assert(tex.WrapS, qt.Equals, gfx.Repeat)
	c.Assert(tex.WrapT, qt.Equals, gfx.Repeat)
	c.Assert(tex.FilterMin, qt.Equals, gfx.Linear)
	c.Assert(tex.FilterMax, qt.Equals, gfx.Linear)
}

func TestGenerateAndBind(t *testing.T) {
	c := qt.New(t)
	dev := gfxtest.NewDevice()
	tex := gfx.NewTexture2D(dev)

	pixels := bytes.Repeat([]byte{0xff, 0x00, 0x7f}, 4*2)
	c.Assert(tex.Generate(4, 2, pixels), qt.IsNil)
	c.Assert(dev.BoundTexture, qt.Equals, uint32(0))

	tex.Bind()
	c.Assert(dev.BoundTexture, qt.Equals, tex.ID)

	uploaded := dev.Textures[dev.BoundTexture]
	c.Assert(int(uploaded.Width), qt.Equals, tex.Width)
	c.Assert(int(uploaded.Height), qt.Equals, tex.Height)
	c.Assert(uploaded.ImageFormat, qt.Equals, gfx.RGB)
	c.Assert(uploaded.WrapS, qt.Equals, gfx.Repeat)
	c.Assert(uploaded.Min, qt.Equals, gfx.Linear)
	c.Assert(uploaded.Pixels, qt.DeepEquals, pixels)
}

func TestGenerateOnce(t *testing.T) {
	c := qt.New(t)
	dev := gfxtest.NewDevice()
	tex := gfx.NewTexture2D(dev)

	first := bytes.Repeat([]byte{0xff}, 2*2*3)
	c.Assert(tex.Generate(2, 2, first), qt.IsNil)
	c.Assert(tex.Generate(1, 1, []byte{0, 0, 0}), qt.Equals, gfx.ErrGenerated)

	c.Assert(tex.Width, qt.Equals, 2)
	c.Assert(tex.Height, qt.Equals, 2)
	c.Assert(dev.Textures[tex.ID].Pixels, qt.DeepEquals, first)
}

func TestGenerateRGBA(t *testing.T) {
	c := qt.New(t)
	dev := gfxtest.NewDevice()
	tex := gfx.NewTexture2D(dev)
	tex.InternalFormat = gfx.RGBA
	tex.ImageFormat = gfx.RGBA
	tex.WrapS, tex.WrapT = gfx.ClampToEdge, gfx.ClampToEdge
	tex.FilterMin, tex.FilterMax = gfx.Nearest, gfx.Nearest

	c.Assert(tex.Generate(1, 1, []byte{1, 2, 3, 4}), qt.IsNil)

	uploaded := dev.Textures[tex.ID]
	c.Assert(uploaded.InternalFormat, qt.Equals, gfx.RGBA)
	c.Assert(uploaded.WrapT, qt.Equals, gfx.ClampToEdge)
	c.Assert(uploaded.Mag, qt.Equals, gfx.Nearest)
}

func TestGenerateSizeMismatch(t *testing.T) {
	c := qt.New(t)
	dev := gfxtest.NewDevice()
	tex := gfx.NewTexture2D(dev)

	err := tex.Generate(2, 2, make([]byte, 2*2*4))
	var uploadErr *gfx.UploadError
	c.Assert(err, qt.ErrorAs, &uploadErr)
	c.Assert(uploadErr.Got, qt.Equals, 16)
	c.Assert(tex.Width, qt.Equals, 0)
	c.Assert(dev.Textures[tex.ID].Pixels, qt.IsNil)

	c.Assert(tex.Generate(0, 3, nil), qt.ErrorAs, &uploadErr)
}

func TestTextureRelease(t *testing.T) {
	c := qt.New(t)
	dev := gfxtest.NewDevice()
	tex := gfx.NewTexture2D(dev)
	id := tex.ID

	tex.Release()
	tex.Release()
	c.Assert(tex.ID, qt.Equals, uint32(0))
	c.Assert(dev.DeletedTextures[id], qt.Equals, 1)
	c.Assert(tex.Generate(1, 1, []byte{1, 2, 3}), qt.Equals, gfx.ErrReleased)
}
