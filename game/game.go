// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package game holds the Breakout game state driven by the main loop.
package game

import (
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/devblok/breakout/resource"
)

// State is the current stage of the game
type State int

// Game states
const (
	Active State = iota
	Menu
	Win
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Menu:
		return "menu"
	case Win:
		return "win"
	}
	return "unknown"
}

// KeyCount is the size of the key state array
const KeyCount = 1024

// Names of the resources Init loads
const (
	SpriteShader = "sprite"
	BlankTexture = "blank"
)

// New creates a game for a screen of the given size
func New(width, height uint32) *Game {
	return &Game{
		State:  Active,
		Width:  width,
		Height: height,
	}
}

// Game is the state of a Breakout game
type Game struct {
	State State

	// Keys holds the pressed state of every key by scancode
	Keys [KeyCount]bool

	Width, Height uint32
}

// Init loads the resources the game renders with and sets up the
// sprite shader for a screen space projection.
func (g *Game) Init(cache *resource.Cache) error {
	shader, err := cache.LoadShader(SpriteShader, "sprite.vert", "sprite.frag", "")
	if err != nil {
		return errors.Wrap(err, "game init")
	}
	if _, err := cache.LoadTexture(BlankTexture, "blank.png", true); err != nil {
		return errors.Wrap(err, "game init")
	}

	shader.Use().
		SetInteger("image", 0).
		SetMatrix4("projection", g.Projection())
	return nil
}

// Projection maps screen pixels to clip space with the origin top left
func (g *Game) Projection() glm.Mat4 {
	return glm.Ortho(0, float32(g.Width), float32(g.Height), 0, -1, 1)
}

// SetKey records a key press or release. Codes outside the key
// array are ignored.
func (g *Game) SetKey(code int, pressed bool) {
	if code < 0 || code >= KeyCount {
		return
	}
	g.Keys[code] = pressed
}

// ProcessInput reacts to the key state
func (g *Game) ProcessInput(dt float32) {}

// Update advances the game by dt seconds
func (g *Game) Update(dt float32) {}

// Render draws the current frame
func (g *Game) Render() {}
