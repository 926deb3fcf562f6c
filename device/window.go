// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/breakout/core"
)

// InputHandler receives the input the window collects while polling
type InputHandler interface {
	// Key reports a key press or release by scancode
	Key(scancode int, pressed bool)

	// Resize reports the new framebuffer size
	Resize(width, height int32)
}

// NewWindow creates a window with a current OpenGL core profile context.
// SDL video has to be initialised before.
func NewWindow(cfg core.WindowConfiguration) (*Window, error) {
	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return nil, errors.Wrap(err, "sdl.GLSetAttribute()")
		}
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, errors.Wrap(err, "sdl.CreateWindow()")
	}

	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		return nil, errors.Wrap(err, "sdl.GLCreateContext()")
	}

	return &Window{
		window:  window,
		context: context,
	}, nil
}

// Window is an SDL window owning an OpenGL context
type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

// PollEvents drains the event queue into h. It returns false once the
// window was asked to close, either by the system or by the escape key.
func (w *Window) PollEvents(h InputHandler) bool {
	open := true
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.QuitEvent:
			open = false
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE && et.State == sdl.PRESSED {
				open = false
				continue
			}
			h.Key(int(et.Keysym.Scancode), et.State == sdl.PRESSED)
		case *sdl.WindowEvent:
			if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				h.Resize(et.Data1, et.Data2)
			}
		}
	}
	return open
}

// Swap presents the rendered frame
func (w *Window) Swap() {
	w.window.GLSwap()
}

// Destroy destroys the context and the window
func (w *Window) Destroy() {
	sdl.GLDeleteContext(w.context)
	w.window.Destroy()
}
