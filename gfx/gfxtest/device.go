// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfxtest provides an in-memory gfx.Device for tests that
// need GPU resources without a graphics context.
package gfxtest

import (
	"strings"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/breakout/gfx"
)

// FailMarker makes a shader stage fail compilation when present in its
// source, and LinkFailMarker makes the program fail linking.
const (
	FailMarker     = "#error"
	LinkFailMarker = "#nolink"
)

// Texture is the device side state of a texture.
type Texture struct {
	Width, Height  int32
	InternalFormat gfx.PixelFormat
	ImageFormat    gfx.PixelFormat
	WrapS, WrapT   gfx.WrapMode
	Min, Mag       gfx.FilterMode
	Pixels         []byte
}

// Program is the device side state of a shader program.
type Program struct {
	Stages   []gfx.ShaderStage
	Uniforms map[string]interface{}

	shaders []uint32
}

// Device records every object and uniform it is asked to manage.
type Device struct {
	// Programs and Textures hold live objects by handle
	Programs map[uint32]*Program
	Textures map[uint32]*Texture

	// DeletedPrograms and DeletedTextures count delete calls per handle
	DeletedPrograms map[uint32]int
	DeletedTextures map[uint32]int

	// LocationLookups counts UniformLocation calls
	LocationLookups int

	CurrentProgram uint32
	BoundTexture   uint32

	next        uint32
	shaders     map[uint32]gfx.ShaderStage
	sources     map[uint32]string
	locations   map[int32]string
	liveShaders int
}

// NewDevice creates an empty Device.
func NewDevice() *Device {
	return &Device{
		Programs:        make(map[uint32]*Program),
		Textures:        make(map[uint32]*Texture),
		DeletedPrograms: make(map[uint32]int),
		DeletedTextures: make(map[uint32]int),
		shaders:         make(map[uint32]gfx.ShaderStage),
		sources:         make(map[uint32]string),
		locations:       make(map[int32]string),
	}
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

// LiveShaders returns the number of shader stage objects not yet deleted.
func (d *Device) LiveShaders() int {
	return d.liveShaders
}

// CreateShader implements interface
func (d *Device) CreateShader(stage gfx.ShaderStage) uint32 {
	h := d.handle()
	d.shaders[h] = stage
	d.liveShaders++
	return h
}

// CompileShader implements interface
func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	d.sources[shader] = source
	if strings.Contains(source, FailMarker) {
		return false, "0:1(1): error: " + FailMarker
	}
	return true, ""
}

// DeleteShader implements interface
func (d *Device) DeleteShader(shader uint32) {
	if _, ok := d.shaders[shader]; ok {
		delete(d.shaders, shader)
		d.liveShaders--
	}
}

// CreateProgram implements interface
func (d *Device) CreateProgram() uint32 {
	h := d.handle()
	d.Programs[h] = &Program{Uniforms: make(map[string]interface{})}
	return h
}

// AttachShader implements interface
func (d *Device) AttachShader(program, shader uint32) {
	p := d.Programs[program]
	p.shaders = append(p.shaders, shader)
	p.Stages = append(p.Stages, d.shaders[shader])
}

// LinkProgram implements interface
func (d *Device) LinkProgram(program uint32) (bool, string) {
	for _, s := range d.Programs[program].shaders {
		if strings.Contains(d.sources[s], LinkFailMarker) {
			return false, "error: linking with uncompiled/unspecialized shader"
		}
	}
	return true, ""
}

// DeleteProgram implements interface
func (d *Device) DeleteProgram(program uint32) {
	delete(d.Programs, program)
	d.DeletedPrograms[program]++
}

// UseProgram implements interface
func (d *Device) UseProgram(program uint32) {
	d.CurrentProgram = program
}

// UniformLocation implements interface. Names starting with "unused"
// behave like uniforms the linker optimised out.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.LocationLookups++
	if _, ok := d.Programs[program]; !ok || strings.HasPrefix(name, "unused") {
		return -1
	}
	loc := int32(len(d.locations))
	d.locations[loc] = name
	return loc
}

func (d *Device) setUniform(location int32, v interface{}) {
	if p, ok := d.Programs[d.CurrentProgram]; ok {
		p.Uniforms[d.locations[location]] = v
	}
}

// Uniform1f implements interface
func (d *Device) Uniform1f(location int32, v float32) { d.setUniform(location, v) }

// Uniform1i implements interface
func (d *Device) Uniform1i(location int32, v int32) { d.setUniform(location, v) }

// Uniform2f implements interface
func (d *Device) Uniform2f(location int32, x, y float32) {
	d.setUniform(location, glm.Vec2{x, y})
}

// Uniform3f implements interface
func (d *Device) Uniform3f(location int32, x, y, z float32) {
	d.setUniform(location, glm.Vec3{x, y, z})
}

// Uniform4f implements interface
func (d *Device) Uniform4f(location int32, x, y, z, w float32) {
	d.setUniform(location, glm.Vec4{x, y, z, w})
}

// UniformMatrix4f implements interface
func (d *Device) UniformMatrix4f(location int32, m glm.Mat4) { d.setUniform(location, m) }

// GenTexture implements interface
func (d *Device) GenTexture() uint32 {
	h := d.handle()
	d.Textures[h] = &Texture{}
	return h
}

// BindTexture implements interface
func (d *Device) BindTexture(texture uint32) {
	d.BoundTexture = texture
}

// TexImage2D implements interface
func (d *Device) TexImage2D(width, height int32, internal, format gfx.PixelFormat, pixels []byte) {
	t, ok := d.Textures[d.BoundTexture]
	if !ok {
		return
	}
	t.Width, t.Height = width, height
	t.InternalFormat, t.ImageFormat = internal, format
	t.Pixels = append([]byte(nil), pixels...)
}

// TexParameters implements interface
func (d *Device) TexParameters(wrapS, wrapT gfx.WrapMode, min, mag gfx.FilterMode) {
	if t, ok := d.Textures[d.BoundTexture]; ok {
		t.WrapS, t.WrapT, t.Min, t.Mag = wrapS, wrapT, min, mag
	}
}

// DeleteTexture implements interface
func (d *Device) DeleteTexture(texture uint32) {
	delete(d.Textures, texture)
	d.DeletedTextures[texture]++
}
