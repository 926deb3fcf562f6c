// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the GPU resources the game renders with and the
// device interface they are created through.
package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Releasable defines any GPU-occupying item that can be freed.
type Releasable interface {

	// Release releases the GPU object owned by the implementing structure.
	// Calling it more than once is a no-op.
	Release()
}

var (
	_ Releasable = (*Shader)(nil)
	_ Releasable = (*Texture2D)(nil)
)

// Device describes the graphics API calls resources are built from.
// Every method mutates the global state of the current context, so a
// Device must only be driven from the thread that owns that context.
type Device interface {
	CreateShader(stage ShaderStage) uint32
	// CompileShader compiles source into the shader object and reports
	// success together with the driver's info log.
	CompileShader(shader uint32, source string) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// LinkProgram links the attached stages and reports success together
	// with the driver's info log.
	LinkProgram(program uint32) (bool, string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// UniformLocation returns -1 when the program has no active uniform
	// with that name.
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4f(location int32, m glm.Mat4)

	GenTexture() uint32
	// BindTexture binds to the 2D texture target, 0 unbinds.
	BindTexture(texture uint32)
	// TexImage2D uploads tightly packed rows to the bound texture.
	TexImage2D(width, height int32, internal, format PixelFormat, pixels []byte)
	// TexParameters applies wrap and filter modes to the bound texture.
	TexParameters(wrapS, wrapT WrapMode, min, mag FilterMode)
	DeleteTexture(texture uint32)
}

// ShaderStage identifies a programmable pipeline stage.
// Values match the OpenGL enums.
type ShaderStage uint32

// Supported pipeline stages
const (
	VertexStage   ShaderStage = 0x8B31
	FragmentStage ShaderStage = 0x8B30
	GeometryStage ShaderStage = 0x8DD9
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "VERTEX"
	case FragmentStage:
		return "FRAGMENT"
	case GeometryStage:
		return "GEOMETRY"
	}
	return "UNKNOWN"
}

// PixelFormat is the storage format of texture data.
// Values match the OpenGL enums.
type PixelFormat uint32

// Supported pixel formats
const (
	RGB  PixelFormat = 0x1907
	RGBA PixelFormat = 0x1908
)

// Channels returns the number of bytes one pixel takes in the format.
func (f PixelFormat) Channels() int {
	switch f {
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

func (f PixelFormat) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return "UNKNOWN"
}

// WrapMode is the texture coordinate wrapping along one axis.
// Values match the OpenGL enums.
type WrapMode uint32

// Supported wrap modes
const (
	Repeat         WrapMode = 0x2901
	MirroredRepeat WrapMode = 0x8370
	ClampToEdge    WrapMode = 0x812F
)

// FilterMode is the texture sampling filter.
// Values match the OpenGL enums.
type FilterMode uint32

// Supported filters
const (
	Nearest FilterMode = 0x2600
	Linear  FilterMode = 0x2601
)
