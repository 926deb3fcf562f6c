// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device implements gfx.Device on OpenGL and provides
// the window that owns the OpenGL context.
package device

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/devblok/breakout/gfx"
)

// Info describes the driver behind the current context
type Info struct {
	Vendor      string
	Renderer    string
	Version     string
	GLSLVersion string
}

// NewOpenGL loads the OpenGL function pointers for the current context.
// A context has to be current on the calling thread.
func NewOpenGL() (*OpenGL, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "gl.Init()")
	}
	return &OpenGL{}, nil
}

var _ gfx.Device = (*OpenGL)(nil)

// OpenGL is a gfx.Device issuing calls to the current OpenGL context
type OpenGL struct{}

// Info queries the driver identification strings
func (o *OpenGL) Info() Info {
	return Info{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// Configure sets up the viewport and alpha blending used for sprites
func (o *OpenGL) Configure(width, height int32) {
	o.Viewport(width, height)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
}

// Viewport resizes the viewport to the framebuffer size
func (o *OpenGL) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// Clear clears the color buffer with the given color
func (o *OpenGL) Clear(color glm.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CreateShader implements interface
func (o *OpenGL) CreateShader(stage gfx.ShaderStage) uint32 {
	return gl.CreateShader(uint32(stage))
}

// CompileShader implements interface
func (o *OpenGL) CompileShader(shader uint32, source string) (bool, string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.TRUE {
		return true, ""
	}

	var logSize int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
	buf := make([]uint8, logSize+1)
	gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])
	return false, string(buf[:logSize])
}

// DeleteShader implements interface
func (o *OpenGL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram implements interface
func (o *OpenGL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader implements interface
func (o *OpenGL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram implements interface
func (o *OpenGL) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var isLinked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &isLinked)
	if isLinked == gl.TRUE {
		return true, ""
	}

	var logSize int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logSize)
	buf := make([]uint8, logSize+1)
	gl.GetProgramInfoLog(program, int32(len(buf)), &logSize, &buf[0])
	return false, string(buf[:logSize])
}

// DeleteProgram implements interface
func (o *OpenGL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UseProgram implements interface
func (o *OpenGL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// UniformLocation implements interface
func (o *OpenGL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform1f implements interface
func (o *OpenGL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

// Uniform1i implements interface
func (o *OpenGL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

// Uniform2f implements interface
func (o *OpenGL) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

// Uniform3f implements interface
func (o *OpenGL) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

// Uniform4f implements interface
func (o *OpenGL) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

// UniformMatrix4f implements interface
func (o *OpenGL) UniformMatrix4f(location int32, m glm.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// GenTexture implements interface
func (o *OpenGL) GenTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

// BindTexture implements interface
func (o *OpenGL) BindTexture(texture uint32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// TexImage2D implements interface
func (o *OpenGL) TexImage2D(width, height int32, internal, format gfx.PixelFormat, pixels []byte) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(internal), width, height,
		0, uint32(format), gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// TexParameters implements interface
func (o *OpenGL) TexParameters(wrapS, wrapT gfx.WrapMode, min, mag gfx.FilterMode) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(wrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(wrapT))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(min))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(mag))
}

// DeleteTexture implements interface
func (o *OpenGL) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}
