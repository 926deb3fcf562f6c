// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// ShaderSource holds the text of every stage of a program.
// Geometry is optional and skipped when empty.
type ShaderSource struct {
	Vertex   string
	Fragment string
	Geometry string
}

// NewShader creates an empty shader bound to the device.
// It needs to be compiled with Compile before use.
func NewShader(dev Device) *Shader {
	return &Shader{
		device:    dev,
		locations: make(map[string]int32),
	}
}

// Shader is a compiled and linked shader program.
type Shader struct {
	// ID is the native program handle, 0 until compiled
	ID uint32

	device    Device
	locations map[string]int32
}

// Compile compiles every stage in src and links them into the program.
// On failure all intermediate objects are deleted and the shader
// keeps the program it had before, if any.
func (s *Shader) Compile(src ShaderSource) error {
	type stageSource struct {
		stage  ShaderStage
		source string
	}
	stages := []stageSource{
		{VertexStage, src.Vertex},
		{FragmentStage, src.Fragment},
	}
	if src.Geometry != "" {
		stages = append(stages, stageSource{GeometryStage, src.Geometry})
	}

	var compiled []uint32
	deleteCompiled := func() {
		for _, handle := range compiled {
			s.device.DeleteShader(handle)
		}
	}

	for _, st := range stages {
		handle := s.device.CreateShader(st.stage)
		if ok, infoLog := s.device.CompileShader(handle, st.source); !ok {
			s.device.DeleteShader(handle)
			deleteCompiled()
			return &CompileError{Stage: st.stage, Log: infoLog}
		}
		compiled = append(compiled, handle)
	}

	program := s.device.CreateProgram()
	for _, handle := range compiled {
		s.device.AttachShader(program, handle)
	}
	ok, infoLog := s.device.LinkProgram(program)

	// stages are owned by the program once linked
	deleteCompiled()

	if !ok {
		s.device.DeleteProgram(program)
		return &LinkError{Log: infoLog}
	}

	s.Release()
	s.ID = program
	s.locations = make(map[string]int32)
	return nil
}

// Use activates the program for subsequent draw and uniform calls.
func (s *Shader) Use() *Shader {
	s.device.UseProgram(s.ID)
	return s
}

// location looks a uniform up once per program and remembers it.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := s.device.UniformLocation(s.ID, name)
	s.locations[name] = loc
	return loc
}

// SetFloat sets a float uniform of the currently used program
func (s *Shader) SetFloat(name string, value float32) *Shader {
	if loc := s.location(name); loc != -1 {
		s.device.Uniform1f(loc, value)
	}
	return s
}

// SetInteger sets an int uniform, also used for sampler units
func (s *Shader) SetInteger(name string, value int32) *Shader {
	if loc := s.location(name); loc != -1 {
		s.device.Uniform1i(loc, value)
	}
	return s
}

// SetVector2f sets a vec2 uniform from components
func (s *Shader) SetVector2f(name string, x, y float32) *Shader {
	if loc := s.location(name); loc != -1 {
		s.device.Uniform2f(loc, x, y)
	}
	return s
}

// SetVector2 sets a vec2 uniform
func (s *Shader) SetVector2(name string, value glm.Vec2) *Shader {
	return s.SetVector2f(name, value.X(), value.Y())
}

// SetVector3f sets a vec3 uniform from components
func (s *Shader) SetVector3f(name string, x, y, z float32) *Shader {
	if loc := s.location(name); loc != -1 {
		s.device.Uniform3f(loc, x, y, z)
	}
	return s
}

// SetVector3 sets a vec3 uniform
func (s *Shader) SetVector3(name string, value glm.Vec3) *Shader {
	return s.SetVector3f(name, value.X(), value.Y(), value.Z())
}

// SetVector4f sets a vec4 uniform from components
func (s *Shader) SetVector4f(name string, x, y, z, w float32) *Shader {
	if loc := s.location(name); loc != -1 {
		s.device.Uniform4f(loc, x, y, z, w)
	}
	return s
}

// SetVector4 sets a vec4 uniform
func (s *Shader) SetVector4(name string, value glm.Vec4) *Shader {
	return s.SetVector4f(name, value.X(), value.Y(), value.Z(), value.W())
}

// SetMatrix4 sets a column-major mat4 uniform
func (s *Shader) SetMatrix4(name string, value glm.Mat4) *Shader {
	if loc := s.location(name); loc != -1 {
		s.device.UniformMatrix4f(loc, value)
	}
	return s
}

// Release implements interface
func (s *Shader) Release() {
	if s.ID == 0 {
		return
	}
	s.device.DeleteProgram(s.ID)
	s.ID = 0
	s.locations = make(map[string]int32)
}
