// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrReleased is returned when a released resource is used again.
var ErrReleased = errors.New("resource already released")

// ErrGenerated is returned when a texture that already holds an image
// is generated again. A new image needs a new texture.
var ErrGenerated = errors.New("texture already generated")

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader compilation failed for stage %s: %s", e.Stage, e.Log)
}

// LinkError is returned when compiled stages fail to link into a program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program linking failed: %s", e.Log)
}

// UploadError is returned when pixel data does not fit the texture
// dimensions and format it is uploaded with.
type UploadError struct {
	Width, Height int
	Format        PixelFormat
	Got           int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("texture upload of %dx%d %s expects %d bytes, got %d",
		e.Width, e.Height, e.Format, e.Width*e.Height*e.Format.Channels(), e.Got)
}
