// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// NewTexture2D generates a texture handle with the default
// RGB format, repeat wrapping and linear filtering.
func NewTexture2D(dev Device) *Texture2D {
	return &Texture2D{
		ID:             dev.GenTexture(),
		InternalFormat: RGB,
		ImageFormat:    RGB,
		WrapS:          Repeat,
		WrapT:          Repeat,
		FilterMin:      Linear,
		FilterMax:      Linear,
		device:         dev,
	}
}

// Texture2D is a two dimensional texture living on the GPU.
// Format, wrap and filter fields are read by Generate, changing them
// afterwards has no effect on the uploaded image.
type Texture2D struct {
	ID            uint32
	Width, Height int

	// InternalFormat is the format the GPU stores the image in,
	// ImageFormat the format of the uploaded pixels
	InternalFormat PixelFormat
	ImageFormat    PixelFormat

	WrapS, WrapT         WrapMode
	FilterMin, FilterMax FilterMode

	device Device
}

// Generate uploads pixels and applies the wrap and filter modes.
// A texture is generated once.
// Rows are tightly packed in ImageFormat, so pixels must hold exactly
// width*height*channels bytes.
func (t *Texture2D) Generate(width, height int, pixels []byte) error {
	if t.ID == 0 {
		return ErrReleased
	}
	if t.Width != 0 {
		return ErrGenerated
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height*t.ImageFormat.Channels() {
		return &UploadError{
			Width:  width,
			Height: height,
			Format: t.ImageFormat,
			Got:    len(pixels),
		}
	}

	t.Width = width
	t.Height = height

	t.device.BindTexture(t.ID)
	t.device.TexImage2D(int32(width), int32(height), t.InternalFormat, t.ImageFormat, pixels)
	t.device.TexParameters(t.WrapS, t.WrapT, t.FilterMin, t.FilterMax)
	t.device.BindTexture(0)
	return nil
}

// Bind makes the texture current for the next draw call.
func (t *Texture2D) Bind() {
	t.device.BindTexture(t.ID)
}

// Release implements interface
func (t *Texture2D) Release() {
	if t.ID == 0 {
		return
	}
	t.device.DeleteTexture(t.ID)
	t.ID = 0
}
