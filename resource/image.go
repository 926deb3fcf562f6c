// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resource

import (
	"bytes"
	"image"
	"image/draw"

	// image formats textures can be loaded from
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes any registered image format.
func decodeImage(data []byte) (image.Image, string, error) {
	return image.Decode(bytes.NewReader(data))
}

// GetPixels transforms a given image into tightly packed rows
// by drawing the decoded image onto a controlled RGBA canvas.
// Without alpha the fourth channel is dropped.
func GetPixels(img image.Image, alpha bool) []uint8 {
	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)
	if alpha {
		return canvas.Pix
	}

	rgb := make([]uint8, 0, bounds.Dx()*bounds.Dy()*3)
	for i := 0; i < len(canvas.Pix); i += 4 {
		rgb = append(rgb, canvas.Pix[i], canvas.Pix[i+1], canvas.Pix[i+2])
	}
	return rgb
}
