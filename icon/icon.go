// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icon procedurally renders the application icon, a diagonal
// color gradient, at any size.
package icon

import (
	"image"
	"image/color"
	"os"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"github.com/jackmordaunt/icns/v2"
	"imgv.dev/core/blit"
)

// Size is the standard icon size in pixels.
const Size = 16

// At returns the icon color at the given UV coordinate in [0,1]:
// red rises left to right, green top to bottom, and blue is one minus
// the mean of the other two, so every corner gets a distinct color.
func At(uv math32.Vector2) color.RGBA {
	r := uv.X
	g := uv.Y
	b := 1 - (r+g)/2
	return blit.QuantizeColor([4]float32{r, g, b, 1})
}

// Render renders the icon at the given size; use [Size] for the
// standard one.
func Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			uv := math32.Vec2(float32(x)/float32(size), float32(y)/float32(size))
			img.SetRGBA(x, y, At(uv))
		}
	}
	return img
}

// SavePNG saves the icon rendered at the given size to a png file.
func SavePNG(filename string, size int) error {
	return imagex.Save(Render(size), filename)
}

// SaveICNS saves the icon to an icns file, rendered at the 1024 pixel
// size the format wants for its largest representation.
func SaveICNS(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return icns.Encode(f, Render(1024))
}
