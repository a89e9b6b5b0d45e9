// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package capture extracts rectangular regions from rendered frames
// and encodes them for saving or for handing to system clipboards.
package capture

import (
	"bytes"
	"image"
	"image/draw"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
)

// Area is a capture region in pixels, relative to the origin of the
// frame it was clamped against.
type Area struct {
	X, Y, W, H int
}

// Rect returns the area as an [image.Rectangle].
func (a Area) Rect() image.Rectangle {
	return image.Rect(a.X, a.Y, a.X+a.W, a.Y+a.H)
}

// ClampArea clamps the requested x, y, w, h region to the given frame
// bounds, returning the visible portion relative to the frame origin.
// It returns an error if no part of the region is visible.
func ClampArea(x, y, w, h int, bounds image.Rectangle) (Area, error) {
	fw := bounds.Dx()
	fh := bounds.Dy()
	x1 := min(max(x, 0), fw)
	y1 := min(max(y, 0), fh)
	x2 := min(x+w, fw)
	y2 := min(y+h, fh)
	if x1 >= x2 || y1 >= y2 {
		return Area{}, errors.New("capture: area is outside the frame")
	}
	return Area{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, nil
}

// Region copies the given area of img into a new [image.RGBA].
// The area is interpreted relative to the origin of img's bounds.
func Region(img image.Image, a Area) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, a.W, a.H))
	sp := img.Bounds().Min.Add(image.Pt(a.X, a.Y))
	draw.Draw(dst, dst.Bounds(), img, sp, draw.Src)
	return dst
}

// Grab clamps the requested region against img's bounds and copies it.
func Grab(img image.Image, x, y, w, h int) (*image.RGBA, error) {
	a, err := ClampArea(x, y, w, h, img.Bounds())
	if err != nil {
		return nil, err
	}
	return Region(img, a), nil
}

// Save saves the image to the given filename, with the format inferred
// from the extension; png and bmp are the usual choices for captures.
func Save(filename string, img image.Image) error {
	return imagex.Save(img, filename)
}

// BMPBytes encodes img as an in-memory BMP, the format system
// clipboards expect for image data.
func BMPBytes(img image.Image) ([]byte, error) {
	var b bytes.Buffer
	if err := imagex.Write(img, &b, imagex.BMP); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
