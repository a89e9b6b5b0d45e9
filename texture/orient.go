// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Orientation is an EXIF orientation value (1..8) describing the
// transform that maps stored pixels to displayed pixels. Rotations are
// clockwise.
type Orientation int32

const (
	Normal Orientation = iota + 1
	FlipH
	Rotate180
	FlipV
	Transpose
	Rotate90
	Transverse
	Rotate270
)

// Orient returns a copy of the given image with the orientation
// applied, so that a texture built from the result displays upright.
// The four transposed cases swap width and height. Values outside 1..8
// are treated as [Normal].
func Orient(img image.Image, o Orientation) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mnx, mny := float64(b.Min.X), float64(b.Min.Y)
	mxx, mxy := float64(b.Max.X), float64(b.Max.Y)

	var m f64.Aff3
	dw, dh := w, h
	switch o {
	case FlipH:
		m = f64.Aff3{-1, 0, mxx, 0, 1, -mny}
	case Rotate180:
		m = f64.Aff3{-1, 0, mxx, 0, -1, mxy}
	case FlipV:
		m = f64.Aff3{1, 0, -mnx, 0, -1, mxy}
	case Transpose:
		m = f64.Aff3{0, 1, -mny, 1, 0, -mnx}
		dw, dh = h, w
	case Rotate90:
		m = f64.Aff3{0, -1, mxy, 1, 0, -mnx}
		dw, dh = h, w
	case Transverse:
		m = f64.Aff3{0, -1, mxy, -1, 0, mxx}
		dw, dh = h, w
	case Rotate270:
		m = f64.Aff3{0, 1, -mny, -1, 0, mxx}
		dw, dh = h, w
	default:
		return clone.AsRGBA(img)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Transform(dst, m, img, b, draw.Src, nil)
	return dst
}
