// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture provides the in-memory image resource that the blit
// pixel stage samples. Textures are built from already-decoded images:
// decoding files is the host's business, not this module's. A texture
// is read-only for the duration of a draw and the blit pass holds no
// ownership of it.
package texture

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/clone"
)

// Filter selects the sampling filter. The pixel stage uses [Point] for
// the image lookup so that pixel-level inspection is not blurred;
// [Linear] is the smooth alternative for hosts that scale content.
type Filter int32

const (
	// Point is nearest-neighbor sampling: no interpolation between texels.
	Point Filter = iota

	// Linear is bilinear interpolation between the four nearest texels.
	Linear
)

// Texture is a 2D RGBA image bound for sampling. Addressing is clamp to
// edge on both axes: coordinates beyond an edge return the nearest edge
// texel.
type Texture struct {
	img *image.RGBA
	dim math32.Vector2
}

// New returns a [Texture] backed by an RGBA copy of the given image,
// or nil for a nil image (no image bound).
func New(img image.Image) *Texture {
	if img == nil {
		return nil
	}
	r := clone.AsRGBA(img)
	sz := r.Bounds().Size()
	return &Texture{img: r, dim: math32.Vec2(float32(sz.X), float32(sz.Y))}
}

// Dim returns the texture size in pixels.
func (tx *Texture) Dim() math32.Vector2 {
	return tx.dim
}

// Image returns the backing RGBA image, for upload to a GPU texture or
// direct pixel access.
func (tx *Texture) Image() *image.RGBA {
	return tx.img
}

// At returns the texel at the given coordinates, clamped to the edges.
func (tx *Texture) At(x, y int) color.RGBA {
	b := tx.img.Bounds()
	x = min(max(x, 0), b.Dx()-1)
	y = min(max(y, 0), b.Dy()-1)
	return tx.img.RGBAAt(b.Min.X+x, b.Min.Y+y)
}

// Sample returns the color at the given normalized UV coordinate using
// the given filter. UV (0,0) is the top-left corner of the image and
// (1,1) the bottom-right; coordinates outside that square clamp to the
// edge texels.
func (tx *Texture) Sample(uv math32.Vector2, f Filter) color.RGBA {
	if f == Linear {
		return tx.sampleLinear(uv)
	}
	t := uv.Mul(tx.dim).Floor()
	return tx.At(int(t.X), int(t.Y))
}

// sampleLinear bilinearly blends the four texels around the sample
// point, with texel centers at integer+0.5 coordinates.
func (tx *Texture) sampleLinear(uv math32.Vector2) color.RGBA {
	t := uv.Mul(tx.dim).SubScalar(0.5)
	t0 := t.Floor()
	fx := t.X - t0.X
	fy := t.Y - t0.Y
	x0, y0 := int(t0.X), int(t0.Y)

	c00 := tx.At(x0, y0)
	c10 := tx.At(x0+1, y0)
	c01 := tx.At(x0, y0+1)
	c11 := tx.At(x0+1, y0+1)

	lerp2 := func(a, b, c, d uint8) uint8 {
		top := float32(a) + (float32(b)-float32(a))*fx
		bot := float32(c) + (float32(d)-float32(c))*fx
		return uint8(math32.Round(top + (bot-top)*fy))
	}
	return color.RGBA{
		R: lerp2(c00.R, c10.R, c01.R, c11.R),
		G: lerp2(c00.G, c10.G, c01.G, c11.G),
		B: lerp2(c00.B, c10.B, c01.B, c11.B),
		A: lerp2(c00.A, c10.A, c01.A, c11.A),
	}
}
