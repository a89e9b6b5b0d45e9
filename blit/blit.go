// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blit implements the image viewer blit pass: a fullscreen
// triangle whose pixel stage maps each viewport pixel to a source image
// UV coordinate, point-samples the image there, and substitutes a
// procedural checkerboard wherever the coordinate falls outside the
// image (or no image is bound at all). The stages are pure functions of
// (position, constants, bound image) with no state between invocations,
// so they run identically as WGSL on the GPU (see gpublit) and as Go on
// the CPU through [Render].
package blit

import (
	"image/color"

	"cogentcore.org/core/math32"
	"imgv.dev/core/texture"
)

// Vertex is the ephemeral output of the vertex stage: a clip-space
// position and a texture coordinate. Vertices are produced fresh from
// the invocation index and never stored.
type Vertex struct {
	Pos math32.Vector4
	UV  math32.Vector2
}

// vertices is the fixed 3-entry table substituting for a vertex buffer:
// an oversized triangle that strictly contains the viewport quad
// [-1,1]x[-1,1] after clipping, so the pixel stage runs exactly once
// per covered pixel with no other geometry. The UVs interpolate to
// [0,1]x[0,1] across the viewport.
var vertices = [3]Vertex{
	{Pos: math32.Vec4(-1, +1, 0, 1), UV: math32.Vec2(0, 0)},
	{Pos: math32.Vec4(+3, +1, 0, 1), UV: math32.Vec2(2, 0)},
	{Pos: math32.Vec4(-1, -3, 0, 1), UV: math32.Vec2(0, 2)},
}

// VertexAt is the vertex stage: it returns the fixed vertex for the
// given invocation index. A draw issues exactly 3 invocations with
// indices 0, 1, 2; anything else is outside the contract (and panics).
func VertexAt(i int) Vertex {
	return vertices[i]
}

// Checkerboard parameters: block size in pixels, and the two grays as
// a mid value plus/minus a contrast delta. Even block parity gets the
// lighter gray. The resulting pattern is periodic with period
// 2*CheckerBlock in both axes.
const (
	CheckerBlock    = 8
	CheckerMid      = 0.5
	CheckerContrast = 0.05
)

// CheckerColor returns the transparency checkerboard color for the
// given viewport pixel position.
func CheckerColor(pos math32.Vector2) color.RGBA {
	bx := int(math32.Floor(pos.X / CheckerBlock))
	by := int(math32.Floor(pos.Y / CheckerBlock))
	v := float32(CheckerMid + CheckerContrast)
	if (bx+by)%2 != 0 {
		v = CheckerMid - CheckerContrast
	}
	g := quantize(v)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// PixelColor is the pixel stage: given an interpolated viewport pixel
// position, the per-draw constants, and the bound image (nil when none
// is bound), it produces the fully opaque output color. The position to
// UV transform comes precomputed in the constants; coordinates outside
// the unit square, and draws with no bound image, fall back to the
// checkerboard. That fallback is the designed behavior for out-of-range
// coordinates, not an error path.
func PixelColor(pos math32.Vector2, c *Constants, src *texture.Texture) color.RGBA {
	uv := c.ViewportToUV.Point(pos)
	if src == nil || c.NoImage() ||
		uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
		return CheckerColor(pos)
	}
	clr := src.Sample(uv, texture.Point)
	clr.A = 255
	return clr
}

// DefaultHighlightRadius is the radius in viewport pixels of the
// optional mouse highlight (see [Options.MouseHighlight]).
const DefaultHighlightRadius = 4

// MouseNear reports whether the given pixel position is within r pixels
// of the mouse position in the constants. It drives the mouse highlight
// option, which ships disabled.
func MouseNear(pos math32.Vector2, c *Constants, r float32) bool {
	return pos.Sub(c.MousePos()).Length() <= r
}

// quantize converts a [0,1] channel value to 8 bits:
// saturate, scale, round.
func quantize(x float32) uint8 {
	return uint8(math32.Round(math32.Clamp(x, 0, 1) * 255))
}

// QuantizeColor converts a [0,1] float RGBA color to 8-bit RGBA using
// the same rule the pixel stage applies to every channel it emits.
func QuantizeColor(c [4]float32) color.RGBA {
	return color.RGBA{
		R: quantize(c[0]),
		G: quantize(c[1]),
		B: quantize(c[2]),
		A: quantize(c[3]),
	}
}
