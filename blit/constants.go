// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blit

import "cogentcore.org/core/math32"

// Constants is the fixed-layout block of per-draw state for the blit
// pass. The host fills it once per draw and it is immutable for the
// duration of that draw; both stages read it and nothing else varies
// between pixels. The field order and types match the 48 byte GPU
// uniform layout (three 16 byte rows), so the struct uploads as-is.
type Constants struct {

	// ImageDim is the bound image size in pixels. A zero component
	// means no image is bound and every pixel gets the checkerboard.
	ImageDim math32.Vector2

	// WindowDim is the viewport size in pixels.
	WindowDim math32.Vector2

	// Mouse is the precomputed mouse state: position in viewport pixels
	// in X, Y, the [MouseButtons] bitmask in Z, and W reserved.
	Mouse math32.Vector4

	// ViewportToUV maps a viewport pixel position to a normalized image
	// UV coordinate. The host precomputes it, accounting for image
	// aspect ratio, window size, zoom, and pan, so the pixel stage does
	// no division.
	ViewportToUV Transform2
}

// NewConstants returns a [Constants] block for the given image and
// window dimensions and viewport to UV transform, with a zero mouse.
func NewConstants(imageDim, windowDim math32.Vector2, xfm Transform2) Constants {
	return Constants{ImageDim: imageDim, WindowDim: windowDim, ViewportToUV: xfm}
}

// SetMouse sets the mouse position and button state for the next draw.
// The position is in viewport pixels, as fed in by the host; nothing in
// this package tracks input.
func (c *Constants) SetMouse(pos math32.Vector2, buttons MouseButtons) {
	c.Mouse = math32.Vec4(pos.X, pos.Y, float32(buttons), 0)
}

// MousePos returns the mouse position carried in the constants.
func (c *Constants) MousePos() math32.Vector2 {
	return math32.Vec2(c.Mouse.X, c.Mouse.Y)
}

// NoImage reports whether the constants indicate that no image is
// bound, i.e., either image dimension is zero.
func (c *Constants) NoImage() bool {
	return c.ImageDim.X == 0 || c.ImageDim.Y == 0
}

// MouseButtons is the mouse button bitmask carried in the Z component
// of [Constants.Mouse], as a float on the GPU side.
type MouseButtons int32

const (
	MouseLeft MouseButtons = 1 << iota
	MouseRight
	MouseMiddle
)
