// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view holds the host-side state that turns "this image, in
// this window, at this zoom and pan" into the constants block the blit
// pass consumes. All aspect ratio and resize arithmetic happens here,
// once per change, so the per-pixel stage never divides.
package view

import (
	"cogentcore.org/core/math32"
	"imgv.dev/core/blit"
)

// State is the view of one image in one window. The zero value is an
// empty view (no image, zero window) that renders as all checkerboard.
type State struct {

	// ImageDim is the bound image size in pixels, zero when no image
	// is bound.
	ImageDim math32.Vector2

	// WindowDim is the window client area size in pixels.
	WindowDim math32.Vector2

	// Placement maps image pixel coordinates to viewport pixel
	// coordinates: where and how large the image is on screen.
	Placement blit.Transform2

	// Mouse is the precomputed mouse state passed through to the
	// constants; see [blit.Constants.Mouse].
	Mouse math32.Vector4
}

// NewState returns a view for the given image and window sizes, with
// the image fit to the window.
func NewState(imageDim, windowDim math32.Vector2) *State {
	vs := &State{ImageDim: imageDim, WindowDim: windowDim}
	vs.Fit()
	return vs
}

// noImage reports whether there is no usable image bound.
func (vs *State) noImage() bool {
	return vs.ImageDim.X <= 0 || vs.ImageDim.Y <= 0
}

// SetImage binds a new image size and fits it to the window.
func (vs *State) SetImage(dim math32.Vector2) {
	vs.ImageDim = dim
	vs.Fit()
}

// SetWindow sets a new window size, keeping the current placement.
// Hosts that want the image refit on resize call [State.Fit] after.
func (vs *State) SetWindow(dim math32.Vector2) {
	vs.WindowDim = dim
}

// SetMouse stores the precomputed mouse position and button state.
func (vs *State) SetMouse(pos math32.Vector2, buttons blit.MouseButtons) {
	vs.Mouse = math32.Vec4(pos.X, pos.Y, float32(buttons), 0)
}

// Fit places the image at the largest uniform scale that fits entirely
// in the window, centered.
func (vs *State) Fit() {
	if vs.noImage() {
		vs.Placement = blit.Identity()
		return
	}
	k := math32.Min(vs.WindowDim.X/vs.ImageDim.X, vs.WindowDim.Y/vs.ImageDim.Y)
	vs.place(k)
}

// ActualSize places the image at 1:1 texels to pixels, centered.
// Images larger than the window extend past it and the blit clips.
func (vs *State) ActualSize() {
	if vs.noImage() {
		vs.Placement = blit.Identity()
		return
	}
	vs.place(1)
}

// place centers the image at the given uniform scale.
func (vs *State) place(k float32) {
	sz := vs.ImageDim.MulScalar(k)
	off := vs.WindowDim.Sub(sz).MulScalar(0.5)
	vs.Placement = blit.Transform2{Scale: math32.Vec2(k, k), Bias: off}
}

// ZoomAt scales the placement by the given factor about a viewport
// point, so the content under the anchor (typically the mouse) stays
// put while everything else scales around it.
func (vs *State) ZoomAt(factor float32, anchor math32.Vector2) {
	zoom := blit.Transform2{
		Scale: math32.Vec2(factor, factor),
		Bias:  anchor.MulScalar(1 - factor),
	}
	vs.Placement = zoom.Mul(vs.Placement)
}

// Pan translates the placement by the given viewport pixel delta.
func (vs *State) Pan(delta math32.Vector2) {
	vs.Placement = vs.Placement.Translate(delta)
}

// ImageBox returns the image's placed bounding box in viewport pixels.
func (vs *State) ImageBox() math32.Box2 {
	return vs.Placement.Box(math32.B2(0, 0, vs.ImageDim.X, vs.ImageDim.Y))
}

// Constants assembles the per-draw constants block: dimensions, mouse,
// and the viewport to image UV transform, which is the inverse of the
// placement followed by normalization by the image size.
func (vs *State) Constants() blit.Constants {
	c := blit.NewConstants(vs.ImageDim, vs.WindowDim, blit.Identity())
	c.Mouse = vs.Mouse
	if !vs.noImage() {
		norm := blit.Scale2D(1/vs.ImageDim.X, 1/vs.ImageDim.Y)
		c.ViewportToUV = norm.Mul(vs.Placement.Inverse())
	}
	return c
}
