// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"imgv.dev/core/blit"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va math32.Vector2) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func TestFit(t *testing.T) {
	// same aspect: the image fills the window
	vs := NewState(math32.Vec2(400, 300), math32.Vec2(800, 600))
	assert.Equal(t, math32.Vec2(2, 2), vs.Placement.Scale)
	assert.Equal(t, math32.Vec2(0, 0), vs.Placement.Bias)
	assert.Equal(t, math32.B2(0, 0, 800, 600), vs.ImageBox())

	// wide image: letterboxed vertically
	vs = NewState(math32.Vec2(800, 200), math32.Vec2(800, 600))
	assert.Equal(t, math32.Vec2(1, 1), vs.Placement.Scale)
	assert.Equal(t, math32.Vec2(0, 200), vs.Placement.Bias)

	// tall image: pillarboxed horizontally
	vs = NewState(math32.Vec2(300, 600), math32.Vec2(600, 600))
	assert.Equal(t, math32.Vec2(1, 1), vs.Placement.Scale)
	assert.Equal(t, math32.Vec2(150, 0), vs.Placement.Bias)
}

func TestActualSize(t *testing.T) {
	vs := NewState(math32.Vec2(200, 100), math32.Vec2(800, 600))
	vs.ActualSize()
	assert.Equal(t, math32.Vec2(1, 1), vs.Placement.Scale)
	assert.Equal(t, math32.Vec2(300, 250), vs.Placement.Bias)
	assert.Equal(t, math32.B2(300, 250, 500, 350), vs.ImageBox())
}

func TestZoomAt(t *testing.T) {
	vs := NewState(math32.Vec2(400, 300), math32.Vec2(800, 600))
	anchor := math32.Vec2(400, 300)
	under := vs.Placement.Inverse().Point(anchor)

	vs.ZoomAt(2, anchor)
	assert.Equal(t, math32.Vec2(4, 4), vs.Placement.Scale)
	// the image point under the anchor stays under the anchor
	tolAssertEqualVector(t, standardTol, anchor, vs.Placement.Point(under))

	vs.ZoomAt(0.5, anchor)
	assert.Equal(t, math32.Vec2(2, 2), vs.Placement.Scale)
	tolAssertEqualVector(t, standardTol, anchor, vs.Placement.Point(under))
}

func TestPan(t *testing.T) {
	vs := NewState(math32.Vec2(400, 300), math32.Vec2(800, 600))
	vs.Pan(math32.Vec2(10, -20))
	assert.Equal(t, math32.Vec2(10, -20), vs.Placement.Bias)
	assert.Equal(t, math32.B2(10, -20, 810, 580), vs.ImageBox())
}

func TestConstants(t *testing.T) {
	vs := NewState(math32.Vec2(400, 300), math32.Vec2(800, 600))
	vs.SetMouse(math32.Vec2(12, 34), blit.MouseLeft)
	c := vs.Constants()

	assert.Equal(t, math32.Vec2(400, 300), c.ImageDim)
	assert.Equal(t, math32.Vec2(800, 600), c.WindowDim)
	assert.Equal(t, math32.Vec4(12, 34, 1, 0), c.Mouse)

	// fit of a matching aspect gives the plain window normalization
	tolAssertEqualVector(t, standardTol,
		math32.Vec2(1.0/800, 1.0/600), c.ViewportToUV.Scale)
	tolAssertEqualVector(t, standardTol, math32.Vec2(0, 0), c.ViewportToUV.Bias)

	tolAssertEqualVector(t, standardTol, math32.Vec2(0, 0),
		c.ViewportToUV.Point(math32.Vec2(0, 0)))
	tolAssertEqualVector(t, standardTol, math32.Vec2(1, 1),
		c.ViewportToUV.Point(math32.Vec2(800, 600)))
}

func TestConstantsLetterbox(t *testing.T) {
	vs := NewState(math32.Vec2(800, 200), math32.Vec2(800, 600))
	c := vs.Constants()

	// the image band maps to the unit square; the margins land outside
	tolAssertEqualVector(t, standardTol, math32.Vec2(0, 0),
		c.ViewportToUV.Point(math32.Vec2(0, 200)))
	tolAssertEqualVector(t, standardTol, math32.Vec2(1, 1),
		c.ViewportToUV.Point(math32.Vec2(800, 400)))
	tolAssertEqualVector(t, standardTol, math32.Vec2(0.5, 0.5),
		c.ViewportToUV.Point(math32.Vec2(400, 300)))
	assert.Less(t, c.ViewportToUV.Point(math32.Vec2(400, 0)).Y, float32(0))
	assert.Greater(t, c.ViewportToUV.Point(math32.Vec2(400, 599)).Y, float32(1))
}

func TestConstantsNoImage(t *testing.T) {
	vs := NewState(math32.Vec2(0, 0), math32.Vec2(800, 600))
	c := vs.Constants()
	assert.True(t, c.NoImage())
	assert.Equal(t, blit.Identity(), c.ViewportToUV)
	assert.Equal(t, blit.Identity(), vs.Placement)
}

func TestSetImageWindow(t *testing.T) {
	vs := NewState(math32.Vec2(400, 300), math32.Vec2(800, 600))

	// a new image refits
	vs.SetImage(math32.Vec2(800, 200))
	assert.Equal(t, math32.Vec2(800, 200), vs.ImageDim)
	assert.Equal(t, math32.Vec2(0, 200), vs.Placement.Bias)

	// a new window keeps the placement until the host refits
	vs.Pan(math32.Vec2(5, 5))
	place := vs.Placement
	vs.SetWindow(math32.Vec2(1024, 768))
	assert.Equal(t, place, vs.Placement)
	vs.Fit()
	assert.NotEqual(t, place, vs.Placement)
}
