// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage returns a size x size gradient where the pixel at x, y
// has R=x, G=y.
func testImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	return img
}

func TestClampArea(t *testing.T) {
	bounds := image.Rect(0, 0, 800, 600)

	a, err := ClampArea(10, 20, 100, 50, bounds)
	require.NoError(t, err)
	assert.Equal(t, Area{X: 10, Y: 20, W: 100, H: 50}, a)

	// hanging off the top left: the visible part remains
	a, err = ClampArea(-50, -50, 100, 100, bounds)
	require.NoError(t, err)
	assert.Equal(t, Area{X: 0, Y: 0, W: 50, H: 50}, a)

	// hanging off the bottom right
	a, err = ClampArea(750, 550, 100, 100, bounds)
	require.NoError(t, err)
	assert.Equal(t, Area{X: 750, Y: 550, W: 50, H: 50}, a)

	// the area coordinates are relative to the frame, whatever its
	// bounds origin
	a, err = ClampArea(50, 50, 100, 100, image.Rect(100, 100, 300, 250))
	require.NoError(t, err)
	assert.Equal(t, Area{X: 50, Y: 50, W: 100, H: 100}, a)
}

func TestClampAreaInvalid(t *testing.T) {
	bounds := image.Rect(0, 0, 800, 600)

	_, err := ClampArea(900, 0, 100, 100, bounds)
	assert.Error(t, err)
	_, err = ClampArea(-200, 0, 100, 100, bounds)
	assert.Error(t, err)
	_, err = ClampArea(0, 700, 100, 100, bounds)
	assert.Error(t, err)
	_, err = ClampArea(10, 10, 0, 5, bounds)
	assert.Error(t, err)
	_, err = ClampArea(10, 10, 5, 0, bounds)
	assert.Error(t, err)
}

func TestAreaRect(t *testing.T) {
	a := Area{X: 1, Y: 2, W: 3, H: 4}
	assert.Equal(t, image.Rect(1, 2, 4, 6), a.Rect())
}

func TestRegion(t *testing.T) {
	src := testImage(64)

	got := Region(src, Area{X: 16, Y: 16, W: 32, H: 32})
	assert.Equal(t, image.Rect(0, 0, 32, 32), got.Bounds())
	assert.Equal(t, color.RGBA{R: 16, G: 16, A: 255}, got.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 47, G: 47, A: 255}, got.RGBAAt(31, 31))

	// subimages with offset bounds copy from their own origin
	sub := src.SubImage(image.Rect(8, 8, 40, 40))
	got = Region(sub, Area{X: 0, Y: 0, W: 8, H: 8})
	assert.Equal(t, color.RGBA{R: 8, G: 8, A: 255}, got.RGBAAt(0, 0))
}

func TestGrab(t *testing.T) {
	src := testImage(64)

	got, err := Grab(src, -10, -10, 20, 20)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), got.Bounds())
	assert.Equal(t, color.RGBA{A: 255}, got.RGBAAt(0, 0))

	_, err = Grab(src, 100, 100, 10, 10)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	src := testImage(32)

	png := filepath.Join(dir, "cap.png")
	require.NoError(t, Save(png, src))
	img, _, err := imagex.Open(png)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

	bmp := filepath.Join(dir, "cap.bmp")
	require.NoError(t, Save(bmp, src))
	img, _, err = imagex.Open(bmp)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

	assert.Error(t, Save(filepath.Join(dir, "cap.nope"), src))
}

func TestBMPBytes(t *testing.T) {
	b, err := BMPBytes(testImage(8))
	require.NoError(t, err)
	require.Greater(t, len(b), 2)
	assert.Equal(t, byte('B'), b[0])
	assert.Equal(t, byte('M'), b[1])
}
