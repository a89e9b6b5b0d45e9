// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blit

import (
	"image"
	"image/color"
	"image/draw"
	"runtime"
	"sync"

	"cogentcore.org/core/math32"
	"imgv.dev/core/texture"
)

// ClearColor is the color the frame is cleared to before the blit pass.
// The triangle covers every pixel, so it only shows through if the pass
// is skipped; it matches the GPU render pass clear.
var ClearColor = color.RGBA{R: 26, G: 51, B: 77, A: 255}

// Options are the host-tunable parts of a CPU blit pass, beyond what
// the constants carry.
type Options struct {

	// Clear is the frame clear color, [ClearColor] by default.
	Clear color.RGBA

	// MouseHighlight draws solid white within [Options.HighlightRadius]
	// pixels of the mouse position, over whatever the pixel stage
	// produced. It is a design option that ships disabled; leave it off
	// unless a host explicitly wants it.
	MouseHighlight bool

	// HighlightRadius is the mouse highlight radius in viewport pixels.
	HighlightRadius float32
}

// DefaultOptions returns the shipped option set: default clear color,
// mouse highlight off.
func DefaultOptions() *Options {
	return &Options{Clear: ClearColor, HighlightRadius: DefaultHighlightRadius}
}

// Render executes a full blit pass on the CPU: it allocates a frame of
// c.WindowDim size, clears it, and runs the pixel stage once per pixel
// at the pixel center, the way a rasterizer interpolates positions for
// a viewport-covering triangle. Pixels are independent, so rows are
// split into bands across worker goroutines; nothing is shared but the
// read-only constants and image, and each band writes disjoint rows.
// A nil opts means [DefaultOptions].
func Render(c *Constants, src *texture.Texture, opts *Options) *image.RGBA {
	if opts == nil {
		opts = DefaultOptions()
	}
	w := int(c.WindowDim.X)
	h := int(c.WindowDim.Y)
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Clear), image.Point{}, draw.Src)

	nb := min(runtime.GOMAXPROCS(0), h)
	rows := (h + nb - 1) / nb
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += rows {
		y1 := min(y0+rows, h)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			renderRows(img, c, src, opts, w, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
	return img
}

// renderRows runs the pixel stage over rows [y0,y1) of the frame.
func renderRows(img *image.RGBA, c *Constants, src *texture.Texture, opts *Options, w, y0, y1 int) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			pos := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
			clr := PixelColor(pos, c, src)
			if opts.MouseHighlight && MouseNear(pos, c, opts.HighlightRadius) {
				clr = white
			}
			img.SetRGBA(x, y, clr)
		}
	}
}
