// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpublit runs the blit pass on the GPU. It owns a graphics
// system with one pipeline, the embedded WGSL shader, a uniform holding
// the per-draw [blit.Constants], and a single sampled texture for the
// source image. The shader computes the same pixel stage as the CPU
// path in [blit], so the two produce the same frame for the same
// constants and image.
package gpublit

import (
	"embed"
	"image"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"imgv.dev/core/blit"
)

//go:embed shaders/*.wgsl
var shaders embed.FS

const (
	// BackbufferAlign is the granularity offscreen render target sizes
	// are rounded up to, so that small window resizes reuse the target
	// instead of reallocating it.
	BackbufferAlign = 512

	// MaxBackbufferDim is the largest offscreen render target dimension.
	MaxBackbufferDim = 16384
)

// AlignDim rounds a dimension up to the next [BackbufferAlign] multiple.
func AlignDim(dim int) int {
	return (dim + BackbufferAlign - 1) / BackbufferAlign * BackbufferAlign
}

// AlignSize rounds both dimensions up to [BackbufferAlign] multiples.
func AlignSize(size image.Point) image.Point {
	return image.Point{X: AlignDim(size.X), Y: AlignDim(size.Y)}
}

// Blitter renders blit pass frames into the given renderer, either a
// Surface or an offscreen RenderTexture.
type Blitter struct {

	// System manages the pipeline, shader, and variable bindings.
	System *gpu.GraphicsSystem

	pipeline *gpu.GraphicsPipeline

	// single uniform value holding the current constants.
	constVal *gpu.Value

	// single texture value holding the current source image.
	texVal *gpu.Value

	// window is the window size frames are rendered for.
	window image.Point

	// target is the allocated render target size: equal to window for
	// surfaces, aligned and grow-only for offscreen targets.
	target image.Point
}

// NewBlitter returns a Blitter rendering to the given renderer,
// with the pipeline and bindings configured and a placeholder image
// bound. Constants start zeroed, so frames show the checkerboard
// until [Blitter.SetImage] and [Blitter.SetConstants] are called.
func NewBlitter(gp *gpu.GPU, rd gpu.Renderer) *Blitter {
	bl := &Blitter{}
	bl.configSystem(gp, rd)
	return bl
}

func (bl *Blitter) configSystem(gp *gpu.GPU, rd gpu.Renderer) {
	sy := gpu.NewGraphicsSystem(gp, "blit", rd)
	bl.System = sy

	pl := sy.AddGraphicsPipeline("blit")
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetAlphaBlend(false)
	bl.pipeline = pl

	sh := pl.AddShader("blit")
	errors.Log(sh.OpenFileFS(shaders, "shaders/blit.wgsl"))
	pl.AddEntry(sh, gpu.VertexShader, "vs_main")
	pl.AddEntry(sh, gpu.FragmentShader, "fs_main")

	cgp := sy.Vars().AddGroup(gpu.Uniform, "Constants")
	tgp := sy.Vars().AddGroup(gpu.SampledTexture, "Texture")

	cv := cgp.AddStruct("Constants", int(unsafe.Sizeof(blit.Constants{})), 1,
		gpu.VertexShader, gpu.FragmentShader)
	tv := tgp.Add("TexImage", gpu.TextureRGBA32, 1, gpu.FragmentShader)

	cgp.SetNValues(1)
	tgp.SetNValues(1)
	sy.SetClearColor(blit.ClearColor)
	sy.Config()

	bl.constVal = cv.Values.Values[0]
	bl.texVal = tv.Values.Values[0]

	// a texture must always be bound; zeroed constants keep the
	// checkerboard path active so this placeholder is never sampled.
	dimg := image.NewRGBA(image.Rect(0, 0, 1, 1))
	bl.texVal.SetFromGoImage(dimg, 0)
	var c blit.Constants
	bl.SetConstants(&c)
}

// SetConstants uploads the per-draw constants for subsequent frames.
func (bl *Blitter) SetConstants(c *blit.Constants) {
	errors.Log(gpu.SetValueFrom(bl.constVal, []blit.Constants{*c}))
}

// SetImage uploads the source image for subsequent frames. The
// dimensions in the constants must match for it to be sampled.
func (bl *Blitter) SetImage(img image.Image) {
	bl.texVal.SetFromGoImage(img, 0)
}

// SetSize sets the window size frames are rendered for. Surface
// renderers are resized to exactly that; offscreen render targets are
// rounded up to [BackbufferAlign] granularity and only ever grow, up
// to [MaxBackbufferDim] per dimension.
func (bl *Blitter) SetSize(size image.Point) error {
	bl.window = size
	if _, ok := bl.System.Renderer.(*gpu.RenderTexture); !ok {
		bl.target = size
		bl.System.SetSize(size)
		return nil
	}
	asz := AlignSize(size)
	if asz.X > MaxBackbufferDim || asz.Y > MaxBackbufferDim {
		return errors.New("gpublit: render target size limit exceeded")
	}
	nsz := image.Point{X: max(bl.target.X, asz.X), Y: max(bl.target.Y, asz.Y)}
	if nsz != bl.target {
		bl.target = nsz
		bl.System.SetSize(nsz)
	}
	return nil
}

// RenderFrame renders one frame: begin the pass, bind the pipeline,
// draw the 3 vertices of the fullscreen triangle, and present. When
// the render target is larger than the window, the viewport restricts
// drawing to the window region.
func (bl *Blitter) RenderFrame() error {
	sy := bl.System
	rp, err := sy.BeginRenderPass()
	if errors.Log(err) != nil {
		return err
	}
	if bl.window != bl.target && bl.window != (image.Point{}) {
		rp.SetViewport(0, 0, float32(bl.window.X), float32(bl.window.Y), 0, 1)
	}
	bl.pipeline.BindPipeline(rp)
	rp.Draw(3, 1, 0, 0)
	rp.End()
	sy.EndRenderPass(rp)
	return nil
}

// Release frees the GPU resources held by the blitter.
func (bl *Blitter) Release() {
	bl.System.Release()
}
