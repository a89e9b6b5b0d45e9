// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blit

import "cogentcore.org/core/math32"

// Transform2 is a 2D transform restricted to a per-axis scale followed by
// a translation: applying it to a point v computes v*Scale + Bias.
// It is the form the pixel stage consumes for the viewport to image UV
// mapping, and the form the host composes view placement from, so there
// is one transform representation on both sides of the constants block.
type Transform2 struct {
	Scale math32.Vector2
	Bias  math32.Vector2
}

// Identity returns the identity [Transform2] (unit scale, zero bias).
func Identity() Transform2 {
	return Transform2{Scale: math32.Vec2(1, 1)}
}

// Scale2D returns a pure scaling [Transform2] with the given x and y
// scale factors.
func Scale2D(x, y float32) Transform2 {
	return Transform2{Scale: math32.Vec2(x, y)}
}

// Translate2D returns a pure translation [Transform2] with the given
// x and y offsets.
func Translate2D(x, y float32) Transform2 {
	return Transform2{Scale: math32.Vec2(1, 1), Bias: math32.Vec2(x, y)}
}

// Point returns the given point transformed: v*Scale + Bias.
func (t Transform2) Point(v math32.Vector2) math32.Vector2 {
	return v.Mul(t.Scale).Add(t.Bias)
}

// Box returns the given box with both corners transformed by [Transform2.Point].
// Scales are positive in practice, so min and max stay ordered.
func (t Transform2) Box(b math32.Box2) math32.Box2 {
	return math32.Box2{Min: t.Point(b.Min), Max: t.Point(b.Max)}
}

// Translate returns this transform with the given offset added to the bias.
func (t Transform2) Translate(v math32.Vector2) Transform2 {
	t.Bias.SetAdd(v)
	return t
}

// Inverse returns the inverse transform, such that
// t.Inverse().Point(t.Point(v)) == v. A zero scale component has no
// inverse and produces Inf components.
func (t Transform2) Inverse() Transform2 {
	s := math32.Vec2(1, 1).Div(t.Scale)
	return Transform2{Scale: s, Bias: t.Bias.Negate().Mul(s)}
}

// Mul returns this transform composed with the other, following the
// matrix convention that the other is applied first:
// a.Mul(b).Point(v) == a.Point(b.Point(v)).
func (t Transform2) Mul(o Transform2) Transform2 {
	return Transform2{
		Scale: t.Scale.Mul(o.Scale),
		Bias:  o.Bias.Mul(t.Scale).Add(t.Bias),
	}
}

// Vector4 packs the transform for constants upload:
// scale in x, y and bias in z, w.
func (t Transform2) Vector4() math32.Vector4 {
	return math32.Vec4(t.Scale.X, t.Scale.Y, t.Bias.X, t.Bias.Y)
}
