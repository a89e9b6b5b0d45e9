// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"github.com/anthonynsimon/bild/transform"
)

// Resized returns a new texture resampled to the given size with the
// given filter, for thumbnails and prescaled copies. The blit pass
// itself always samples the full-size texture.
func (tx *Texture) Resized(w, h int, f Filter) *Texture {
	rf := transform.NearestNeighbor
	if f == Linear {
		rf = transform.Linear
	}
	return New(transform.Resize(tx.img, w, h, rf))
}
