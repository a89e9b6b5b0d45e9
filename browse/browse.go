// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package browse steps through the viewable image files next to the one
// being displayed: the forward/backward navigation of an image viewer,
// without wraparound. It only deals in paths; opening and decoding the
// files is the host's job.
package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fileinfo"
)

// Direction selects which sibling [Step] returns.
type Direction int32

const (
	Backward Direction = iota
	Forward
)

// ErrNoMore is returned by [Step] when there is no viewable file in the
// requested direction; stepping never wraps around.
var ErrNoMore = errors.New("browse: no more files in this direction")

// viewableExts are the file extensions the viewer can display.
var viewableExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
	"tif": true, "tiff": true, "tga": true, "dds": true, "bmp": true,
	"ico": true, "hdr": true, "pbm": true, "pam": true, "ppm": true,
	"pgm": true, "ff": true,
}

// IsViewable reports whether the file at the given path is one the
// viewer can display, by extension. Files with no extension at all fall
// back to content-based mime detection.
func IsViewable(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext != "" {
		return viewableExts[ext]
	}
	mtyp, _, err := fileinfo.MimeFromFile(path)
	if err != nil {
		return false
	}
	return fileinfo.IsMatch(fileinfo.AnyImage, fileinfo.MimeKnown(mtyp))
}

// List returns the full paths of the viewable files in the given
// directory, in sorted order.
func List(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		p := filepath.Join(dir, ent.Name())
		if IsViewable(p) {
			files = append(files, p)
		}
	}
	return files, nil
}

// Step returns the path of the viewable file adjacent to the given one
// in its directory, in the given direction. It returns [ErrNoMore] past
// either end, and an error if the directory cannot be read or the given
// file is not among its viewable files.
func Step(path string, dir Direction) (string, error) {
	files, err := List(filepath.Dir(path))
	if err != nil {
		return "", err
	}
	i := slices.Index(files, filepath.Clean(path))
	if i < 0 {
		return "", fmt.Errorf("browse: %q not found among viewable files", path)
	}
	switch dir {
	case Backward:
		if i > 0 {
			return files[i-1], nil
		}
	case Forward:
		if i+1 < len(files) {
			return files[i+1], nil
		}
	}
	return "", ErrNoMore
}
