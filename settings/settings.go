// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings stores the user-configurable options for the viewer
// in a TOML file in the standard user config directory.
package settings

import (
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"imgv.dev/core/blit"
)

// Settings are the user-configurable options for the viewer.
type Settings struct {

	// VSync synchronizes presentation with the display refresh rate.
	VSync bool

	// MouseHighlight draws a highlight dot at the mouse position.
	// It ships disabled.
	MouseHighlight bool

	// HighlightRadius is the mouse highlight radius in pixels.
	HighlightRadius float32

	// ClearColor is the color frames are cleared to before drawing.
	ClearColor [4]float32

	// Verbose enables debug-level logging.
	Verbose bool
}

// Defaults sets standard default values.
func (se *Settings) Defaults() {
	se.VSync = true
	se.MouseHighlight = false
	se.HighlightRadius = blit.DefaultHighlightRadius
	se.ClearColor = [4]float32{0.1, 0.2, 0.3, 1}
	se.Verbose = false
}

// Apply applies settings that affect global state,
// currently the logging verbosity.
func (se *Settings) Apply() {
	if se.Verbose {
		logx.UserLevel = slog.LevelDebug
	} else {
		logx.UserLevel = slog.LevelInfo
	}
}

// RenderOptions returns the render options these settings select.
func (se *Settings) RenderOptions() *blit.Options {
	return &blit.Options{
		Clear:           blit.QuantizeColor(se.ClearColor),
		MouseHighlight:  se.MouseHighlight,
		HighlightRadius: se.HighlightRadius,
	}
}

// Open reads settings from the given TOML file. A missing file is not
// an error: the settings keep their current values.
func (se *Settings) Open(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return nil // no settings file yet
	}
	return tomlx.Open(se, filename)
}

// Save writes settings to the given TOML file, creating the directory
// if needed.
func (se *Settings) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		return err
	}
	return tomlx.Save(se, filename)
}

// File returns the standard settings file path, under the user config
// directory. It falls back to the working directory if the config
// directory cannot be determined.
func File() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "imgv", "settings.toml")
}
