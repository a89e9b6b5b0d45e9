// Copyright (c) 2026, The Imgv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package browse

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the viewable files in one directory, so a
// host can rescan its [List] and reload the current image when it is
// rewritten on disk.
type Watcher struct {
	dir    string
	fw     *fsnotify.Watcher
	events chan string
}

// Watch starts watching the given directory. Callers receive the paths
// of changed viewable files from [Watcher.Events] and must call
// [Watcher.Close] when done.
func Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{dir: dir, fw: fw, events: make(chan string, 16)}
	go w.run()
	return w, nil
}

// Events returns the channel of changed viewable file paths. It is
// closed when the watcher is closed. Events are dropped rather than
// queued without bound when the receiver falls behind; a refresh signal
// coalesces fine.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher and closes the events channel.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) &&
				!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if !IsViewable(ev.Name) {
				continue
			}
			logx.PrintlnDebug("browse: " + ev.String())
			select {
			case w.events <- ev.Name:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}
