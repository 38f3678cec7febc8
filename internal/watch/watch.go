// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch reruns a conversion whenever its input presentation changes.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change before the
// callback runs. Saving a presentation produces several events in a burst.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes one file. The parent directory is watched so editors that
// save by writing a temporary file and renaming it are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	fw       *fsnotify.Watcher
	log      io.Writer
}

// New starts watching path. Events that arrive before Run are buffered.
func New(path string, debounce time.Duration, log io.Writer) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = io.Discard
	}
	return &Watcher{path: abs, debounce: debounce, fw: fw, log: log}, nil
}

// Run calls fn once per burst of writes to the watched file until ctx is
// cancelled. It closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	defer w.fw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fmt.Fprintf(w.log, "changed: %s\n", filepath.Base(w.path))
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.log, "watch error: %v\n", err)

		case <-timer.C:
			fn()
		}
	}
}
