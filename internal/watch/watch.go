// Package watch reports debounced changes to a single file.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher monitors one file through its parent directory, so editors that save
// by rename-and-replace are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	fw       *fsnotify.Watcher

	// Errors receives non-fatal watch errors; nil means they are dropped.
	Errors func(error)
}

// New creates a watcher for path. Close releases it.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "watch: resolve path")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "watch: create watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch: add %s", filepath.Dir(abs))
	}

	return &Watcher{path: abs, debounce: debounce, fw: fw}, nil
}

// Run calls onChange once per burst of writes to the file, after the burst has
// been quiet for the debounce interval. It returns nil when ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	var pending time.Time // zero when nothing is pending
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= w.debounce {
				pending = time.Time{}
				onChange()
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			if w.Errors != nil {
				w.Errors(err)
			}
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
