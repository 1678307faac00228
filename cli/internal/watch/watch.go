// Package watch regenerates output when a schema file changes.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/satishbabariya/sqlkit/internal/debug"
)

// debounce delays the callback so editors that write in bursts trigger a
// single regeneration.
const debounce = 500 * time.Millisecond

// Watcher watches a single file and invokes a callback after changes.
type Watcher struct {
	file     string
	callback func() error
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// New creates a watcher for the given file. The containing directory is
// watched so the file may be replaced atomically by editors.
func New(file string, callback func() error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", file, err)
	}
	return &Watcher{file: abs, callback: callback, watcher: fw, done: make(chan struct{})}, nil
}

// Start runs the callback once, then keeps running it after each change
// until Stop is called.
func (w *Watcher) Start() error {
	if err := w.callback(); err != nil {
		return err
	}

	go func() {
		timer := time.NewTimer(debounce)
		timer.Stop()
		var pending <-chan time.Time

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if abs, err := filepath.Abs(event.Name); err == nil && abs == w.file {
					timer.Reset(debounce)
					pending = timer.C
				}
			case <-pending:
				pending = nil
				if err := w.callback(); err != nil {
					debug.Error("watch callback", "err", err)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				debug.Error("watch", "err", err)
			case <-w.done:
				return
			}
		}
	}()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
