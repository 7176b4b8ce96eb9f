// Package watch re-runs a comparison whenever the input file changes.
// Events are debounced so that editors which write in several bursts (or
// replace the file via rename) trigger a single recomputation.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Runner recomputes the report. Failures are logged and watching continues;
// a transiently invalid input file should not kill the watch loop.
type Runner func() error

// Watcher monitors a single file for changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	base     string
	debounce time.Duration
	run      Runner
}

// New watches the directory containing path, filtering events down to the
// file itself. Watching the directory rather than the file survives the
// delete-and-rename save strategy most editors use.
func New(path string, debounce time.Duration, run Runner) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		fsw:      fsw,
		base:     filepath.Base(path),
		debounce: debounce,
		run:      run,
	}, nil
}

// Start blocks until ctx is done, invoking the runner after each debounced
// burst of changes to the watched file.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != w.base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)

		case <-fire:
			timer = nil
			fire = nil
			if err := w.run(); err != nil {
				log.Printf("recompute failed: %v", err)
			}
		}
	}
}
