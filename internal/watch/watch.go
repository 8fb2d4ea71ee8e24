// Package watch re-runs the workflow analysis whenever the workflow
// file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last write before the
// change callback fires. Editors often produce bursts of Write events
// for a single save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher invokes a callback when a single file changes, coalescing
// event bursts with a debounce window.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
}

// New creates a Watcher for path. A non-positive debounce falls back to
// DefaultDebounce.
func New(path string, debounce time.Duration, onChange func()) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: path, debounce: debounce, onChange: onChange}
}

// Run watches the file's directory and blocks until the context is
// cancelled or the watcher fails. Write/Create events on the target
// file arm the debounce timer; the callback runs when the timer fires.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory, not the file: editors that rename-over the
	// file would otherwise drop the watch.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	base := filepath.Base(w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timer.C:
			w.onChange()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch events: %w", err)
		}
	}
}
