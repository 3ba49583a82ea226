package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/stoich/pkg/log"
)

// DefaultDebounce is how long Watch waits after the last change before re-running.
const DefaultDebounce = 200 * time.Millisecond

// ErrWatchStdin is returned when watch mode is requested for standard input.
var ErrWatchStdin = errors.New("stoich: cannot watch standard input")

// Watch runs the batch once and then again every time the input file is
// written or replaced, until ctx is canceled. Failed runs are logged and do
// not stop the watcher.
func (a *App) Watch(ctx context.Context, path string, debounce time.Duration) error {
	if path == "" || path == "-" {
		return ErrWatchStdin
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file via rename are seen.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	a.runLogged(ctx)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !triggersRun(event, target) {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			a.runLogged(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.deps.Logger.Error("watcher error", log.Err(err))
		}
	}
}

// triggersRun reports whether event means target has new contents. A rename
// or remove moves the file away; replacing it via rename also delivers a
// Create for target, which is what triggers the run.
func triggersRun(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func (a *App) runLogged(ctx context.Context) {
	if _, err := a.RunOnce(ctx); err != nil && ctx.Err() == nil {
		a.deps.Logger.Error("batch run failed", log.Err(err))
	}
}
