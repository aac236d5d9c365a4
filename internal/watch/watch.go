// Package watch reloads the configuration file when it changes on disk and
// hands the validated result to a callback. Editing dualscope.yaml while
// the scope runs swaps the scene live, the same whole-record way the UI
// swaps parameters.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"dualscope/internal/config"
	"dualscope/internal/logging"
)

// debounceWindow batches the rapid event bursts editors produce on save.
const debounceWindow = 250 * time.Millisecond

// ConfigWatcher watches one config file. Run owns the event loop; the
// struct has no cross-goroutine state of its own.
type ConfigWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func(*config.Config)
	trace    *logging.Trace
}

// New creates a watcher for path. onReload is called from the watcher
// goroutine with each successfully loaded and validated config; invalid
// edits are traced and otherwise ignored, keeping the running scene.
func New(path string, onReload func(*config.Config), trace *logging.Trace) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: most editors replace the file
	// on save, which would drop a direct file watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &ConfigWatcher{
		path:     path,
		watcher:  w,
		onReload: onReload,
		trace:    trace,
	}, nil
}

// Run blocks until ctx is cancelled, reloading on relevant events. It is
// shaped for errgroup.Go alongside the UI loop.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(cw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounceWindow, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.trace.Action("watch_error", zap.Error(err))

		case <-fire:
			cw.reload()
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := config.Load(cw.path)
	if err != nil {
		// Keep running on the previous config; a broken edit is a
		// diagnostic, not a failure.
		cw.trace.Action("config_reload_rejected", zap.Error(err))
		return
	}
	cw.trace.Action("config_reloaded", zap.String("preset", cfg.Signal.Preset))
	cw.onReload(cfg)
}
