// Package watch re-runs the conversion when the source directory changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/scriptport/internal/logfields"
)

// Watcher monitors the source directory and invokes a callback after changes
// settle. Rapid bursts of filesystem events collapse into a single run.
type Watcher struct {
	dir      string
	onChange func()
	watcher  *fsnotify.Watcher
	trigger  chan struct{}
	debounce time.Duration
}

// New creates a watcher over dir; onChange runs after each debounced change.
func New(dir string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to resolve watch directory: %w", err)
	}

	return &Watcher{
		dir:      absDir,
		onChange: onChange,
		watcher:  fsw,
		trigger:  make(chan struct{}, 1),
		debounce: debounce,
	}, nil
}

// Start begins monitoring. It returns once the watch loops are running; they
// stop when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", w.dir, err)
	}

	slog.Info("Watching source directory", logfields.Path(w.dir))

	go w.watchLoop(ctx)
	go w.runLoop(ctx)

	return nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// watchLoop collapses filesystem events into trigger signals.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			slog.Debug("Source change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			select {
			case w.trigger <- struct{}{}:
			default:
				// A run is already pending.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", logfields.Error(err))
		}
	}
}

// runLoop debounces triggers and invokes the callback.
func (w *Watcher) runLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.trigger:
			timer := time.NewTimer(w.debounce)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			// Drain anything that arrived while settling.
			select {
			case <-w.trigger:
			default:
			}
			w.onChange()
		}
	}
}
