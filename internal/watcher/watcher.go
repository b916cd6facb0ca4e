// Package watcher re-runs a demo script when its file changes. It
// watches the script's parent directory (editors replace files on
// save, which drops per-file watches) and debounces rapid write bursts
// into a single callback.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conneroisu/slink/internal/logging"
)

// ChangeHandler is invoked with the script path after a debounced
// change.
type ChangeHandler func(path string) error

// ScriptWatcher watches a single script file for changes.
type ScriptWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	log       logging.Logger
	path      string
	handlers  []ChangeHandler
	mutex     sync.RWMutex
}

// New creates a watcher for path, grouping changes closer together
// than debounce into one notification.
func New(path string, debounce time.Duration, log logging.Logger) (*ScriptWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &ScriptWatcher{
		watcher: fsw,
		debouncer: &debouncer{
			delay:  debounce,
			output: make(chan string, 1),
		},
		log:  log.WithComponent("watcher"),
		path: abs,
	}, nil
}

// AddHandler registers a change handler.
func (w *ScriptWatcher) AddHandler(handler ChangeHandler) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start runs the watch and dispatch loops until ctx is canceled.
func (w *ScriptWatcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
	go w.dispatchLoop(ctx)
}

// Stop stops watching and releases the underlying watcher.
func (w *ScriptWatcher) Stop() error {
	w.debouncer.stop()
	return w.watcher.Close()
}

func (w *ScriptWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn(ctx, err, "Watch error")
		}
	}
}

func (w *ScriptWatcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.log.Debug(ctx, "Script changed", "path", event.Name, "op", event.Op.String())
	w.debouncer.hit(w.path)
}

func (w *ScriptWatcher) dispatchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-w.debouncer.output:
			w.mutex.RLock()
			handlers := w.handlers
			w.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(path); err != nil {
					w.log.Error(ctx, err, "Change handler failed", "path", path)
				}
			}
		}
	}
}

// debouncer collapses a burst of hits into one output after a quiet
// period.
type debouncer struct {
	delay   time.Duration
	output  chan string
	timer   *time.Timer
	pending string
	mutex   sync.Mutex
}

func (d *debouncer) hit(path string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = path

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.pending == "" {
		return
	}

	select {
	case d.output <- d.pending:
	default:
		// A flush is already queued; the handler will see the latest
		// file state anyway.
	}

	d.pending = ""
}

func (d *debouncer) stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
