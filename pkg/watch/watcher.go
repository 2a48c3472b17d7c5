// Package watch reports changes in the directories shown by the panels.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dumbcommander/dumbcommander/pkg/logs"
	"github.com/fsnotify/fsnotify"
)

var log = logs.Logger("watch")

const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc is called once per burst of events in the directory watched under key.
type ChangeFunc func(key, dir string)

type Option func(w *Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher watches one directory per key, e.g. one per panel side.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	onChange  ChangeFunc
	debounce  time.Duration

	mu      sync.Mutex
	dirs    map[string]string
	pending map[string]*time.Timer
	closed  bool
	done    chan struct{}
}

var newFsWatcher = fsnotify.NewWatcher

func New(onChange ChangeFunc, o ...Option) (*Watcher, error) {
	fsWatcher, err := newFsWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		onChange:  onChange,
		debounce:  DefaultDebounce,
		dirs:      make(map[string]string),
		pending:   make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}
	for _, option := range o {
		option(w)
	}
	go w.loop()
	return w, nil
}

// Watch replaces the directory watched under key.
// The previous directory stops being watched unless another key still uses it.
func (w *Watcher) Watch(key, dir string) error {
	dir = filepath.Clean(dir)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watcher is closed")
	}
	prev, ok := w.dirs[key]
	if ok && prev == dir {
		return nil
	}
	if !w.usedLocked(dir) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[key] = dir
	if ok && !w.usedLocked(prev) {
		if err := w.fsWatcher.Remove(prev); err != nil {
			log.Debugw("failed to stop watching", "dir", prev, "err", err)
		}
	}
	log.Debugw("watching", "key", key, "dir", dir)
	return nil
}

func (w *Watcher) usedLocked(dir string) bool {
	for _, d := range w.dirs {
		if d == dir {
			return true
		}
	}
	return false
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.handle(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("fsnotify watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(name string) {
	name = filepath.Clean(name)
	parent := filepath.Dir(name)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	for key, dir := range w.dirs {
		if dir != parent && dir != name {
			continue
		}
		if timer, ok := w.pending[key]; ok {
			timer.Reset(w.debounce)
			continue
		}
		w.pending[key] = time.AfterFunc(w.debounce, func() {
			w.fire(key)
		})
	}
}

func (w *Watcher) fire(key string) {
	w.mu.Lock()
	delete(w.pending, key)
	dir, ok := w.dirs[key]
	closed := w.closed
	w.mu.Unlock()
	if ok && !closed && w.onChange != nil {
		w.onChange(key, dir)
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for key, timer := range w.pending {
		timer.Stop()
		delete(w.pending, key)
	}
	close(w.done)
	w.mu.Unlock()
	return w.fsWatcher.Close()
}
