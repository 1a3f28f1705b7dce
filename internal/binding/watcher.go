package binding

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of write events most editors
// produce when saving a file.
const reloadDebounce = 100 * time.Millisecond

// ReloadHandler receives the result of a live reload. The rejected
// slice carries per-entry validation failures; err is set only when
// the whole file could not be read.
type ReloadHandler func(f File, rejected []error, err error)

// Watcher reloads the persisted bindings file when it changes on
// disk, so user edits apply without restarting the engine.
type Watcher struct {
	mu      sync.Mutex
	path    string
	fsw     *fsnotify.Watcher
	handler ReloadHandler
	timer   *time.Timer
	done    chan struct{}
	closed  bool
}

// NewWatcher watches the given bindings file. The parent directory is
// watched rather than the file itself so saves that replace the file
// (rename-over) keep being observed.
func NewWatcher(path string, handler ReloadHandler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		handler: handler,
		done:    make(chan struct{}),
	}
	go w.loop()

	return w, nil
}

// Close stops watching. Calling Close on a closed watcher returns
// ErrWatcherClosed.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors degrade live reload, nothing else.
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(reloadDebounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	path := w.path
	handler := w.handler
	w.mu.Unlock()

	f, rejected, err := Load(path)
	handler(f, rejected, err)
}
