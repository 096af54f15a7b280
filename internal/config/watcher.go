package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last write before
// reloading, so editors that write in several steps trigger one reload.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc is called with the freshly loaded configuration after the
// watched file changes and passes validation.
type ReloadFunc func(Config)

// ErrorFunc is called when a reload attempt fails.
type ErrorFunc func(error)

// Watcher reloads a configuration file when it changes on disk.
// The parent directory is watched rather than the file itself, since many
// editors replace files on save.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	onReload ReloadFunc
	onError  ErrorFunc

	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// Watch starts watching the given config file. onReload receives each
// successfully reloaded configuration; onError may be nil.
func Watch(path string, onReload ReloadFunc, onError ErrorFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: DefaultDebounce,
		onReload: onReload,
		onError:  onError,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. A second call returns ErrWatcherClosed.
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

// loop drains fsnotify events, debouncing writes to the watched path.
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
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
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
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	path := w.path
	w.mu.Unlock()

	cfg, err := Load(path)
	if err != nil {
		w.reportError(err)
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
