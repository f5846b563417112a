// Package watcher reports changes made by other processes to the file open in
// the editor.
package watcher

import (
	"errors"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"notepad/internal/eventbus"
)

// ErrWatcherClosed is returned by Watch after Close
var ErrWatcherClosed = errors.New("watcher closed")

// FileWatcher follows a single file and publishes FileChangedEvent for it
type FileWatcher interface {
	Watch(path string) error
	Unwatch()
	Path() string
	Close() error
}

// fileWatcher watches the file's directory, since editors and tools often
// replace a file by renaming a new one over it
type fileWatcher struct {
	mu      sync.Mutex
	bus     eventbus.EventBus
	watcher *fsnotify.Watcher

	path string
	dir  string

	unsubscribe []func()
	closed      bool
	wg          sync.WaitGroup
}

// New creates a watcher that follows the document through bus events
func New(bus eventbus.EventBus) (FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &fileWatcher{bus: bus, watcher: fsw}

	w.unsubscribe = append(w.unsubscribe,
		bus.Subscribe(eventbus.EventDocumentOpened, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.DocumentOpenedEvent); ok {
				w.retarget(ev.Path)
			}
		}),
		bus.Subscribe(eventbus.EventDocumentSaved, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.DocumentSavedEvent); ok {
				w.retarget(ev.Path)
			}
		}),
		bus.Subscribe(eventbus.EventDocumentReset, func(eventbus.DomainEvent) {
			w.Unwatch()
		}),
	)

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

func (w *fileWatcher) retarget(path string) {
	if err := w.Watch(path); err != nil {
		log.Printf("watch %s: %v", path, err)
	}
}

// Watch switches to path. Watching the current path again is a no-op.
func (w *fileWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if abs == w.path {
		return nil
	}

	dir := filepath.Dir(abs)
	if dir != w.dir {
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		if err := w.watcher.Add(dir); err != nil {
			w.path, w.dir = "", ""
			return err
		}
		w.dir = dir
	}
	w.path = abs
	return nil
}

// Unwatch stops following the current file
func (w *fileWatcher) Unwatch() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.dir == "" {
		return
	}
	_ = w.watcher.Remove(w.dir)
	w.path, w.dir = "", ""
}

// Path returns the absolute path being watched, empty when idle
func (w *fileWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops the watcher and waits for its goroutine
func (w *fileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	for _, unsub := range w.unsubscribe {
		unsub()
	}
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *fileWatcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

func (w *fileWatcher) handle(ev fsnotify.Event) {
	w.mu.Lock()
	path := w.path
	w.mu.Unlock()

	if path == "" || filepath.Clean(ev.Name) != path {
		return
	}

	switch {
	case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
		w.bus.Publish(eventbus.FileChangedEvent{Path: path})
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		w.bus.Publish(eventbus.FileChangedEvent{Path: path, Removed: true})
	}
}
