package gateway

import (
	"errors"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned from Watch after Close.
var ErrWatcherClosed = errors.New("watcher is closed")

// Watcher reports external modifications to the open document's file,
// so the host can offer a reload instead of silently diverging from
// disk.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	paths   map[string]bool

	changes chan string
	closeCh chan struct{}
	done    sync.WaitGroup
	closed  bool
}

// NewWatcher creates a file watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		paths:   make(map[string]bool),
		changes: make(chan string, 16),
		closeCh: make(chan struct{}),
	}

	w.done.Add(1)
	go w.processLoop()
	return w, nil
}

// Watch starts watching a file path.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.paths[path] {
		return nil
	}
	if err := w.watcher.Add(path); err != nil {
		return err
	}
	w.paths[path] = true
	return nil
}

// Unwatch stops watching a file path.
func (w *Watcher) Unwatch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.paths[path] {
		return nil
	}
	delete(w.paths, path)
	return w.watcher.Remove(path)
}

// Changes returns the channel of paths whose content changed on disk.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.done.Wait()
	close(w.changes)
	return w.watcher.Close()
}

// processLoop forwards relevant fsnotify events.
func (w *Watcher) processLoop() {
	defer w.done.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
				event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				select {
				case w.changes <- event.Name:
				default:
					// Channel full; the host will catch up on the
					// next event.
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
