package server

import (
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the snapshot file on disk and triggers reload when an
// external tool rewrites it.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onReload func(data []byte) error
	done     chan bool
	debug    bool
}

// NewWatcher watches the snapshot file at path. Editors typically save
// via rename, so the parent directory is watched and events are
// filtered down to the file itself.
func NewWatcher(path string, onReload func([]byte) error, debug bool) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     abs,
		onReload: onReload,
		done:     make(chan bool),
		debug:    debug,
	}, nil
}

// Start begins watching for snapshot changes.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || abs != w.path {
					continue
				}

				if w.debug {
					log.Printf("[Watch] Snapshot changed: %s", w.path)
				}

				data, err := os.ReadFile(w.path)
				if err != nil {
					log.Printf("[Watch] Read failed for %s: %v", w.path, err)
					continue
				}
				if err := w.onReload(data); err != nil {
					log.Printf("[Watch] Reload failed for %s: %v", w.path, err)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[Watch] Error: %v", err)

			case <-w.done:
				return
			}
		}
	}()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

// WatchSnapshot starts hot-reloading the session from the snapshot
// file at path. Call Close to stop it.
func (s *Server) WatchSnapshot(path string) error {
	w, err := NewWatcher(path, s.sess.ImportSnapshot, s.debug)
	if err != nil {
		return err
	}
	w.Start()
	s.watcher = w
	log.Printf("[Watch] Watching snapshot: %s", path)
	return nil
}

// Close releases background resources.
func (s *Server) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Stop()
}
