package collection

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports rewrites of the collection document so the view can
// reload it wholesale. Converters and editors typically replace the file
// (write to temp, rename), so the parent directory is watched and events
// are filtered by file name.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string

	// Events receives one value per observed rewrite of the document
	Events chan struct{}
}

// NewWatcher creates a watcher for the given collection path and starts
// forwarding change events.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve collection path: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch collection directory: %w", err)
	}

	w := &Watcher{
		fw:     fw,
		path:   abs,
		Events: make(chan struct{}, 1),
	}

	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				close(w.Events)
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce bursts: one pending notification is enough,
			// the reload reads the final contents anyway
			select {
			case w.Events <- struct{}{}:
			default:
			}

		case _, ok := <-w.fw.Errors:
			if !ok {
				close(w.Events)
				return
			}
			// Watch errors are not fatal to the view; the user can
			// still trigger a manual reload
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fw.Close()
}
