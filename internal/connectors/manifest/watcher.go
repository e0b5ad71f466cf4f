package manifest

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/docfolio/docfolio/internal/logger"
)

// Watcher notifies when the manifest file changes, so the refresher
// can rebuild ahead of the next interval tick. The parent directory
// is watched rather than the file itself: editors that write via
// rename would otherwise detach the watch.
type Watcher struct {
	fw     *fsnotify.Watcher
	name   string
	events chan struct{}
	done   chan struct{}
}

// Watch starts watching the manifest file for writes.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close() //nolint:errcheck
		return nil, err
	}

	w := &Watcher{
		fw:     fw,
		name:   filepath.Base(path),
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events delivers one signal per observed change. The channel has a
// one-slot buffer; bursts of writes collapse into a single refresh.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != w.name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("manifest: %s changed (%s)", ev.Name, ev.Op)
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("manifest: watch error: %v", err)
		}
	}
}
