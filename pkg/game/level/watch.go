package level

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long a level file must stay quiet before it is re-read
const reloadDelay = 100 * time.Millisecond

// Watcher re-reads a level file whenever it changes on disk. Valid levels arrive
// on Levels, newest first; parse failures arrive on Errors. Both channels close
// when the watcher stops.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Levels  chan *Level
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The directory is watched rather than the file so
// editors that save by renaming are still seen.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("level: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("level: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("level: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Levels:  make(chan *Level, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and waits for it to exit
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Levels)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDelay)

		case <-timer.C:
			lvl, err := Load(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendLevel(lvl)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)

		case <-w.closeCh:
			timer.Stop()
			return
		}
	}
}

// sendLevel delivers lvl, replacing any level the consumer has not picked up yet
func (w *Watcher) sendLevel(lvl *Level) {
	for {
		select {
		case w.Levels <- lvl:
			return
		default:
		}
		select {
		case <-w.Levels:
		default:
		}
	}
}

// sendError delivers err unless an earlier error is still waiting
func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
