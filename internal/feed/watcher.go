package feed

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/log"
)

// watcher forwards write/create events on the feed files, debounced
// so editors and exporters that write in bursts trigger one reload.
type watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
	once    sync.Once
}

const debounceDelay = 100 * time.Millisecond

func newWatcher(paths []string) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		fs:      fs,
		changes: make(chan Change, 10),
		done:    make(chan struct{}),
	}

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err == nil {
			err = fs.Add(abs)
		}
		if err != nil {
			log.Warn("cannot watch feed file", "path", path, "reason", err)
		}
	}

	go w.loop()
	return w, nil
}

func (w *watcher) loop() {
	var mu sync.Mutex
	pending := make(map[string]*time.Timer)

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			mu.Lock()
			if timer, exists := pending[ev.Name]; exists {
				timer.Stop()
			}
			name := ev.Name
			pending[name] = time.AfterFunc(debounceDelay, func() {
				mu.Lock()
				delete(pending, name)
				mu.Unlock()

				select {
				case w.changes <- Change{Path: name, Timestamp: time.Now()}:
				default:
					// Receiver is behind; it will reload anyway.
				}
			})
			mu.Unlock()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Error("feed watcher", err)

		case <-w.done:
			return
		}
	}
}

func (w *watcher) close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}
