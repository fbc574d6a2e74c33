package assets

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports files written or created under a directory.
//
// fsnotify events are received on a background goroutine, which only
// forwards relative names. Consumers drain Changed from the game loop.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	dir      string
	changed  chan string
	done     chan struct{}
	logger   *log.Logger
}

// NewWatcher starts watching dir.
func NewWatcher(dir string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		fsnotify: fw,
		dir:      dir,
		changed:  make(chan string, 64),
		done:     make(chan struct{}),
		logger:   logger,
	}
	go w.run()
	return w, nil
}

// Changed delivers the relative name of every changed file.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Close stops watching. Changed is closed once the goroutine exits.
func (w *Watcher) Close() error {
	err := w.fsnotify.Close()
	<-w.done
	if errors.Is(err, fsnotify.ErrClosed) {
		return nil
	}
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changed)

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			name, err := filepath.Rel(w.dir, e.Name)
			if err != nil {
				w.logger.Warn("ignoring asset event outside watched dir", "path", e.Name)
				continue
			}
			select {
			case w.changed <- filepath.ToSlash(name):
			default:
				w.logger.Warn("asset change dropped, queue full", "name", name)
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			w.logger.Error("asset watcher", "err", err)
		}
	}
}
