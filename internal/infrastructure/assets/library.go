package assets

import (
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// ReloadFunc receives a freshly decoded image.
type ReloadFunc func(img *ebiten.Image) error

// Library caches images by name. Use it from the game loop goroutine only.
type Library struct {
	fsys      fs.FS
	images    map[string]*ebiten.Image
	listeners map[string][]ReloadFunc
	watcher   *Watcher
	logger    *log.Logger
	release   func(*ebiten.Image)
}

// NewLibrary creates a library reading from fsys.
func NewLibrary(fsys fs.FS, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Library{
		fsys:      fsys,
		images:    make(map[string]*ebiten.Image),
		listeners: make(map[string][]ReloadFunc),
		logger:    logger,
		release:   (*ebiten.Image).Deallocate,
	}
}

// Image returns the named image, decoding it on first use.
func (l *Library) Image(name string) (*ebiten.Image, error) {
	if img, ok := l.images[name]; ok {
		return img, nil
	}
	return l.load(name)
}

func (l *Library) load(name string) (*ebiten.Image, error) {
	src, format, err := Decode(l.fsys, name)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	l.images[name] = img
	l.logger.Debug("asset loaded", "name", name, "format", format, "size", src.Bounds().Size())
	return img, nil
}

// OnReload registers fn to run whenever name is reloaded.
func (l *Library) OnReload(name string, fn ReloadFunc) {
	l.listeners[name] = append(l.listeners[name], fn)
}

// Watch reloads assets when files change under dir. dir should be the
// directory fsys was opened on.
func (l *Library) Watch(dir string) error {
	w, err := NewWatcher(dir, l.logger)
	if err != nil {
		return err
	}
	l.watcher = w
	l.logger.Info("watching assets", "dir", dir)
	return nil
}

// Sync applies pending file changes without blocking. Call once per frame.
// It returns the number of assets reloaded.
func (l *Library) Sync() int {
	if l.watcher == nil {
		return 0
	}
	reloaded := 0
	for {
		select {
		case name, ok := <-l.watcher.Changed():
			if !ok {
				return reloaded
			}
			if l.Reload(name) {
				reloaded++
			}
		default:
			return reloaded
		}
	}
}

// Reload decodes name again if it was loaded before and notifies listeners.
//
// The previous image is deallocated once every listener has accepted the
// new one. If a listener fails it may still hold the old image, which is
// then left to the garbage collector.
func (l *Library) Reload(name string) bool {
	old, ok := l.images[name]
	if !ok {
		return false
	}
	img, err := l.load(name)
	if err != nil {
		l.logger.Warn("asset reload failed", "name", name, "err", err)
		return false
	}
	swapped := true
	for _, fn := range l.listeners[name] {
		if err := fn(img); err != nil {
			swapped = false
			l.logger.Warn("asset reload listener failed", "name", name, "err", err)
		}
	}
	if swapped {
		l.release(old)
	}
	l.logger.Info("asset reloaded", "name", name)
	return true
}

// Close stops the watcher, if any.
func (l *Library) Close() error {
	if l.watcher == nil {
		return nil
	}
	return l.watcher.Close()
}
