package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reload carries a freshly decoded theme document from a Watcher.
type Reload struct {
	Name     string
	Path     Path
	Document Document
}

// Watcher reloads a sandbox theme document whenever it changes on disk.
// It never touches a Manager: receivers apply reloads on the UI goroutine
// with SetThemeDocument.
type Watcher struct {
	name    string
	path    Path
	fsw     *fsnotify.Watcher
	reloads chan Reload
	logger  *zap.Logger
}

// NewWatcher watches dir for changes to the theme document called name, or
// to every theme document in dir when name is empty.
func NewWatcher(dir, name string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// editors often replace files, so the directory is watched
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		name:    name,
		path:    Sandbox(dir),
		fsw:     fsw,
		reloads: make(chan Reload, 1),
		logger:  logger.Named("watcher"),
	}, nil
}

func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Run delivers reloads until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.reloads)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			name, ok := w.matches(ev)
			if !ok {
				continue
			}
			doc, err := w.load(ev.Name)
			if err != nil {
				w.logger.Warn("theme reload failed",
					zap.String("name", name),
					zap.String("file", ev.Name),
					zap.Error(err),
				)
				continue
			}
			select {
			case w.reloads <- Reload{Name: name, Path: w.path, Document: doc}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// returns the theme name an event refers to
func (w *Watcher) matches(ev fsnotify.Event) (string, bool) {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return "", false
	}
	base := filepath.Base(ev.Name)
	ext := filepath.Ext(base)
	if !IsDocumentExtension(ext) {
		return "", false
	}
	name := strings.TrimSuffix(base, ext)
	if w.name != "" && name != w.name {
		return "", false
	}
	return name, true
}

// decodes the file named by the event
func (w *Watcher) load(file string) (Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return DecodeDocumentFile(data, file)
}
