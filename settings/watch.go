package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/textpath"
)

// Watcher reloads a settings file into a Store whenever it is written.
type Watcher struct {
	path  string
	store *Store
	fsw   *fsnotify.Watcher
}

// NewWatcher starts watching path. The directory is watched rather than the
// file, so that editors that replace the file on save are followed.
func NewWatcher(path string, store *Store) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("settings: %w", err)
	}
	return &Watcher{path: abs, store: store, fsw: fsw}, nil
}

// Run processes file events until ctx is done, then closes the watcher.
// A file that fails to load is logged and leaves the store unchanged.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	log := textpath.Logger()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload(log)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("settings: watch error", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

func (w *Watcher) reload(log *slog.Logger) {
	s, err := Load(w.path)
	if err == nil {
		err = w.store.Replace(s)
	}
	if err != nil {
		log.Warn("settings: reload failed", slog.String("path", w.path), slog.Any("error", err))
		return
	}
	log.Info("settings: reloaded", slog.String("path", w.path))
}

// Watch keeps store in sync with the file at path until ctx is done.
func Watch(ctx context.Context, path string, store *Store) error {
	w, err := NewWatcher(path, store)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
