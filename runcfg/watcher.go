package runcfg

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration file when it changes on disk.
//
// By default each successful reload is installed as the ambient
// configuration, so long-running hosts pick up edits without restarting.
// Set OnChange to intercept reloads instead.
type Watcher struct {
	path string

	// OnChange receives each successfully reloaded Config.
	// Defaults to SetAmbient.
	OnChange func(*Config)
}

// NewWatcher creates a watcher for the given config file. The file must be
// loadable at construction time; the initial Config is returned so the
// caller can install it before watching starts.
func NewWatcher(path string) (*Watcher, *Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("initial config load: %w", err)
	}
	return &Watcher{path: path, OnChange: SetAmbient}, cfg, nil
}

// Watch blocks until ctx is cancelled, reloading the file on every write or
// create event. Reload failures are logged and skipped; the previous
// configuration stays installed.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace files rather than write
	// them in place, which drops file-level watches.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				slog.Warn("config reload failed", "path", w.path, "error", err)
				continue
			}
			slog.Debug("config reloaded", "path", w.path)
			if w.OnChange != nil {
				w.OnChange(cfg)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Usually recoverable
			slog.Debug("config watch error", "path", w.path, "error", err)
		}
	}
}
