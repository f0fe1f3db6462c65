package preresume

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hireflow/scout/pkg/config"
)

const reloadDebounce = 200 * time.Millisecond

// TemplateStore holds the current template bundle and reloads it when the
// operator file changes. Readers always see a complete bundle; a failed
// reload keeps the previous one.
type TemplateStore struct {
	path            string
	defaultLanguage string
	logger          *slog.Logger

	current atomic.Pointer[Bundle]
	watcher *fsnotify.Watcher
}

// NewTemplateStore loads the initial bundle: the built-ins, overlaid with
// the configured file when one is set.
func NewTemplateStore(cfg *config.PreResumeConfig, logger *slog.Logger) (*TemplateStore, error) {
	if cfg == nil {
		cfg = config.DefaultPreResumeConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	ts := &TemplateStore{
		path:            cfg.TemplatePath,
		defaultLanguage: cfg.DefaultLanguage,
		logger:          logger,
	}

	bundle := NewBundle(cfg.DefaultLanguage)
	if cfg.TemplatePath != "" {
		loaded, err := LoadBundle(cfg.TemplatePath, cfg.DefaultLanguage)
		if err != nil {
			return nil, err
		}
		bundle = loaded
	}
	ts.current.Store(bundle)
	return ts, nil
}

// Bundle returns the current bundle.
func (ts *TemplateStore) Bundle() *Bundle {
	return ts.current.Load()
}

// Reload re-reads the operator file and swaps the bundle.
func (ts *TemplateStore) Reload() error {
	if ts.path == "" {
		return nil
	}
	bundle, err := LoadBundle(ts.path, ts.defaultLanguage)
	if err != nil {
		return err
	}
	ts.current.Store(bundle)
	return nil
}

// Watch reloads the bundle whenever the operator file changes, until the
// context is canceled. Editors replace files rather than rewrite them, so
// the parent directory is watched and events are debounced.
func (ts *TemplateStore) Watch(ctx context.Context) error {
	if ts.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create template watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(ts.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch template directory: %w", err)
	}
	ts.watcher = watcher

	go ts.run(ctx)

	ts.logger.Info("Template watcher started", "path", ts.path)
	return nil
}

// Close stops the watcher. Safe to call when Watch was never started.
func (ts *TemplateStore) Close() error {
	if ts.watcher == nil {
		return nil
	}
	return ts.watcher.Close()
}

func (ts *TemplateStore) run(ctx context.Context) {
	target := filepath.Clean(ts.path)
	var reload <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-ts.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			reload = time.After(reloadDebounce)

		case err, ok := <-ts.watcher.Errors:
			if !ok {
				return
			}
			ts.logger.Error("Template watcher error", "error", err)

		case <-reload:
			reload = nil
			if err := ts.Reload(); err != nil {
				ts.logger.Error("Failed to reload template bundle",
					"path", ts.path,
					"error", err)
				continue
			}
			ts.logger.Info("Template bundle reloaded", "path", ts.path)
		}
	}
}
