// Package watcher revalidates a hook configuration file whenever it changes
// on disk.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/logging"
)

// Result is delivered to the OnChange callback after each revalidation.
type Result struct {
	Path   string
	Config *config.Config
	Err    error
}

// Watcher watches a configuration file and revalidates it on writes.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	debounceMs int
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry

	// OnChange is called after each revalidation, including the initial one.
	OnChange func(Result)
}

// New creates a watcher for the given configuration file. The debounceMs
// parameter controls how long rapid successive writes are coalesced.
//
// fsnotify watches the parent directory rather than the file itself:
// editors that replace the file on save (rename-over) would otherwise
// silently detach the watch.
func New(configPath string, debounceMs int, onChange func(Result)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if debounceMs <= 0 {
		debounceMs = 100
	}

	return &Watcher{
		watcher:    fsWatcher,
		configPath: absPath,
		debounceMs: debounceMs,
		logger:     logging.NewLogger("watcher"),
		OnChange:   onChange,
	}, nil
}

// Start begins watching. It validates once up front, then blocks until the
// context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	w.revalidate()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matchesConfig(event.Name) {
				continue
			}
			w.handleChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// matchesConfig reports whether an event path refers to the watched file.
// Events for sibling files in the directory are ignored.
func (w *Watcher) matchesConfig(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if abs == w.configPath {
		return true
	}
	// Editors write through temp files named after the target
	return strings.HasPrefix(filepath.Base(abs), filepath.Base(w.configPath))
}

// handleChange processes a file change with debouncing.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	elapsed := time.Since(w.lastChange)
	if elapsed < time.Duration(w.debounceMs)*time.Millisecond {
		w.mu.Unlock()
		w.logger.Debugf("Debounced change (only %v since last)", elapsed)
		return
	}
	w.lastChange = time.Now()
	w.mu.Unlock()

	w.revalidate()
}

// revalidate reloads the configuration and reports the outcome.
func (w *Watcher) revalidate() {
	cfg, err := config.Load(w.configPath)
	if err != nil {
		w.logger.WithError(err).Warnf("Validation failed: %s", filepath.Base(w.configPath))
	} else {
		w.logger.Infof("Validated: %s (%d hooks)", filepath.Base(w.configPath), len(cfg.Registrations()))
	}

	if w.OnChange != nil {
		w.OnChange(Result{Path: w.configPath, Config: cfg, Err: err})
	}
}
