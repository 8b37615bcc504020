// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/watch/watch.go
// Summary: Refreshes the app list when desktop entries or manifests change.
// Usage: w, _ := watch.New(desktop.WatchDirs(), 250*time.Millisecond, repo.Refresh)
// then w.Run(ctx) on the goroutine that owns the repository.

package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/framegrace/ballista/internal/logging"
)

// DefaultDebounce batches the burst of events a package install produces.
const DefaultDebounce = 250 * time.Millisecond

// Watcher batches filesystem events under a set of directory trees into
// single onChange calls.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func()
}

// New watches every existing directory under dirs. Missing roots are
// skipped, since most XDG data dirs have no applications/ subdirectory.
func New(dirs []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("watch: nil onChange")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}

	w := &Watcher{fsw: fsw, debounce: debounce, onChange: onChange}
	for _, dir := range dirs {
		if err := w.addTree(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	log := logging.For("watch")
	if _, err := os.Stat(root); err != nil {
		log.Debug().Str("dir", root).Msg("Skipping missing directory")
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return errors.Wrapf(err, "watch %s", path)
		}
		return nil
	})
}

// Dirs lists the directories currently watched.
func (w *Watcher) Dirs() []string {
	return w.fsw.WatchList()
}

// Run delivers onChange on the calling goroutine until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.For("watch")
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						log.Warn().Err(err).Msg("Failed to watch new directory")
					}
				}
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			pending = true
			timer.Reset(w.debounce)

		case <-timer.C:
			if pending {
				pending = false
				w.onChange()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
