// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reloads the case store when its backing file changes outside
// this process.
//
// # Description
//
// Watches the file's parent directory (editors replace files via
// rename-into-place, which a direct file watch would lose) and debounces
// bursts of events into a single reload. Writes performed through
// CaseStore.Append also trigger an event; the reload they cause is a no-op
// re-read of data already in memory.
//
// # Thread Safety
//
// Safe for concurrent use. Reloads run on a single goroutine.
type FileWatcher struct {
	store    *CaseStore
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	done     chan struct{}
	stopOnce sync.Once
}

// DefaultDebounceWindow is how long the watcher waits for further events
// before reloading.
const DefaultDebounceWindow = 250 * time.Millisecond

// NewFileWatcher creates a watcher over the store's backing file.
//
// # Inputs
//
//   - store: Case store to reload on change.
//   - logger: Structured logger; nil uses slog.Default().
//
// # Outputs
//
//   - *FileWatcher: Ready watcher (call Start to begin).
//   - error: Non-nil if the fsnotify watcher could not be created or the
//     parent directory could not be added.
func NewFileWatcher(store *CaseStore, logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(store.path)); err != nil {
		watcher.Close()
		return nil, err
	}
	return &FileWatcher{
		store:    store,
		watcher:  watcher,
		logger:   logger,
		debounce: DefaultDebounceWindow,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The loop exits when ctx is canceled or Stop is
// called.
func (w *FileWatcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Stop stops the watcher.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

func (w *FileWatcher) loop(ctx context.Context) {
	target := filepath.Clean(w.store.path)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("case file watcher error", "error", err)
		case <-timerC:
			timer = nil
			timerC = nil
			// A half-written external edit can fail validation; keep the
			// previous in-memory state and wait for the next event.
			_ = w.store.Reload()
		}
	}
}
