// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func startWatcher(t *testing.T, dirs []string, debounce time.Duration, onChange func()) *Watcher {
	t.Helper()
	w, err := New(dirs, debounce, onChange)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		w.Close()
	})
	return w
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	var calls int32
	changed := make(chan struct{}, 10)
	startWatcher(t, []string{dir}, 100*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
		changed <- struct{}{}
	})

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "app"+string(rune('a'+i))+".desktop")
		if err := os.WriteFile(name, []byte("[Desktop Entry]\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("onChange not called")
	}
	time.Sleep(300 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n >= 5 {
		t.Fatalf("burst not coalesced: %d calls", n)
	}
}

func TestWatcherFollowsNewSubdirectories(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 10)
	w := startWatcher(t, []string{dir}, 50*time.Millisecond, func() { changed <- struct{}{} })

	sub := filepath.Join(dir, "notes")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("onChange not called for mkdir")
	}

	deadline := time.Now().Add(2 * time.Second)
	for !contains(w.Dirs(), sub) {
		if time.Now().After(deadline) {
			t.Fatalf("new directory not watched: %v", w.Dirs())
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := os.WriteFile(filepath.Join(sub, "manifest.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("onChange not called for nested write")
	}
}

func TestNewSkipsMissingDirs(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "missing"), dir}, 0, func() {})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()
	if got := w.Dirs(); len(got) != 1 || got[0] != dir {
		t.Fatalf("watched = %v, want [%s]", got, dir)
	}
}

func TestNewRejectsNilCallback(t *testing.T) {
	if _, err := New(nil, 0, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
