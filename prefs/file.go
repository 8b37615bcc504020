// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: prefs/file.go
// Summary: File-backed JSON preference store with debounced flushing.
// Usage: Default backend; one JSON object per preference file.

package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/framegrace/ballista/internal/logging"
)

const defaultFlushDebounce = 500 * time.Millisecond

// FileStore implements Store on top of a single JSON file.
type FileStore struct {
	path string
	mu   sync.RWMutex

	// In-memory cache, loaded once on open
	cache map[string]json.RawMessage
	dirty bool

	flushDebounce time.Duration
	flushTimer    *time.Timer
	flushMu       sync.Mutex

	closed bool
}

// NewFileStore opens (or prepares) the JSON preference file at path.
func NewFileStore(path string, debounce time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "create prefs dir %s", filepath.Dir(path))
	}
	if debounce <= 0 {
		debounce = defaultFlushDebounce
	}

	s := &FileStore{
		path:          path,
		flushDebounce: debounce,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the file into the cache. A missing file is an empty store and a
// corrupt file is discarded.
func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.cache = make(map[string]json.RawMessage)
			return nil
		}
		return errors.Wrap(err, "read prefs file")
	}

	var stored map[string]json.RawMessage
	if err := json.Unmarshal(data, &stored); err != nil {
		log := logging.For("prefs")
		log.Warn().Err(err).Str("path", s.path).Msg("Corrupt preference file, starting fresh")
		s.cache = make(map[string]json.RawMessage)
		return nil
	}
	if stored == nil {
		stored = make(map[string]json.RawMessage)
	}
	s.cache = stored
	return nil
}

func (s *FileStore) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cache[key]
	return ok
}

func (s *FileStore) GetBool(key string, def bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decodeBool(s.cache[key], def)
}

func (s *FileStore) GetString(key, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decodeString(s.cache[key], def)
}

func (s *FileStore) PutBool(key string, value bool) error {
	return s.put(key, value)
}

func (s *FileStore) PutString(key, value string) error {
	return s.put(key, value)
}

func (s *FileStore) put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("prefs: store is closed")
	}
	s.cache[key] = data
	s.markDirty()
	return nil
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("prefs: store is closed")
	}
	if _, ok := s.cache[key]; ok {
		delete(s.cache, key)
		s.markDirty()
	}
	return nil
}

func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flush writes pending changes to disk.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *FileStore) flushLocked() error {
	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal prefs")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "write prefs file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace prefs file")
	}

	s.dirty = false
	return nil
}

// Close stops the pending flush timer and writes outstanding changes.
func (s *FileStore) Close() error {
	s.flushMu.Lock()
	if s.flushTimer != nil {
		s.flushTimer.Stop()
		s.flushTimer = nil
	}
	s.flushMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	err := s.flushLocked()
	s.closed = true
	return err
}

// markDirty must be called with s.mu held.
func (s *FileStore) markDirty() {
	s.dirty = true
	s.scheduleFlush()
}

func (s *FileStore) scheduleFlush() {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	if s.flushTimer != nil {
		s.flushTimer.Stop()
	}
	s.flushTimer = time.AfterFunc(s.flushDebounce, func() {
		if err := s.Flush(); err != nil {
			log := logging.For("prefs")
			log.Error().Err(err).Str("path", s.path).Msg("Deferred flush failed")
		}
	})
}
