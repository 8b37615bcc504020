// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: prefs/memory.go
// Summary: Process-local preference store.

package prefs

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore keeps preferences in memory only.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (m *MemoryStore) Contains(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

func (m *MemoryStore) GetBool(key string, def bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return decodeBool(m.data[key], def)
}

func (m *MemoryStore) GetString(key, def string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return decodeString(m.data[key], def)
}

func (m *MemoryStore) PutBool(key string, value bool) error {
	return m.put(key, value)
}

func (m *MemoryStore) PutString(key, value string) error {
	return m.put(key, value)
}

func (m *MemoryStore) put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}
	m.mu.Lock()
	m.data[key] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *MemoryStore) Flush() error { return nil }
func (m *MemoryStore) Close() error { return nil }
