// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: prefs/store.go
// Summary: Preference store interface and backend selection.
// Usage: The repository reads enabled flags, custom names and the app order here.

package prefs

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Store is a flat key/value preference map scoped to the launcher.
// Reads never fail: a missing or mistyped key yields the supplied default.
type Store interface {
	Contains(key string) bool
	GetBool(key string, def bool) bool
	GetString(key, def string) string
	PutBool(key string, value bool) error
	PutString(key, value string) error
	Remove(key string) error
	Keys() []string
	Flush() error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// baseName matches the preference file name used since the first release.
const baseName = "ballista_apps"

// Options selects and configures a backend.
type Options struct {
	Backend string
	Dir     string

	// FlushDebounce applies to the json backend only. Zero means the default.
	FlushDebounce time.Duration
}

// Path returns the on-disk location the backend would use.
func (o Options) Path() string {
	switch o.backend() {
	case BackendSQLite:
		return filepath.Join(o.Dir, baseName+".db")
	case BackendBadger:
		return filepath.Join(o.Dir, baseName+".badger")
	case BackendMemory:
		return ""
	default:
		return filepath.Join(o.Dir, baseName+".json")
	}
}

func (o Options) backend() string {
	b := strings.ToLower(strings.TrimSpace(o.Backend))
	if b == "" {
		return BackendJSON
	}
	return b
}

// Open creates the store for the configured backend.
func Open(opts Options) (Store, error) {
	backend := opts.backend()
	if backend != BackendMemory && opts.Dir == "" {
		return nil, errors.Errorf("prefs: %s backend needs a directory", backend)
	}

	switch backend {
	case BackendJSON:
		return NewFileStore(opts.Path(), opts.FlushDebounce)
	case BackendSQLite:
		return NewSQLiteStore(opts.Path())
	case BackendBadger:
		return NewBadgerStore(opts.Path())
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("prefs: unknown backend %q", opts.Backend)
	}
}

func decodeBool(raw json.RawMessage, def bool) bool {
	if raw == nil {
		return def
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func decodeString(raw json.RawMessage, def string) string {
	if raw == nil {
		return def
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}
