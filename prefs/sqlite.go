// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: prefs/sqlite.go
// Summary: SQLite-backed preference store.

package prefs

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/framegrace/ballista/internal/logging"
)

const prefsSchema = `
CREATE TABLE IF NOT EXISTS prefs (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL        -- JSON encoded
);
`

// SQLiteStore implements Store on a single-table SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "create prefs dir %s", filepath.Dir(path))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open prefs database")
	}
	// Writes are serialized by the repository anyway.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=2000",
		prefsSchema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "init prefs database")
		}
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) raw(key string) json.RawMessage {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			logging.For("prefs").Error().Err(err).Str("key", key).Msg("SQLite read failed")
		}
		return nil
	}
	return json.RawMessage(value)
}

func (s *SQLiteStore) Contains(key string) bool {
	return s.raw(key) != nil
}

func (s *SQLiteStore) GetBool(key string, def bool) bool {
	return decodeBool(s.raw(key), def)
}

func (s *SQLiteStore) GetString(key, def string) string {
	return decodeString(s.raw(key), def)
}

func (s *SQLiteStore) PutBool(key string, value bool) error {
	return s.put(key, value)
}

func (s *SQLiteStore) PutString(key, value string) error {
	return s.put(key, value)
}

func (s *SQLiteStore) put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}
	_, err = s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	return errors.Wrapf(err, "store %s", key)
}

func (s *SQLiteStore) Remove(key string) error {
	_, err := s.db.Exec("DELETE FROM prefs WHERE key = ?", key)
	return errors.Wrapf(err, "remove %s", key)
}

func (s *SQLiteStore) Keys() []string {
	rows, err := s.db.Query("SELECT key FROM prefs ORDER BY key")
	if err != nil {
		logging.For("prefs").Error().Err(err).Msg("SQLite key scan failed")
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			logging.For("prefs").Error().Err(err).Msg("SQLite key scan failed")
			return keys
		}
		keys = append(keys, k)
	}
	return keys
}

// Flush is a no-op; every write is committed immediately.
func (s *SQLiteStore) Flush() error { return nil }

func (s *SQLiteStore) Close() error {
	return errors.Wrap(s.db.Close(), "close prefs database")
}
