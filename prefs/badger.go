// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: prefs/badger.go
// Summary: Badger-backed preference store.

package prefs

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/framegrace/ballista/internal/logging"
)

// BadgerStore implements Store on a badger key/value directory.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens or creates the badger directory at dir.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open prefs badger db")
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) raw(key string) json.RawMessage {
	var out json.RawMessage
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append(json.RawMessage(nil), val...)
			return nil
		})
	})

	switch err {
	case nil:
		return out
	case badger.ErrKeyNotFound:
		return nil
	default:
		logging.For("prefs").Error().Err(err).Str("key", key).Msg("Badger read failed")
		return nil
	}
}

func (s *BadgerStore) Contains(key string) bool {
	return s.raw(key) != nil
}

func (s *BadgerStore) GetBool(key string, def bool) bool {
	return decodeBool(s.raw(key), def)
}

func (s *BadgerStore) GetString(key, def string) string {
	return decodeString(s.raw(key), def)
}

func (s *BadgerStore) PutBool(key string, value bool) error {
	return s.put(key, value)
}

func (s *BadgerStore) PutString(key, value string) error {
	return s.put(key, value)
}

func (s *BadgerStore) put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", key)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	return errors.Wrapf(err, "store %s", key)
}

func (s *BadgerStore) Remove(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	return errors.Wrapf(err, "remove %s", key)
}

func (s *BadgerStore) Keys() []string {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		logging.For("prefs").Error().Err(err).Msg("Badger key scan failed")
	}
	return keys
}

func (s *BadgerStore) Flush() error {
	return errors.Wrap(s.db.Sync(), "sync prefs badger db")
}

func (s *BadgerStore) Close() error {
	return errors.Wrap(s.db.Close(), "close prefs badger db")
}
