// FarmQuest - Gamified Farming Habits
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package kvstore wraps an in-memory BadgerDB instance. Nothing is written to
// disk; the store lives exactly as long as the process.
package kvstore

import (
	"bytes"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("key not found")

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("store closed")

// Store wraps a Badger database.
type Store struct {
	db *badger.DB
}

// Open creates an empty in-memory store.
func Open() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // suppress badger logs
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get retrieves the value for a key. Returns ErrNotFound if the key does not exist.
func (s *Store) Get(key []byte) ([]byte, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	return val, err
}

// Put stores a key-value pair.
func (s *Store) Put(key, value []byte) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key []byte) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// DropPrefix removes every key under prefix.
func (s *Store) DropPrefix(prefix []byte) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.DropPrefix(prefix)
}

// Scan calls fn for every key with the given prefix in ascending key order.
// Iteration stops early if fn returns a non-nil error.
func (s *Store) Scan(prefix []byte, fn func(key, value []byte) error) error {
	return s.scan(prefix, false, fn)
}

// Latest returns up to n values under prefix, newest key first.
func (s *Store) Latest(prefix []byte, n int) ([][]byte, error) {
	var out [][]byte
	errStop := errors.New("stop")
	err := s.scan(prefix, true, func(_, value []byte) error {
		if len(out) == n {
			return errStop
		}
		out = append(out, value)
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	return out, nil
}

// Count returns the number of keys under prefix.
func (s *Store) Count(prefix []byte) (int, error) {
	n := 0
	err := s.Scan(prefix, func(_, _ []byte) error {
		n++
		return nil
	})
	return n, err
}

func (s *Store) scan(prefix []byte, reverse bool, fn func(key, value []byte) error) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.Reverse = reverse
		it := txn.NewIterator(opts)
		defer it.Close()

		// A reverse iterator has to start past the last key with the prefix.
		start := prefix
		if reverse {
			start = append(bytes.Clone(prefix), 0xff)
		}
		for it.Seek(start); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			k := item.KeyCopy(nil)
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
