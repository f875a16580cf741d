// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/feal94/guitar.io/internal/logger"
)

// imageKey is the fixed slot the serialized database image lives under.
const imageKey = "guitar_io_database"

// Backend is the durable key-value slot backing the store. It owns a badger
// database that holds exactly two kinds of data: the opaque serialized SQLite
// image under [imageKey], and the short-lived session marker written by the
// session package.
type Backend struct {
	db     *badger.DB
	logger *logger.Logger
}

// OpenBackend opens (or creates) the badger store in dir.
func OpenBackend(dir string, log *logger.Logger) (*Backend, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open key-value store: %w", err)
	}
	log.Debug().Str("dir", dir).Msg("key-value store opened")

	return &Backend{db: db, logger: log}, nil
}

// OpenInMemoryBackend opens a badger store that lives only in process memory.
// Used by tests and by commands that must never touch the real data dir.
func OpenInMemoryBackend(log *logger.Logger) (*Backend, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory key-value store: %w", err)
	}

	return &Backend{db: db, logger: log}, nil
}

// Close releases the underlying badger database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// LoadImage returns the last persisted database image, or found=false if no
// image has ever been saved.
func (b *Backend) LoadImage() (image []byte, found bool, err error) {
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(imageKey))
		if err != nil {
			return err
		}
		image, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load database image: %w", err)
	}

	return image, true, nil
}

// SaveImage atomically overwrites the persisted slot with image. A failure
// (e.g. disk full) is reported to the caller, never swallowed.
func (b *Backend) SaveImage(image []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(imageKey), image)
	})
	if err != nil {
		return fmt.Errorf("save database image: %w", err)
	}

	return nil
}

// DropImage removes the persisted database image. Used by the reset flow.
func (b *Backend) DropImage() error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(imageKey))
	})
	if err != nil {
		return fmt.Errorf("drop database image: %w", err)
	}

	return nil
}

// Put stores value under key. A positive ttl makes the entry expire on its
// own, which is how the short-lived session slot is implemented.
func (b *Backend) Put(key string, value []byte, ttl time.Duration) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}

	return nil
}

// Get returns the value stored under key, or found=false when the key is
// absent or its TTL has expired.
func (b *Backend) Get(key string) (value []byte, found bool, err error) {
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}

	return value, true, nil
}

// Delete removes key from the slot. Deleting an absent key is not an error.
func (b *Backend) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}

	return nil
}
