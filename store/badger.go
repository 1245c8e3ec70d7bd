package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const badgerPrefix = "timers/"

// BadgerClient is a BadgerDB database client.
type BadgerClient struct {
	db *badger.DB
}

func (b *BadgerClient) key(k string) []byte {
	return []byte(badgerPrefix + k)
}

// SetItem stores value under key in the database.
func (b *BadgerClient) SetItem(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key(key), value)
	})
}

// GetItem returns the value stored under key, or ErrNotFound.
func (b *BadgerClient) GetItem(key string) ([]byte, error) {
	var value []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}

		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)

		return err
	})

	return value, err
}

// RemoveItem deletes key from the database.
func (b *BadgerClient) RemoveItem(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(b.key(key))
	})
}

// Close releases the database directory lock.
func (b *BadgerClient) Close() error {
	return b.db.Close()
}

// NewBadgerClient opens the BadgerDB directory at dir.
func NewBadgerClient(dir string) (*BadgerClient, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		// badger has no sentinel for a directory held by another process
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, errAlreadyRunning
		}

		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	return &BadgerClient{db: db}, nil
}
