// Package store connects to the data store and manages the saved timer
package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const timerBucket = "timers"

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// SetItem stores value under key in the timer bucket.
func (c *Client) SetItem(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Put([]byte(key), value)
	})
}

// GetItem returns the value stored under key, or ErrNotFound.
func (c *Client) GetItem(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(timerBucket)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		// v is only valid for the lifetime of the transaction
		value = append([]byte(nil), v...)

		return nil
	})

	return value, err
}

// RemoveItem deletes key from the timer bucket.
func (c *Client) RemoveItem(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Delete([]byte(key))
	})
}

// Close releases the database file lock.
func (c *Client) Close() error {
	return c.DB.Close()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the bucket for storing the timer if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(timerBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
