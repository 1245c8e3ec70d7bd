package store

import (
	"errors"

	"github.com/ayoisaiah/countdown/internal/apperr"
)

// DB is the database storage interface.
type DB interface {
	// SetItem stores value under key, overwriting any previous value
	SetItem(key string, value []byte) error
	// GetItem retrieves the value stored under key. It fails with
	// ErrNotFound if nothing is stored there
	GetItem(key string) ([]byte, error)
	// RemoveItem deletes key. Removing a missing key is not an error
	RemoveItem(key string) error
	// Close ends the database connection
	Close() error
}

const (
	DriverBolt   = "bolt"
	DriverBadger = "badger"
)

var (
	ErrNotFound = &apperr.Error{
		Message: "no saved timer: start a new countdown",
	}

	errAlreadyRunning = &apperr.Error{
		Message: "is countdown already running? Only one instance can be active at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}
)

// Open connects to the database at path using the named driver.
func Open(driver, path string) (DB, error) {
	switch driver {
	case DriverBolt, "":
		return NewClient(path)
	case DriverBadger:
		return NewBadgerClient(path)
	}

	return nil, errUnknownDriver.Fmt(driver)
}

// IsLocked reports whether err means that another process holds the
// database.
func IsLocked(err error) bool {
	return errors.Is(err, errAlreadyRunning)
}
