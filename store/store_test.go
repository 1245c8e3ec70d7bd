package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, driver string) DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "countdown.db")

	db, err := Open(driver, path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestItems(t *testing.T) {
	for _, driver := range []string{DriverBolt, DriverBadger} {
		t.Run(driver, func(t *testing.T) {
			db := openTestDB(t, driver)

			_, err := db.GetItem("active_timer")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, db.SetItem("active_timer", []byte(`{"state":1}`)))
			require.NoError(t, db.SetItem("active_timer", []byte(`{"state":2}`)))

			got, err := db.GetItem("active_timer")
			require.NoError(t, err)
			assert.Equal(t, `{"state":2}`, string(got))

			require.NoError(t, db.RemoveItem("active_timer"))

			_, err = db.GetItem("active_timer")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, db.RemoveItem("active_timer"))
		})
	}
}

func TestBoltReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown.db")

	db, err := NewClient(path)
	require.NoError(t, err)

	require.NoError(t, db.SetItem("active_timer", []byte("saved")))
	require.NoError(t, db.Close())

	db, err = NewClient(path)
	require.NoError(t, err)

	defer db.Close()

	got, err := db.GetItem("active_timer")
	require.NoError(t, err)
	assert.Equal(t, "saved", string(got))
}

func TestUnknownDriver(t *testing.T) {
	_, err := Open("sqlite", filepath.Join(t.TempDir(), "x"))

	assert.ErrorIs(t, err, errUnknownDriver)
	assert.EqualError(t, err, "unknown storage driver: sqlite")
}

func TestBoltLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown.db")

	db, err := NewClient(path)
	require.NoError(t, err)

	defer db.Close()

	_, err = NewClient(path)

	assert.True(t, IsLocked(err))
	assert.False(t, IsLocked(ErrNotFound))
}
