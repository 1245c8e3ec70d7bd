package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type beeperMock struct {
	err    error
	events []string
}

func newTestDevice(t *testing.T, b *beeperMock) *Device {
	t.Helper()

	d := New(t.TempDir(), true)

	d.beep = func(_ float64, duration int) error {
		b.events = append(b.events, "beep "+time.Duration(duration*int(time.Millisecond)).String())
		return b.err
	}

	d.sleep = func(pause time.Duration) {
		b.events = append(b.events, "pause "+pause.String())
	}

	d.alert = func(title, message, _ string) error {
		b.events = append(b.events, "alert "+title+": "+message)
		return nil
	}

	return d
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0o600)
		require.NoError(t, err)
	}
}

func TestVibrate(t *testing.T) {
	b := &beeperMock{}
	d := newTestDevice(t, b)

	err := d.Vibrate([]time.Duration{
		200 * time.Millisecond,
		100 * time.Millisecond,
		300 * time.Millisecond,
		0,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"beep 200ms",
		"pause 100ms",
		"beep 300ms",
	}, b.events)
}

func TestVibrateBeepFailure(t *testing.T) {
	b := &beeperMock{err: errors.New("no beeper")}
	d := newTestDevice(t, b)

	err := d.Vibrate([]time.Duration{time.Millisecond, time.Millisecond})

	assert.ErrorIs(t, err, errBeep)
	assert.Len(t, b.events, 1)
}

func TestAlert(t *testing.T) {
	b := &beeperMock{}
	d := newTestDevice(t, b)

	require.NoError(t, d.Alert("Countdown finished", "5m0s elapsed"))

	d.Desktop = false

	require.NoError(t, d.Alert("ignored", "ignored"))

	assert.Equal(t, []string{"alert Countdown finished: 5m0s elapsed"}, b.events)
}

func TestResolve(t *testing.T) {
	d := newTestDevice(t, &beeperMock{})

	touch(t, d.SoundDir, "bell.ogg", "chime.wav")

	path, err := d.Resolve("bell")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.SoundDir, "bell.ogg"), path)

	path, err = d.Resolve("chime")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.SoundDir, "chime.wav"), path)

	custom := filepath.Join(d.SoundDir, "chime.wav")

	path, err = d.Resolve(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, path)

	_, err = d.Resolve("gong")
	assert.ErrorIs(t, err, errUnknownSound)

	_, err = d.Resolve("notes.txt")
	assert.ErrorIs(t, err, errInvalidSoundFormat)

	_, err = d.Resolve(filepath.Join(d.SoundDir, "missing.mp3"))
	assert.ErrorIs(t, err, errUnknownSound)
}

func TestSounds(t *testing.T) {
	d := newTestDevice(t, &beeperMock{})

	touch(t, d.SoundDir, "bell10.ogg", "bell2.mp3", "bell1.wav", "bell1.ogg", "notes.txt")

	sounds, err := d.Sounds()
	require.NoError(t, err)

	assert.Equal(t, []string{"bell1", "bell2", "bell10"}, sounds)
}

func TestSoundsMissingDir(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), "missing"), false)

	sounds, err := d.Sounds()
	require.NoError(t, err)
	assert.Empty(t, sounds)
}
