package app

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/pathutil"
	"github.com/ayoisaiah/countdown/internal/testutil"
	"github.com/ayoisaiah/countdown/internal/timer"
	"github.com/ayoisaiah/countdown/store"
)

type StatusTestCase struct {
	Now            time.Time
	Name           string
	GoldenFile     string
	Snapshot       timer.Snapshot
	Running        bool
	TwentyFourHour bool
	Rendered       []byte
}

func (tc StatusTestCase) Output() ([]byte, string) {
	return tc.Rendered, tc.GoldenFile
}

var statusStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func ms(t time.Time) int64 {
	return t.UnixMilli()
}

func TestRenderStatus(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	sound := "bell"

	testCases := []StatusTestCase{
		{
			Name:       "paused countdown",
			GoldenFile: "status_paused",
			Now:        statusStart.Add(10 * time.Minute),
			Snapshot: timer.Snapshot{
				StartAt:  ms(statusStart),
				EndAt:    ms(statusStart.Add(5 * time.Minute)),
				PauseAt:  ms(statusStart.Add(100 * time.Second)),
				Duration: (5 * time.Minute).Milliseconds(),
				State:    timer.Paused,
				Sound:    &sound,
			},
		},
		{
			Name:           "countdown running in another process",
			GoldenFile:     "status_running",
			Now:            statusStart.Add(150 * time.Second),
			Running:        true,
			TwentyFourHour: true,
			Snapshot: timer.Snapshot{
				StartAt:  ms(statusStart),
				EndAt:    ms(statusStart.Add(5 * time.Minute)),
				Duration: (5 * time.Minute).Milliseconds(),
				State:    timer.Started,
			},
		},
		{
			Name:       "interrupted countdown",
			GoldenFile: "status_interrupted",
			Now:        statusStart.Add(10 * time.Minute),
			Snapshot: timer.Snapshot{
				StartAt:  ms(statusStart),
				EndAt:    ms(statusStart.Add(5 * time.Minute)),
				Duration: (5 * time.Minute).Milliseconds(),
				State:    timer.Started,
			},
		},
		{
			Name:       "canceled countdown",
			GoldenFile: "status_canceled",
			Now:        statusStart.Add(2 * time.Minute),
			Snapshot: timer.Snapshot{
				StartAt:  ms(statusStart),
				EndAt:    ms(statusStart.Add(5 * time.Minute)),
				Duration: (5 * time.Minute).Milliseconds(),
				State:    timer.Canceled,
				Sound:    &sound,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer

			err := renderStatus(
				&buf,
				tc.Snapshot,
				tc.Now,
				tc.Running,
				tc.TwentyFourHour,
			)
			require.NoError(t, err, spew.Sdump(tc.Snapshot))

			tc.Rendered = buf.Bytes()

			testutil.CompareGoldenFile(t, tc)
		})
	}
}

func TestStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown", "status.json")

	_, err := readStatusFile(path)
	assert.ErrorIs(t, err, errNoStatus)

	snap := timer.Snapshot{
		StartAt:  ms(statusStart),
		EndAt:    ms(statusStart.Add(time.Minute)),
		Duration: time.Minute.Milliseconds(),
		State:    timer.Started,
	}

	require.NoError(t, writeStatusFile(path, snap))

	got, err := readStatusFile(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	removeStatusFile(path)
	assert.NoFileExists(t, path)

	// removing twice is harmless
	removeStatusFile(path)
}

func TestRunSessionCmd(t *testing.T) {
	assert.NoError(t, runSessionCmd(""))

	err := runSessionCmd(`echo "unterminated`)
	assert.ErrorIs(t, err, errParseCmd)

	out := filepath.Join(t.TempDir(), "done")

	require.NoError(t, runSessionCmd("touch '"+out+"'"))
	assert.FileExists(t, out)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}

func TestDBPath(t *testing.T) {
	dataHome := t.TempDir()

	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	paths, err := pathutil.New()
	require.NoError(t, err)

	e := &env{
		cfg:   &config.Config{Storage: config.StorageConfig{Driver: store.DriverBolt}},
		paths: paths,
	}

	assert.Equal(t, paths.DBFilePath(), e.dbPath())

	e.cfg.Storage.Driver = store.DriverBadger
	assert.Equal(t, filepath.Join(paths.DataDir(), "badger"), e.dbPath())

	e.cfg.Storage.Path = "/tmp/elsewhere"
	assert.Equal(t, "/tmp/elsewhere", e.dbPath())
}

func TestLoadSnapshot(t *testing.T) {
	db, err := store.Open(store.DriverBolt, filepath.Join(t.TempDir(), "countdown.db"))
	require.NoError(t, err)

	defer db.Close()

	_, err = loadSnapshot(db)
	assert.ErrorIs(t, err, store.ErrNotFound)

	now := time.Now()

	t1 := timer.New(timer.Params{
		StartAt: now,
		EndAt:   now.Add(time.Hour),
	}, timer.WithStorage(db), timer.WithTickInterval(time.Hour))

	t1.Start()
	t1.Pause()

	snap, err := loadSnapshot(db)
	require.NoError(t, err)
	assert.Equal(t, timer.Paused, snap.State)
	assert.Equal(t, time.Hour.Milliseconds(), snap.Duration)

	t1.Cancel()

	_, err = loadSnapshot(db)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
