package app

import (
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/pathutil"
	"github.com/ayoisaiah/countdown/internal/timer"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/notify"
	"github.com/ayoisaiah/countdown/store"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// env holds what every command needs once the configuration is loaded.
type env struct {
	cfg    *config.Config
	paths  *pathutil.Paths
	log    *slog.Logger
	device *notify.Device
}

// setup loads the configuration and the logger. The config file is applied
// before opts.
func setup(opts ...config.Option) (*env, error) {
	paths, err := pathutil.New()
	if err != nil {
		return nil, err
	}

	cfgOpts := append(
		[]config.Option{config.WithViperConfig(paths.ConfigFilePath())},
		opts...,
	)

	cfg, err := config.New(cfgOpts...)
	if err != nil {
		return nil, err
	}

	log := newLogger(paths.LogFilePath(), cfg.Log.Level)
	slog.SetDefault(log)

	ui.DarkTheme = cfg.Display.DarkTheme

	log.Debug("config loaded", slog.String("config", cfg.String()))

	return &env{
		cfg:    cfg,
		paths:  paths,
		log:    log,
		device: notify.New(paths.SoundDir(), cfg.Notifications.Desktop),
	}, nil
}

// newLogger writes JSON records to a rotating file. The level has already
// been validated with the config.
func newLogger(path, level string) *slog.Logger {
	var lvl slog.Level

	_ = lvl.UnmarshalText([]byte(strings.ToUpper(level)))

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}

// dbPath returns the location of the database for the configured driver.
func (e *env) dbPath() string {
	if e.cfg.Storage.Path != "" {
		return e.cfg.Storage.Path
	}

	if e.cfg.Storage.Driver == store.DriverBadger {
		return filepath.Join(e.paths.DataDir(), "badger")
	}

	return e.paths.DBFilePath()
}

func (e *env) openDB() (store.DB, error) {
	return store.Open(e.cfg.Storage.Driver, e.dbPath())
}

// timerOptions configures a timer that persists to db.
func (e *env) timerOptions(db store.DB) []timer.Option {
	opts := []timer.Option{
		timer.WithStorage(db),
		timer.WithLogger(e.log),
		timer.WithTickInterval(e.cfg.Timer.TickInterval),
		timer.WithVibrationPattern(e.cfg.Pattern()),
	}

	if e.cfg.Notifications.Enabled {
		opts = append(opts, timer.WithNotifier(e.device))
	}

	return opts
}
