// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// TimerConfig holds countdown settings
	TimerConfig struct {
		Sound        string        `mapstructure:"sound"`
		Duration     time.Duration `mapstructure:"duration"`
		TickInterval time.Duration `mapstructure:"tick_interval"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		// VibrationPattern alternates vibration and silence in milliseconds
		VibrationPattern []int `mapstructure:"vibration_pattern"`
		Enabled          bool  `mapstructure:"enabled"`
		Desktop          bool  `mapstructure:"desktop"`
	}

	// StorageConfig holds persistence settings
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
		// Path overrides the default database location
		Path string `mapstructure:"path"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		// Cmd is executed when a countdown ends
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
		Plain     bool `mapstructure:"plain"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		// EndTime is set when the end of the countdown was given as an
		// instant rather than a duration
		EndTime time.Time
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Pattern returns the vibration pattern as durations.
func (c *Config) Pattern() []time.Duration {
	pattern := make([]time.Duration, len(c.Notifications.VibrationPattern))

	for i, ms := range c.Notifications.VibrationPattern {
		pattern[i] = time.Duration(ms) * time.Millisecond
	}

	return pattern
}

// Bounds returns the start and end instants of a countdown that begins at
// now. It must be called once all prompts are done.
func (c *Config) Bounds(now time.Time) (start, end time.Time) {
	if !c.CLI.EndTime.IsZero() {
		return now, c.CLI.EndTime
	}

	return now, now.Add(c.Timer.Duration)
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"duration=%s tick=%s driver=%s notify=%t",
		c.Timer.Duration,
		c.Timer.TickInterval,
		c.Storage.Driver,
		c.Notifications.Enabled,
	)
}
