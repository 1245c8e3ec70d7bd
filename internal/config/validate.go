package config

import (
	"slices"
	"strings"
	"time"
)

var (
	// Minimum and maximum duration constraints.
	minDuration = 1 * time.Second
	maxDuration = 24 * time.Hour

	minTickInterval = 10 * time.Millisecond
	maxTickInterval = 1 * time.Minute

	maxPatternLength = 32

	validDrivers   = []string{"bolt", "badger"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if err := c.validateNotifications(); err != nil {
		return err
	}

	if !slices.Contains(validDrivers, c.Storage.Driver) {
		return errInvalidDriver.Fmt(
			strings.Join(validDrivers, ", "),
			c.Storage.Driver,
		)
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateTimer() error {
	// an explicit end instant takes the place of the duration
	if c.CLI.EndTime.IsZero() &&
		(c.Timer.Duration < minDuration || c.Timer.Duration > maxDuration) {
		return errInvalidDuration.Fmt(minDuration, maxDuration, c.Timer.Duration)
	}

	if c.Timer.TickInterval < minTickInterval ||
		c.Timer.TickInterval > maxTickInterval {
		return errInvalidTickInterval.Fmt(
			minTickInterval,
			maxTickInterval,
			c.Timer.TickInterval,
		)
	}

	return nil
}

func (c *Config) validateNotifications() error {
	pattern := c.Notifications.VibrationPattern

	if len(pattern) > maxPatternLength {
		return errInvalidPattern.Fmt(maxPatternLength)
	}

	for _, v := range pattern {
		if v < 0 {
			return errInvalidPattern.Fmt(maxPatternLength)
		}
	}

	return nil
}
