package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTimerDuration        = "timer.duration"
	keyTimerTickInterval    = "timer.tick_interval"
	keyTimerSound           = "timer.sound"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsDesktop = "notifications.desktop"
	keyVibrationPattern     = "notifications.vibration_pattern"
	keyStorageDriver        = "storage.driver"
	keyStoragePath          = "storage.path"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyPlain                = "display.plain"
	keyLogLevel             = "log.level"
)

const envPrefix = "countdown"

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and environment overrides.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyTimerDuration, "5m")
	v.SetDefault(keyTimerTickInterval, "1s")
	v.SetDefault(keyTimerSound, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsDesktop, true)
	v.SetDefault(keyVibrationPattern, []int{200, 200, 200, 200, 200})
	v.SetDefault(keyStorageDriver, "bolt")
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyPlain, false)
	v.SetDefault(keyLogLevel, "info")

	// COUNTDOWN_TIMER_DURATION overrides timer.duration and so on
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
