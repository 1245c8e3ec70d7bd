package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// SoundOff disables a sound set in the config file.
const SoundOff = "off"

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration      string
	Until         string
	Sound         string
	SessionCmd    string
	Driver        string
	DisableNotify bool
	Plain         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.Args().First(),
			Until:         ctx.String("until"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("cmd"),
			Driver:        ctx.String("driver"),
			DisableNotify: ctx.Bool("disable-notification"),
			Plain:         ctx.Bool("plain"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if err := applyCLIBounds(c, opts, now); err != nil {
		return err
	}

	if opts.Sound != "" {
		if opts.Sound == SoundOff {
			c.Timer.Sound = ""
		} else {
			c.Timer.Sound = strings.TrimSpace(opts.Sound)
		}
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Plain {
		c.Display.Plain = true
	}

	return nil
}

// applyCLIBounds handles the duration argument and the --until flag. The
// flag wins when both are present.
func applyCLIBounds(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Duration != "" {
		dur, err := timeutil.ParseDuration(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Duration).Wrap(err)
		}

		c.Timer.Duration = dur
	}

	if opts.Until == "" {
		return nil
	}

	end, err := timeutil.FromStr(opts.Until, now)
	if err != nil {
		return errInvalidUntil.Fmt(opts.Until).Wrap(err)
	}

	if !end.After(now) {
		return errEndInPast.Fmt(end.Format(time.RFC1123))
	}

	c.CLI.EndTime = end

	return nil
}
