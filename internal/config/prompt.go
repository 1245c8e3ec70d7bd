package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
)

var promptDurations = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
	15 * time.Minute,
	25 * time.Minute,
	30 * time.Minute,
	45 * time.Minute,
	60 * time.Minute,
}

// WithPromptConfig returns an Option that asks for the countdown duration
// interactively. It does nothing unless enabled.
func WithPromptConfig(enabled bool) Option {
	return func(c *Config) error {
		if !enabled {
			return nil
		}

		dur, err := promptUser(c.Timer.Duration)
		if err != nil {
			return errPrompt.Wrap(err)
		}

		c.Timer.Duration = dur

		return nil
	}
}

// promptOptions lists the selectable durations with current preselected. A
// current value outside the list is offered first.
func promptOptions(current time.Duration) []huh.Option[time.Duration] {
	durations := promptDurations

	found := false

	for _, d := range durations {
		if d == current {
			found = true
			break
		}
	}

	if !found && current > 0 {
		durations = append([]time.Duration{current}, durations...)
	}

	opts := make([]huh.Option[time.Duration], 0, len(durations))

	for _, d := range durations {
		opt := huh.NewOption(fmt.Sprintf("%v", d), d)
		if d == current {
			opt = opt.Selected(true)
		}

		opts = append(opts, opt)
	}

	return opts
}

// promptUser runs the interactive duration form.
func promptUser(current time.Duration) (time.Duration, error) {
	dur := current

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title("Countdown length").
				Options(promptOptions(current)...).
				Value(&dur),
		),
	)

	err := form.Run()
	if err != nil {
		return 0, err
	}

	return dur, nil
}
