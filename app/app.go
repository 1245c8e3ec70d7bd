// Package app wires the countdown timer to the command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the countdown app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "countdown",
		Usage: `
		Countdown is a resumable timer for the command-line. The active countdown
		is saved on every tick so that it can be recovered after the program exits.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start a new countdown. DURATION may be a bare number of minutes (e.g. 25) or a duration (e.g. 1h30m)",
				ArgsUsage: "[DURATION]",
				Flags:     append(timerFlags(), untilFlag),
				Action:    startAction,
			},
			{
				Name:   "resume",
				Usage:  "Restart the saved countdown",
				Flags:  timerFlags(),
				Action: resumeAction,
			},
			{
				Name:   "cancel",
				Usage:  "Discard the saved countdown",
				Action: cancelAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the countdown",
				Flags:  []cli.Flag{jsonFlag},
				Action: statusAction,
			},
			{
				Name:   "notify",
				Usage:  "Fire the end of countdown alert without a countdown",
				Flags:  []cli.Flag{soundFlag},
				Action: notifyAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the available sounds",
				Action: soundsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			driverFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
