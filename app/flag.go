package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Storage backend for the active countdown: bolt or badger",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "End the countdown at an instant instead of after a duration (e.g. '5pm', 'in 20 minutes')",
	}

	soundFlag = &cli.StringFlag{
		Name:    "sound",
		Aliases: []string{"s"},
		Usage:   "Sound to play when the countdown ends. List the options with the sounds command. Disable sound by setting to 'off'",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command when the countdown ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the alerts that fire when the countdown ends",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print the remaining time on a single line instead of the interactive view",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the saved countdown as JSON",
	}
)

// timerFlags apply to every command that runs a countdown.
func timerFlags() []cli.Flag {
	return []cli.Flag{
		soundFlag,
		sessionCmdFlag,
		disableNotificationFlag,
		plainFlag,
	}
}
