package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/timer"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/report"
	"github.com/ayoisaiah/countdown/store"
)

const (
	envNoColor          = "NO_COLOR"
	envCountdownNoColor = "COUNTDOWN_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadSnapshot reads the saved countdown from db.
func loadSnapshot(db store.DB) (timer.Snapshot, error) {
	b, err := db.GetItem(timer.StorageKey)
	if err != nil {
		return timer.Snapshot{}, err
	}

	return timer.DecodeSnapshot(b)
}

// startAction handles the start command which begins a new countdown. The
// duration is prompted for when neither DURATION nor --until is given.
func startAction(ctx *cli.Context) error {
	e, err := setup(config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	db, err := e.openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	_, err = db.GetItem(timer.StorageKey)
	if err == nil {
		return errTimerExists
	}

	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	prompt := ctx.Args().Len() == 0 &&
		ctx.String("until") == "" &&
		!e.cfg.Display.Plain

	err = config.WithPromptConfig(prompt)(e.cfg)
	if err != nil {
		return err
	}

	start, end := e.cfg.Bounds(time.Now())

	p := timer.Params{
		StartAt:  start,
		EndAt:    end,
		Duration: end.Sub(start),
		Sound:    e.cfg.Timer.Sound,
		State:    timer.Initialized,
	}

	err = p.Validate()
	if err != nil {
		return err
	}

	e.log.Info(
		"starting countdown",
		slog.Duration("duration", p.Duration),
		slog.Time("end", p.EndAt),
	)

	return e.run(timer.New(p, e.timerOptions(db)...))
}

// resumeAction handles the resume command and recovers a previously
// interrupted or paused countdown.
func resumeAction(ctx *cli.Context) error {
	e, err := setup(config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	db, err := e.openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	snap, err := loadSnapshot(db)
	if err != nil {
		return err
	}

	// a canceled timer cannot be started again
	if snap.State == timer.Canceled {
		_ = db.RemoveItem(timer.StorageKey)
		return store.ErrNotFound
	}

	// a sound flag replaces the saved one
	if ctx.IsSet("sound") {
		sound := e.cfg.Timer.Sound
		snap.Sound = &sound
	}

	e.log.Info(
		"resuming countdown",
		slog.String("state", snap.State.String()),
		slog.Int64("duration_ms", snap.Duration),
	)

	return e.run(timer.FromSnapshot(snap, e.timerOptions(db)...))
}

// cancelAction handles the cancel command which discards the saved
// countdown.
func cancelAction(ctx *cli.Context) error {
	e, err := setup(config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	db, err := e.openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	snap, err := loadSnapshot(db)
	if errors.Is(err, store.ErrNotFound) {
		report.Info("no countdown to cancel")
		return nil
	}

	if err != nil {
		return err
	}

	t := timer.FromSnapshot(
		snap,
		timer.WithStorage(db),
		timer.WithLogger(e.log),
	)

	t.Cancel()

	report.Info("countdown canceled")

	return nil
}

// statusAction handles the status command and prints the status of the
// saved or running countdown.
func statusAction(ctx *cli.Context) error {
	e, err := setup(config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	snap, running, err := e.currentSnapshot()
	if errors.Is(err, store.ErrNotFound) {
		report.Info("no active countdown")
		return nil
	}

	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return renderStatus(
		config.Stdout,
		snap,
		time.Now(),
		running,
		e.cfg.Settings.TwentyFourHour,
	)
}

// currentSnapshot reads the saved countdown, falling back to the status file
// when another process holds the database.
func (e *env) currentSnapshot() (snap timer.Snapshot, running bool, err error) {
	db, err := e.openDB()
	if err != nil {
		if !store.IsLocked(err) {
			return timer.Snapshot{}, false, err
		}

		snap, err = readStatusFile(e.paths.StatusFilePath())

		return snap, true, err
	}

	defer db.Close()

	snap, err = loadSnapshot(db)

	return snap, false, err
}

// notifyAction handles the notify command which fires the end of countdown
// alert on its own.
func notifyAction(ctx *cli.Context) error {
	e, err := setup(config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	t := timer.New(
		timer.Params{Sound: e.cfg.Timer.Sound},
		timer.WithNotifier(e.device),
		timer.WithLogger(e.log),
		timer.WithVibrationPattern(e.cfg.Pattern()),
	)

	t.Notify()

	return nil
}

// soundsAction handles the sounds command which lists the sounds that can be
// passed to --sound.
func soundsAction(ctx *cli.Context) error {
	e, err := setup(config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	sounds, err := e.device.Sounds()
	if err != nil {
		return err
	}

	if len(sounds) == 0 {
		report.Info(
			fmt.Sprintf("no sounds found: add audio files to %s", e.paths.SoundDir()),
		)

		return nil
	}

	rows := make([][]string, len(sounds))

	for i, name := range sounds {
		if name == e.cfg.Timer.Sound {
			name = ui.Green(name + " (default)")
		}

		rows[i] = []string{strconv.Itoa(i + 1), name}
	}

	return ui.PrintTable(config.Stdout, []string{"#", "SOUND"}, rows)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	e, err := setup(config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, e.paths.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if COUNTDOWN_NO_COLOR is set
	if _, exists := os.LookupEnv(envCountdownNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting countdown")

	return nil
}
