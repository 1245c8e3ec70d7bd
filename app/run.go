package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/event"
	"github.com/ayoisaiah/countdown/internal/osutil"
	"github.com/ayoisaiah/countdown/internal/timer"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/report"
)

const savedHint = "countdown saved: run 'countdown resume' to restart it"

// trackedTimer mirrors pauses to the status file since a paused timer no
// longer ticks.
type trackedTimer struct {
	*timer.Timer
	syncStatus func()
}

func (t trackedTimer) Pause() {
	t.Timer.Pause()
	t.syncStatus()
}

// run drives t until it ends, is canceled, or the user leaves. The status
// file is kept up to date for the status command while the database is
// locked by this process.
func (e *env) run(t *timer.Timer) error {
	syncStatus := func() {
		err := writeStatusFile(e.paths.StatusFilePath(), t.Snapshot())
		if err != nil {
			e.log.Warn("unable to write status file", slog.Any("error", err))
		}
	}

	defer removeStatusFile(e.paths.StatusFilePath())

	t.On(event.Tick, func(_ event.Event) {
		syncStatus()
	})

	t.On(event.End, func(_ event.Event) {
		e.onEnd()
	})

	if e.cfg.Display.Plain {
		return e.runPlain(t)
	}

	return e.runInteractive(trackedTimer{Timer: t, syncStatus: syncStatus})
}

func (e *env) runInteractive(t trackedTimer) error {
	m := ui.NewModel(
		t,
		ui.NewStyles(e.cfg.Display.DarkTheme),
		e.cfg.Settings.TwentyFourHour,
	)

	p := tea.NewProgram(m)

	t.On(event.Tick, func(ev event.Event) {
		p.Send(ui.TickMsg{At: ev.At, Remaining: ev.Remaining})
	})

	t.On(event.End, func(_ event.Event) {
		p.Send(ui.EndMsg{})
	})

	_, err := p.Run()

	t.Close()

	if m.Outcome() == ui.Quit && t.State() != timer.Canceled {
		report.Info(savedHint)
	}

	return err
}

func (e *env) runPlain(t *timer.Timer) error {
	printer := ui.NewPlain(config.Stdout)

	done := make(chan struct{})

	t.On(event.Tick, printer.Tick)

	t.On(event.End, func(ev event.Event) {
		printer.End(ev)
		close(done)
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	defer signal.Stop(sig)

	t.Start()

	select {
	case <-done:
	case <-sig:
		t.Close()

		fmt.Fprintln(config.Stdout)
		report.Info(savedHint)
	}

	return nil
}

// onEnd fires the alerts that follow the timer's own notification.
func (e *env) onEnd() {
	if e.cfg.Notifications.Enabled {
		err := e.device.Alert("Countdown complete", "Your countdown has ended")
		if err != nil {
			e.log.Warn("unable to show notification", slog.Any("error", err))
		}
	}

	err := runSessionCmd(e.cfg.Settings.Cmd)
	if err != nil {
		e.log.Warn(
			"completion command failed",
			slog.String("cmd", e.cfg.Settings.Cmd),
			slog.Any("error", err),
		)
	}
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

func writeStatusFile(path string, snap timer.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.FilePermission)
}

func readStatusFile(path string) (timer.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return timer.Snapshot{}, errNoStatus
		}

		return timer.Snapshot{}, err
	}

	return timer.DecodeSnapshot(b)
}

func removeStatusFile(path string) {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("unable to remove status file", slog.Any("error", err))
	}
}
