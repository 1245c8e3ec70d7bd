package app

import (
	"io"
	"strings"
	"time"

	"github.com/ayoisaiah/countdown/internal/timer"
	"github.com/ayoisaiah/countdown/internal/timeutil"
	"github.com/ayoisaiah/countdown/internal/ui"
)

const (
	dateFormat12 = "Jan 02, 2006 03:04:05 PM"
	dateFormat24 = "Jan 02, 2006 15:04:05"
)

// renderStatus prints snap as seen at now. running reports whether another
// process is driving the countdown.
func renderStatus(
	w io.Writer,
	snap timer.Snapshot,
	now time.Time,
	running, twentyFourHour bool,
) error {
	layout := dateFormat12
	if twentyFourHour {
		layout = dateFormat24
	}

	format := func(ms int64) string {
		if ms == 0 {
			return "-"
		}

		return timeutil.FromMillis(ms).In(now.Location()).Format(layout)
	}

	state := snap.State.String()
	if snap.State == timer.Started && !running {
		state += " (interrupted)"
	}

	switch snap.State {
	case timer.Started:
		state = ui.Green(state)
	case timer.Paused:
		state = ui.Yellow(state)
	case timer.Canceled:
		state = ui.Red(state)
	case timer.Initialized, timer.Reactivating:
		state = ui.Cyan(state)
	}

	sound := "-"
	if snap.Sound != nil && *snap.Sound != "" {
		sound = *snap.Sound
	}

	rows := [][]string{
		{"State:", state},
		{"Remaining:", ui.Highlight(timeutil.FormatRemaining(snap.Remaining(now)))},
		{"Duration:", timeutil.FormatRemaining(time.Duration(snap.Duration) * time.Millisecond)},
		{"Started:", format(snap.StartAt)},
		{"Ends:", format(snap.EndAt)},
	}

	if snap.State == timer.Paused {
		rows = append(rows, []string{"Paused:", format(snap.PauseAt)})
	}

	rows = append(rows, []string{"Sound:", sound})

	list, err := ui.RenderList(rows)
	if err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(list)
	b.WriteString("\n")

	if !running && snap.State != timer.Canceled {
		b.WriteString("\nRun 'countdown resume' to restart the full duration\n")
	}

	_, err = io.WriteString(w, b.String())

	return err
}
