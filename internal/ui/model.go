package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/countdown/internal/timer"
	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// Controller is the part of the timer driven by the interactive view.
type Controller interface {
	Start()
	Pause()
	Cancel()
	State() timer.State
	Remaining() time.Duration
	Duration() time.Duration
}

// TickMsg reports the time left after a tick.
type TickMsg struct {
	At        time.Time
	Remaining time.Duration
}

// EndMsg reports that the countdown ran out.
type EndMsg struct{}

// Outcome is how the interactive view was left.
type Outcome int

const (
	Running Outcome = iota
	Ended
	Canceled
	Quit
)

type keymap struct {
	togglePlay key.Binding
	cancel     key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	cancel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the bubbletea model of a running countdown.
type Model struct {
	ctrl      Controller
	endAt     time.Time
	styles    Styles
	help      help.Model
	progress  progress.Model
	remaining time.Duration
	duration  time.Duration
	outcome   Outcome
	paused    bool
	clock24   bool
}

// NewModel creates the view for ctrl. The countdown is started by Init.
func NewModel(ctrl Controller, styles Styles, twentyFourHour bool) *Model {
	return &Model{
		ctrl:      ctrl,
		styles:    styles,
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
		remaining: ctrl.Remaining(),
		duration:  ctrl.Duration(),
		clock24:   twentyFourHour,
	}
}

// Outcome reports how the view was left.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// start runs in a command since Start delivers its first tick synchronously
// through the program.
func (m *Model) start() tea.Msg {
	m.ctrl.Start()
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.start
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.remaining = msg.Remaining
		m.endAt = msg.At.Add(msg.Remaining)
		m.duration = m.ctrl.Duration()
		m.paused = m.ctrl.State() == timer.Paused

		return m, nil

	case EndMsg:
		m.remaining = 0
		m.outcome = Ended

		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		switch m.ctrl.State() {
		case timer.Started:
			m.ctrl.Pause()
			m.paused = true
			m.remaining = m.ctrl.Remaining()

			return m, nil
		case timer.Paused:
			return m, m.start
		}

	case key.Matches(msg, defaultKeymap.cancel):
		m.ctrl.Cancel()
		m.outcome = Canceled

		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.quit):
		m.outcome = Quit

		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) timeFormat() string {
	if m.clock24 {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (m *Model) timerView() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render("Countdown"))

	switch {
	case m.paused:
		s.WriteString(m.styles.Secondary.Render("[Paused]"))
	case !m.endAt.IsZero():
		s.WriteString(
			m.styles.Hint.Render("until " + m.endAt.Format(m.timeFormat())),
		)
	}

	var percent float64
	if m.duration > 0 {
		percent = 1 - float64(m.remaining)/float64(m.duration)
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.FormatRemaining(m.remaining)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(percent))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.cancel,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) View() string {
	switch m.outcome {
	case Ended:
		return m.styles.Base.Render(m.styles.Main.Render("Countdown complete"))
	case Canceled:
		return m.styles.Base.Render(m.styles.Secondary.Render("Countdown canceled"))
	case Quit:
		return ""
	case Running:
	}

	return m.styles.Base.Render(m.timerView())
}
