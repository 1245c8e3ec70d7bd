package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/countdown/internal/event"
	"github.com/ayoisaiah/countdown/internal/timer"
)

type fakeController struct {
	calls     []string
	state     timer.State
	remaining time.Duration
}

func (f *fakeController) Start() {
	f.calls = append(f.calls, "start")
	f.state = timer.Started
}

func (f *fakeController) Pause() {
	f.calls = append(f.calls, "pause")
	f.state = timer.Paused
}

func (f *fakeController) Cancel() {
	f.calls = append(f.calls, "cancel")
	f.state = timer.Canceled
}

func (f *fakeController) State() timer.State {
	return f.state
}

func (f *fakeController) Remaining() time.Duration {
	return f.remaining
}

func (f *fakeController) Duration() time.Duration {
	return 5 * time.Minute
}

func keyPress(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func newTestModel() (*Model, *fakeController) {
	ctrl := &fakeController{remaining: 5 * time.Minute}

	return NewModel(ctrl, NewStyles(true), true), ctrl
}

func TestModelInitStarts(t *testing.T) {
	m, ctrl := newTestModel()

	cmd := m.Init()
	require.NotNil(t, cmd)

	assert.Nil(t, cmd())
	assert.Equal(t, []string{"start"}, ctrl.calls)
}

func TestModelTick(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.state = timer.Started

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, cmd := m.Update(TickMsg{At: at, Remaining: 4*time.Minute + 59*time.Second})
	assert.Nil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "04:59")
	assert.Contains(t, view, "until 09:04:59")
}

func TestModelTogglePause(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.state = timer.Started

	_, cmd := m.Update(keyPress("p"))
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"pause"}, ctrl.calls)
	assert.Contains(t, m.View(), "[Paused]")

	_, cmd = m.Update(keyPress("p"))
	require.NotNil(t, cmd)

	cmd()
	assert.Equal(t, []string{"pause", "start"}, ctrl.calls)
}

func TestModelCancel(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.state = timer.Started

	_, cmd := m.Update(keyPress("c"))
	require.NotNil(t, cmd)

	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, []string{"cancel"}, ctrl.calls)
	assert.Equal(t, Canceled, m.Outcome())
}

func TestModelQuitLeavesTimer(t *testing.T) {
	m, ctrl := newTestModel()
	ctrl.state = timer.Started

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, ctrl.calls)
	assert.Equal(t, Quit, m.Outcome())
	assert.Empty(t, m.View())
}

func TestModelEnd(t *testing.T) {
	m, _ := newTestModel()

	_, cmd := m.Update(EndMsg{})
	require.NotNil(t, cmd)

	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, Ended, m.Outcome())
	assert.Contains(t, m.View(), "Countdown complete")
}

func TestPlain(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer

	p := NewPlain(&buf)
	p.Tick(event.Event{Name: event.Tick, Remaining: 90 * time.Second})
	p.End(event.Event{Name: event.End})

	assert.Equal(t, "\rCountdown 01:30\rCountdown complete\n", buf.String())
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	err := PrintTable(&buf, []string{"#", "NAME"}, [][]string{{"1", "bell"}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "bell")
}

func TestRenderList(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out, err := RenderList([][]string{
		{"a:", Red("1")},
		{"long:", "22"},
	})
	require.NoError(t, err)

	assert.Equal(t, "a:     1\nlong:  22", out)
}
