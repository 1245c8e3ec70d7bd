package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/ayoisaiah/countdown/internal/event"
	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// Plain prints the countdown on a single line without an interactive view.
type Plain struct {
	w  io.Writer
	mu sync.Mutex
}

// NewPlain returns a printer that writes to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

// Tick rewrites the line with the remaining time.
func (p *Plain) Tick(ev event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "\r%s %s", Cyan("Countdown"), timeutil.FormatRemaining(ev.Remaining))
}

// End finishes the line.
func (p *Plain) End(_ event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "\r%s %s\n", Cyan("Countdown"), Green("complete"))
}
