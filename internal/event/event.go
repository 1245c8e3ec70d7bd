// Package event provides the observer list used by the countdown timer to
// publish its progress
package event

import (
	"sync"
	"time"
)

// Name identifies a kind of event.
type Name string

const (
	// Tick is published on every scheduler period while a timer is running.
	Tick Name = "tick"
	// End is published once when a countdown expires naturally.
	End Name = "end"
)

// Event is the payload delivered to handlers.
type Event struct {
	At        time.Time
	Name      Name
	Remaining time.Duration
}

// Handler receives published events.
type Handler func(Event)

// Emitter maintains a list of handlers per event name. The zero value is ready
// to use.
type Emitter struct {
	handlers map[Name][]Handler
	mu       sync.RWMutex
}

// On registers h for events published under name.
func (e *Emitter) On(name Name, h Handler) {
	if h == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers == nil {
		e.handlers = make(map[Name][]Handler)
	}

	e.handlers[name] = append(e.handlers[name], h)
}

// Emit delivers ev to every handler registered for ev.Name, in registration
// order, on the calling goroutine.
func (e *Emitter) Emit(ev Event) {
	e.mu.RLock()
	handlers := append([]Handler(nil), e.handlers[ev.Name]...)
	e.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}
