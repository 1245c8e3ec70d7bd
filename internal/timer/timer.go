// Package timer operates the countdown timer and handles the recovery of
// interrupted timers
package timer

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/countdown/internal/event"
	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// DefaultVibrationPattern alternates vibration and silence, in that order.
var DefaultVibrationPattern = []time.Duration{
	200 * time.Millisecond,
	200 * time.Millisecond,
	200 * time.Millisecond,
	200 * time.Millisecond,
	200 * time.Millisecond,
}

// Storage persists the snapshot of the active timer.
type Storage interface {
	SetItem(key string, value []byte) error
	RemoveItem(key string) error
}

// Notifier alerts the user when a countdown completes.
type Notifier interface {
	Vibrate(pattern []time.Duration) error
	PlaySound(sound string) error
}

// Option configures a Timer.
type Option func(*Timer)

// WithStorage sets the backend that snapshots are written to.
func WithStorage(s Storage) Option {
	return func(t *Timer) {
		t.storage = s
	}
}

// WithNotifier sets the device used by Notify.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notifier = n
	}
}

// WithLogger sets the logger used for failures the timer tolerates.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.log = l
	}
}

// WithTickInterval sets the scheduler period.
func WithTickInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithVibrationPattern sets the pattern passed to the notifier.
func WithVibrationPattern(pattern []time.Duration) Option {
	return func(t *Timer) {
		t.pattern = pattern
	}
}

// WithClock sets the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		if now != nil {
			t.now = now
		}
	}
}

// schedule is the handle of a running tick loop.
type schedule struct {
	stop chan struct{}
	once sync.Once
}

func (s *schedule) halt() {
	s.once.Do(func() {
		close(s.stop)
	})
}

// Timer is a countdown from StartAt to EndAt that persists itself on every
// change so that it can be recovered after the process exits.
type Timer struct {
	startAt  time.Time
	endAt    time.Time
	pauseAt  time.Time
	storage  Storage
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
	sched    *schedule
	sound    string
	pattern  []time.Duration
	events   event.Emitter
	duration time.Duration
	interval time.Duration
	lapsed   int
	state    State
	mu       sync.Mutex
}

// New creates a timer from p. A timer that claims to be started is moved to
// the reactivating state since its instants were computed before the timer
// was last saved.
func New(p Params, opts ...Option) *Timer {
	t := &Timer{
		startAt:  p.StartAt,
		endAt:    p.EndAt,
		pauseAt:  p.PauseAt,
		duration: p.Duration,
		state:    p.State,
		sound:    p.Sound,
		storage:  discard{},
		notifier: discard{},
		log:      slog.Default(),
		now:      time.Now,
		interval: time.Second,
		pattern:  DefaultVibrationPattern,
	}

	if t.state == Started {
		t.state = Reactivating
	}

	if t.duration == 0 {
		t.duration = t.endAt.Sub(t.startAt)
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// FromSnapshot restores a timer from a persisted snapshot.
func FromSnapshot(s Snapshot, opts ...Option) *Timer {
	return New(s.Params(), opts...)
}

// On registers a handler for timer events.
func (t *Timer) On(name event.Name, h event.Handler) {
	t.events.On(name, h)
}

// Start runs the countdown. A paused or reactivating timer restarts the full
// duration from the current instant.
func (t *Timer) Start() {
	t.mu.Lock()

	switch t.state {
	case Started, Canceled:
		t.mu.Unlock()
		return
	case Paused, Reactivating:
		now := t.now()
		t.startAt = now
		t.endAt = now.Add(t.duration)
		t.pauseAt = time.Time{}
	case Initialized:
	}

	t.state = Started
	t.persistLocked()

	s := &schedule{stop: make(chan struct{})}
	t.sched = s
	interval := t.interval

	t.mu.Unlock()

	t.tick(s)

	go t.run(s, interval)
}

// Pause stops a running countdown and saves it as paused.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Started {
		return
	}

	t.pauseAt = t.now()
	t.state = Paused
	t.stopLocked()
	t.persistLocked()
}

// Cancel stops the countdown and removes it from storage.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
}

// Close stops the tick loop without changing the state of the timer or its
// saved snapshot.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

// Notify vibrates the device and plays the configured sound, if any.
func (t *Timer) Notify() {
	t.mu.Lock()
	sound := t.sound
	pattern := t.pattern
	t.mu.Unlock()

	err := t.notifier.Vibrate(pattern)
	if err != nil {
		t.log.Warn("unable to vibrate", slog.Any("error", err))
	}

	if sound == "" {
		return
	}

	err = t.notifier.PlaySound(sound)
	if err != nil {
		t.log.Warn(
			"unable to play sound",
			slog.String("sound", sound),
			slog.Any("error", err),
		)
	}
}

// State reports the current lifecycle phase.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Lapsed reports the whole seconds elapsed since the countdown last started,
// as of the most recent tick.
func (t *Timer) Lapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lapsed
}

// Duration reports the nominal length of the countdown.
func (t *Timer) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.duration
}

// Remaining reports the time left until the countdown ends. A paused timer
// reports the time that was left when it was paused.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked().Remaining(t.now())
}

// Snapshot returns the persisted form of the timer.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked()
}

func (t *Timer) run(s *schedule, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			t.tick(s)
		}
	}
}

// tick recomputes the remaining time from the absolute end instant and ends
// the countdown once it has run out.
func (t *Timer) tick(s *schedule) {
	t.mu.Lock()

	if t.sched != s || t.state != Started {
		t.mu.Unlock()
		return
	}

	now := t.now()
	remaining := t.endAt.Sub(now)
	t.lapsed = int(now.Sub(t.startAt) / time.Second)

	t.persistLocked()

	t.mu.Unlock()

	if remaining < 0 {
		remaining = 0
	}

	t.events.Emit(event.Event{
		Name:      event.Tick,
		Remaining: remaining,
		At:        now,
	})

	if remaining > 0 {
		return
	}

	t.expire(s, now)
}

func (t *Timer) expire(s *schedule, now time.Time) {
	t.mu.Lock()

	// a pause or cancel may have happened while tick handlers ran
	if t.sched != s || t.state != Started {
		t.mu.Unlock()
		return
	}

	t.cancelLocked()

	t.mu.Unlock()

	t.Notify()

	t.events.Emit(event.Event{
		Name: event.End,
		At:   now,
	})
}

func (t *Timer) cancelLocked() {
	t.stopLocked()

	t.state = Canceled
	t.pauseAt = time.Time{}

	err := t.storage.RemoveItem(StorageKey)
	if err != nil {
		t.log.Warn("unable to remove saved timer", slog.Any("error", err))
	}
}

func (t *Timer) stopLocked() {
	if t.sched == nil {
		return
	}

	t.sched.halt()
	t.sched = nil
}

func (t *Timer) snapshotLocked() Snapshot {
	s := Snapshot{
		StartAt:  timeutil.ToMillis(t.startAt),
		EndAt:    timeutil.ToMillis(t.endAt),
		PauseAt:  timeutil.ToMillis(t.pauseAt),
		Duration: t.duration.Milliseconds(),
		State:    t.state,
	}

	if t.sound != "" {
		sound := t.sound
		s.Sound = &sound
	}

	return s
}

// persistLocked writes the current snapshot. Failures are logged only: the
// next successful write replaces the lost checkpoint.
func (t *Timer) persistLocked() {
	b, err := json.Marshal(t.snapshotLocked())
	if err != nil {
		t.log.Warn("unable to encode timer", slog.Any("error", err))
		return
	}

	err = t.storage.SetItem(StorageKey, b)
	if err != nil {
		t.log.Warn("unable to save timer", slog.Any("error", err))
	}
}

// discard is used when no storage or notifier is configured.
type discard struct{}

func (discard) SetItem(string, []byte) error { return nil }

func (discard) RemoveItem(string) error { return nil }

func (discard) Vibrate([]time.Duration) error { return nil }

func (discard) PlaySound(string) error { return nil }
