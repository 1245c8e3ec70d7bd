package timer

import (
	"encoding/json"
	"time"

	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// State is the lifecycle phase of a countdown.
type State int

const (
	Initialized State = iota
	Started
	Paused
	Canceled
	// Reactivating marks a timer restored from a snapshot that was still
	// running when it was written. It must be rebased by Start before it
	// ticks again.
	Reactivating
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "INITIALIZED"
	case Started:
		return "STARTED"
	case Paused:
		return "PAUSED"
	case Canceled:
		return "CANCELED"
	case Reactivating:
		return "REACTIVATING"
	}

	return "UNKNOWN"
}

// StorageKey is the key under which the active timer is persisted.
const StorageKey = "active_timer"

// Snapshot is the persisted form of a timer. Instants are epoch milliseconds,
// the duration is in milliseconds.
type Snapshot struct {
	Sound    *string `json:"sound"`
	StartAt  int64   `json:"startAt"`
	EndAt    int64   `json:"endAt"`
	PauseAt  int64   `json:"pauseAt"`
	Duration int64   `json:"duration"`
	State    State   `json:"state"`
}

// DecodeSnapshot parses a persisted snapshot.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	var s Snapshot

	err := json.Unmarshal(b, &s)
	if err != nil {
		return Snapshot{}, errInvalidSnapshot.Wrap(err)
	}

	return s, nil
}

// Params returns the construction parameters described by the snapshot.
func (s Snapshot) Params() Params {
	p := Params{
		StartAt:  timeutil.FromMillis(s.StartAt),
		EndAt:    timeutil.FromMillis(s.EndAt),
		PauseAt:  timeutil.FromMillis(s.PauseAt),
		Duration: time.Duration(s.Duration) * time.Millisecond,
		State:    s.State,
	}

	if s.Sound != nil {
		p.Sound = *s.Sound
	}

	return p
}

// Remaining reports the time left before EndAt, relative to now. A paused
// snapshot reports the time that was left when it was paused.
func (s Snapshot) Remaining(now time.Time) time.Duration {
	ref := now
	if s.State == Paused && s.PauseAt != 0 {
		ref = timeutil.FromMillis(s.PauseAt)
	}

	remaining := timeutil.FromMillis(s.EndAt).Sub(ref)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Params holds the inputs for constructing a Timer.
type Params struct {
	StartAt  time.Time
	EndAt    time.Time
	PauseAt  time.Time
	Sound    string
	Duration time.Duration
	State    State
}

// Validate checks that the end instant comes after the start instant. New
// does not call it: persisted snapshots are trusted as they are, so only
// fresh user input needs checking.
func (p Params) Validate() error {
	if !p.EndAt.After(p.StartAt) {
		return errInvalidRange.Fmt(
			p.StartAt.Format(time.RFC3339),
			p.EndAt.Format(time.RFC3339),
		)
	}

	return nil
}
