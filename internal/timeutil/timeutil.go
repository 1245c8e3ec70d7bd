// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToHoursMinsAndSecs expresses a seconds value in hours, minutes and
// seconds.
func SecsToHoursMinsAndSecs(val float64) (hrs, mins, secs int) {
	total := Round(val)
	if total < 0 {
		total = 0
	}

	hrs = total / (secondsInAMinute * minutesInAnHour)
	mins = (total / secondsInAMinute) % minutesInAnHour
	secs = total % secondsInAMinute

	return
}

// FormatRemaining renders d as MM:SS, or HH:MM:SS once it reaches an hour.
// Negative durations render as zero.
func FormatRemaining(d time.Duration) string {
	h, m, s := SecsToHoursMinsAndSecs(d.Seconds())

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}

// ToMillis converts t to epoch milliseconds. The zero time maps to 0.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.UnixMilli()
}

// FromMillis converts epoch milliseconds to a time value. 0 maps to the zero
// time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}

// ParseDuration parses a duration string. A bare number is treated as a
// number of minutes.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}

// FromStr parses a human readable instant such as "in 20 minutes" or "5pm"
// relative to now. Ambiguous dates resolve to the future.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dps.Future,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
