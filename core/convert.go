package core

import (
	"fmt"
	"time"
)

// Standard-library boundary. Ticks are finer-grained than nanoseconds, so
// every conversion here rounds; round-tripping through time.Duration or
// time.Time is stable to the nanosecond, not to the tick. Infinite values
// have no stdlib counterpart and report ErrInfinite.

// Duration converts the value to a time.Duration.
// The finite tick range (about ±272 years) fits time.Duration exactly.
func (v TimeValue) Duration() (time.Duration, error) {
	if !v.IsFinite() {
		return 0, fmt.Errorf("to duration: %w", ErrInfinite)
	}
	return time.Duration(v.Secs()*int64(time.Second) + v.SubsecNanos()), nil
}

// FromDuration converts a time.Duration, rounding down to the tick.
func FromDuration(d time.Duration) TimeValue {
	return FromNanos(int64(d))
}

// Time converts the instant to a time.Time in UTC.
func (t Timestamp) Time() (time.Time, error) {
	if !t.IsFinite() {
		return time.Time{}, fmt.Errorf("to time: %w", ErrInfinite)
	}
	return time.Unix(t.v.Secs(), t.v.SubsecNanos()).UTC(), nil
}

// FromTime converts a time.Time, rounding down to the tick.
// Instants outside the int64-nanosecond range (before 1678 or after 2262)
// saturate to the sentinels.
func FromTime(t time.Time) Timestamp {
	sec := t.Unix()
	if minNanoSec <= sec && sec <= maxNanoSec {
		return Timestamp{FromNanos(t.UnixNano())}
	}
	if sec > 0 {
		return Timestamp{}.Future()
	}
	return Timestamp{}.Past()
}

// MustDuration is Duration for values known to be finite; panics otherwise.
func (v TimeValue) MustDuration() time.Duration {
	d, err := v.Duration()
	if err != nil {
		panic(err)
	}
	return d
}

// MustTime is Time for instants known to be finite; panics otherwise.
func (t Timestamp) MustTime() time.Time {
	tt, err := t.Time()
	if err != nil {
		panic(err)
	}
	return tt
}

// Unix-second bounds of the int64-nanosecond range used by UnixNano.
const (
	maxNanoSec = int64(9223372035)
	minNanoSec = -maxNanoSec
)
