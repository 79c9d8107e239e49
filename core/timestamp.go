package core

import "time"

// Timestamp is an absolute instant on the UTC timeline, possibly infinite.
//
// Internally it is the duration elapsed since the Unix origin, so the
// whole TimeValue machinery (sentinels, saturation, rounding) carries
// over unchanged; the distinct type only exists to keep instants and
// durations from mixing: Timestamp-Timestamp is a TimeValue, and
// Timestamp±TimeValue is a Timestamp — nothing else type-checks.
//
// The zero value is Origin (1970-01-01 00:00:00 UTC).
type Timestamp struct {
	v TimeValue
}

// Origin returns the Unix origin instant.
func Origin() Timestamp { return Timestamp{} }

// Now returns the current instant, rounded down to the tick.
func Now() Timestamp { return FromTime(time.Now()) }

// FromOrigin returns the instant at duration d after the origin.
// Equivalent to Origin().Add(d).
func FromOrigin(d TimeValue) Timestamp { return Timestamp{d} }

// SinceOrigin returns the duration elapsed since the origin.
// Equivalent to t.Since(Origin()).
func (t Timestamp) SinceOrigin() TimeValue { return t.v }

// Since returns the signed distance t - other.
func (t Timestamp) Since(other Timestamp) TimeValue { return t.v.Sub(other.v) }

// Floor rounds the instant down to the nearest multiple of period since
// the origin. The period must be strictly positive and finite.
func (t Timestamp) Floor(period TimeValue) Timestamp { return Timestamp{t.v.Floor(period)} }

// Ceil rounds the instant up to the nearest multiple of period since the
// origin. The period must be strictly positive and finite.
func (t Timestamp) Ceil(period TimeValue) Timestamp { return Timestamp{t.v.Ceil(period)} }

// Compare returns -1, 0 or +1 as t sorts before, equal to, or after other.
func (t Timestamp) Compare(other Timestamp) int { return t.v.Compare(other.v) }

// Neg mirrors the instant around the origin; sentinels swap.
func (t Timestamp) Neg() Timestamp { return Timestamp{t.v.Neg()} }

// JustAfter returns the next representable instant (identity on sentinels).
func (t Timestamp) JustAfter() Timestamp { return Timestamp{t.v.JustAfter()} }

// JustBefore returns the previous representable instant (identity on sentinels).
func (t Timestamp) JustBefore() Timestamp { return Timestamp{t.v.JustBefore()} }

// IsFinite reports whether t is neither infinity sentinel.
func (t Timestamp) IsFinite() bool { return t.v.IsFinite() }

// IsFutureInfinite reports whether t is +oo.
func (t Timestamp) IsFutureInfinite() bool { return t.v.IsFutureInfinite() }

// IsPastInfinite reports whether t is -oo.
func (t Timestamp) IsPastInfinite() bool { return t.v.IsPastInfinite() }

// Future returns the +oo instant.
func (Timestamp) Future() Timestamp { return Timestamp{TimeValue{infiniteTicks}} }

// Past returns the -oo instant.
func (Timestamp) Past() Timestamp { return Timestamp{TimeValue{-infiniteTicks}} }

// Add translates the instant forward by d; same saturation and panic
// rules as TimeValue.Add.
func (t Timestamp) Add(d TimeValue) Timestamp { return Timestamp{t.v.Add(d)} }

// Sub translates the instant backward by d.
func (t Timestamp) Sub(d TimeValue) Timestamp { return Timestamp{t.v.Sub(d)} }
