package core

import (
	"fmt"
	"strings"
	"time"
)

// Humanized duration rendering: largest units first, space-separated,
// units with a zero count skipped. Examples: "3d 4h 5s", "1y 18h 10min 48s",
// "0". Sub-second residue is rendered from the rounded nanosecond view
// (ms/us/ns), so a lone tick shows as "1ns".

// String renders the duration humanized, with a leading "- " when
// negative and the bare sentinels "+oo" / "-oo" when infinite.
func (v TimeValue) String() string {
	if v.t >= 0 {
		if v.IsFutureInfinite() {
			return "+oo"
		}
		return formatDuration(v.t)
	}
	if v.IsPastInfinite() {
		return "-oo"
	}
	return "- " + formatDuration(-v.t)
}

func formatDuration(t int64) string {
	if t == 0 {
		return "0"
	}
	nanos := TimeValue{t}.SubsecNanos()
	var b strings.Builder
	unit := func(ticks int64, suffix string) {
		if x := t / ticks; x != 0 {
			fmt.Fprintf(&b, "%d%s ", x, suffix)
			t -= x * ticks
		}
	}
	unit(yearTicks, "y")
	unit(monthTicks, "mo")
	unit(dayTicks, "d")
	unit(hourTicks, "h")
	unit(minTicks, "min")
	unit(secTicks, "s")
	if nanos > 1_000_000 {
		fmt.Fprintf(&b, "%dms ", nanos/1_000_000)
		nanos %= 1_000_000
	}
	if nanos > 1_000 {
		fmt.Fprintf(&b, "%dus ", nanos/1_000)
		nanos %= 1_000
	}
	if nanos > 0 {
		fmt.Fprintf(&b, "%dns ", nanos)
	}
	if b.Len() == 0 {
		return "0"
	}
	return strings.TrimSuffix(b.String(), " ")
}

// String renders the instant as UTC wall-clock text, e.g.
// "2024-05-01 12:00:00 UTC" (fractional seconds shown only when present).
// Instants before the origin render as a humanized offset, e.g.
// "1min before 1970-01-01 00:00:00 UTC"; sentinels as "+oo" / "-oo".
func (t Timestamp) String() string {
	if t.v.IsPositive() {
		if t.IsFutureInfinite() {
			return "+oo"
		}
		return time.Unix(t.v.Secs(), t.v.SubsecNanos()).UTC().Format("2006-01-02 15:04:05.999999999 UTC")
	}
	if t.IsPastInfinite() {
		return "-oo"
	}
	return t.v.Neg().String() + " before 1970-01-01 00:00:00 UTC"
}
