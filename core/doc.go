// Package core defines the central TimeValue and Timestamp scalars and the
// TimePoint capability interface shared by every temporal structure in
// tempora.
//
// All time data is represented by a signed 64-bit count of ticks, where one
// tick is exactly 1/2³⁰ second (a little less than a nanosecond). Two tick
// values are reserved as infinity sentinels: math.MaxInt64 encodes +oo and
// -math.MaxInt64 encodes -oo. The most negative representable value
// (math.MinInt64) is never produced, which keeps negation total.
//
// TimeValue is a duration (possibly infinite); Timestamp is an absolute
// instant, isomorphic to "duration since the Unix origin". Subtracting two
// Timestamps yields a TimeValue; adding a TimeValue to a Timestamp yields a
// Timestamp. Both types implement TimePoint, the small capability interface
// (ordering, negation, sentinel tests, discrete step) that the generic
// interval and set algebra in package window is built on.
//
// Arithmetic saturates at the sentinels. Combining opposite infinities
// (+oo plus -oo) is a programming error, not a recoverable outcome, and
// panics; it indicates malformed constraint construction upstream.
//
// Unit constructors (FromSecs .. FromYears, FromMillis .. FromNanos) all
// funnel into the single tick representation with fixed ratios: a year is
// defined as 146097/400 days (the mean Gregorian year) and a month as one
// twelfth of that.
//
// Conversions to and from the standard library (time.Duration, time.Time)
// live in convert.go; infinite values are not convertible and report
// ErrInfinite.
package core
