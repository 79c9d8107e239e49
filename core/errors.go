// Package core: sentinel error set.
// Public conversions MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for documented programmer errors
// (opposite-infinity arithmetic).
package core

import "errors"

var (
	// ErrInfinite is returned when an infinite TimeValue or Timestamp is
	// converted to a standard-library type, which has no sentinel to map
	// it to. Check with errors.Is.
	ErrInfinite = errors.New("core: infinite value is not convertible")
)
