package core_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/tempora/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvert_Duration checks the time.Duration boundary: finite values
// round-trip to the nanosecond, infinite values report ErrInfinite.
func TestConvert_Duration(t *testing.T) {
	d, err := core.FromSecs(90).Duration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = core.FromMillis(-1500).Duration()
	require.NoError(t, err)
	assert.Equal(t, -1500*time.Millisecond, d)

	_, err = core.TimeValue{}.Future().Duration()
	assert.ErrorIs(t, err, core.ErrInfinite)
	_, err = core.TimeValue{}.Past().Duration()
	assert.ErrorIs(t, err, core.ErrInfinite)

	assert.Equal(t, core.FromSecs(3), core.FromDuration(3*time.Second))
	rt, err := core.FromDuration(1234567 * time.Microsecond).Duration()
	require.NoError(t, err)
	assert.Equal(t, 1234567*time.Microsecond, rt, "round trip is nanosecond-stable")
}

// TestConvert_Time checks the time.Time boundary, including the UTC
// normalization and the out-of-range saturation of FromTime.
func TestConvert_Time(t *testing.T) {
	wall := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	ts := core.FromTime(wall)

	got, err := ts.Time()
	require.NoError(t, err)
	assert.True(t, wall.Equal(got))
	assert.Equal(t, time.UTC, got.Location())

	_, err = core.Origin().Future().Time()
	assert.ErrorIs(t, err, core.ErrInfinite)

	far := time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, core.FromTime(far).IsFutureInfinite(), "beyond UnixNano range saturates")
	old := time.Date(1000, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, core.FromTime(old).IsPastInfinite())
}

// TestConvert_Must checks the panicking shortcuts.
func TestConvert_Must(t *testing.T) {
	assert.Equal(t, time.Second, core.FromSecs(1).MustDuration())
	assert.Panics(t, func() { core.TimeValue{}.Future().MustDuration() })
	assert.Panics(t, func() { core.Origin().Past().MustTime() })
}
