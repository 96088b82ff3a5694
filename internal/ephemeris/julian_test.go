package ephemeris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDayKnownEpochs(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected float64
	}{
		{
			name:     "unix epoch",
			t:        time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2440587.5,
		},
		{
			name:     "J2000",
			t:        time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
		},
		{
			name:     "noon steps half day",
			t:        time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
			expected: 2460920.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, JulianDay(tt.t), 1e-9)
		})
	}
}

// Converting an instant at offset zero to JD and back must reproduce the
// civil components to second resolution.
func TestJulianDayRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 15, 23, 45, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 6, 30, 59, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, in := range times {
		out := CivilUTC(JulianDay(in))
		require.True(t, in.Equal(out), "in %s out %s", in, out)
	}
}

func TestInstantUTCSubtractsOffset(t *testing.T) {
	i := NewInstant(2025, time.September, 1, 0, 0, 0, 7.0)
	assert.Equal(t, time.Date(2025, 8, 31, 17, 0, 0, 0, time.UTC), i.UTC())

	halfHour := NewInstant(2025, time.September, 1, 12, 0, 0, 5.5)
	assert.Equal(t, time.Date(2025, 9, 1, 6, 30, 0, 0, time.UTC), halfHour.UTC())

	negative := NewInstant(2025, time.September, 1, 0, 0, 0, -3.0)
	assert.Equal(t, time.Date(2025, 9, 1, 3, 0, 0, 0, time.UTC), negative.UTC())
}

func TestInstantJulianDayMonotonic(t *testing.T) {
	prev := NewInstant(2025, time.September, 1, 0, 0, 0, 7.0).JulianDay()
	for m := 15; m < 24*60; m += 15 {
		cur := NewInstant(2025, time.September, 1, m/60, m%60, 0, 7.0).JulianDay()
		require.Greater(t, cur, prev)
		prev = cur
	}
}
