// Package ephemeris provides civil-time to Julian Day conversion and the
// boundary to the Swiss Ephemeris numerical engine.
package ephemeris

import (
	"math"
	"time"
)

// The Unix epoch 1970-01-01T00:00:00Z expressed as a Julian Day (UT).
const unixEpochJD = 2440587.5

const secondsPerDay = 86400.0

// JulianDay converts an instant to a UT Julian Day. For Gregorian dates this
// matches the classic julday(Y, M, D, H + M/60 + S/3600) convention.
func JulianDay(t time.Time) float64 {
	return float64(t.Unix())/secondsPerDay + unixEpochJD
}

// CivilUTC converts a UT Julian Day back to a civil UTC time, rounded to the
// nearest second.
func CivilUTC(jd float64) time.Time {
	sec := (jd - unixEpochJD) * secondsPerDay
	return time.Unix(int64(math.Round(sec)), 0).UTC()
}

// Instant is a civil wall-clock time at a fixed UTC offset. No timezone
// database is consulted; the offset is a pure numeric parameter in hours,
// fractional values allowed.
type Instant struct {
	Local  time.Time
	Offset float64
}

// NewInstant builds an instant from civil components and an offset in hours.
func NewInstant(year int, month time.Month, day, hour, min, sec int, offsetHours float64) Instant {
	return Instant{
		Local:  time.Date(year, month, day, hour, min, sec, 0, time.UTC),
		Offset: offsetHours,
	}
}

// UTC returns the universal time of the instant.
func (i Instant) UTC() time.Time {
	return i.Local.Add(-time.Duration(i.Offset * float64(time.Hour)))
}

// JulianDay returns the UT Julian Day of the instant.
func (i Instant) JulianDay() float64 {
	return JulianDay(i.UTC())
}
