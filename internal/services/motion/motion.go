// Package motion determines the apparent direction of planetary motion.
package motion

import "github.com/minhvu-dev/ephemeris/internal/domain"

// Retrograde reports whether a body moves backwards given its longitudinal
// speed in degrees per day. Zero speed counts as direct.
func Retrograde(longitudeSpeed float64) bool {
	return longitudeSpeed < 0
}

// Prober supplies positions for the finite-difference cross-check.
type Prober interface {
	Calc(jd float64, planet domain.Planet) (domain.EclipticPosition, error)
}

// Probe determines direction by differencing longitudes one day apart,
// used when the engine's speed output is unavailable. The delta is wrapped
// into (-180, +180] so a crossing of 0°/360° does not read as retrograde.
// Any calculation failure falls back to direct motion.
func Probe(p Prober, jd float64, planet domain.Planet) bool {
	now, err := p.Calc(jd, planet)
	if err != nil {
		return false
	}
	next, err := p.Calc(jd+1, planet)
	if err != nil {
		return false
	}

	delta := next.Longitude - now.Longitude
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}

	return delta < 0
}
