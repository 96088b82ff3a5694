// Package detector finds aspect and ingress events in snapshot streams.
package detector

import (
	"math"

	"github.com/minhvu-dev/ephemeris/internal/domain"
)

// DefaultOrb is the maximum deviation from an exact aspect angle, in degrees.
const DefaultOrb = 1.0

// AspectDetector matches body pairs of one snapshot against the fixed
// aspect table.
type AspectDetector struct {
	orb float64
}

// NewAspectDetector creates a detector with the given orb. Non-positive
// values fall back to DefaultOrb.
func NewAspectDetector(orb float64) *AspectDetector {
	if orb <= 0 {
		orb = DefaultOrb
	}
	return &AspectDetector{orb: orb}
}

// Detect enumerates unordered body pairs in snapshot order and emits one
// event per matched aspect. The Rahu–Ketu pair is skipped: their opposition
// holds by construction.
func (d *AspectDetector) Detect(snap *domain.Snapshot) []domain.AspectEvent {
	var events []domain.AspectEvent

	planets := snap.Planets()
	for i := 0; i < len(planets); i++ {
		for j := i + 1; j < len(planets); j++ {
			p1, p2 := planets[i], planets[j]
			if isNodeAxis(p1, p2) {
				continue
			}

			b1, _ := snap.Get(p1)
			b2, _ := snap.Get(p2)
			diff := arcDistance(b1.Longitude, b2.Longitude)

			for _, aspect := range domain.AspectTable {
				residual := math.Abs(diff - aspect.Angle)
				if residual > d.orb {
					continue
				}

				events = append(events, domain.AspectEvent{
					Event:         "Aspect",
					Type:          aspect.Type,
					Planet1:       p1,
					Planet1Sign:   b1.Sign,
					Planet1Degree: b1.Degree,
					Planet2:       p2,
					Planet2Sign:   b2.Sign,
					Planet2Degree: b2.Degree,
					ExactAngle:    aspect.Angle,
					Difference:    domain.Round(diff, 4),
					Orb:           domain.Round(residual, 4),
				})
			}
		}
	}

	return events
}

// arcDistance returns the shortest angular distance between two longitudes,
// in [0, 180]. The absolute value before the modulo keeps a hair-under-360
// difference from going negative; the reflection handles pairs straddling
// the 0°/360° boundary.
func arcDistance(lon1, lon2 float64) float64 {
	diff := math.Mod(math.Abs(lon1-lon2), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

func isNodeAxis(p1, p2 domain.Planet) bool {
	return (p1 == domain.Rahu && p2 == domain.Ketu) ||
		(p1 == domain.Ketu && p2 == domain.Rahu)
}
