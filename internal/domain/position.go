package domain

import "github.com/shopspring/decimal"

// Motion letters as they appear in exported tables.
const (
	MotionDirect     = "D"
	MotionRetrograde = "R"
)

// MotionLetter returns the single-letter motion marker for a body.
func MotionLetter(retrograde bool) string {
	if retrograde {
		return MotionRetrograde
	}
	return MotionDirect
}

// EclipticPosition is a sidereal ecliptic position with per-day rates.
// Longitude and latitude are in degrees, distance in astronomical units.
type EclipticPosition struct {
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	Distance       float64 `json:"distance"`
	LongitudeSpeed float64 `json:"longitude_speed"`
	LatitudeSpeed  float64 `json:"latitude_speed"`
	DistanceSpeed  float64 `json:"distance_speed"`
}

// BodyPosition is the full per-planet record for one sample instant.
type BodyPosition struct {
	Planet Planet `json:"planet"`
	EclipticPosition
	Placement
	Retrograde bool   `json:"retrograde"`
	Motion     string `json:"motion"`
	Symbol     string `json:"symbol"`
	NameVI     string `json:"name_vi"`
}

// Snapshot holds the positions of all tracked bodies at one instant.
// Bodies keep their insertion order so pair enumeration and row building
// stay deterministic.
type Snapshot struct {
	bodies map[Planet]BodyPosition
	order  []Planet
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{bodies: make(map[Planet]BodyPosition)}
}

// Add appends a body position. Adding the same planet twice replaces the
// value but keeps its original position in the order.
func (s *Snapshot) Add(bp BodyPosition) {
	if _, ok := s.bodies[bp.Planet]; !ok {
		s.order = append(s.order, bp.Planet)
	}
	s.bodies[bp.Planet] = bp
}

// Get returns the position of a planet, if present.
func (s *Snapshot) Get(p Planet) (BodyPosition, bool) {
	bp, ok := s.bodies[p]
	return bp, ok
}

// Planets returns the bodies present, in insertion order.
func (s *Snapshot) Planets() []Planet {
	out := make([]Planet, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of bodies present.
func (s *Snapshot) Len() int {
	return len(s.order)
}

// Round rounds x to the given number of fractional digits. Exported numeric
// fields all pass through here so CSV and JSON carry the same values.
func Round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}
