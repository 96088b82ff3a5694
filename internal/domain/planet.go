package domain

// Planet identifies a body tracked by the calculator.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mercury Planet = "Mercury"
	Venus   Planet = "Venus"
	Mars    Planet = "Mars"
	Jupiter Planet = "Jupiter"
	Saturn  Planet = "Saturn"
	Uranus  Planet = "Uranus"
	Neptune Planet = "Neptune"
	Pluto   Planet = "Pluto"
	// Rahu is the mean ascending lunar node.
	Rahu Planet = "Rahu"
	// Ketu is the descending lunar node, derived from Rahu rather than
	// queried from the ephemeris engine.
	Ketu Planet = "Ketu"
)

// computedBodies lists the bodies queried from the ephemeris engine, in the
// canonical order. Ketu is absent: it is synthesized from Rahu afterwards.
var computedBodies = []Planet{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, Rahu,
}

// allBodies is the canonical output order, Ketu included.
var allBodies = []Planet{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, Rahu, Ketu,
}

// ComputedBodies returns the canonical order of bodies queried from the engine.
func ComputedBodies() []Planet {
	out := make([]Planet, len(computedBodies))
	copy(out, computedBodies)
	return out
}

// AllBodies returns the canonical output order of all tracked bodies.
func AllBodies() []Planet {
	out := make([]Planet, len(allBodies))
	copy(out, allBodies)
	return out
}

type planetInfo struct {
	symbol string
	nameVI string
}

var planetInfos = map[Planet]planetInfo{
	Sun:     {"☉", "Mặt Trời"},
	Moon:    {"☽", "Mặt Trăng"},
	Mercury: {"☿", "Sao Thủy"},
	Venus:   {"♀", "Sao Kim"},
	Mars:    {"♂", "Sao Hỏa"},
	Jupiter: {"♃", "Sao Mộc"},
	Saturn:  {"♄", "Sao Thổ"},
	Uranus:  {"♅", "Sao Thiên Vương"},
	Neptune: {"♆", "Sao Hải Vương"},
	Pluto:   {"♇", "Sao Diêm Vương"},
	Rahu:    {"☊", "Rahu (Bắc Giao Điểm)"},
	Ketu:    {"☋", "Ketu (Nam Giao Điểm)"},
}

// Symbol returns the display symbol of the planet.
func (p Planet) Symbol() string {
	return planetInfos[p].symbol
}

// NameVI returns the Vietnamese name of the planet.
func (p Planet) NameVI() string {
	return planetInfos[p].nameVI
}

// String implements fmt.Stringer.
func (p Planet) String() string {
	return string(p)
}
