package domain

// AspectType names an angular relation between two bodies.
type AspectType string

const (
	Conjunction AspectType = "Conjunction"
	Opposition  AspectType = "Opposition"
	Square      AspectType = "Square"
	Trine       AspectType = "Trine"
	Sextile     AspectType = "Sextile"
)

// Aspect is one entry of the fixed aspect table.
type Aspect struct {
	Type  AspectType
	Angle float64
}

// AspectTable is the fixed table of recognized aspects. Detection iterates
// it in this order, so multi-aspect output ordering is stable.
var AspectTable = []Aspect{
	{Conjunction, 0},
	{Opposition, 180},
	{Square, 90},
	{Trine, 120},
	{Sextile, 60},
}

// AspectEvent records two bodies within orb of an exact aspect angle.
type AspectEvent struct {
	Datetime      string     `json:"datetime"`
	Event         string     `json:"event"`
	Type          AspectType `json:"type"`
	Planet1       Planet     `json:"planet1"`
	Planet1Sign   string     `json:"planet1_sign"`
	Planet1Degree string     `json:"planet1_degree"`
	Planet2       Planet     `json:"planet2"`
	Planet2Sign   string     `json:"planet2_sign"`
	Planet2Degree string     `json:"planet2_degree"`
	ExactAngle    float64    `json:"exact_angle"`
	Difference    float64    `json:"difference"`
	Orb           float64    `json:"orb"`
}

// IngressEvent records a body crossing from one zodiac sign into another
// between two consecutive samples. Degree and Longitude describe the
// post-transition position.
type IngressEvent struct {
	Datetime  string  `json:"datetime"`
	Event     string  `json:"event"`
	Planet    Planet  `json:"planet"`
	FromSign  string  `json:"from_sign"`
	ToSign    string  `json:"to_sign"`
	Degree    string  `json:"degree"`
	Longitude float64 `json:"longitude"`
}
