package ephemeris

// Body ids and calculation flags mirror the Swiss Ephemeris ABI. Only the
// mean lunar node is consumed; the true node is deliberately not mapped.
const (
	BodySun      = 0
	BodyMoon     = 1
	BodyMercury  = 2
	BodyVenus    = 3
	BodyMars     = 4
	BodyJupiter  = 5
	BodySaturn   = 6
	BodyUranus   = 7
	BodyNeptune  = 8
	BodyPluto    = 9
	BodyMeanNode = 10
)

const (
	// FlagSwissEph selects the Swiss Ephemeris data tables.
	FlagSwissEph int32 = 2
	// FlagSpeed requests per-day rates alongside positions.
	FlagSpeed int32 = 256
	// FlagSidereal requests sidereal instead of tropical coordinates.
	FlagSidereal int32 = 64 << 10

	// SidModeLahiri is the Lahiri ayanamsa, reference epoch offsets (0, 0).
	SidModeLahiri int32 = 1
)

// Engine is the boundary to the external ephemeris numerical engine.
// Implementations hold process-wide state (data path, sidereal mode) and
// are configured once before any computation.
type Engine interface {
	// SetEphePath points the engine at its data-file directory.
	SetEphePath(path string)
	// SetSidMode selects the sidereal reference frame.
	SetSidMode(mode int32, t0, ayanT0 float64)
	// CalcUT computes longitude, latitude, distance and their per-day rates
	// for a body at a UT Julian Day. A negative engine status becomes an error.
	CalcUT(jd float64, body int, flags int32) ([6]float64, error)
	// Close releases engine resources.
	Close() error
}
