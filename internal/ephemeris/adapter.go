package ephemeris

import (
	"github.com/pkg/errors"

	"github.com/minhvu-dev/ephemeris/internal/domain"
)

// ErrUnknownBody is returned when a planet has no engine body id. Ketu in
// particular is never queried: it is derived from Rahu by the snapshot layer.
var ErrUnknownBody = errors.New("no ephemeris body id for planet")

var bodyIDs = map[domain.Planet]int{
	domain.Sun:     BodySun,
	domain.Moon:    BodyMoon,
	domain.Mercury: BodyMercury,
	domain.Venus:   BodyVenus,
	domain.Mars:    BodyMars,
	domain.Jupiter: BodyJupiter,
	domain.Saturn:  BodySaturn,
	domain.Uranus:  BodyUranus,
	domain.Neptune: BodyNeptune,
	domain.Pluto:   BodyPluto,
	domain.Rahu:    BodyMeanNode,
}

// Adapter wraps an Engine with the sidereal Lahiri configuration and the
// planet id mapping. Configuration happens once in NewAdapter and is never
// re-entered during computation.
type Adapter struct {
	engine Engine
	flags  int32
}

// NewAdapter configures the engine (data path, Lahiri sidereal mode) and
// returns the adapter.
func NewAdapter(engine Engine, ephePath string) *Adapter {
	engine.SetEphePath(ephePath)
	engine.SetSidMode(SidModeLahiri, 0, 0)

	return &Adapter{
		engine: engine,
		flags:  FlagSwissEph | FlagSidereal | FlagSpeed,
	}
}

// Calc returns the sidereal position of a planet at a UT Julian Day. The
// longitude is normalized into [0, 360).
func (a *Adapter) Calc(jd float64, planet domain.Planet) (domain.EclipticPosition, error) {
	id, ok := bodyIDs[planet]
	if !ok {
		return domain.EclipticPosition{}, errors.Wrapf(ErrUnknownBody, "planet %s", planet)
	}

	res, err := a.engine.CalcUT(jd, id, a.flags)
	if err != nil {
		return domain.EclipticPosition{}, errors.Wrapf(err, "calc %s at jd %.6f", planet, jd)
	}

	return domain.EclipticPosition{
		Longitude:      domain.NormalizeLongitude(res[0]),
		Latitude:       res[1],
		Distance:       res[2],
		LongitudeSpeed: res[3],
		LatitudeSpeed:  res[4],
		DistanceSpeed:  res[5],
	}, nil
}

// Close releases the underlying engine.
func (a *Adapter) Close() error {
	return a.engine.Close()
}
