// Package snapshot composes per-instant position snapshots of all tracked
// bodies, including the derived south node.
package snapshot

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/minhvu-dev/ephemeris/internal/domain"
	"github.com/minhvu-dev/ephemeris/internal/services/motion"
)

// Calculator is the position source for snapshot composition.
type Calculator interface {
	Calc(jd float64, planet domain.Planet) (domain.EclipticPosition, error)
}

// ErrEmptySnapshot means no body could be computed at all, which indicates
// a misconfigured engine (usually a missing data directory) rather than a
// transient per-planet failure.
var ErrEmptySnapshot = errors.New("no bodies computed")

// Builder composes snapshots from an ephemeris calculator.
type Builder struct {
	calc   Calculator
	logger *zap.Logger
}

// NewBuilder creates a snapshot builder.
func NewBuilder(calc Calculator, logger *zap.Logger) *Builder {
	return &Builder{calc: calc, logger: logger}
}

// At computes the snapshot for the given UT Julian Day. Bodies are computed
// in the canonical order; a per-planet failure is logged and the planet is
// omitted. A zero longitude speed means the engine gave no rate, so motion
// direction falls back to the one-day probe. After the loop Ketu is
// synthesized from Rahu when Rahu is present.
func (b *Builder) At(jd float64) (*domain.Snapshot, error) {
	snap := domain.NewSnapshot()

	for _, planet := range domain.ComputedBodies() {
		pos, err := b.calc.Calc(jd, planet)
		if err != nil {
			b.logger.Warn("body computation failed, omitting from snapshot",
				zap.String("planet", planet.String()),
				zap.Float64("jd", jd),
				zap.Error(err))
			continue
		}

		retro := motion.Retrograde(pos.LongitudeSpeed)
		if pos.LongitudeSpeed == 0 {
			retro = motion.Probe(b.calc, jd, planet)
		}
		snap.Add(domain.BodyPosition{
			Planet:           planet,
			EclipticPosition: pos,
			Placement:        domain.ClassifyLongitude(pos.Longitude),
			Retrograde:       retro,
			Motion:           domain.MotionLetter(retro),
			Symbol:           planet.Symbol(),
			NameVI:           planet.NameVI(),
		})
	}

	if rahu, ok := snap.Get(domain.Rahu); ok {
		snap.Add(deriveKetu(rahu))
	}

	if snap.Len() == 0 {
		return nil, errors.Wrapf(ErrEmptySnapshot, "jd %.6f", jd)
	}

	return snap, nil
}

// deriveKetu synthesizes the south node from Rahu: opposite longitude,
// negated latitude and angular speeds, mirrored motion. Distance and its
// rate are carried over unchanged.
func deriveKetu(rahu domain.BodyPosition) domain.BodyPosition {
	lon := domain.NormalizeLongitude(rahu.Longitude + 180)

	return domain.BodyPosition{
		Planet: domain.Ketu,
		EclipticPosition: domain.EclipticPosition{
			Longitude:      lon,
			Latitude:       -rahu.Latitude,
			Distance:       rahu.Distance,
			LongitudeSpeed: -rahu.LongitudeSpeed,
			LatitudeSpeed:  -rahu.LatitudeSpeed,
			DistanceSpeed:  rahu.DistanceSpeed,
		},
		Placement:  domain.ClassifyLongitude(lon),
		Retrograde: rahu.Retrograde,
		Motion:     rahu.Motion,
		Symbol:     domain.Ketu.Symbol(),
		NameVI:     domain.Ketu.NameVI(),
	}
}
