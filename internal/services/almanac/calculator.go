// Package almanac drives the monthly sampling loop: it walks the time grid,
// composes snapshots, and runs the event detectors over adjacent samples.
package almanac

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/minhvu-dev/ephemeris/internal/domain"
	"github.com/minhvu-dev/ephemeris/internal/ephemeris"
	"github.com/minhvu-dev/ephemeris/internal/services/detector"
)

// DefaultStep is the sample grid resolution. Fifteen minutes keeps every
// ingress observable: the Moon, the fastest body, needs about two hours to
// cross one degree.
const DefaultStep = 15 * time.Minute

const datetimeLayout = "2006-01-02 15:04:05"

// SnapshotBuilder composes a snapshot at a UT Julian Day.
type SnapshotBuilder interface {
	At(jd float64) (*domain.Snapshot, error)
}

// EventJournal persists detected events as they are found. Optional.
type EventJournal interface {
	SaveAspect(event domain.AspectEvent) error
	SaveIngress(event domain.IngressEvent) error
}

// Sample is one computed grid cell.
type Sample struct {
	Local     time.Time
	UTC       time.Time
	JulianDay float64
	Snapshot  *domain.Snapshot
}

// MonthData aggregates one month of samples and the two event streams.
type MonthData struct {
	Year      int
	Month     time.Month
	Offset    float64
	Samples   []Sample
	Aspects   []domain.AspectEvent
	Ingresses []domain.IngressEvent
}

// Calculator walks a calendar month on a regular grid. It is strictly
// sequential: ingress detection is stateful across adjacent samples.
type Calculator struct {
	builder SnapshotBuilder
	aspects *detector.AspectDetector
	ingress detector.IngressDetector
	journal EventJournal
	logger  *zap.Logger
	step    time.Duration
}

// Option configures the Calculator.
type Option func(*Calculator)

// WithStep overrides the grid resolution. The step must be a whole number
// of minutes that evenly divides one hour; other values are ignored.
func WithStep(step time.Duration) Option {
	return func(c *Calculator) {
		if step >= time.Minute && time.Hour%step == 0 {
			c.step = step
		}
	}
}

// WithJournal attaches an event journal.
func WithJournal(journal EventJournal) Option {
	return func(c *Calculator) {
		c.journal = journal
	}
}

// NewCalculator creates the monthly driver.
func NewCalculator(builder SnapshotBuilder, aspects *detector.AspectDetector, logger *zap.Logger, opts ...Option) *Calculator {
	c := &Calculator{
		builder: builder,
		aspects: aspects,
		logger:  logger,
		step:    DefaultStep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run samples every grid cell of the month at the given UTC offset. The
// previous-snapshot reference advances every iteration regardless of event
// emission, so each ingress is observed exactly once.
func (c *Calculator) Run(ctx context.Context, year int, month time.Month, offsetHours float64) (*MonthData, error) {
	days := daysInMonth(year, month)

	c.logger.Info("starting monthly calculation",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Float64("timezone_offset", offsetHours),
		zap.Int("days", days),
		zap.Duration("step", c.step))

	data := &MonthData{Year: year, Month: month, Offset: offsetHours}

	var prev *domain.Snapshot
	for day := 1; day <= days; day++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for hour := 0; hour < 24; hour++ {
			for minute := 0; minute < 60; minute += int(c.step.Minutes()) {
				instant := ephemeris.NewInstant(year, month, day, hour, minute, 0, offsetHours)
				utc := instant.UTC()
				jd := instant.JulianDay()

				snap, err := c.builder.At(jd)
				if err != nil {
					return nil, errors.Wrapf(err, "snapshot at %s", instant.Local.Format(datetimeLayout))
				}

				stamp := instant.Local.Format(datetimeLayout)
				for _, event := range c.aspects.Detect(snap) {
					event.Datetime = stamp
					data.Aspects = append(data.Aspects, event)
					c.journalAspect(event)
				}
				for _, event := range c.ingress.Detect(snap, prev) {
					event.Datetime = stamp
					data.Ingresses = append(data.Ingresses, event)
					c.journalIngress(event)
				}

				prev = snap
				data.Samples = append(data.Samples, Sample{
					Local:     instant.Local,
					UTC:       utc,
					JulianDay: jd,
					Snapshot:  snap,
				})
			}
		}

		c.logger.Info("day computed",
			zap.Int("day", day),
			zap.Int("of", days),
			zap.Int("samples", len(data.Samples)),
			zap.Int("aspects", len(data.Aspects)),
			zap.Int("ingresses", len(data.Ingresses)))
	}

	c.logger.Info("monthly calculation finished",
		zap.Int("samples", len(data.Samples)),
		zap.Int("aspects", len(data.Aspects)),
		zap.Int("ingresses", len(data.Ingresses)))

	return data, nil
}

func (c *Calculator) journalAspect(event domain.AspectEvent) {
	if c.journal == nil {
		return
	}
	if err := c.journal.SaveAspect(event); err != nil {
		c.logger.Warn("journal aspect write failed", zap.Error(err))
	}
}

func (c *Calculator) journalIngress(event domain.IngressEvent) {
	if c.journal == nil {
		return
	}
	if err := c.journal.SaveIngress(event); err != nil {
		c.logger.Warn("journal ingress write failed", zap.Error(err))
	}
}

// daysInMonth counts days as the distance to the first of the next month.
func daysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	return int(next.Sub(first).Hours() / 24)
}
