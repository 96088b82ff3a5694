package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minhvu-dev/ephemeris/internal/domain"
	"github.com/minhvu-dev/ephemeris/internal/services/almanac"
	"github.com/minhvu-dev/ephemeris/pkg/retrier"
)

// Exporter writes the monthly tables and the per-day event partitions
// under one output directory.
type Exporter struct {
	dir     string
	logger  *zap.Logger
	retrier *retrier.Retrier
}

// NewExporter creates an exporter rooted at dir.
func NewExporter(dir string, logger *zap.Logger) *Exporter {
	return &Exporter{
		dir:    dir,
		logger: logger,
		retrier: retrier.New(
			retrier.WithMaxRetries(2),
			retrier.WithInitialInterval(200*time.Millisecond),
		),
	}
}

// ExportMonth writes six month-wide files (snapshot, aspects, ingress as
// CSV and JSON) and then one sub-directory per calendar day holding that
// day's event files. Empty event tables are logged and skipped; per-day
// failures are best-effort and never abort the run.
func (e *Exporter) ExportMonth(ctx context.Context, data *almanac.MonthData, meta *Metadata) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %s", e.dir)
	}

	base := BaseName(data.Year, int(data.Month))
	snapshots := SnapshotRows(data)
	aspects := AspectRows(data.Aspects)
	ingresses := IngressRows(data.Ingresses)

	if err := e.writeTable(ctx, filepath.Join(e.dir, base), snapshots, meta); err != nil {
		return err
	}
	if err := e.writeTable(ctx, filepath.Join(e.dir, base+"_aspects"), aspects, nil); err != nil {
		return err
	}
	if err := e.writeTable(ctx, filepath.Join(e.dir, base+"_ingress"), ingresses, nil); err != nil {
		return err
	}

	e.exportDays(ctx, data)
	return nil
}

// writeTable writes one table as CSV and JSON under the shared stem. An
// empty table is not an error: it is logged and skipped.
func (e *Exporter) writeTable(ctx context.Context, stem string, rows []*Row, meta *Metadata) error {
	if len(rows) == 0 {
		e.logger.Info("no records to export, skipping", zap.String("table", filepath.Base(stem)))
		return nil
	}

	err := e.retrier.Do(ctx, func(context.Context) error {
		return WriteCSV(stem+".csv", rows)
	})
	if err != nil {
		return errors.Wrapf(err, "export %s.csv", stem)
	}

	err = e.retrier.Do(ctx, func(context.Context) error {
		return WriteJSON(stem+".json", rows, meta)
	})
	if err != nil {
		return errors.Wrapf(err, "export %s.json", stem)
	}

	e.logger.Info("table exported",
		zap.String("table", filepath.Base(stem)),
		zap.Int("records", len(rows)))
	return nil
}

// exportDays partitions the event streams by the date prefix of their local
// timestamp and writes one folder per valid day of the month.
func (e *Exporter) exportDays(ctx context.Context, data *almanac.MonthData) {
	aspectsByDay := make(map[string][]domain.AspectEvent)
	for _, event := range data.Aspects {
		day := dayOf(event.Datetime)
		aspectsByDay[day] = append(aspectsByDay[day], event)
	}
	ingressByDay := make(map[string][]domain.IngressEvent)
	for _, event := range data.Ingresses {
		day := dayOf(event.Datetime)
		ingressByDay[day] = append(ingressByDay[day], event)
	}

	first := time.Date(data.Year, data.Month, 1, 0, 0, 0, 0, time.UTC)
	days := int(first.AddDate(0, 1, 0).Sub(first).Hours() / 24)

	g, ctx := errgroup.WithContext(ctx)
	for day := 1; day <= days; day++ {
		dayStr := fmt.Sprintf("%d-%02d-%02d", data.Year, int(data.Month), day)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			e.exportDay(dayStr, aspectsByDay[dayStr], ingressByDay[dayStr])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("per-day export interrupted", zap.Error(err))
	}
}

// exportDay writes one day folder. Failures are logged and swallowed.
func (e *Exporter) exportDay(day string, aspects []domain.AspectEvent, ingresses []domain.IngressEvent) {
	folder := filepath.Join(e.dir, day)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		e.logger.Warn("day folder skipped", zap.String("day", day), zap.Error(err))
		return
	}

	e.writeDayTable(filepath.Join(folder, "aspects"), AspectRows(aspects), day)
	e.writeDayTable(filepath.Join(folder, "ingress"), IngressRows(ingresses), day)
}

func (e *Exporter) writeDayTable(stem string, rows []*Row, day string) {
	if len(rows) == 0 {
		e.logger.Debug("no events for day table",
			zap.String("day", day),
			zap.String("table", filepath.Base(stem)))
		return
	}
	if err := WriteCSV(stem+".csv", rows); err != nil {
		e.logger.Warn("day CSV skipped", zap.String("day", day), zap.Error(err))
	}
	if err := WriteJSON(stem+".json", rows, nil); err != nil {
		e.logger.Warn("day JSON skipped", zap.String("day", day), zap.Error(err))
	}
}

// dayOf extracts the YYYY-MM-DD prefix of an event timestamp.
func dayOf(datetime string) string {
	if len(datetime) < len(dateLayout) {
		return datetime
	}
	return datetime[:len(dateLayout)]
}
