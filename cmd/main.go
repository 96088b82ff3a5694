// Command ephemeris computes a month of sidereal (Lahiri) planetary
// positions on a regular grid, detects aspect and ingress events, and
// exports the tables as CSV and JSON.
//
// Usage:
//
//	ephemeris --year 2025 --month 9 --tz 7
//	ephemeris --config config.yaml
//	ephemeris --setup
//
// The Swiss Ephemeris data files must be present in the directory given by
// --ephe (https://www.astro.com/ftp/swisseph/ephe/).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/minhvu-dev/ephemeris/config"
	"github.com/minhvu-dev/ephemeris/internal/domain"
	"github.com/minhvu-dev/ephemeris/internal/ephemeris"
	"github.com/minhvu-dev/ephemeris/internal/export"
	"github.com/minhvu-dev/ephemeris/internal/services/almanac"
	"github.com/minhvu-dev/ephemeris/internal/services/detector"
	"github.com/minhvu-dev/ephemeris/internal/services/snapshot"
	"github.com/minhvu-dev/ephemeris/internal/setup"
	"github.com/minhvu-dev/ephemeris/internal/storage/events"
)

func main() {
	cfg, err := config.Get()
	if errors.Is(err, config.ErrSetupRequested) {
		cfg, err = setup.RunTUI()
	}
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	adapter := ephemeris.NewAdapter(ephemeris.NewSwissEngine(), cfg.EphePath)
	defer adapter.Close()

	builder := snapshot.NewBuilder(adapter, logger)

	opts := []almanac.Option{almanac.WithStep(cfg.Step())}
	if cfg.JournalDir != "" {
		journal, err := events.NewWALStore(cfg.JournalDir)
		if err != nil {
			return errors.Wrap(err, "open event journal")
		}
		defer journal.Close()
		opts = append(opts, almanac.WithJournal(journal))
	}

	calc := almanac.NewCalculator(builder, detector.NewAspectDetector(cfg.Orb), logger, opts...)
	data, err := calc.Run(ctx, cfg.Year, time.Month(cfg.Month), cfg.TimezoneOffset)
	if err != nil {
		return errors.Wrap(err, "monthly calculation")
	}

	meta := export.NewMetadata(uuid.NewString(), cfg.Year, cfg.Month, cfg.TimezoneOffset)
	exporter := export.NewExporter(cfg.OutputDir, logger)
	if err := exporter.ExportMonth(ctx, data, meta); err != nil {
		return errors.Wrap(err, "export")
	}

	printSummary(data)
	return nil
}

// printSummary shows the first sample's key placements so a run can be
// eyeballed without opening the output files.
func printSummary(data *almanac.MonthData) {
	if len(data.Samples) == 0 {
		return
	}

	first := data.Samples[0]
	fmt.Printf("first sample %s:\n", first.Local.Format("2006-01-02 15:04:05"))
	for _, planet := range []domain.Planet{domain.Sun, domain.Moon, domain.Rahu, domain.Ketu} {
		bp, ok := first.Snapshot.Get(planet)
		if !ok {
			continue
		}
		fmt.Printf("  %s %s: %s %s (%s)\n", bp.Symbol, planet, bp.Sign, bp.Degree, bp.Motion)
	}
	fmt.Printf("samples: %d, aspects: %d, ingresses: %d\n",
		len(data.Samples), len(data.Aspects), len(data.Ingresses))
}
