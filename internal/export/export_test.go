package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/minhvu-dev/ephemeris/internal/domain"
	"github.com/minhvu-dev/ephemeris/internal/services/almanac"
)

func sampleMonthData() *almanac.MonthData {
	local := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	snap := domain.NewSnapshot()
	for _, setup := range []struct {
		planet domain.Planet
		lon    float64
	}{
		{domain.Sun, 134.5},
		{domain.Moon, 100.2},
		{domain.Rahu, 200.0},
		{domain.Ketu, 20.0},
	} {
		snap.Add(domain.BodyPosition{
			Planet:           setup.planet,
			EclipticPosition: domain.EclipticPosition{Longitude: setup.lon, Distance: 1.0, LongitudeSpeed: 0.98},
			Placement:        domain.ClassifyLongitude(setup.lon),
			Motion:           domain.MotionDirect,
			Symbol:           setup.planet.Symbol(),
			NameVI:           setup.planet.NameVI(),
		})
	}

	return &almanac.MonthData{
		Year:   2025,
		Month:  time.September,
		Offset: 7.0,
		Samples: []almanac.Sample{{
			Local:     local,
			UTC:       local.Add(-7 * time.Hour),
			JulianDay: 2460919.2083333335,
			Snapshot:  snap,
		}},
		Aspects: []domain.AspectEvent{{
			Datetime: "2025-09-01 00:00:00", Event: "Aspect", Type: domain.Conjunction,
			Planet1: domain.Sun, Planet1Sign: "Leo", Planet1Degree: `14°30'00"`,
			Planet2: domain.Moon, Planet2Sign: "Cancer", Planet2Degree: `10°12'00"`,
			ExactAngle: 0, Difference: 0.8, Orb: 0.8,
		}},
		Ingresses: []domain.IngressEvent{{
			Datetime: "2025-09-02 03:15:00", Event: "Ingress", Planet: domain.Moon,
			FromSign: "Cancer", ToSign: "Leo", Degree: `0°00'12"`, Longitude: 120.0034,
		}},
	}
}

func TestSnapshotRows(t *testing.T) {
	rows := SnapshotRows(sampleMonthData())
	require.Len(t, rows, 1)

	row := rows[0]
	keys := row.Keys()
	require.Equal(t,
		[]string{"date", "time", "datetime_local", "datetime_utc", "julian_day", "timezone_offset"},
		keys[:6])

	// per-planet groups follow in canonical order, 12 fields each
	assert.Equal(t, "Sun_Longitude", keys[6])
	assert.Equal(t, "Moon_Longitude", keys[18])
	assert.Len(t, keys, 6+4*12)

	date, _ := row.Get("date")
	assert.Equal(t, "2025-09-01", date)
	utc, _ := row.Get("datetime_utc")
	assert.Equal(t, "2025-08-31 17:00:00", utc)

	sunSign, _ := row.Get("Sun_Sign")
	assert.Equal(t, "Leo", sunSign)
	sunDeg, _ := row.Get("Sun_Degree")
	assert.Equal(t, `14°30'00"`, sunDeg)
	retro, _ := row.Get("Sun_Retrograde")
	assert.Equal(t, false, retro)
	nameVI, _ := row.Get("Moon_Name_VI")
	assert.Equal(t, "Mặt Trăng", nameVI)
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	rows := AspectRows(sampleMonthData().Aspects)
	require.NoError(t, WriteCSV(path, rows))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "\xEF\xBB\xBF"), "UTF-8 BOM expected")

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(raw), "\xEF\xBB\xBF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"datetime", "event", "type", "planet1", "planet1_sign", "planet1_degree",
		"planet2", "planet2_sign", "planet2_degree", "exact_angle", "difference", "orb",
	}, records[0])
	assert.Equal(t, "Conjunction", records[1][2])
	assert.Equal(t, "0.8", records[1][10])
}

func TestWriteCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.csv")
	err := WriteCSV(path, nil)
	assert.ErrorIs(t, err, ErrNoRecords)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file for an empty table")
}

func TestWriteJSONEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "month.json")
	data := sampleMonthData()
	meta := NewMetadata("run-1", 2025, 9, 7.0)

	require.NoError(t, WriteJSON(path, SnapshotRows(data), meta))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Metadata     map[string]any   `json:"metadata"`
		TotalRecords int              `json:"total_records"`
		Data         []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, 1, decoded.TotalRecords)
	require.Len(t, decoded.Data, 1)
	assert.Equal(t, "run-1", decoded.Metadata["run_id"])
	assert.Equal(t, "Sidereal Zodiac (Lahiri)", decoded.Metadata["coordinate_system"])
	assert.Equal(t, "Mean Node", decoded.Metadata["node_type"])
	assert.Equal(t, "2025-09-01", decoded.Data[0]["date"])
}

func TestWriteJSONBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingress.json")
	data := sampleMonthData()

	require.NoError(t, WriteJSON(path, IngressRows(data.Ingresses), nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Moon", decoded[0]["planet"])
	assert.Equal(t, "Leo", decoded[0]["to_sign"])
	assert.Equal(t, 120.0034, decoded[0]["longitude"])
}

func TestExportMonth(t *testing.T) {
	dir := t.TempDir()
	data := sampleMonthData()
	exporter := NewExporter(dir, zap.NewNop())

	err := exporter.ExportMonth(context.Background(), data, NewMetadata("run-1", 2025, 9, 7.0))
	require.NoError(t, err)

	for _, name := range []string{
		"ephemeris_2025_09.csv",
		"ephemeris_2025_09.json",
		"ephemeris_2025_09_aspects.csv",
		"ephemeris_2025_09_aspects.json",
		"ephemeris_2025_09_ingress.csv",
		"ephemeris_2025_09_ingress.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing %s", name)
	}

	// one folder per valid September day
	for day := 1; day <= 30; day++ {
		info, err := os.Stat(filepath.Join(dir, time.Date(2025, 9, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	_, err = os.Stat(filepath.Join(dir, "2025-09-31"))
	assert.True(t, os.IsNotExist(err), "invalid days are not created")

	// the aspect fell on day 1, the ingress on day 2
	_, err = os.Stat(filepath.Join(dir, "2025-09-01", "aspects.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "2025-09-01", "ingress.csv"))
	assert.True(t, os.IsNotExist(err), "day 1 had no ingress")
	_, err = os.Stat(filepath.Join(dir, "2025-09-02", "ingress.json"))
	assert.NoError(t, err)
}

func TestExportMonthEmptyEvents(t *testing.T) {
	dir := t.TempDir()
	data := sampleMonthData()
	data.Aspects = nil
	data.Ingresses = nil

	exporter := NewExporter(dir, zap.NewNop())
	require.NoError(t, exporter.ExportMonth(context.Background(), data, nil))

	_, err := os.Stat(filepath.Join(dir, "ephemeris_2025_09.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "ephemeris_2025_09_aspects.csv"))
	assert.True(t, os.IsNotExist(err), "empty aspect table writes no file")
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "ephemeris_2025_09", BaseName(2025, 9))
	assert.Equal(t, "ephemeris_2024_12", BaseName(2024, 12))
}
