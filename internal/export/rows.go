package export

import (
	"fmt"

	"github.com/minhvu-dev/ephemeris/internal/domain"
	"github.com/minhvu-dev/ephemeris/internal/services/almanac"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	datetimeLayout = "2006-01-02 15:04:05"
)

// SnapshotRows flattens month samples into wide table rows: the shared
// time columns first, then the twelve field groups per body present, in
// canonical body order. Numeric fields are rounded to six fractional digits.
func SnapshotRows(data *almanac.MonthData) []*Row {
	rows := make([]*Row, 0, len(data.Samples))
	for _, sample := range data.Samples {
		row := NewRow()
		row.Set("date", sample.Local.Format(dateLayout))
		row.Set("time", sample.Local.Format(timeLayout))
		row.Set("datetime_local", sample.Local.Format(datetimeLayout))
		row.Set("datetime_utc", sample.UTC.Format(datetimeLayout))
		row.Set("julian_day", sample.JulianDay)
		row.Set("timezone_offset", data.Offset)

		for _, planet := range domain.AllBodies() {
			bp, ok := sample.Snapshot.Get(planet)
			if !ok {
				continue
			}
			prefix := planet.String()
			row.Set(prefix+"_Longitude", domain.Round(bp.Longitude, 6))
			row.Set(prefix+"_Latitude", domain.Round(bp.Latitude, 6))
			row.Set(prefix+"_Distance", domain.Round(bp.Distance, 6))
			row.Set(prefix+"_Sign", bp.Sign)
			row.Set(prefix+"_Sign_VI", bp.SignVI)
			row.Set(prefix+"_Degree", bp.Degree)
			row.Set(prefix+"_Degree_Decimal", domain.Round(bp.DegreeInSign, 6))
			row.Set(prefix+"_Motion", bp.Motion)
			row.Set(prefix+"_Retrograde", bp.Retrograde)
			row.Set(prefix+"_Speed", domain.Round(bp.LongitudeSpeed, 6))
			row.Set(prefix+"_Symbol", bp.Symbol)
			row.Set(prefix+"_Name_VI", bp.NameVI)
		}

		rows = append(rows, row)
	}
	return rows
}

// AspectRows converts aspect events into table rows.
func AspectRows(events []domain.AspectEvent) []*Row {
	rows := make([]*Row, 0, len(events))
	for _, e := range events {
		row := NewRow()
		row.Set("datetime", e.Datetime)
		row.Set("event", e.Event)
		row.Set("type", string(e.Type))
		row.Set("planet1", e.Planet1.String())
		row.Set("planet1_sign", e.Planet1Sign)
		row.Set("planet1_degree", e.Planet1Degree)
		row.Set("planet2", e.Planet2.String())
		row.Set("planet2_sign", e.Planet2Sign)
		row.Set("planet2_degree", e.Planet2Degree)
		row.Set("exact_angle", e.ExactAngle)
		row.Set("difference", e.Difference)
		row.Set("orb", e.Orb)
		rows = append(rows, row)
	}
	return rows
}

// IngressRows converts ingress events into table rows.
func IngressRows(events []domain.IngressEvent) []*Row {
	rows := make([]*Row, 0, len(events))
	for _, e := range events {
		row := NewRow()
		row.Set("datetime", e.Datetime)
		row.Set("event", e.Event)
		row.Set("planet", e.Planet.String())
		row.Set("from_sign", e.FromSign)
		row.Set("to_sign", e.ToSign)
		row.Set("degree", e.Degree)
		row.Set("longitude", e.Longitude)
		rows = append(rows, row)
	}
	return rows
}

// BaseName is the shared file-name stem for one month's exports.
func BaseName(year int, month int) string {
	return fmt.Sprintf("ephemeris_%d_%02d", year, month)
}
