package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Metadata describes one calculation run. It is embedded in the monthly
// JSON envelope.
type Metadata struct {
	RunID            string  `json:"run_id"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TimezoneOffset   float64 `json:"timezone_offset"`
	CalculationTime  string  `json:"calculation_time"`
	EphemerisType    string  `json:"ephemeris_type"`
	CoordinateSystem string  `json:"coordinate_system"`
	NodeType         string  `json:"node_type"`
	Description      string  `json:"description"`
}

// NewMetadata fills the run description fields.
func NewMetadata(runID string, year, month int, offset float64) *Metadata {
	return &Metadata{
		RunID:            runID,
		Year:             year,
		Month:            month,
		TimezoneOffset:   offset,
		CalculationTime:  time.Now().Format(time.RFC3339),
		EphemerisType:    "Swiss Ephemeris",
		CoordinateSystem: "Sidereal Zodiac (Lahiri)",
		NodeType:         "Mean Node",
		Description:      "Sidereal planetary positions sampled on a regular grid",
	}
}

type envelope struct {
	Metadata     *Metadata `json:"metadata"`
	TotalRecords int       `json:"total_records"`
	Data         []*Row    `json:"data"`
}

// WriteJSON writes rows to path. With metadata the table is wrapped in a
// {metadata, total_records, data} envelope; without it the rows are written
// as a bare array (the event-table form). An empty table writes nothing and
// returns ErrNoRecords.
func WriteJSON(path string, rows []*Row, meta *Metadata) error {
	if len(rows) == 0 {
		return ErrNoRecords
	}

	var payload any
	if meta != nil {
		payload = envelope{Metadata: meta, TotalRecords: len(rows), Data: rows}
	} else {
		payload = rows
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshal %s", path)
	}

	return errors.Wrapf(os.WriteFile(path, out, 0o644), "write %s", path)
}
