package export

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
)

// ErrNoRecords means a table was empty and no file was written.
var ErrNoRecords = errors.New("no records to export")

// Excel needs the BOM to pick UTF-8 for the Vietnamese columns.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes rows to path as UTF-8 CSV with a byte-order mark. The
// header comes from the first row's keys; every row is emitted in that key
// order. An empty table writes nothing and returns ErrNoRecords.
func WriteCSV(path string, rows []*Row) error {
	if len(rows) == 0 {
		return ErrNoRecords
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return errors.Wrapf(err, "write BOM to %s", path)
	}

	w := csv.NewWriter(f)
	header := rows[0].Keys()
	if err := w.Write(header); err != nil {
		return errors.Wrapf(err, "write header to %s", path)
	}

	record := make([]string, len(header))
	for _, row := range rows {
		for i, key := range header {
			value, _ := row.Get(key)
			record[i] = formatValue(value)
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "write record to %s", path)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	return nil
}
