package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tsawler/lasgo/las"
)

// exportCSV writes the data matrix as CSV or TSV.
func (e *Exporter) exportCSV(l *las.Log, w io.Writer) error {
	t, err := e.selectTable(l)
	if err != nil {
		return err
	}

	csvWriter := csv.NewWriter(w)
	if e.config.Delimiter != 0 {
		csvWriter.Comma = e.config.Delimiter
	}

	if e.config.IncludeHeader {
		if err := csvWriter.Write(t.headers); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, row := range t.rows {
		if err := csvWriter.Write(e.record(t, row)); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
