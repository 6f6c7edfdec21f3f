package export

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/tsawler/lasgo/format"
	"github.com/tsawler/lasgo/las"
)

// Exporter writes logs according to its Config.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default configuration.
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration.
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// Config returns the exporter's configuration.
func (e *Exporter) Config() Config {
	return e.config
}

// Export writes l to w.
func (e *Exporter) Export(l *las.Log, w io.Writer) error {
	switch e.config.Format {
	case format.CSV, format.TSV:
		return e.exportCSV(l, w)
	case format.JSON:
		return e.exportJSON(l, w)
	case format.Markdown:
		return e.exportMarkdown(l, w)
	case format.HTML:
		return e.exportHTML(l, w)
	case format.YAML:
		return e.exportYAML(l, w)
	default:
		return e.checkFormat()
	}
}

// checkFormat rejects formats the exporter cannot write.
func (e *Exporter) checkFormat() error {
	switch e.config.Format {
	case format.CSV, format.TSV, format.JSON, format.Markdown, format.HTML, format.YAML:
		return nil
	}
	return fmt.Errorf("unsupported export format: %v", e.config.Format)
}

// ExportToFile writes l to a new file. No file is created when the format
// is unsupported.
func (e *Exporter) ExportToFile(l *las.Log, filename string) error {
	if err := e.checkFormat(); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := e.Export(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportToString writes l to a string.
func (e *Exporter) ExportToString(l *las.Log) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(l, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// table is the selected part of the data matrix.
type table struct {
	headers []string
	index   []int
	rows    [][]float64
	null    float64
	hasNull bool
}

// selectTable resolves the configured curves against l.
func (e *Exporter) selectTable(l *las.Log) (*table, error) {
	all := l.Headers()
	t := &table{rows: l.Data()}

	if e.config.HasNull {
		t.null, t.hasNull = e.config.NullValue, true
	} else {
		t.null, t.hasNull = l.NullValue()
	}

	if e.config.Curves == nil {
		t.headers = all
		t.index = make([]int, len(all))
		for i := range all {
			t.index[i] = i
		}
		return t, nil
	}

	pos := make(map[string]int, len(all))
	for i, h := range all {
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	for _, name := range e.config.Curves {
		i, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("selecting curves: %w: %q", las.ErrFieldNotFound, name)
		}
		t.headers = append(t.headers, name)
		t.index = append(t.index, i)
	}
	return t, nil
}

// isNull reports whether v should be written as a missing sample.
func (e *Exporter) isNull(t *table, v float64) bool {
	return e.config.NullAsEmpty && t.hasNull && v == t.null
}

// cell formats one sample for the text formats.
func (e *Exporter) cell(t *table, v float64) string {
	if e.isNull(t, v) {
		return ""
	}
	return formatFloat(v)
}

// record returns the selected, formatted cells of row.
func (e *Exporter) record(t *table, row []float64) []string {
	out := make([]string, len(t.index))
	for i, idx := range t.index {
		out[i] = e.cell(t, row[idx])
	}
	return out
}

// formatFloat uses the shortest representation, so 1670.000 prints as 1670.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
