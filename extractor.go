package lasgo

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/tsawler/lasgo/export"
	"github.com/tsawler/lasgo/format"
	"github.com/tsawler/lasgo/las"
	"github.com/tsawler/lasgo/logplot"
	"github.com/tsawler/lasgo/reader"
	"github.com/tsawler/lasgo/stats"
)

// Extractor provides a fluent interface for reading LAS files. Each
// configuration method returns a new Extractor instance, making it safe
// for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: a file name, or a log already in memory
	filename string
	log      *las.Log

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		log:      e.log,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// load returns the log, reading the file if the Extractor was opened from
// one. Files are read on every terminal operation.
func (e *Extractor) load() (*las.Log, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	l := e.log
	if l == nil {
		if e.filename == "" {
			return nil, nil, fmt.Errorf("no filename specified")
		}
		var err error
		l, err = reader.Open(e.filename, reader.WithEncoding(e.options.encoding))
		if err != nil {
			return nil, nil, err
		}
	}
	return l, diagnose(l), nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Encoding decodes the file from a legacy code page instead of UTF-8. It
// only affects Extractors created with Open.
//
// Example:
//
//	csv, _, err := lasgo.Open("old.las").Encoding(charmap.Windows1252).CSV()
func (e *Extractor) Encoding(enc encoding.Encoding) *Extractor {
	newExt := e.clone()
	if enc == nil && newExt.err == nil {
		newExt.err = fmt.Errorf("nil encoding")
	}
	newExt.options.encoding = enc
	return newExt
}

// Curves restricts the output to the named curves, in the given order.
// Multiple calls are cumulative. Naming a curve the file does not have makes
// the terminal operation fail with las.ErrFieldNotFound.
//
// Example:
//
//	data, _, err := lasgo.Open("well.las").Curves("DEPT", "GR").Data()
func (e *Extractor) Curves(names ...string) *Extractor {
	newExt := e.clone()
	newExt.options.curves = append(newExt.options.curves, names...)
	return newExt
}

// NullAsEmpty writes samples equal to the file's NULL value as empty cells,
// or as null in JSON.
//
// Example:
//
//	csv, _, err := lasgo.Open("well.las").NullAsEmpty().CSV()
func (e *Extractor) NullAsEmpty() *Extractor {
	newExt := e.clone()
	newExt.options.nullAsEmpty = true
	return newExt
}

// ============================================================================
// Terminal Operations (read the file and return results)
// ============================================================================

// Log returns the parsed log. Keep it when several views are needed: every
// las.Log accessor re-reads the text.
//
// Example:
//
//	l, warnings, err := lasgo.Open("well.las").Log()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(l.WellInfo()["WELL"].Value)
func (e *Extractor) Log() (*las.Log, []Warning, error) {
	l, warnings, err := e.load()
	if err != nil {
		return nil, nil, err
	}
	return l, warnings, nil
}

// Data returns the data matrix for the selected curves.
//
// Example:
//
//	data, warnings, err := lasgo.Open("well.las").Curves("DEPT", "GR").Data()
func (e *Extractor) Data() ([][]float64, []Warning, error) {
	l, warnings, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	if e.options.curves == nil {
		return l.Data(), warnings, nil
	}

	columns := make([][]float64, len(e.options.curves))
	for i, name := range e.options.curves {
		col, err := l.Column(name)
		if err != nil {
			return nil, warnings, err
		}
		columns[i] = col
	}

	rows := make([][]float64, l.RowCount())
	for r := range rows {
		row := make([]float64, len(columns))
		for c, col := range columns {
			row[c] = col[r]
		}
		rows[r] = row
	}
	return rows, warnings, nil
}

// CSV returns the selected curves as comma-separated values with a header
// row.
//
// Example:
//
//	csv, warnings, err := lasgo.Open("well.las").CSV()
func (e *Extractor) CSV() (string, []Warning, error) {
	return e.export(format.CSV)
}

// TSV returns the selected curves as tab-separated values with a header row.
func (e *Extractor) TSV() (string, []Warning, error) {
	return e.export(format.TSV)
}

// JSON returns the header sections and selected curves as an indented JSON
// document.
func (e *Extractor) JSON() (string, []Warning, error) {
	return e.export(format.JSON)
}

// Markdown returns the selected curves as a Markdown table.
func (e *Extractor) Markdown() (string, []Warning, error) {
	return e.export(format.Markdown)
}

// HTML returns a standalone HTML page with the well section and the
// selected curves.
func (e *Extractor) HTML() (string, []Warning, error) {
	return e.export(format.HTML)
}

// YAML returns the header sections as YAML. The data matrix is not
// included.
func (e *Extractor) YAML() (string, []Warning, error) {
	return e.export(format.YAML)
}

// ExportConfig returns the export configuration the Extractor uses for f.
func (e *Extractor) ExportConfig(f format.Format) export.Config {
	config := export.ConfigFor(f)
	config.Curves = e.options.curves
	config.NullAsEmpty = e.options.nullAsEmpty
	return config
}

func (e *Extractor) export(f format.Format) (string, []Warning, error) {
	l, warnings, err := e.load()
	if err != nil {
		return "", nil, err
	}

	out, err := export.NewExporterWithConfig(e.ExportConfig(f)).ExportToString(l)
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// Stats returns summary statistics for the selected curves. NULL samples
// are excluded.
//
// Example:
//
//	summaries, _, err := lasgo.Open("well.las").Curves("GR").Stats()
//	fmt.Printf("GR mean %.2f\n", summaries[0].Mean)
func (e *Extractor) Stats() ([]stats.Summary, []Warning, error) {
	l, warnings, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	if e.options.curves == nil {
		return stats.DescribeLog(l), warnings, nil
	}

	null, hasNull := l.NullValue()
	out := make([]stats.Summary, len(e.options.curves))
	for i, name := range e.options.curves {
		col, err := l.Column(name)
		if err != nil {
			return nil, warnings, err
		}
		out[i] = stats.Describe(name, col, null, hasNull)
	}
	return out, warnings, nil
}

// Plot draws the selected curves against the first curve and writes the
// image to w as "png", "svg" or "pdf".
//
// Example:
//
//	f, _ := os.Create("gr.png")
//	defer f.Close()
//	_, err := lasgo.Open("well.las").Curves("GR").Plot(f, "png")
func (e *Extractor) Plot(w io.Writer, imageFormat string) ([]Warning, error) {
	l, warnings, err := e.load()
	if err != nil {
		return nil, err
	}

	cfg := logplot.DefaultConfig()
	cfg.Curves = e.options.curves
	if p, ok := l.WellInfo()["WELL"]; ok {
		cfg.Title = p.Value
	}
	if err := logplot.Render(l, cfg, w, imageFormat); err != nil {
		return warnings, err
	}
	return warnings, nil
}
