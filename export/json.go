package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/lasgo/las"
)

// Document is the JSON form of a log.
type Document struct {
	// Version is null when the version section cannot be read.
	Version    *float64                `json:"version"`
	Wrap       bool                    `json:"wrap"`
	Well       map[string]las.Property `json:"well"`
	Curves     []las.Property          `json:"curves"`
	Parameters map[string]las.Property `json:"parameters"`
	Other      string                  `json:"other"`
	// Data holds one row per sample. NULL samples are null when NullAsEmpty
	// is set; NaN and infinite samples are always null.
	Data [][]*float64 `json:"data"`
}

// exportJSON writes the header sections and data matrix as one object.
func (e *Exporter) exportJSON(l *las.Log, w io.Writer) error {
	doc, err := e.document(l)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// document builds the JSON form of l for the selected curves.
func (e *Exporter) document(l *las.Log) (*Document, error) {
	t, err := e.selectTable(l)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Wrap:       l.Wrap(),
		Well:       l.WellInfo(),
		Curves:     selectedCurves(l, t),
		Parameters: l.LogParams(),
		Other:      l.Other(),
		Data:       make([][]*float64, len(t.rows)),
	}
	if v, err := l.Version(); err == nil {
		doc.Version = &v
	}

	for i, row := range t.rows {
		out := make([]*float64, len(t.index))
		for j, idx := range t.index {
			v := row[idx]
			if e.isNull(t, v) || !finite(v) {
				continue
			}
			out[j] = &v
		}
		doc.Data[i] = out
	}
	return doc, nil
}

// selectedCurves returns the curve section entries of the selected columns,
// in order. Headers and curve entries come from the same lines, so a column
// index is also an index into the curve section.
func selectedCurves(l *las.Log, t *table) []las.Property {
	props := l.Properties(las.SectionCurve)
	out := make([]las.Property, 0, len(t.index))
	for i, idx := range t.index {
		p := las.Property{Title: t.headers[i]}
		if idx < len(props) {
			p = props[idx]
		}
		out = append(out, p)
	}
	return out
}
