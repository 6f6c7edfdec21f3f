package las

import (
	"fmt"
	"strconv"
	"strings"
)

// Log is a parsed view over the text of a LAS file. The text is never
// modified; every accessor re-reads the section it needs, so a Log can be
// shared between goroutines without locking. Callers that query the same
// view repeatedly should keep the result.
type Log struct {
	text string
}

// HeaderDesc pairs a curve mnemonic with its description.
type HeaderDesc struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Diagnostics reports the substitutions made while reading a Log. None of
// them is an error; they exist so callers can warn about lossy input.
type Diagnostics struct {
	HasVersion bool
	Wrap       bool
	Curves     int
	Rows       int
	// Coerced counts data tokens that were not numbers and were read as 0.
	Coerced int
	// Leftover counts trailing data values that did not fill a whole row and
	// were dropped from Data.
	Leftover int
}

// New returns a Log over text.
func New(text string) *Log {
	return &Log{text: text}
}

// NewBytes returns a Log over a copy of b.
func NewBytes(b []byte) *Log {
	return &Log{text: string(b)}
}

// Text returns the source text.
func (l *Log) Text() string {
	return l.text
}

// Metadata returns the decoded version section.
func (l *Log) Metadata() Metadata {
	return decodeMetadata(l.text)
}

// Version returns the declared LAS version. It fails with ErrInvalidVersion
// when the version section is absent or its value is not a number.
func (l *Log) Version() (float64, error) {
	m := decodeMetadata(l.text)
	if !m.HasVersion {
		return 0, ErrInvalidVersion
	}
	return m.Version, nil
}

// Wrap reports whether the file declares wrapped data lines.
func (l *Log) Wrap() bool {
	return decodeMetadata(l.text).Wrap
}

// Headers returns the curve mnemonics in curve section order.
func (l *Log) Headers() []string {
	lines, _ := sectionLines(l.text, SectionCurve)
	headers := make([]string, 0, len(lines))
	for _, line := range lines {
		name := headerSeparator.get().Split(line, 2)[0]
		headers = append(headers, strings.TrimSpace(name))
	}
	return headers
}

// Data returns the data matrix, one row per sample and ColumnCount values
// per row. Tokens that are not numbers read as 0. If the values do not
// divide evenly into rows the incomplete last row is left out; see
// Diagnostics.
func (l *Log) Data() [][]float64 {
	return buildMatrix(l.text, len(l.Headers())).rows
}

// Column returns the values of the named curve, one per row.
func (l *Log) Column(name string) ([]float64, error) {
	idx := -1
	for i, h := range l.Headers() {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}

	rows := l.Data()
	col := make([]float64, len(rows))
	for i, row := range rows {
		col[i] = row[idx]
	}
	return col, nil
}

// ColumnCount returns the number of curves.
func (l *Log) ColumnCount() int {
	return len(l.Headers())
}

// RowCount returns the number of complete data rows.
func (l *Log) RowCount() int {
	return len(l.Data())
}

// HeadersAndDesc returns each curve's mnemonic and description in curve
// section order.
func (l *Log) HeadersAndDesc() []HeaderDesc {
	props, _ := parseProperties(l.text, SectionCurve)
	out := make([]HeaderDesc, 0, len(props))
	for _, p := range props {
		out = append(out, HeaderDesc{Title: p.Title, Description: p.Description})
	}
	return out
}

// Properties returns the entries of a key/value section in document order,
// duplicates included. It returns nil when the section is absent.
func (l *Log) Properties(key SectionKey) []Property {
	props, _ := parseProperties(l.text, key)
	return props
}

// CurveParams returns the ~C section keyed by mnemonic.
func (l *Log) CurveParams() map[string]Property {
	return l.sectionMap(SectionCurve)
}

// WellInfo returns the ~W section keyed by mnemonic.
func (l *Log) WellInfo() map[string]Property {
	return l.sectionMap(SectionWell)
}

// LogParams returns the ~P section keyed by mnemonic.
func (l *Log) LogParams() map[string]Property {
	return l.sectionMap(SectionParameter)
}

func (l *Log) sectionMap(key SectionKey) map[string]Property {
	props, _ := parseProperties(l.text, key)
	return propertyMap(props)
}

// Other returns the ~O section text, one filtered line per line, or "" when
// the file has no such section.
func (l *Log) Other() string {
	lines, _ := sectionLines(l.text, SectionOther)
	return strings.Join(lines, "\n")
}

// NullValue returns the NULL value declared in the well section.
func (l *Log) NullValue() (float64, bool) {
	p, ok := l.WellInfo()["NULL"]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Diagnostics re-reads the file and reports what was substituted or dropped.
func (l *Log) Diagnostics() Diagnostics {
	meta := decodeMetadata(l.text)
	width := len(l.Headers())
	m := buildMatrix(l.text, width)
	return Diagnostics{
		HasVersion: meta.HasVersion,
		Wrap:       meta.Wrap,
		Curves:     width,
		Rows:       len(m.rows),
		Coerced:    m.coerced,
		Leftover:   len(m.leftover),
	}
}
