package lasgo

import (
	"fmt"
	"strings"

	"github.com/tsawler/lasgo/las"
)

// WarningCode identifies the kind of a Warning.
type WarningCode int

const (
	// WarningWrapped means the file declares wrapped data lines. Samples
	// were reassembled across lines.
	WarningWrapped WarningCode = iota + 1
	// WarningCoerced means some data tokens were not numbers and read as 0.
	WarningCoerced
	// WarningIncompleteRow means trailing data values did not fill a row
	// and were dropped.
	WarningIncompleteRow
	// WarningNoCurves means the file has no curves, so it has no data.
	WarningNoCurves
	// WarningNoVersion means the version section is missing or unreadable.
	WarningNoVersion
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarningWrapped:
		return "wrapped"
	case WarningCoerced:
		return "coerced"
	case WarningIncompleteRow:
		return "incomplete-row"
	case WarningNoCurves:
		return "no-curves"
	case WarningNoVersion:
		return "no-version"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found while reading a log. The result it
// accompanies is usable, but may not be what the file's author intended.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning message.
func (w Warning) String() string {
	return w.Message
}

// FormatWarnings returns the warning messages, one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.Message
	}
	return strings.Join(lines, "\n")
}

// diagnose turns the substitutions recorded for l into warnings.
func diagnose(l *las.Log) []Warning {
	d := l.Diagnostics()

	var warnings []Warning
	if !d.HasVersion {
		warnings = append(warnings, Warning{
			Code:    WarningNoVersion,
			Message: "version section is missing or unreadable",
		})
	}
	if d.Wrap {
		warnings = append(warnings, Warning{
			Code:    WarningWrapped,
			Message: "file uses wrapped data lines; samples were joined across lines",
		})
	}
	if d.Curves == 0 {
		warnings = append(warnings, Warning{
			Code:    WarningNoCurves,
			Message: "no curves declared; the data section was ignored",
		})
	}
	if d.Coerced > 0 {
		warnings = append(warnings, Warning{
			Code:    WarningCoerced,
			Message: fmt.Sprintf("%d data values were not numbers and were read as 0", d.Coerced),
		})
	}
	if d.Leftover > 0 && d.Curves > 0 {
		warnings = append(warnings, Warning{
			Code: WarningIncompleteRow,
			Message: fmt.Sprintf("%d trailing data values did not fill a row of %d and were dropped",
				d.Leftover, d.Curves),
		})
	}
	return warnings
}
