// Package lasgo provides a fluent API for reading Log ASCII Standard (LAS)
// well-log files and turning them into tables, documents, statistics and
// plots.
//
// Basic usage:
//
//	csv, warnings, err := lasgo.Open("well.las").CSV()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", lasgo.FormatWarnings(warnings))
//	}
//
// With options:
//
//	data, _, err := lasgo.Open("well.las").
//	    Encoding(charmap.Windows1252).
//	    Curves("DEPT", "GR").
//	    Data()
//
// For direct access to the parsed sections, the las package is also
// available, and the reader package loads files into it.
package lasgo

import (
	"github.com/tsawler/lasgo/las"
)

// Open returns an Extractor for the LAS file at filename. Nothing is read
// until a terminal operation like CSV() or Data() runs.
//
// Example:
//
//	data, warnings, err := lasgo.Open("well.las").Data()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString creates an Extractor over LAS text already in memory.
//
// Example:
//
//	json, _, err := lasgo.FromString(text).JSON()
func FromString(text string) *Extractor {
	return FromLog(las.New(text))
}

// FromLog creates an Extractor from an already-parsed log. This is useful
// when the file was loaded with the reader package.
//
// Example:
//
//	l, err := reader.Open("well.las", reader.WithEncoding(charmap.ISO8859_1))
//	if err != nil {
//	    // handle error
//	}
//	stats, warnings, err := lasgo.FromLog(l).Stats()
func FromLog(l *las.Log) *Extractor {
	return &Extractor{
		log:     l,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	gr := lasgo.Must(l.Column("GR"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a terminal operation and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	csv := lasgo.MustValue(lasgo.Open("well.las").CSV())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
