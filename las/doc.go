// Package las parses Log ASCII Standard (LAS 1.2 and 2.0) well-log files.
//
// A LAS file is a sequence of sections, each opened by a line whose first
// non-blank character is ~ followed by a key letter:
//
//	~V  version information (VERS, WRAP)
//	~W  well information (STRT, STOP, STEP, NULL, COMP, WELL, ...)
//	~C  curve information, one line per data column
//	~P  parameters
//	~O  other, free text
//	~A  the data, one row per depth sample
//
// Lines starting with # are comments and are ignored everywhere except in
// the data section.
//
// # Reading a File
//
// [New] wraps the file text. Nothing is parsed up front; every accessor reads
// only the section it needs:
//
//	l := las.New(text)
//	version, err := l.Version()
//	if err != nil {
//	    // errors.Is(err, las.ErrInvalidVersion)
//	}
//	headers := l.Headers() // ["DEPT", "DT", "RHOB", ...]
//	rows := l.Data()       // [][]float64, one row per depth
//	depth, err := l.Column("DEPT")
//
// # Header Sections
//
// Entries of the well, curve and parameter sections have the form
//
//	MNEMONIC.UNIT   VALUE   : DESCRIPTION
//
// and are returned as [Property] values by [Log.WellInfo], [Log.CurveParams]
// and [Log.LogParams]. Fields that cannot be read are left empty; a line
// without a readable mnemonic is stored under [UnknownTitle].
//
// # Lossy Input
//
// Parsing never fails on bad data. Data tokens that are not numbers read as
// 0, and values that do not fill a complete last row are dropped.
// [Log.Diagnostics] reports how often either happened.
package las
