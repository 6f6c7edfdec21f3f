// Package export writes a parsed LAS log in formats other tools can read.
//
// CSV, TSV, Markdown and HTML output carry the data matrix as a table with
// one column per curve. JSON carries the header sections and the data
// matrix together. YAML carries the header sections only.
//
// # Basic Usage
//
//	l, err := reader.Open("well.las")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	csv, err := export.NewExporterWithConfig(export.CSVConfig()).ExportToString(l)
//
// # Selecting Curves
//
// Config.Curves restricts and reorders the exported columns. Naming a curve
// the file does not have is an error wrapping las.ErrFieldNotFound.
//
// # NULL Values
//
// The NULL value comes from the well section unless Config.HasNull
// overrides it. With NullAsEmpty set, samples equal to it are written as
// empty cells, or as null in JSON.
package export
