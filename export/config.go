package export

import "github.com/tsawler/lasgo/format"

// Config holds configuration options for export.
type Config struct {
	// Format selects the output: CSV, TSV, JSON, Markdown, HTML or YAML.
	Format format.Format

	// Delimiter separates CSV fields (default: comma).
	Delimiter rune

	// IncludeHeader writes the curve names as the first CSV/TSV row.
	IncludeHeader bool

	// PrettyPrint indents JSON output.
	PrettyPrint bool

	// Curves restricts the exported columns, in this order (nil = all).
	Curves []string

	// NullAsEmpty writes NULL samples as empty cells.
	NullAsEmpty bool

	// NullValue overrides the file's NULL value when HasNull is set.
	NullValue float64
	HasNull   bool
}

// DefaultConfig returns CSV output with a header row.
func DefaultConfig() Config {
	return Config{
		Format:        format.CSV,
		Delimiter:     ',',
		IncludeHeader: true,
	}
}

// CSVConfig returns config for comma-separated output.
func CSVConfig() Config {
	return DefaultConfig()
}

// TSVConfig returns config for tab-separated output.
func TSVConfig() Config {
	config := DefaultConfig()
	config.Format = format.TSV
	config.Delimiter = '\t'
	return config
}

// JSONConfig returns config for indented JSON output.
func JSONConfig() Config {
	config := DefaultConfig()
	config.Format = format.JSON
	config.PrettyPrint = true
	return config
}

// ConfigFor returns the default config for f.
func ConfigFor(f format.Format) Config {
	switch f {
	case format.TSV:
		return TSVConfig()
	case format.JSON:
		return JSONConfig()
	}
	config := DefaultConfig()
	config.Format = f
	return config
}
