package config

import (
	"fmt"
	"strings"

	"github.com/tsawler/lasgo/format"
	"github.com/tsawler/lasgo/reader"
)

var exportFormats = map[format.Format]bool{
	format.CSV:      true,
	format.TSV:      true,
	format.JSON:     true,
	format.Markdown: true,
	format.HTML:     true,
	format.YAML:     true,
}

// Validate checks the config for errors.
func Validate(cfg *Config) error {
	if cfg.Encoding != "" {
		if _, err := reader.EncodingByName(cfg.Encoding); err != nil {
			return fmt.Errorf("config: 'encoding': %w", err)
		}
	}

	f, err := format.Parse(cfg.Export.Format)
	if err != nil {
		return fmt.Errorf("config: 'export.format': %w", err)
	}
	if !exportFormats[f] {
		return fmt.Errorf("config: 'export.format': %v is not an export format", f)
	}

	if cfg.Plot.Width <= 0 {
		return fmt.Errorf("config: 'plot.width_in' must be positive, got %g", cfg.Plot.Width)
	}
	if cfg.Plot.Height <= 0 {
		return fmt.Errorf("config: 'plot.height_in' must be positive, got %g", cfg.Plot.Height)
	}

	seen := make(map[string]bool)
	for _, c := range cfg.Plot.Curves {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("config: 'plot.curves' entries must be non-empty")
		}
		if seen[c] {
			return fmt.Errorf("config: 'plot.curves': duplicate curve %q", c)
		}
		seen[c] = true
	}
	return nil
}
