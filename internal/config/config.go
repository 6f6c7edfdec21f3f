// Package config loads the YAML settings file of the lasgo command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/lasgo/export"
	"github.com/tsawler/lasgo/format"
	"github.com/tsawler/lasgo/logplot"
	"github.com/tsawler/lasgo/reader"
)

// Export holds the defaults of the export command.
type Export struct {
	Format      string `yaml:"format"`
	NullAsEmpty bool   `yaml:"null_as_empty"`
	Pretty      bool   `yaml:"pretty"`
}

// Plot holds the defaults of the plot command. Sizes are in inches.
type Plot struct {
	Width  float64  `yaml:"width_in"`
	Height float64  `yaml:"height_in"`
	Curves []string `yaml:"curves"`
	Index  string   `yaml:"index"`
}

// Config is the content of a lasgo settings file.
type Config struct {
	// Encoding names the code page input files are written in. Empty means
	// UTF-8.
	Encoding string `yaml:"encoding"`
	Export   Export `yaml:"export"`
	Plot     Plot   `yaml:"plot"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	plot := logplot.DefaultConfig()
	return &Config{
		Export: Export{Format: "csv"},
		Plot:   Plot{Width: plot.Width, Height: plot.Height},
	}
}

// Load reads a YAML config file over the defaults and validates it. An
// empty path or a file that does not exist yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SourceEncoding resolves Encoding. It returns nil for UTF-8.
func (c *Config) SourceEncoding() (encoding.Encoding, error) {
	if c.Encoding == "" {
		return nil, nil
	}
	return reader.EncodingByName(c.Encoding)
}

// ExportConfig returns the exporter settings for f, or for the configured
// format when f is Unknown.
func (c *Config) ExportConfig(f format.Format) (export.Config, error) {
	if f == format.Unknown {
		var err error
		if f, err = format.Parse(c.Export.Format); err != nil {
			return export.Config{}, fmt.Errorf("config: export: %w", err)
		}
	}
	ec := export.ConfigFor(f)
	ec.NullAsEmpty = c.Export.NullAsEmpty
	if f == format.JSON {
		ec.PrettyPrint = c.Export.Pretty
	}
	return ec, nil
}

// PlotConfig returns the plot settings.
func (c *Config) PlotConfig() logplot.Config {
	pc := logplot.DefaultConfig()
	pc.Width = c.Plot.Width
	pc.Height = c.Plot.Height
	pc.Curves = c.Plot.Curves
	pc.Index = c.Plot.Index
	return pc
}
