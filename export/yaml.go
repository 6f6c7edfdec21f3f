package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/lasgo/las"
)

// Header is the YAML form of a log's header sections. Entries keep their
// document order.
type Header struct {
	Version    *float64       `yaml:"version"`
	Wrap       bool           `yaml:"wrap"`
	Well       []las.Property `yaml:"well"`
	Curves     []las.Property `yaml:"curves"`
	Parameters []las.Property `yaml:"parameters,omitempty"`
	Other      string         `yaml:"other,omitempty"`
}

// exportYAML writes the header sections. The data matrix is not included.
func (e *Exporter) exportYAML(l *las.Log, w io.Writer) error {
	t, err := e.selectTable(l)
	if err != nil {
		return err
	}

	h := Header{
		Wrap:       l.Wrap(),
		Well:       l.Properties(las.SectionWell),
		Curves:     selectedCurves(l, t),
		Parameters: l.Properties(las.SectionParameter),
		Other:      l.Other(),
	}
	if v, err := l.Version(); err == nil {
		h.Version = &v
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(h); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}
