// Package logplot draws LAS curves against depth.
//
// A plot is a single track: depth runs down the Y axis, increasing
// downwards, and each selected curve is a line across it. NULL samples
// break nothing; they are simply left out.
//
//	l, _ := reader.Open("well.las")
//	cfg := logplot.DefaultConfig()
//	cfg.Curves = []string{"GR"}
//	err := logplot.Save(l, cfg, "gr.png")
package logplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tsawler/lasgo/format"
	"github.com/tsawler/lasgo/las"
)

// ErrNoSamples is returned when none of the selected curves has a sample
// that can be drawn.
var ErrNoSamples = errors.New("no samples to plot")

// Config controls the plot layout.
type Config struct {
	Title string
	// Width and Height are in inches.
	Width  float64
	Height float64
	// Curves are drawn in this order (nil = every curve but Index).
	Curves []string
	// Index names the depth curve ("" = the first curve).
	Index string
}

// DefaultConfig returns a tall, narrow track.
func DefaultConfig() Config {
	return Config{
		Width:  4,
		Height: 10,
	}
}

var palette = []color.Color{
	colornames.Navy,
	colornames.Crimson,
	colornames.Forestgreen,
	colornames.Darkorange,
	colornames.Purple,
	colornames.Teal,
	colornames.Goldenrod,
	colornames.Saddlebrown,
}

// Render draws l and writes it to w as "png", "svg" or "pdf".
func Render(l *las.Log, cfg Config, w io.Writer, imageFormat string) error {
	f, err := format.Parse(imageFormat)
	if err != nil {
		return fmt.Errorf("plot format: %w", err)
	}
	if !f.IsImage() {
		return fmt.Errorf("plot format: %v is not an image format", f)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("plot size %gx%g: must be positive", cfg.Width, cfg.Height)
	}

	p, err := build(l, cfg)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch, formatName(f))
	if err != nil {
		return fmt.Errorf("creating %v canvas: %w", f, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing plot: %w", err)
	}
	return nil
}

// Save draws l into filename. The image format follows the extension.
func Save(l *las.Log, cfg Config, filename string) error {
	f := format.Detect(filename)
	if !f.IsImage() {
		return fmt.Errorf("plot file %s: unsupported extension", filename)
	}

	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating plot file: %w", err)
	}
	if err := Render(l, cfg, out, formatName(f)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func formatName(f format.Format) string {
	switch f {
	case format.SVG:
		return "svg"
	case format.PDF:
		return "pdf"
	default:
		return "png"
	}
}

// build assembles the plot for the selected curves.
func build(l *las.Log, cfg Config) (*plot.Plot, error) {
	headers := l.Headers()
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: log has no curves", ErrNoSamples)
	}

	index := cfg.Index
	if index == "" {
		index = headers[0]
	}
	depth, err := l.Column(index)
	if err != nil {
		return nil, fmt.Errorf("depth curve: %w", err)
	}

	curves := cfg.Curves
	if curves == nil {
		for _, h := range headers {
			if h != index {
				curves = append(curves, h)
			}
		}
	}

	null, hasNull := l.NullValue()

	p := plot.New()
	p.Title.Text = cfg.Title
	p.Y.Label.Text = index
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Legend.Top = true

	drawn := 0
	for i, name := range curves {
		values, err := l.Column(name)
		if err != nil {
			return nil, fmt.Errorf("plot curve: %w", err)
		}

		pts := samples(values, depth, null, hasNull)
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("plot curve %s: %w", name, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1)

		p.Add(line)
		p.Legend.Add(name, line)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNoSamples
	}
	if len(curves) == 1 {
		p.X.Label.Text = curves[0]
	}

	p.Add(plotter.NewGrid())
	return p, nil
}

// samples pairs values with depth, dropping NULL and non-finite samples.
func samples(values, depth []float64, null float64, hasNull bool) plotter.XYs {
	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		d := depth[i]
		if hasNull && (v == null || d == null) {
			continue
		}
		if !finite(v) || !finite(d) {
			continue
		}
		pts = append(pts, plotter.XY{X: v, Y: d})
	}
	return pts
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
