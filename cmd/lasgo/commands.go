package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tsawler/lasgo/export"
	"github.com/tsawler/lasgo/format"
	"github.com/tsawler/lasgo/las"
	"github.com/tsawler/lasgo/logplot"
)

func curvesFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "curves",
		Usage: "Curves to include, in order (default: all)",
	}
}

func infoCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Show version, size and well information",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			ext, err := e.open(file)
			if err != nil {
				return err
			}
			l, warnings, err := ext.Log()
			if err != nil {
				return err
			}
			e.warn(file, warnings)

			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			if v, err := l.Version(); err == nil {
				fmt.Fprintf(tw, "Version:\t%g\n", v)
			} else {
				fmt.Fprintf(tw, "Version:\t%v\n", err)
			}
			fmt.Fprintf(tw, "Wrap:\t%t\n", l.Wrap())
			fmt.Fprintf(tw, "Curves:\t%d\n", l.ColumnCount())
			fmt.Fprintf(tw, "Rows:\t%d\n", l.RowCount())
			if null, ok := l.NullValue(); ok {
				fmt.Fprintf(tw, "Null:\t%g\n", null)
			}

			if well := l.Properties(las.SectionWell); len(well) > 0 {
				fmt.Fprintln(tw, "\nWell:")
				for _, p := range well {
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", p.Title, p.Unit, p.Value, p.Description)
				}
			}
			if other := l.Other(); other != "" {
				fmt.Fprintf(tw, "\nOther:\n%s\n", other)
			}
			return tw.Flush()
		},
	}
}

func headersCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "headers",
		Usage:     "List the curves with their units and descriptions",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			ext, err := e.open(file)
			if err != nil {
				return err
			}
			l, warnings, err := ext.Log()
			if err != nil {
				return err
			}
			e.warn(file, warnings)

			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			for _, p := range l.Properties(las.SectionCurve) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Title, p.Unit, p.Description)
			}
			return tw.Flush()
		},
	}
}

func columnCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "column",
		Usage:     "Print the values of one curve, one per line",
		ArgsUsage: "<file> <curve>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, name := cmd.Args().Get(0), cmd.Args().Get(1)
			if name == "" {
				return fmt.Errorf("curve argument is required")
			}
			ext, err := e.open(file)
			if err != nil {
				return err
			}
			data, warnings, err := ext.Curves(name).Data()
			if err != nil {
				return err
			}
			e.warn(file, warnings)

			var sb strings.Builder
			for _, row := range data {
				fmt.Fprintf(&sb, "%g\n", row[0])
			}
			_, err = fmt.Fprint(e.out, sb.String())
			return err
		},
	}
}

func statsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Summarize each curve, ignoring NULL samples",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{curvesFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			ext, err := e.open(file)
			if err != nil {
				return err
			}
			if curves := splitList(cmd.StringSlice("curves")); len(curves) > 0 {
				ext = ext.Curves(curves...)
			}
			summaries, warnings, err := ext.Stats()
			if err != nil {
				return err
			}
			e.warn(file, warnings)

			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "CURVE\tCOUNT\tNULLS\tMIN\tMAX\tMEAN\tSTDDEV\tMEDIAN\t")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t\n",
					s.Curve, s.Count, s.Nulls, s.Min, s.Max, s.Mean, s.StdDev, s.Median)
			}
			return tw.Flush()
		},
	}
}

func exportCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Convert to csv, tsv, json, md, html or yaml",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format (default: from --out, then config)"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file (default: stdout)"},
			curvesFlag(),
			&cli.BoolFlag{Name: "null-empty", Usage: "Write NULL samples as empty cells"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			ext, err := e.open(file)
			if err != nil {
				return err
			}
			l, warnings, err := ext.Log()
			if err != nil {
				return err
			}
			e.warn(file, warnings)

			f := format.Unknown
			out := cmd.String("out")
			if name := cmd.String("format"); name != "" {
				if f, err = format.Parse(name); err != nil {
					return err
				}
			} else if out != "" {
				f = format.Detect(out)
			}

			config, err := e.cfg.ExportConfig(f)
			if err != nil {
				return err
			}
			config.Curves = splitList(cmd.StringSlice("curves"))
			if cmd.Bool("null-empty") {
				config.NullAsEmpty = true
			}

			exporter := export.NewExporterWithConfig(config)
			if out == "" {
				return exporter.Export(l, e.out)
			}
			if err := exporter.ExportToFile(l, out); err != nil {
				return err
			}
			e.log.Info("exported",
				zap.String("file", file),
				zap.String("out", out),
				zap.Stringer("format", config.Format),
				zap.Int("rows", l.RowCount()))
			return nil
		},
	}
}

func plotCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "plot",
		Usage:     "Draw curves against depth as png, svg or pdf",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Image file; the extension picks the format", Required: true},
			curvesFlag(),
			&cli.StringFlag{Name: "index", Usage: "Depth curve (default: the first curve)"},
			&cli.StringFlag{Name: "title", Usage: "Plot title (default: the WELL name)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			ext, err := e.open(file)
			if err != nil {
				return err
			}
			l, warnings, err := ext.Log()
			if err != nil {
				return err
			}
			e.warn(file, warnings)

			cfg := e.cfg.PlotConfig()
			if curves := splitList(cmd.StringSlice("curves")); len(curves) > 0 {
				cfg.Curves = curves
			}
			if index := cmd.String("index"); index != "" {
				cfg.Index = index
			}
			cfg.Title = cmd.String("title")
			if cfg.Title == "" {
				cfg.Title = l.WellInfo()["WELL"].Value
			}

			out := cmd.String("out")
			if err := logplot.Save(l, cfg, out); err != nil {
				return err
			}
			e.log.Info("plotted", zap.String("file", file), zap.String("out", out),
				zap.Strings("curves", cfg.Curves))
			return nil
		},
	}
}

// splitList accepts both repeated flags and comma-separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
