// Command lasgo inspects and converts LAS well-log files.
//
//	lasgo info well.las
//	lasgo export --format csv --out well.csv well.las
//	lasgo plot --curves GR,RHOB --out track.png well.las
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/tsawler/lasgo"
	"github.com/tsawler/lasgo/internal/config"
)

func main() {
	app := newApp(os.Stdout, nil)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env is the state shared by every command once the global flags are read.
type env struct {
	out io.Writer
	log *zap.Logger
	cfg *config.Config
}

// newApp builds the command tree. A nil logger is replaced by one chosen by
// --verbose when the command runs.
func newApp(out io.Writer, log *zap.Logger) *cli.Command {
	e := &env{out: out, log: log}

	return &cli.Command{
		Name:  "lasgo",
		Usage: "Inspect and convert LAS well-log files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML settings file"},
			&cli.StringFlag{Name: "encoding", Usage: "code page of the input, e.g. windows-1252"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log debug output"},
		},
		Before: e.before,
		After: func(ctx context.Context, cmd *cli.Command) error {
			if e.log != nil {
				_ = e.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			infoCmd(e),
			headersCmd(e),
			columnCmd(e),
			statsCmd(e),
			exportCmd(e),
			plotCmd(e),
		},
	}
}

func (e *env) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if e.log == nil {
		log, err := newLogger(cmd.Bool("verbose"))
		if err != nil {
			return ctx, fmt.Errorf("creating logger: %w", err)
		}
		e.log = log
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("loading config: %w", err)
	}
	if enc := cmd.String("encoding"); enc != "" {
		cfg.Encoding = enc
		if err := config.Validate(cfg); err != nil {
			return ctx, err
		}
	}
	e.cfg = cfg

	e.log.Debug("configuration loaded",
		zap.String("config", cmd.String("config")),
		zap.String("encoding", cfg.Encoding),
		zap.String("export_format", cfg.Export.Format))
	return ctx, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// open returns an Extractor for file with the configured encoding.
func (e *env) open(file string) (*lasgo.Extractor, error) {
	if file == "" {
		return nil, fmt.Errorf("file argument is required")
	}

	ext := lasgo.Open(file)
	enc, err := e.cfg.SourceEncoding()
	if err != nil {
		return nil, err
	}
	if enc != nil {
		ext = ext.Encoding(enc)
	}
	e.log.Debug("opening log", zap.String("file", file), zap.String("encoding", e.cfg.Encoding))
	return ext, nil
}

// warn logs the warnings of a terminal operation.
func (e *env) warn(file string, warnings []lasgo.Warning) {
	for _, w := range warnings {
		e.log.Warn(w.Message, zap.String("file", file), zap.Stringer("code", w.Code))
	}
}
