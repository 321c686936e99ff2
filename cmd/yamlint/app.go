package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/uplang/yamlint"
	"github.com/uplang/yamlint/internal/config"
	"github.com/uplang/yamlint/internal/logging"
	"github.com/uplang/yamlint/internal/report"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

var errFindings = errors.New("lint errors found")

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	err := app.Run(args)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFindings):
		return exitFindings
	default:
		fmt.Fprintf(stderr, "yamlint: %v\n", err)
		return exitFailure
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "yamlint",
		Usage:     "check YAML documents for structural defects",
		ArgsUsage: "[PATH...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a config file (default: ./.yamlint.yaml when present)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: text, json or yaml",
			},
			&cli.BoolFlag{
				Name:  "legacy-line-numbers",
				Usage: "report structural findings at tree position + 2",
			},
			&cli.BoolFlag{
				Name:  "no-zero-indent-fallback",
				Usage: "count unindented lines as indent 0 instead of 1",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "dump-tree",
				Usage: "print the indent tree of every input instead of linting",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of files linted concurrently",
			},
		},
		// Exit codes are decided by run.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return lintAction(c, stdin)
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("legacy-line-numbers") {
		cfg.LegacyLineNumbers = c.Bool("legacy-line-numbers")
	}
	if c.IsSet("no-zero-indent-fallback") {
		cfg.ZeroIndentFallback = !c.Bool("no-zero-indent-fallback")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("workers") && c.Int("workers") > 0 {
		cfg.Workers = c.Int("workers")
	}
	return cfg, nil
}

func lintAction(c *cli.Context, stdin io.Reader) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	linter := yamlint.NewLinter().
		WithZeroIndentFallback(cfg.ZeroIndentFallback).
		WithLegacyLineNumbers(cfg.LegacyLineNumbers).
		WithLogger(logger)
	opts := yamlint.FileOptions{Extensions: cfg.Extensions}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths = []string{yamlint.StdinName}
	}

	files, err := yamlint.NewFileLinter().WithOptions(opts).Expand(paths)
	if err != nil {
		return err
	}
	logger.Debugw("resolved inputs", "files", len(files), "workers", cfg.Workers)

	if c.Bool("dump-tree") {
		return dumpTrees(c.App.Writer, linter, opts, files, stdin)
	}

	reports, err := lintFiles(linter, opts, files, stdin, cfg.Workers, logger)
	if err != nil {
		return err
	}

	if err := report.Render(c.App.Writer, format, reports); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	summary := report.Summarize(reports)
	logger.Infow("lint finished", "files", summary.Files, "diagnostics", summary.Diagnostics, "fatal", summary.Fatal)
	if summary.HasErrors() {
		return errFindings
	}
	return nil
}

// lintFiles lints files concurrently; reports keep the order of files.
func lintFiles(linter *yamlint.Linter, opts yamlint.FileOptions, files []string, stdin io.Reader,
	workers int, logger *zap.SugaredLogger) ([]*yamlint.FileReport, error) {
	reports := make([]*yamlint.FileReport, len(files))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, name := range files {
		g.Go(func() error {
			// A FileLinter tracks visited paths, so each goroutine gets its own.
			fl := yamlint.NewFileLinter().WithOptions(opts).WithLinter(linter)

			var (
				r   *yamlint.FileReport
				err error
			)
			if name == yamlint.StdinName {
				r, err = fl.LintFromReader(name, stdin)
			} else {
				r, err = fl.LintFile(name)
			}
			if err != nil {
				return err
			}
			logger.Debugw("linted file", "path", name, "diagnostics", len(r.Diagnostics))
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func dumpTrees(w io.Writer, linter *yamlint.Linter, opts yamlint.FileOptions, files []string, stdin io.Reader) error {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	fl := yamlint.NewFileLinter().WithOptions(opts)
	for _, name := range files {
		var (
			lines []yamlint.RawLine
			err   error
		)
		if name == yamlint.StdinName {
			lines, err = yamlint.ReadLines(stdin)
		} else {
			lines, err = fl.ReadLines(name)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		tree, err := linter.Build(lines)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(w, "# %s\n", name)
		cfg.Fdump(w, tree)
	}
	return nil
}
