package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Black-And-White-Club/league-ranker/app"
	standingsservice "github.com/Black-And-White-Club/league-ranker/app/modules/standings/application"
	"github.com/Black-And-White-Club/league-ranker/app/modules/standings/infrastructure/exporters"
	"github.com/Black-And-White-Club/league-ranker/app/modules/standings/infrastructure/sources"
	"github.com/Black-And-White-Club/league-ranker/internal/observability/attr"
)

const instructions = "Enter game results in the format: " +
	"<team1_name> <team1_score>, <team2_name> <team2_score>\n" +
	"Press enter to exit\n"

// Runner executes one ranking run against a built App.
type Runner struct {
	app         *app.App
	console     *Console
	readers     sources.ReaderFactory
	exporters   *exporters.Factory
	skipInvalid bool
}

// NewRunner creates a Runner.
func NewRunner(a *app.App, console *Console, skipInvalid bool) *Runner {
	return &Runner{
		app:         a,
		console:     console,
		readers:     sources.NewFactory(),
		exporters:   exporters.NewFactory(),
		skipInvalid: skipInvalid,
	}
}

// Run ingests results and emits the ranking table according to opts.
func (r *Runner) Run(ctx context.Context, opts RunOptions) error {
	ctx = r.app.Context(ctx)
	svc := r.app.Standings.StandingsService
	logger := r.app.Logger

	logger.InfoContext(ctx, "Starting ranking run",
		attr.ExtractCorrelationID(ctx),
		attr.String("mode", opts.Mode.String()),
		attr.String("input", opts.InputFile),
		attr.String("output", opts.OutputFile),
	)

	var err error
	if opts.Mode == ModeFileIO {
		err = r.ingestFile(ctx, svc, opts.InputFile)
	} else {
		err = r.ingestConsole(ctx, svc)
	}
	if err != nil {
		return err
	}

	if opts.Mode == ModeConsoleOnly {
		lines, err := svc.RankingLines(ctx)
		if err != nil {
			return err
		}
		r.console.PrintTable(lines)
		return nil
	}
	return r.writeOutput(ctx, svc, opts.OutputFile)
}

func (r *Runner) ingestFile(ctx context.Context, svc standingsservice.Service, path string) error {
	reader, err := r.readers.GetReader(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	lines, err := reader.Read(data)
	if err != nil {
		return err
	}

	for i, line := range lines {
		result, err := svc.RecordLine(ctx, line)
		if err != nil {
			return err
		}
		if result.IsFailure() {
			ferr := *result.Failure
			if !r.skipInvalid {
				return fmt.Errorf("%s: entry %d: %w", path, i+1, ferr)
			}
			r.app.Logger.WarnContext(ctx, "Skipping invalid entry",
				attr.ExtractCorrelationID(ctx),
				attr.Int("entry", i+1),
				attr.String("line", line),
				attr.Error(ferr),
			)
		}
	}
	return nil
}

func (r *Runner) ingestConsole(ctx context.Context, svc standingsservice.Service) error {
	r.console.printDivider()
	fmt.Fprint(r.console.out, instructions+"\n")

	for {
		line, ok, err := r.console.ReadLine("Enter game result: ")
		if err != nil {
			return err
		}
		if !ok || line == "" {
			return nil
		}

		result, err := svc.RecordLine(ctx, line)
		if err != nil {
			return err
		}
		if result.IsFailure() {
			fmt.Fprintln(r.console.out, *result.Failure)
		}
	}
}

func (r *Runner) writeOutput(ctx context.Context, svc standingsservice.Service, path string) error {
	exporter, err := r.exporters.GetExporter(path)
	if err != nil {
		return err
	}
	entries, err := svc.Ranking(ctx)
	if err != nil {
		return err
	}
	data, err := exporter.Export(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	r.app.Logger.InfoContext(ctx, "Ranking table written",
		attr.ExtractCorrelationID(ctx),
		attr.String("path", path),
		attr.Int("teams", len(entries)),
	)
	return nil
}

// isAbort reports whether err means the user chose to exit.
func isAbort(err error) bool {
	return errors.Is(err, ErrAborted)
}
