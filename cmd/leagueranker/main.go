package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Black-And-White-Club/league-ranker/app"
	"github.com/Black-And-White-Club/league-ranker/config"
)

const usageText = `leagueranker [-h|--help]
   leagueranker [flags] <input_filepath> [<output_path_or_file>]
   leagueranker [flags] -o [<output_path_or_file>]

   input_filepath         Game results file (.txt, .csv or .xlsx).
   output_path_or_file    Optional output file or directory. The extension
                          (.txt, .csv, .xlsx or .png) selects the format.
   -o                     Game results are entered on the console, but the
                          ranking table is written to a file.

   When no arguments are provided, game results are entered on the console
   and the ranking table is also printed to the console.`

func main() {
	cliApp := newCLIApp(os.Stdin, os.Stdout, os.Stderr)
	if err := cliApp.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newCLIApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "leagueranker",
		Usage:           "calculates the ranking table for a league",
		UsageText:       usageText,
		HideHelpCommand: true,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "output-file",
				Aliases: []string{"o"},
				Usage:   "read game results from the console and write the ranking table to a file",
			},
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"LEAGUE_RANKER_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "continue past warnings without prompting",
			},
			&cli.BoolFlag{
				Name:  "skip-invalid",
				Usage: "skip malformed entries in input files instead of aborting",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug|info|warn|error",
			},
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "write Prometheus metrics to this file on exit",
			},
		},
		Action: func(c *cli.Context) error {
			console := NewConsole(stdin, stdout, c.Bool("yes"))
			err := run(c, console, stderr)
			switch {
			case err == nil:
				return nil
			case isAbort(err):
				return nil
			default:
				console.Failure(err)
				_ = cli.ShowAppHelp(c)
				return err
			}
		},
	}
}

func run(c *cli.Context, console *Console, logOutput io.Writer) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("log-level") {
		cfg.Observability.LogLevel = c.String("log-level")
	}
	if c.IsSet("metrics-textfile") {
		cfg.Observability.MetricsTextfile = c.String("metrics-textfile")
	}
	if c.IsSet("skip-invalid") {
		cfg.Input.SkipInvalid = c.Bool("skip-invalid")
	}

	opts, err := ResolveRunOptions(c.Args().Slice(), c.Bool("output-file"), cfg, console)
	if err != nil {
		return err
	}

	a, err := app.NewApp(c.Context, cfg, app.Options{LogOutput: logOutput})
	if err != nil {
		return err
	}

	runErr := NewRunner(a, console, cfg.Input.SkipInvalid).Run(c.Context, opts)
	return errors.Join(runErr, a.Close())
}
