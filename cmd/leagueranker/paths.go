package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Black-And-White-Club/league-ranker/config"
)

// Mode selects where game results come from and where the table goes.
type Mode int

const (
	// ModeConsoleOnly reads results from the console and prints the table.
	ModeConsoleOnly Mode = iota
	// ModeFileIO reads results from a file and writes the table to a file.
	ModeFileIO
	// ModeConsoleFileOut reads results from the console and writes the table to a file.
	ModeConsoleFileOut
)

func (m Mode) String() string {
	switch m {
	case ModeConsoleOnly:
		return "console-only"
	case ModeFileIO:
		return "file-io"
	case ModeConsoleFileOut:
		return "console-file-out"
	default:
		return "unknown"
	}
}

// RunOptions is the resolved plan for a run.
type RunOptions struct {
	Mode       Mode
	InputFile  string
	OutputFile string
}

// warner is satisfied by Console.
type warner interface {
	Warn(msg string) error
}

// ResolveRunOptions turns positional arguments into a RunOptions. toFile is
// the -o flag.
func ResolveRunOptions(args []string, toFile bool, cfg *config.Config, w warner) (RunOptions, error) {
	if !toFile && (len(args) == 0 || (len(args) == 1 && args[0] == "")) {
		return RunOptions{Mode: ModeConsoleOnly}, nil
	}

	var input string
	outputs := args
	if !toFile {
		input, outputs = args[0], args[1:]
	}

	if len(outputs) > 1 {
		discard := outputs[:len(outputs)-1]
		if err := w.Warn(fmt.Sprintf("Too many arguments received. Discarding: %v", discard)); err != nil {
			return RunOptions{}, err
		}
	}
	var output string
	if len(outputs) > 0 {
		output = outputs[len(outputs)-1]
	}

	if toFile {
		resolved, err := ValidateOutputFile(output, cfg, w)
		if err != nil {
			return RunOptions{}, err
		}
		return RunOptions{Mode: ModeConsoleFileOut, OutputFile: resolved}, nil
	}

	if err := ValidateInputFile(input, cfg); err != nil {
		return RunOptions{}, err
	}
	resolved, err := ValidateOutputFile(output, cfg, w)
	if err != nil {
		return RunOptions{}, err
	}
	return RunOptions{Mode: ModeFileIO, InputFile: input, OutputFile: resolved}, nil
}

// splitPath breaks a path into directory, base name without extension, and
// extension.
func splitPath(path string) (dir, name, ext string) {
	ext = filepath.Ext(path)
	dir, name = filepath.Split(strings.TrimSuffix(path, ext))
	return dir, name, ext
}

func describeExtension(ext string) string {
	if ext == "" {
		return "empty string"
	}
	return ext
}

// ValidateInputFile checks that the input file exists and has a readable
// extension.
func ValidateInputFile(path string, cfg *config.Config) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("Input path '%s' does not exist.", path)
		}
		return fmt.Errorf("failed to inspect input path '%s': %w", path, err)
	}

	_, _, ext := splitPath(path)
	if !slices.Contains(cfg.Input.ValidExtensions, ext) {
		return fmt.Errorf("Invalid extension '%s' found.\nValid extensions are %v", describeExtension(ext), cfg.Input.ValidExtensions)
	}
	return nil
}

// ValidateOutputFile fills in missing parts of the output path from the
// configured defaults. An unusable extension is replaced after a warning, and
// an existing file is only overwritten after a warning.
func ValidateOutputFile(path string, cfg *config.Config, w warner) (string, error) {
	dir, name, ext := cfg.Output.DefaultPath, cfg.Output.DefaultFilename, cfg.Output.DefaultExtension

	if path != "" {
		dir, name, ext = splitPath(path)
		switch {
		case name == "":
			name, ext = cfg.Output.DefaultFilename, cfg.Output.DefaultExtension
		case !slices.Contains(cfg.Output.ValidExtensions, ext):
			found := describeExtension(ext)
			ext = cfg.Output.DefaultExtension
			msg := fmt.Sprintf("Invalid output file extension '%s' found.\nValid extensions are %v.\nDefaulting to extension '%s'",
				found, cfg.Output.ValidExtensions, ext)
			if err := w.Warn(msg); err != nil {
				return "", err
			}
		}
	}

	resolved := filepath.Join(dir, name+ext)
	if _, err := os.Stat(resolved); err == nil {
		if err := w.Warn(fmt.Sprintf("Output file '%s' exists. It will be overwritten", resolved)); err != nil {
			return "", err
		}
	}
	return resolved, nil
}
