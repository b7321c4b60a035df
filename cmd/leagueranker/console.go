package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when the user chooses to exit at a warning prompt.
var ErrAborted = errors.New("aborted by user")

var divider = strings.Repeat("*", 75)

// Console groups the interactive input and output streams.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewConsole creates a Console. When assumeYes is set warnings never prompt.
func NewConsole(in io.Reader, out io.Writer, assumeYes bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

func (c *Console) printDivider() {
	fmt.Fprintf(c.out, "\n%s\n\n", divider)
}

// ReadLine prompts and reads a single line without its terminator. ok is
// false once the input is exhausted.
func (c *Console) ReadLine(prompt string) (line string, ok bool, err error) {
	fmt.Fprint(c.out, prompt)
	line, err = c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// Warn prints a warning and asks whether to exit. Answering y, or closing the
// input, returns ErrAborted.
func (c *Console) Warn(msg string) error {
	c.printDivider()
	fmt.Fprintf(c.out, "WARNING:\n%s\n\n", msg)

	if c.assumeYes {
		return nil
	}
	for {
		answer, ok, err := c.ReadLine("Do you wish to exit (y/n) ?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.out)
			return ErrAborted
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return ErrAborted
		case "n":
			return nil
		}
	}
}

// Failure prints an error block.
func (c *Console) Failure(err error) {
	c.printDivider()
	fmt.Fprintln(c.out, "FAILURE:\nThe following exception has occurred.")
	fmt.Fprintln(c.out, err)
	c.printDivider()
}

// PrintTable writes the ranking table between dividers.
func (c *Console) PrintTable(lines []string) {
	c.printDivider()
	fmt.Fprintln(c.out, "League Ranking Table:")
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
	c.printDivider()
}
