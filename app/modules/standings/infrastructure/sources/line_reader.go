package sources

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// LineReader reads one raw game result per line. Blank lines are skipped.
type LineReader struct{}

// NewLineReader creates a new LineReader
func NewLineReader() *LineReader {
	return &LineReader{}
}

func (r *LineReader) Read(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return lines, nil
}
