package exporters

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

// TextExporter writes the rendered ranking lines separated by newlines.
type TextExporter struct{}

func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

func (e *TextExporter) Export(entries []standingstypes.RankingEntry) ([]byte, error) {
	return []byte(strings.Join(standingstypes.RenderLines(entries), "\n")), nil
}

// CSVExporter writes a rank,team,points table.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(entries []standingstypes.RankingEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"rank", "team", "points"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range entries {
		record := []string{strconv.Itoa(entry.Rank), entry.TeamName, strconv.Itoa(entry.Points)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for %q: %w", entry.TeamName, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
