package sources

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads game results from the first sheet of a workbook. A row
// with one cell holds a whole raw line; a row with two or more cells holds
// one side per cell and is joined with ", ".
type XLSXReader struct{}

// NewXLSXReader creates a new XLSX reader
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

func (r *XLSXReader) Read(data []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	// Use the first sheet
	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	var lines []string
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) == 0 {
			continue
		}
		lines = append(lines, strings.Join(cells, ", "))
	}

	return lines, nil
}
