package exporters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

// SheetName is the worksheet the XLSX exporter writes to.
const SheetName = "Standings"

// XLSXExporter writes the ranking table to a single worksheet.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Export(entries []standingstypes.RankingEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Rank", "Team", "Points"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	if len(entries) == 0 {
		if err := f.SetCellValue(SheetName, "A2", standingstypes.NoTeamsToRank); err != nil {
			return nil, fmt.Errorf("failed to write placeholder: %w", err)
		}
	}

	for i, entry := range entries {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{entry.Rank, entry.TeamName, entry.Points}
		if err := f.SetSheetRow(SheetName, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row for %q: %w", entry.TeamName, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
