package exporters

import (
	"fmt"
	"path/filepath"
	"strings"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

// Exporter renders a ranking table into file contents.
type Exporter interface {
	Export(entries []standingstypes.RankingEntry) ([]byte, error)
}

// Factory creates the appropriate exporter based on file extension
type Factory struct{}

// NewFactory creates a new exporter factory
func NewFactory() *Factory {
	return &Factory{}
}

// GetExporter returns the appropriate exporter for the given filename
func (f *Factory) GetExporter(filename string) (Exporter, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt":
		return NewTextExporter(), nil
	case ".csv":
		return NewCSVExporter(), nil
	case ".xlsx":
		return NewXLSXExporter(), nil
	case ".png":
		return NewChartExporter(DefaultChartPalette()), nil
	default:
		return nil, fmt.Errorf("unsupported output type: %s", ext)
	}
}
