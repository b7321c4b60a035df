package sources

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader turns the contents of an input file into raw game result lines.
type Reader interface {
	Read(data []byte) ([]string, error)
}

// ReaderFactory defines the interface for creating readers
type ReaderFactory interface {
	GetReader(filename string) (Reader, error)
}

// Factory creates the appropriate reader based on file extension
type Factory struct{}

// NewFactory creates a new reader factory
func NewFactory() *Factory {
	return &Factory{}
}

// GetReader returns the appropriate reader for the given filename
func (f *Factory) GetReader(filename string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".csv":
		return NewLineReader(), nil
	case ".xlsx":
		return NewXLSXReader(), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}
