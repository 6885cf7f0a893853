package converter

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook is the read-only view of a spreadsheet the converter needs.
type Workbook interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Rows returns the sheet's cells as formatted strings, row-major.
	Rows(sheet string) ([][]string, error)
	Close() error
}

// OpenFunc opens the workbook at path.
type OpenFunc func(path string) (Workbook, error)

type xlsxWorkbook struct {
	f *excelize.File
}

// OpenXLSX opens an xlsx file with excelize. Any failure is reported as ErrOpenWorkbook.
func OpenXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenWorkbook, path, err)
	}
	return &xlsxWorkbook{f: f}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	return w.f.GetRows(sheet)
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}
