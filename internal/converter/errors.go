package converter

import (
	"errors"
	"fmt"
)

// ErrOpenWorkbook indicates the input workbook is missing, unreadable or not a valid xlsx file.
var ErrOpenWorkbook = errors.New("cannot open workbook")

// ErrMissingColumn indicates a data row has no value for a required column.
var ErrMissingColumn = errors.New("missing column")

// RowError reports a data row that could not be turned into a menu item.
type RowError struct {
	Sheet string
	Row   int // 1-based worksheet row number
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
