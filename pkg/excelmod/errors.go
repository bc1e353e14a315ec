package excelmod

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnknownColumn indicates a requested column is absent from the sheet.
var ErrUnknownColumn = errors.New("unknown column")

// ErrInvalidColor indicates a color outside the supported palette.
var ErrInvalidColor = errors.New("invalid color")

// ErrInvalidPercent indicates a percentage outside [0, 100].
var ErrInvalidPercent = errors.New("percentage out of range [0, 100]")

// ErrInvalidOffset indicates a negative write offset.
var ErrInvalidOffset = errors.New("write offset must not be negative")

// ErrInvalidInstruction indicates a malformed instruction string.
var ErrInvalidInstruction = errors.New("invalid instruction string")

// ColumnError represents a failure while processing one column. Column
// failures are isolated: one bad column does not abort the pass over the
// remaining columns.
type ColumnError struct {
	SheetName  string
	ColumnName string
	Err        error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q in sheet %q: %v", e.ColumnName, e.SheetName, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// NewColumnError creates a new ColumnError.
func NewColumnError(sheetName, columnName string, err error) *ColumnError {
	return &ColumnError{
		SheetName:  sheetName,
		ColumnName: columnName,
		Err:        err,
	}
}
