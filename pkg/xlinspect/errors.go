package xlinspect

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrSheetNotFound indicates a requested sheet is not in the workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// SheetError represents a failure while handling one sheet.
type SheetError struct {
	SheetName string
	Op        string // "read", "render"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s sheet %q: %v", e.Op, e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
