package parser

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("unsupported or corrupt workbook")

// ErrSheetNotFound indicates a sheet name that is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")
