package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	path string
	f    *excelize.File
}

func openXLSX(path, password string) (*xlsxWorkbook, error) {
	f, err := excelize.OpenFile(path, excelize.Options{Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &xlsxWorkbook{path: path, f: f}, nil
}

func (w *xlsxWorkbook) Path() string {
	return w.path
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) ReadSheet(name string) (*models.Sheet, error) {
	if !containsSheet(w.SheetNames(), name) {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, err
	}
	raw, err := w.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	typer := &xlsxCellTyper{f: w.f, sheet: name, raw: raw, dates: make(map[int]bool)}
	return &models.Sheet{
		Name:  name,
		Range: DataRange(rows),
		Frame: buildFrame(rows, typer.value),
	}, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

// xlsxCellTyper types cells from their stored type rather than their
// formatted text: strings stay strings whatever they look like, and
// numbers are read from the unformatted value.
type xlsxCellTyper struct {
	f     *excelize.File
	sheet string
	raw   [][]string
	dates map[int]bool // style index -> date format
}

func (t *xlsxCellTyper) value(row, col int, text string) models.Value {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ParseValue(text)
	}
	cellType, err := t.f.GetCellType(t.sheet, cell)
	if err != nil {
		return ParseValue(text)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return models.StringValue(text)
	case excelize.CellTypeBool:
		return models.BoolValue(t.rawAt(row, col) == "1" || text == "TRUE")
	}

	// Numbers: dates keep their formatted text, everything else is read
	// from the stored value so number formats don't leak into the type.
	if t.isDate(cell) {
		return models.StringValue(text)
	}
	if v, ok := parseNumber(t.rawAt(row, col)); ok {
		return v
	}
	return models.StringValue(text)
}

func (t *xlsxCellTyper) rawAt(row, col int) string {
	if row >= len(t.raw) || col >= len(t.raw[row]) {
		return ""
	}
	return t.raw[row][col]
}

func (t *xlsxCellTyper) isDate(cell string) bool {
	idx, err := t.f.GetCellStyle(t.sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	if date, ok := t.dates[idx]; ok {
		return date
	}

	date := false
	if style, err := t.f.GetStyle(idx); err == nil && style != nil {
		date = isBuiltInDateFormat(style.NumFmt) ||
			(style.CustomNumFmt != nil && isDateFormat(*style.CustomNumFmt))
	}
	t.dates[idx] = date
	return date
}

// isBuiltInDateFormat reports whether a built-in number format id shows a
// date or a time.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormat reports whether a custom number format code has date or
// time tokens outside quoted literals and bracketed sections.
func isDateFormat(code string) bool {
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case strings.ContainsRune("yYdDhHsS", r):
			return true
		}
	}
	return false
}
