// Package xlinspect prints the sheet names and a preview of every sheet
// in a spreadsheet workbook.
package xlinspect

import (
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/output"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
)

// DefaultPath is the workbook inspected when no path is given.
const DefaultPath = "technical coding 2Library Management (1).xlsx"

// DefaultPreviewRows is the number of data rows shown per sheet.
const DefaultPreviewRows = 5

// Options configures an inspection.
type Options struct {
	// Path is the workbook file. Empty means DefaultPath.
	Path string
	// PreviewRows is the number of data rows previewed per sheet.
	// Zero or negative means DefaultPreviewRows.
	PreviewRows int
	// Sheets restricts the previews to these sheets. The name list
	// still shows every sheet. Empty means all sheets.
	Sheets []string
	// Password decrypts an encrypted xlsx workbook.
	Password string
	// Format forces the container format instead of sniffing it.
	Format parser.Format
	// MaxColWidth truncates longer cells in previews.
	// Zero means output.DefaultMaxColWidth.
	MaxColWidth int
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Path:        DefaultPath,
		PreviewRows: DefaultPreviewRows,
		Format:      parser.FormatAuto,
		MaxColWidth: output.DefaultMaxColWidth,
	}
}

// WorkbookPath returns the path to inspect.
func (o Options) WorkbookPath() string {
	if o.Path == "" {
		return DefaultPath
	}
	return o.Path
}

// PreviewRowCount returns the number of rows to preview per sheet.
func (o Options) PreviewRowCount() int {
	if o.PreviewRows <= 0 {
		return DefaultPreviewRows
	}
	return o.PreviewRows
}
