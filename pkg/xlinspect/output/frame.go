// Package output renders frames as plain-text tables.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

const (
	// DefaultMaxColWidth is the widest a rendered cell may be before it is truncated.
	DefaultMaxColWidth = 50
	// maxDecimals caps the digits printed after the decimal point.
	maxDecimals = 6
	columnGap   = "  "
	missing     = "NaN"
	ellipsis    = "..."
)

// Options configures frame rendering.
type Options struct {
	// MaxColWidth truncates longer cells with "...". Zero means DefaultMaxColWidth.
	MaxColWidth int
}

func (o Options) maxColWidth() int {
	if o.MaxColWidth <= 0 {
		return DefaultMaxColWidth
	}
	if o.MaxColWidth <= len(ellipsis) {
		return len(ellipsis) + 1
	}
	return o.MaxColWidth
}

// RenderFrame writes frame as a table: an index column followed by one
// right-aligned column per frame column, separated by two spaces.
// A frame without data rows is written as an "Empty DataFrame" summary.
func RenderFrame(w io.Writer, frame models.Frame, opts Options) error {
	bw := bufio.NewWriter(w)

	if frame.IsEmpty() {
		writeEmpty(bw, frame.Columns)
		return bw.Flush()
	}

	limit := opts.maxColWidth()
	names := make([]string, len(frame.Columns))
	cols := make([][]string, len(frame.Columns))
	for c, name := range frame.Columns {
		names[c] = escape(name)
		cells := formatColumn(frame.Rows, c)
		for i, cell := range cells {
			cells[i] = truncate(escape(cell), limit)
		}
		cols[c] = cells
	}

	index := make([]string, len(frame.Rows))
	indexWidth := 0
	for i := range frame.Rows {
		index[i] = strconv.Itoa(i)
		indexWidth = max(indexWidth, len(index[i]))
	}

	widths := make([]int, len(names))
	for c, name := range names {
		widths[c] = displayWidth(name)
		for _, cell := range cols[c] {
			widths[c] = max(widths[c], displayWidth(cell))
		}
	}

	bw.WriteString(strings.Repeat(" ", indexWidth))
	for c, name := range names {
		bw.WriteString(columnGap)
		bw.WriteString(padLeft(name, widths[c]))
	}
	bw.WriteByte('\n')

	for r := range frame.Rows {
		bw.WriteString(padRight(index[r], indexWidth))
		for c := range frame.Columns {
			bw.WriteString(columnGap)
			bw.WriteString(padLeft(cols[c][r], widths[c]))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeEmpty(bw *bufio.Writer, columns []string) {
	bw.WriteString("Empty DataFrame\n")
	bw.WriteString("Columns: [")
	for i, name := range columns {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(escape(name))
	}
	bw.WriteString("]\n")
	bw.WriteString("Index: []\n")
}

// columnKind classifies a column for formatting.
type columnKind int

const (
	kindObject columnKind = iota
	kindInt
	kindFloat
	kindBool
)

func classify(rows [][]models.Value, c int) columnKind {
	var ints, floats, bools, blanks, others int
	for _, row := range rows {
		switch row[c].Kind {
		case models.KindInt:
			ints++
		case models.KindFloat:
			floats++
		case models.KindBool:
			bools++
		case models.KindEmpty:
			blanks++
		default:
			others++
		}
	}

	switch {
	case others > 0:
		return kindObject
	case bools > 0 && ints+floats == 0 && blanks == 0:
		return kindBool
	case bools > 0:
		return kindObject
	case ints+floats == 0:
		// all blank
		return kindFloat
	case floats == 0 && blanks == 0:
		return kindInt
	default:
		return kindFloat
	}
}

// formatColumn renders column c of rows as text, one cell per row.
func formatColumn(rows [][]models.Value, c int) []string {
	cells := make([]string, len(rows))

	switch classify(rows, c) {
	case kindInt:
		for i, row := range rows {
			cells[i] = strconv.FormatInt(row[c].Int, 10)
		}
	case kindBool:
		for i, row := range rows {
			cells[i] = formatBool(row[c].Bool)
		}
	case kindFloat:
		decimals := 1
		for _, row := range rows {
			if row[c].IsNumeric() {
				decimals = max(decimals, decimalPlaces(row[c].Number()))
			}
		}
		for i, row := range rows {
			if row[c].IsEmpty() {
				cells[i] = missing
				continue
			}
			cells[i] = strconv.FormatFloat(row[c].Number(), 'f', decimals, 64)
		}
	default:
		for i, row := range rows {
			cells[i] = formatScalar(row[c])
		}
	}

	return cells
}

// formatScalar renders a single value inside a mixed column.
func formatScalar(v models.Value) string {
	switch v.Kind {
	case models.KindEmpty:
		return missing
	case models.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case models.KindFloat:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case models.KindBool:
		return formatBool(v.Bool)
	default:
		return v.Str
	}
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// decimalPlaces counts the significant digits after the decimal point of
// f once rounded to maxDecimals places.
func decimalPlaces(f float64) int {
	s := strconv.FormatFloat(f, 'f', maxDecimals, 64)
	s = strings.TrimRight(s, "0")
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(s) - dot - 1
}
