package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

// BuildFrame converts raw sheet rows into a Frame.
// Leading and trailing blank rows and trailing blank columns are dropped,
// the first remaining row becomes the header and every data row is padded
// to the header width. Blank rows between data rows are kept.
// Data cells are typed from their text with ParseValue.
func BuildFrame(rows [][]string) models.Frame {
	return buildFrame(rows, func(_, _ int, text string) models.Value {
		return ParseValue(text)
	})
}

// cellValuer types the non-empty cell at zero-based sheet coordinates.
type cellValuer func(row, col int, text string) models.Value

func buildFrame(rows [][]string, value cellValuer) models.Frame {
	minRow, maxRow, _, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Frame{}
	}
	width := maxCol + 1

	frame := models.Frame{
		Columns: columnNames(padRow(rows[minRow], width)),
		Rows:    make([][]models.Value, 0, maxRow-minRow),
	}

	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := padRow(rows[rowIdx], width)
		values := make([]models.Value, width)
		for colIdx, cell := range row {
			if cell == "" {
				values[colIdx] = models.Empty()
				continue
			}
			values[colIdx] = value(rowIdx, colIdx, cell)
		}
		frame.Rows = append(frame.Rows, values)
	}

	return frame
}

// ParseValue types a cell known only by its text.
// Text is a number only when it is the number's canonical spelling, so
// "0306406152", "+4930123" and "1,200.50" stay text. TRUE/FALSE become
// bools and "" the blank value.
func ParseValue(s string) models.Value {
	if s == "" {
		return models.Empty()
	}
	if v, ok := parseNumber(s); ok && formatNumber(v) == s {
		return v
	}
	switch s {
	case "TRUE":
		return models.BoolValue(true)
	case "FALSE":
		return models.BoolValue(false)
	}
	return models.StringValue(s)
}

// parseNumber reads a stored numeric value such as "3", "1200.5" or "1E-3".
func parseNumber(s string) (models.Value, bool) {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.IntValue(i), true
	}
	// ParseFloat also accepts NaN and Inf spellings, which are text in a sheet.
	if strings.ContainsAny(s, "nNiI") {
		return models.Value{}, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.FloatValue(f), true
	}
	return models.Value{}, false
}

func formatNumber(v models.Value) string {
	if v.Kind == models.KindInt {
		return strconv.FormatInt(v.Int, 10)
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

// columnNames turns a header row into unique column names.
// Blank cells are named "Unnamed: <index>" and repeated names get a
// ".1", ".2", ... suffix in order of appearance.
func columnNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			candidate := name
			for dup {
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
				_, dup = seen[candidate]
			}
			seen[name] = n
			name = candidate
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
