// Package parser opens workbooks and converts their sheets into frames.
package parser

import (
	"fmt"
	"strings"
)

// Format is a workbook container format.
type Format string

const (
	// FormatAuto detects the format from the file contents.
	FormatAuto Format = "auto"
	// FormatXLSX is Office Open XML (.xlsx, .xlsm), optionally encrypted.
	FormatXLSX Format = "xlsx"
	// FormatXLS is the legacy BIFF8 binary format (.xls).
	FormatXLS Format = "xls"
)

// ParseFormat parses a format name. The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	case "xls":
		return FormatXLS, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be auto, xlsx, or xls)", s)
	}
}
