package output

import (
	"strings"

	"golang.org/x/text/width"
)

// controlEscaper spells out line breaks and tabs so a cell stays on one line.
var controlEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

func escape(s string) string {
	return controlEscaper.Replace(s)
}

// runeWidth returns the number of terminal cells r occupies.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// displayWidth returns the number of terminal cells s occupies.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

func padLeft(s string, w int) string {
	if gap := w - displayWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

func padRight(s string, w int) string {
	if gap := w - displayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// truncate shortens s to at most limit cells, ending it with "...".
func truncate(s string, limit int) string {
	if displayWidth(s) <= limit {
		return s
	}

	budget := limit - len(ellipsis)
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runeWidth(r)
		if used+rw > budget {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	b.WriteString(ellipsis)
	return b.String()
}
