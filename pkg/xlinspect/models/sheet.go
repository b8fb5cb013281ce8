package models

// Frame is a sheet's tabular contents: a header row of column names and
// data rows of exactly len(Columns) values each.
type Frame struct {
	// Columns holds the header names, unique within the frame.
	Columns []string
	// Rows holds the data rows below the header.
	Rows [][]Value
}

// IsEmpty reports whether the frame has no data rows.
func (f Frame) IsEmpty() bool {
	return len(f.Rows) == 0
}

// Head returns the frame restricted to its first n data rows.
// The returned frame shares storage with f.
func (f Frame) Head(n int) Frame {
	if n < 0 {
		n = 0
	}
	if n > len(f.Rows) {
		n = len(f.Rows)
	}
	return Frame{
		Columns: f.Columns,
		Rows:    f.Rows[:n],
	}
}

// Sheet is a named table within a workbook.
type Sheet struct {
	// Name is the sheet name as stored in the workbook.
	Name string
	// Range is the A1-style range covering the sheet's data, "" when blank.
	Range string
	// Frame is the sheet's contents.
	Frame Frame
}
