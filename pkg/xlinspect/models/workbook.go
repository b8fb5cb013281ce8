package models

// Workbook is a read-only handle to a spreadsheet file on disk.
type Workbook interface {
	// Path returns the file path the workbook was opened from.
	Path() string
	// SheetNames returns the sheet names in file order.
	SheetNames() []string
	// ReadSheet loads the full contents of the named sheet.
	// Every call reads the sheet again; nothing is cached.
	ReadSheet(name string) (*Sheet, error)
	// Close releases the underlying file.
	Close() error
}
