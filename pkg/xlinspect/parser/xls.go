package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

const (
	// xlsCharset is the charset handed to the BIFF reader for non-Unicode strings.
	xlsCharset = "utf-8"
	// xlsMaxCols is the BIFF8 column limit, scanned when a row carries no
	// ROW record telling where it ends.
	xlsMaxCols = 256
)

type xlsWorkbook struct {
	path  string
	file  *os.File
	wb    *xls.WorkBook
	names []string
	index map[string]int
}

func openXLS(path string) (wb *xlsWorkbook, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// The BIFF reader panics on some malformed records.
	defer func() {
		if r := recover(); r != nil {
			file.Close()
			wb, err = nil, fmt.Errorf("%w: %v", ErrInvalidFormat, r)
		}
	}()

	book, err := xls.OpenReader(file, xlsCharset)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if book == nil {
		file.Close()
		return nil, fmt.Errorf("%w: no workbook stream in %s", ErrInvalidFormat, path)
	}

	wb = &xlsWorkbook{
		path:  path,
		file:  file,
		wb:    book,
		index: make(map[string]int),
	}
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		wb.names = append(wb.names, sheet.Name)
		wb.index[sheet.Name] = i
	}
	return wb, nil
}

func (w *xlsWorkbook) Path() string {
	return w.path
}

func (w *xlsWorkbook) SheetNames() []string {
	names := make([]string, len(w.names))
	copy(names, w.names)
	return names
}

func (w *xlsWorkbook) ReadSheet(name string) (*models.Sheet, error) {
	rows, err := w.readRows(name)
	if err != nil {
		return nil, err
	}
	return &models.Sheet{
		Name:  name,
		Range: DataRange(rows),
		// The BIFF reader only hands out formatted text, so cells are
		// typed from it.
		Frame: BuildFrame(rows),
	}, nil
}

// readRows returns the display text of every row up to the sheet's last
// row. MaxRow is the index of the last row; LastCol is one past the last
// cell of a row.
func (w *xlsWorkbook) readRows(name string) (rows [][]string, err error) {
	idx, ok := w.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("%w: sheet %q: %v", ErrInvalidFormat, name, r)
		}
	}()

	sheet := w.wb.GetSheet(idx)
	if sheet == nil {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	rows = make([][]string, 0, int(sheet.MaxRow)+1)
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		last := row.LastCol()
		if last <= 0 {
			last = xlsMaxCols
		}
		cells := make([]string, 0, last)
		for c := 0; c < last; c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (w *xlsWorkbook) Close() error {
	return w.file.Close()
}
