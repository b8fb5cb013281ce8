package xlinspect

import (
	"context"
	"fmt"
	"io"

	"github.com/ukaji3/xlinspect-go/pkg/logger"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/output"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
)

// Inspect opens the workbook, writes its sheet names and then a preview
// of each sheet to w. It stops at the first error; whatever was written
// before the failure stays written.
func Inspect(ctx context.Context, w io.Writer, opts Options) error {
	path := opts.WorkbookPath()

	wb, err := parser.Open(path, parser.OpenOptions{
		Format:   opts.Format,
		Password: opts.Password,
	})
	if err != nil {
		return err
	}
	defer wb.Close()

	names := wb.SheetNames()
	logger.Debug("Opened workbook", "path", path, "sheets", len(names))

	fmt.Fprintln(w, "Sheet names:")
	for _, name := range names {
		fmt.Fprintf(w, "- %s\n", name)
	}

	targets, err := selectSheets(names, opts.Sheets)
	if err != nil {
		return err
	}

	renderOpts := output.Options{MaxColWidth: opts.MaxColWidth}
	for _, name := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(w, "\n\nContents of sheet: %s\n", name)

		sheet, err := wb.ReadSheet(name)
		if err != nil {
			return NewSheetError(name, "read", err)
		}
		logger.Debug("Read sheet",
			"sheet", name,
			"range", sheet.Range,
			"columns", len(sheet.Frame.Columns),
			"rows", len(sheet.Frame.Rows),
		)
		if sheet.Range == "" {
			logger.Warn("Sheet has no data", "sheet", name)
		}

		preview := sheet.Frame.Head(opts.PreviewRowCount())
		if err := output.RenderFrame(w, preview, renderOpts); err != nil {
			return NewSheetError(name, "render", err)
		}
	}

	logger.Info("Inspection finished", "path", path, "sheets", len(targets))
	return nil
}

// selectSheets returns the sheets to preview, in workbook order.
func selectSheets(names, wanted []string) ([]string, error) {
	if len(wanted) == 0 {
		return names, nil
	}

	want := make(map[string]bool, len(wanted))
	for _, name := range wanted {
		want[name] = true
	}

	var selected []string
	for _, name := range names {
		if want[name] {
			selected = append(selected, name)
			delete(want, name)
		}
	}
	for _, name := range wanted {
		if want[name] {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
	}
	return selected, nil
}
