package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

// OpenOptions configures how a workbook is opened.
type OpenOptions struct {
	// Format forces a container format. FormatAuto (or "") sniffs the file.
	Format Format
	// Password decrypts an encrypted xlsx package.
	Password string
}

// Open opens the workbook at path for reading.
func Open(path string, opts OpenOptions) (models.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		detected, err := Detect(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	switch format {
	case FormatXLSX:
		wb, err := openXLSX(path, opts.Password)
		if err != nil {
			return nil, err
		}
		return wb, nil
	case FormatXLS:
		wb, err := openXLS(path)
		if err != nil {
			return nil, err
		}
		return wb, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidFormat, format)
	}
}

func containsSheet(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
