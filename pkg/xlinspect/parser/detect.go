package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/richardlehane/mscfb"
)

var (
	zipMagic = []byte("PK\x03\x04")
	cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Detect sniffs the container format of the file at path.
// A ZIP package is xlsx. An OLE2 compound file is xls when it holds a
// Workbook or Book stream, and an encrypted xlsx when it holds an
// EncryptionInfo stream.
func Detect(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", err
	}
	defer f.Close()

	head := make([]byte, len(cfbMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return FormatXLSX, nil
	case bytes.Equal(head, cfbMagic):
		names, err := compoundStreams(f)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return classifyCompound(names)
	default:
		return "", fmt.Errorf("%w: %s is neither a zip package nor a compound document", ErrInvalidFormat, path)
	}
}

// compoundStreams lists the entry names of an OLE2 compound file.
func compoundStreams(r io.ReaderAt) ([]string, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return nil, err
	}

	var names []string
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		names = append(names, entry.Name)
	}
	return names, nil
}

// classifyCompound maps compound file stream names to a format.
func classifyCompound(names []string) (Format, error) {
	for _, name := range names {
		switch name {
		case "Workbook", "Book":
			return FormatXLS, nil
		case "EncryptionInfo", "EncryptedPackage":
			return FormatXLSX, nil
		}
	}
	return "", fmt.Errorf("%w: compound document has no workbook stream", ErrInvalidFormat)
}
