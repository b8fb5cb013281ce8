package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with the given sheets, in order, to a temp file.
func writeWorkbook(t *testing.T, sheets []string, cells map[string]map[string]interface{}, opts ...excelize.Options) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			continue
		}
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	for sheet, values := range cells {
		for cell, v := range values {
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path, opts...))
	return path
}

func TestOpenXLSX(t *testing.T) {
	path := writeWorkbook(t, []string{"Books", "Members"}, map[string]map[string]interface{}{
		"Books": {
			"A1": "Title", "B1": "Copies",
			"A2": "Dune", "B2": 3,
			"A3": "Emma", "B3": 1,
		},
		"Members": {"A1": "Name"},
	})

	wb, err := Open(path, OpenOptions{})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, path, wb.Path())
	assert.Equal(t, []string{"Books", "Members"}, wb.SheetNames())

	sheet, err := wb.ReadSheet("Books")
	require.NoError(t, err)
	assert.Equal(t, "Books", sheet.Name)
	assert.Equal(t, "A1:B3", sheet.Range)
	assert.Equal(t, []string{"Title", "Copies"}, sheet.Frame.Columns)
	require.Len(t, sheet.Frame.Rows, 2)
	assert.Equal(t, []models.Value{models.StringValue("Dune"), models.IntValue(3)}, sheet.Frame.Rows[0])

	members, err := wb.ReadSheet("Members")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, members.Frame.Columns)
	assert.Empty(t, members.Frame.Rows)
}

func TestOpenXLSXReadsFreshEachTime(t *testing.T) {
	path := writeWorkbook(t, []string{"Data"}, map[string]map[string]interface{}{
		"Data": {"A1": "n", "A2": 1},
	})

	wb, err := Open(path, OpenOptions{Format: FormatXLSX})
	require.NoError(t, err)
	defer wb.Close()

	first, err := wb.ReadSheet("Data")
	require.NoError(t, err)
	first.Frame.Rows[0][0] = models.StringValue("changed")

	second, err := wb.ReadSheet("Data")
	require.NoError(t, err)
	assert.Equal(t, models.IntValue(1), second.Frame.Rows[0][0])
}

func TestOpenUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, []string{"Data"}, nil)

	wb, err := Open(path, OpenOptions{})
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.ReadSheet("Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestOpenNonASCIISheetName(t *testing.T) {
	path := writeWorkbook(t, []string{"Bücher", "会員"}, map[string]map[string]interface{}{
		"会員": {"A1": "名前", "A2": "山田"},
	})

	wb, err := Open(path, OpenOptions{})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Bücher", "会員"}, wb.SheetNames())
	sheet, err := wb.ReadSheet("会員")
	require.NoError(t, err)
	assert.Equal(t, []string{"名前"}, sheet.Frame.Columns)
}

func TestOpenEncryptedXLSX(t *testing.T) {
	path := writeWorkbook(t, []string{"Secret"}, map[string]map[string]interface{}{
		"Secret": {"A1": "k", "A2": "v"},
	}, excelize.Options{Password: "hunter2"})

	format, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)

	wb, err := Open(path, OpenOptions{Password: "hunter2"})
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, []string{"Secret"}, wb.SheetNames())

	_, err = Open(path, OpenOptions{})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"), OpenOptions{})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestOpenNotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0644))

	_, err := Open(path, OpenOptions{})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Open(path, OpenOptions{Format: FormatXLSX})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenXLSRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.xls")
	require.NoError(t, os.WriteFile(path, []byte("this is not a BIFF workbook at all"), 0644))

	_, err := Open(path, OpenOptions{Format: FormatXLS})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenXLSXTypesCellsByStoredType(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"ISBN", "Phone", "Member", "Fine", "Paid", "Due"}))
	require.NoError(t, f.SetCellStr(sheet, "A2", "0306406152"))
	require.NoError(t, f.SetCellStr(sheet, "B2", "+919876543210"))
	require.NoError(t, f.SetCellStr(sheet, "C2", "0000000001"))
	require.NoError(t, f.SetCellValue(sheet, "D2", 1200.5))
	require.NoError(t, f.SetCellValue(sheet, "E2", true))
	require.NoError(t, f.SetCellValue(sheet, "F2", 45000))
	require.NoError(t, f.SetCellStr(sheet, "A3", "42"))
	require.NoError(t, f.SetCellValue(sheet, "D3", 3))

	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "D2", "D3", thousands))
	date, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "F2", "F2", date))

	path := filepath.Join(t.TempDir(), "typed.xlsx")
	require.NoError(t, f.SaveAs(path))

	wb, err := Open(path, OpenOptions{})
	require.NoError(t, err)
	defer wb.Close()

	got, err := wb.ReadSheet(sheet)
	require.NoError(t, err)
	require.Len(t, got.Frame.Rows, 2)

	row := got.Frame.Rows[0]
	assert.Equal(t, models.StringValue("0306406152"), row[0])
	assert.Equal(t, models.StringValue("+919876543210"), row[1])
	assert.Equal(t, models.StringValue("0000000001"), row[2])
	assert.Equal(t, models.FloatValue(1200.5), row[3])
	assert.Equal(t, models.BoolValue(true), row[4])
	assert.Equal(t, models.KindString, row[5].Kind, "date cells keep their formatted text")
	assert.NotEqual(t, "45000", row[5].Str)

	// text that looks like a number is still text
	assert.Equal(t, models.StringValue("42"), got.Frame.Rows[1][0])
	assert.Equal(t, models.IntValue(3), got.Frame.Rows[1][3])
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"h:mm AM/PM", true},
		{"[$-409]d-mmm-yy", true},
		{"#,##0.00", false},
		{`0.00" days"`, false},
		{"[Red]#,##0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isDateFormat(tt.code), "isDateFormat(%q)", tt.code)
	}
	assert.True(t, isBuiltInDateFormat(14))
	assert.False(t, isBuiltInDateFormat(4))
}

func TestOpenXLS(t *testing.T) {
	path := filepath.Join("testdata", "library.xls")

	format, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, FormatXLS, format)

	wb, err := Open(path, OpenOptions{})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Books", "Members"}, wb.SheetNames())

	books, err := wb.ReadSheet("Books")
	require.NoError(t, err)
	assert.Equal(t, "A1:D4", books.Range)
	assert.Equal(t, []string{"Title", "ISBN", "Copies", "Fine"}, books.Frame.Columns)
	assert.Equal(t, [][]models.Value{
		{models.StringValue("Dune"), models.StringValue("0441013597"), models.IntValue(3), models.FloatValue(1.5)},
		{models.StringValue("Emma"), models.StringValue("0141439580"), models.IntValue(1), models.FloatValue(0.25)},
		{models.StringValue("Müller's Guide"), models.StringValue("+4930123"), models.IntValue(2), models.Empty()},
	}, books.Frame.Rows)

	members, err := wb.ReadSheet("Members")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Email"}, members.Frame.Columns)
	assert.Empty(t, members.Frame.Rows)

	_, err = wb.ReadSheet("Loans")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}
