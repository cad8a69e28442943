package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	csv := "CUSTOMER NAME,CELL NUMBER,PRODUCT\nSita,9812345678,SB101|Red\n,,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	records, err := ParseFile(path, Options{})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Sita", records[0]["CUSTOMER NAME"])
	assert.Equal(t, "SB101|Red", records[0]["PRODUCT"])
}

func TestParseFileXLSXFirstSheetOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")

	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheetName, "A1", &[]interface{}{"CUSTOMER NAME", "CELL NUMBER", "PRODUCT"}))
	require.NoError(t, f.SetSheetRow(sheetName, "A2", &[]interface{}{"Gita", "9845678901", "SB102|Blue*2"}))

	// A second sheet must be ignored.
	_, err := f.NewSheet("Extra")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Extra", "A1", &[]interface{}{"x", "y", "z"}))

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := ParseFile(path, Options{})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Gita", records[0]["CUSTOMER NAME"])
	assert.Equal(t, "SB102|Blue*2", records[0]["PRODUCT"])
}

func TestParseFileMissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.xlsx"), Options{})

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0644))

	_, err := ParseFile(path, Options{})

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, err.Error(), "unsupported file extension")
}
