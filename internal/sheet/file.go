// =============================================================================
// Order Print Pipeline - File Ingestion Surface
// =============================================================================
//
// Spreadsheet and CSV file reading. Both readers materialize the file into a
// RawTable and hand it to ParseRows, so file input and pasted input share
// identical row-parsing semantics.
//
// Only the first sheet of a workbook is read. Multi-sheet workbooks are out
// of scope; operators export one order sheet per run.
//
// =============================================================================

package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// FILE SURFACE
// =============================================================================

// ParseFile reads a tabular input file and parses it into records.
//
// PARAMETERS:
//   - path: The input file. Supported extensions: .xlsx, .xls, .csv.
//   - opts: Parsing options.
//
// RETURNS:
//   - The parsed records.
//   - A *FileReadError if the file cannot be read or decoded. The failure is
//     terminal for the whole ingestion attempt; no partial data is produced.
func ParseFile(path string, opts Options) ([]Record, error) {
	var table RawTable
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		table, err = readWorkbook(path)
	case ".csv":
		table, err = readCSV(path)
	default:
		err = fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}

	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	return ParseRows(table, opts), nil
}

// readWorkbook reads the first sheet of a spreadsheet file as rows of cells.
func readWorkbook(path string) (RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	// First sheet only, by index.
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheetName, err)
	}

	return RawTable(rows), nil
}

// readCSV reads a CSV file as rows of cells.
func readCSV(path string) (RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Order exports are ragged; let ParseRows pad short rows.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return RawTable(rows), nil
}
