// =============================================================================
// Order Print Pipeline - Tabular Ingestion Module
// =============================================================================
//
// This module converts raw tabular input into header-keyed records. It accepts
// three ingestion surfaces, all of which converge on the same row-parsing
// logic so downstream validation and pagination are source-agnostic:
//   - Spreadsheet files (.xlsx, .xls): first sheet only, rows as arrays
//   - CSV files (.csv)
//   - Pasted/typed plain text: lines as rows, tabs as cell separators
//
// ROW MODEL:
//   - Headers are normalized (trimmed, upper-cased) and compared that way.
//   - When an explicit header set is supplied, every input row is data;
//     otherwise row 0 becomes the header set and rows 1..n are data.
//   - A data row is accepted only if it has at least MinRequiredCells
//     populated cells. Under-threshold rows are dropped silently; this is a
//     documented tolerance for trailing blank rows in spreadsheet exports,
//     not a failure.
//   - Rows shorter than the header set are padded with empty strings so
//     every record carries every header key.
//
// =============================================================================

package sheet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// =============================================================================
// DATA STRUCTURES
// =============================================================================

// RawTable is an ordered sequence of rows of text cells, with no guaranteed
// rectangularity; rows may be shorter than the header row.
type RawTable [][]string

// Record is one accepted data row, keyed by normalized header name.
// Every header key is present in every record, empty string when the source
// row was short.
type Record map[string]string

// Options controls row parsing.
type Options struct {
	// RequiredFields is reserved for future rule sets and currently unused.
	RequiredFields []string

	// MinRequiredCells is the minimum number of populated cells a data row
	// must have to be accepted. Zero means DefaultMinRequiredCells.
	MinRequiredCells int

	// HeaderRow supplies explicit headers. When set, first-row-as-header
	// behavior is disabled and every row of the table is treated as data.
	HeaderRow []string
}

// DefaultMinRequiredCells is the populated-cell threshold used when the
// options do not supply one.
const DefaultMinRequiredCells = 3

// DefaultLabelHeaders is the header set used for header-less label pastes.
// Order matters: it defines the column positions of pasted data.
var DefaultLabelHeaders = []string{
	"CUSTOMER NAME",
	"CELL NUMBER",
	"ALT. NUM.",
	"FULL ADDRESS",
	"BRANCH",
	"PRODUCT",
	"COD",
	"PP",
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrEmptyInput is returned when pasted input is empty after trimming.
var ErrEmptyInput = errors.New("input is empty")

// FileReadError indicates that an input file could not be read or decoded.
// It is terminal for the ingestion attempt; no partial data is produced.
type FileReadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileReadError) Unwrap() error {
	return e.Err
}

// =============================================================================
// HEADER NORMALIZATION
// =============================================================================

// NormalizeHeader normalizes a header name for case- and whitespace-
// insensitive comparison.
func NormalizeHeader(header string) string {
	return strings.ToUpper(strings.TrimSpace(header))
}

// normalizeHeaders normalizes a header row. When dropEmpty is set, empty
// names are removed (derived headers); explicit header sets keep their
// positions as supplied.
func normalizeHeaders(headers []string, dropEmpty bool) []string {
	normalized := make([]string, 0, len(headers))
	for _, header := range headers {
		name := NormalizeHeader(header)
		if dropEmpty && name == "" {
			continue
		}
		normalized = append(normalized, name)
	}
	return normalized
}

// =============================================================================
// ROW PARSING
// =============================================================================

// ParseRows converts a raw table into records.
//
// PARAMETERS:
//   - table: The raw rows-by-columns cell data.
//   - opts: Parsing options (explicit headers, populated-cell threshold).
//
// RETURNS:
//   - One record per accepted data row, in input order.
//
// Duplicate header names after normalization are not resolved: the last
// occurrence wins when indexing, matching spreadsheet column semantics the
// operators rely on.
func ParseRows(table RawTable, opts Options) []Record {
	minCells := opts.MinRequiredCells
	if minCells <= 0 {
		minCells = DefaultMinRequiredCells
	}

	var headers []string
	var dataRows RawTable

	if len(opts.HeaderRow) > 0 {
		// Explicit headers: every row is data.
		headers = normalizeHeaders(opts.HeaderRow, false)
		dataRows = table
	} else {
		if len(table) == 0 {
			return []Record{}
		}
		headers = normalizeHeaders(table[0], true)
		dataRows = table[1:]
	}

	records := make([]Record, 0, len(dataRows))

	for _, row := range dataRows {
		if populatedCells(row) < minCells {
			continue
		}

		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			} else {
				record[header] = ""
			}
		}

		records = append(records, record)
	}

	return records
}

// populatedCells counts the non-empty cells in a row.
func populatedCells(row []string) int {
	count := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			count++
		}
	}
	return count
}

// =============================================================================
// PASTED TEXT SURFACE
// =============================================================================

// lineBreaks splits pasted text into rows; runs of \r and \n collapse so
// Windows clipboards do not produce phantom blank rows.
var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// ParsePasted parses tab-separated pasted or typed text into records.
//
// PARAMETERS:
//   - text: The raw pasted text. Rows are separated by line breaks, cells by
//     horizontal tab characters (the clipboard format of Excel and Google
//     Sheets).
//   - opts: Parsing options.
//
// RETURNS:
//   - The parsed records.
//   - ErrEmptyInput when the text is empty after trimming.
func ParsePasted(text string, opts Options) ([]Record, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	lines := lineBreaks.Split(trimmed, -1)
	table := make(RawTable, 0, len(lines))
	for _, line := range lines {
		table = append(table, strings.Split(line, "\t"))
	}

	return ParseRows(table, opts), nil
}
