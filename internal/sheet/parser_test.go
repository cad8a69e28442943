package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsDerivesHeadersFromFirstRow(t *testing.T) {
	table := RawTable{
		{"Customer Name", " cell number ", "Product"},
		{"Sita Sharma", "9812345678", "SB101|Red"},
	}

	records := ParseRows(table, Options{})

	require.Len(t, records, 1)
	assert.Equal(t, "Sita Sharma", records[0]["CUSTOMER NAME"])
	assert.Equal(t, "9812345678", records[0]["CELL NUMBER"])
	assert.Equal(t, "SB101|Red", records[0]["PRODUCT"])
}

func TestParseRowsExplicitHeadersTreatEveryRowAsData(t *testing.T) {
	table := RawTable{
		{"Sita", "9812345678", "Kathmandu"},
		{"Gita", "9845678901", "Pokhara"},
	}

	records := ParseRows(table, Options{
		HeaderRow: []string{"CUSTOMER NAME", "CELL NUMBER", "FULL ADDRESS"},
	})

	require.Len(t, records, 2)
	assert.Equal(t, "Sita", records[0]["CUSTOMER NAME"])
	assert.Equal(t, "Gita", records[1]["CUSTOMER NAME"])
}

func TestParseRowsDropsUnderThresholdRows(t *testing.T) {
	table := RawTable{
		{"NAME", "PHONE", "CITY"},
		{"a", "b", "c"},
		{"", "", "x"},
		{"", "", ""},
	}

	records := ParseRows(table, Options{})

	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0]["NAME"])
}

func TestParseRowsPadsShortRows(t *testing.T) {
	records := ParseRows(RawTable{{"a", "b", "c"}}, Options{
		HeaderRow:        []string{"W", "X", "Y", "Z"},
		MinRequiredCells: 1,
	})

	require.Len(t, records, 1)
	assert.Equal(t, "c", records[0]["Y"])
	assert.Equal(t, "", records[0]["Z"])
}

func TestParseRowsEveryRecordHasAllHeaderKeys(t *testing.T) {
	headers := []string{"NAME", "PHONE", "ADDRESS", "PRODUCT"}
	table := RawTable{
		{"Sita", "9812345678", "KTM"},
		{"Gita", "9845678901", "PKR", "SB101|Red"},
	}

	records := ParseRows(table, Options{HeaderRow: headers, MinRequiredCells: 1})

	require.Len(t, records, 2)
	for _, record := range records {
		require.Len(t, record, len(headers))
		for _, header := range headers {
			_, ok := record[header]
			assert.True(t, ok, "missing key %s", header)
		}
	}
}

func TestParseRowsDuplicateHeadersLastWins(t *testing.T) {
	records := ParseRows(RawTable{{"first", "second"}}, Options{
		HeaderRow:        []string{"PHONE", "phone "},
		MinRequiredCells: 1,
	})

	require.Len(t, records, 1)
	assert.Equal(t, "second", records[0]["PHONE"])
}

func TestParseRowsEmptyTable(t *testing.T) {
	assert.Empty(t, ParseRows(RawTable{}, Options{}))
	assert.Empty(t, ParseRows(nil, Options{}))
}

func TestParsePastedEmptyInput(t *testing.T) {
	_, err := ParsePasted("   \n\t ", Options{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParsePastedSplitsTabsAndLineBreaks(t *testing.T) {
	text := "NAME\tPHONE\tCITY\r\nSita\t9812345678\tKathmandu\r\nGita\t9845678901\tPokhara\n"

	records, err := ParsePasted(text, Options{})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Pokhara", records[1]["CITY"])
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "CELL NUMBER", NormalizeHeader("  cell number "))
	assert.Equal(t, "", NormalizeHeader("   "))
}
