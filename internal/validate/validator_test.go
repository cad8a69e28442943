package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/order-print-pipeline/internal/sheet"
)

func orderSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := NewOrderSchema(`SB\d{3}`)
	require.NoError(t, err)
	return schema
}

func validRecord() sheet.Record {
	return sheet.Record{
		"CUSTOMER NAME": "Sita Sharma",
		"CELL NUMBER":   "9812345678",
		"ALT. NUM.":     "",
		"FULL ADDRESS":  "Ranibari, Kathmandu",
		"BRANCH":        "Kathmandu",
		"PRODUCT":       "SB101|Red*2",
		"COD":           "5000",
		"PP":            "",
	}
}

func TestValidateCleanRecord(t *testing.T) {
	errs := orderSchema(t).Validate(validRecord(), 0)
	assert.Empty(t, errs)
}

func TestValidatePhoneRules(t *testing.T) {
	schema := orderSchema(t)

	// 10 digits, wrong prefix: exactly one error, the prefix message.
	record := validRecord()
	record["CELL NUMBER"] = "8812345678"
	errs := schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "CELL NUMBER", errs[0].Field)
	assert.Equal(t, "Nepal phone numbers must start with 9", errs[0].Message)

	// Too short: the chain stops at the length check.
	record["CELL NUMBER"] = "98123"
	errs = schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "Phone number must be exactly 10 digits", errs[0].Message)

	// Valid number: zero errors for the field.
	record["CELL NUMBER"] = "9812345678"
	assert.Empty(t, schema.Validate(record, 0))
}

func TestValidateAlternateNumberOptional(t *testing.T) {
	schema := orderSchema(t)

	record := validRecord()
	record["ALT. NUM."] = ""
	assert.Empty(t, schema.Validate(record, 0))

	record["ALT. NUM."] = "12345"
	errs := schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "ALT. NUM.", errs[0].Field)
	assert.Equal(t, "Alternative number must be exactly 10 digits", errs[0].Message)
}

func TestValidateProductRules(t *testing.T) {
	schema := orderSchema(t)

	record := validRecord()
	record["PRODUCT"] = "SB101-Red*2"
	errs := schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "PRODUCT", errs[0].Field)
	assert.Contains(t, errs[0].Message, "Invalid product format")

	record["PRODUCT"] = ""
	errs = schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "Product is required", errs[0].Message)

	// A segment passing the loose grammar but failing the code shape is
	// still invalid.
	record["PRODUCT"] = "SB101|Red, XX999|Blue"
	errs = schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Invalid product format")

	record["PRODUCT"] = "SB101|Red*2, SB102|Blue"
	assert.Empty(t, schema.Validate(record, 0))
}

func TestValidateNumericCoercion(t *testing.T) {
	schema := orderSchema(t)

	record := validRecord()
	record["COD"] = "12a4"
	errs := schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "COD", errs[0].Field)

	record["COD"] = "0"
	assert.Empty(t, schema.Validate(record, 0))

	record["PP"] = "-5"
	errs = schema.Validate(record, 0)
	require.Len(t, errs, 1)
	assert.Equal(t, "PP", errs[0].Field)
}

func TestValidateCollectsAllFieldsInDeclarationOrder(t *testing.T) {
	schema := orderSchema(t)

	record := sheet.Record{
		"CUSTOMER NAME": "",
		"CELL NUMBER":   "123",
		"ALT. NUM.":     "",
		"FULL ADDRESS":  "",
		"BRANCH":        "Kathmandu",
		"PRODUCT":       "bad",
		"COD":           "abc",
		"PP":            "",
	}

	errs := schema.Validate(record, 4)
	require.Len(t, errs, 5)

	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		assert.Equal(t, 4, err.RowIndex)
		fields = append(fields, err.Field)
	}
	assert.Equal(t, []string{"CUSTOMER NAME", "CELL NUMBER", "FULL ADDRESS", "PRODUCT", "COD"}, fields)
}

func TestValidateIsIdempotent(t *testing.T) {
	schema := orderSchema(t)

	record := validRecord()
	record["CELL NUMBER"] = "8812345678"
	record["COD"] = "nope"

	first := schema.Validate(record, 2)
	second := schema.Validate(record, 2)
	assert.Equal(t, first, second)
}

func TestValidateAllProcessesRowsInOrder(t *testing.T) {
	schema := orderSchema(t)

	bad := validRecord()
	bad["BRANCH"] = ""

	errs := schema.ValidateAll([]sheet.Record{validRecord(), bad, bad})
	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].RowIndex)
	assert.Equal(t, 2, errs[1].RowIndex)
	assert.Equal(t, "Branch is required", errs[0].Message)
}
