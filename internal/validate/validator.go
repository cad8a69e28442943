// =============================================================================
// Order Print Pipeline - Field Validation Engine
// =============================================================================
//
// This module validates ingested records against the fixed order schema.
//
// VALIDATION STRATEGY:
//   - Errors are collected, not thrown: every record is validated in full
//     and the complete error list is returned as data. Downstream consumers
//     decide whether a non-empty error list blocks printing.
//   - Fields are independent: a failure in one field never suppresses checks
//     on another field in the same row.
//   - A field's own checks form an ordered chain that stops at the first
//     failure, so each field reports at most one message per run (a phone
//     number that is both too short and missing the leading 9 reports only
//     the length problem).
//   - Output order is deterministic: rows in input order, fields in schema
//     declaration order. Re-validating the same records yields an identical
//     error list.
//
// NUMERIC COERCION:
//   A numeric field accepts a string of decimal digits. Anything else is a
//   type error, never a silent zero.
//
// =============================================================================

package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ginjaninja78/order-print-pipeline/internal/sheet"
)

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// ValidationError is one advisory validation failure. Errors never remove a
// record from the pipeline.
type ValidationError struct {
	// Field is the normalized header name that failed.
	Field string `json:"field"`

	// Message is the human-readable failure message.
	Message string `json:"message"`

	// RowIndex is the zero-based index of the record in the ingested
	// sequence.
	RowIndex int `json:"rowIndex"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d, field %q: %s", e.RowIndex, e.Field, e.Message)
}

// =============================================================================
// RULE MODEL
// =============================================================================

// Check is a single predicate+message pair within a field's rule chain.
type Check struct {
	// Test returns true when the value passes.
	Test func(value string) bool

	// Message is reported when Test fails.
	Message string
}

// Rule is the ordered check chain for one field.
type Rule struct {
	// Field is the normalized header name the rule applies to.
	Field string

	// Required reports an error for an empty value. Optional fields skip
	// their whole chain when empty.
	Required bool

	// RequiredMessage is reported when a required field is empty.
	RequiredMessage string

	// Checks run in order against non-empty values; the chain stops at the
	// first failure.
	Checks []Check
}

// Schema is an ordered list of field rules.
type Schema struct {
	rules []Rule
}

// =============================================================================
// ORDER SCHEMA
// =============================================================================

// NewOrderSchema builds the validation schema for order records.
//
// PARAMETERS:
//   - codePattern: The vendor's product code pattern without anchors
//     (e.g. `SB\d{3}`).
//
// The field set and messages match the operator-facing order sheet:
// CUSTOMER NAME, CELL NUMBER, ALT. NUM., FULL ADDRESS, BRANCH, PRODUCT,
// COD, PP.
func NewOrderSchema(codePattern string) (*Schema, error) {
	codeRegex, err := regexp.Compile("^" + codePattern + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid code pattern %q: %w", codePattern, err)
	}

	segmentRegex, err := regexp.Compile("^" + codePattern + `\|[^*,|]+(\*\d+)?$`)
	if err != nil {
		return nil, fmt.Errorf("invalid code pattern %q: %w", codePattern, err)
	}

	return &Schema{rules: []Rule{
		{
			Field:           "CUSTOMER NAME",
			Required:        true,
			RequiredMessage: "Customer name is required",
		},
		{
			Field:           "CELL NUMBER",
			Required:        true,
			RequiredMessage: "Phone number is required",
			Checks: []Check{
				{Test: isTenDigits, Message: "Phone number must be exactly 10 digits"},
				{Test: startsWithNine, Message: "Nepal phone numbers must start with 9"},
			},
		},
		{
			Field: "ALT. NUM.",
			Checks: []Check{
				{Test: isTenDigits, Message: "Alternative number must be exactly 10 digits"},
				{Test: startsWithNine, Message: "Nepal phone numbers must start with 9"},
			},
		},
		{
			Field:           "FULL ADDRESS",
			Required:        true,
			RequiredMessage: "Address is required",
		},
		{
			Field:           "BRANCH",
			Required:        true,
			RequiredMessage: "Branch is required",
		},
		{
			Field:           "PRODUCT",
			Required:        true,
			RequiredMessage: "Product is required",
			Checks: []Check{
				{
					Test:    productFormatCheck(segmentRegex, codeRegex),
					Message: "Invalid product format. Must be like: SB101|ProductName*Quantity or SB101|ProductName",
				},
			},
		},
		{
			Field:           "COD",
			Required:        true,
			RequiredMessage: "COD is required",
			Checks: []Check{
				{Test: isDigits, Message: "COD must be a non-negative number"},
			},
		},
		{
			Field: "PP",
			Checks: []Check{
				{Test: isDigits, Message: "PP must be a non-negative number"},
			},
		},
	}}, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate applies the schema to a single record.
//
// PARAMETERS:
//   - record: The header-keyed record to validate.
//   - rowIndex: The record's zero-based position, carried into each error.
//
// RETURNS:
//   - All validation errors for the record, in field declaration order.
//     An empty slice means the record is clean.
func (s *Schema) Validate(record sheet.Record, rowIndex int) []ValidationError {
	errs := []ValidationError{}

	for _, rule := range s.rules {
		value := strings.TrimSpace(record[rule.Field])

		if value == "" {
			if rule.Required {
				errs = append(errs, ValidationError{
					Field:    rule.Field,
					Message:  rule.RequiredMessage,
					RowIndex: rowIndex,
				})
			}
			// Optional fields skip their chain when empty.
			continue
		}

		for _, check := range rule.Checks {
			if !check.Test(value) {
				errs = append(errs, ValidationError{
					Field:    rule.Field,
					Message:  check.Message,
					RowIndex: rowIndex,
				})
				// The field's own chain self-short-circuits.
				break
			}
		}
	}

	return errs
}

// ValidateAll validates a record sequence in input order.
func (s *Schema) ValidateAll(records []sheet.Record) []ValidationError {
	errs := []ValidationError{}
	for i, record := range records {
		errs = append(errs, s.Validate(record, i)...)
	}
	return errs
}

// =============================================================================
// PREDICATES
// =============================================================================

var tenDigits = regexp.MustCompile(`^\d{10}$`)
var digits = regexp.MustCompile(`^\d+$`)

// isTenDigits reports whether the value is exactly 10 decimal digits.
func isTenDigits(value string) bool {
	return tenDigits.MatchString(value)
}

// startsWithNine reports whether the value carries the local mobile prefix.
func startsWithNine(value string) bool {
	return strings.HasPrefix(value, "9")
}

// isDigits reports whether the value coerces to a non-negative integer.
func isDigits(value string) bool {
	return digits.MatchString(value)
}

// productFormatCheck builds the strict product-string predicate. Every
// comma-separated segment must match the full segment grammar AND its code
// section must independently match the vendor code shape; a segment that
// survives the loose split but carries a bad code is still invalid.
func productFormatCheck(segmentRegex, codeRegex *regexp.Regexp) func(string) bool {
	return func(value string) bool {
		segments := strings.Split(value, ",")

		for _, segment := range segments {
			trimmed := strings.TrimSpace(segment)
			if !segmentRegex.MatchString(trimmed) {
				return false
			}

			code := strings.SplitN(trimmed, "|", 2)[0]
			if !codeRegex.MatchString(code) {
				return false
			}
		}

		return true
	}
}
