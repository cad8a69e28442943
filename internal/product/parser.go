// =============================================================================
// Order Print Pipeline - Product Grammar Parser
// =============================================================================
//
// This module parses the product mini-language used to encode order line
// items in a single spreadsheet cell:
//
//   <CODE> "|" <VARIANT> ["*" <QUANTITY>] [ "," <next item> ... ]
//
// Examples:
//   "SB101|Red*3"            one item, quantity 3
//   "SB101|Red*3, SB102|Blue" two items, second defaults to quantity 1
//
// The parser is deliberately tolerant: segments missing the "|" delimiter
// yield an empty variant, and unrecognized codes are priced at the book's
// default. Rejecting malformed product strings is the field validator's job;
// this layer only itemizes whatever it is given.
//
// FAILURE MODE:
//   Parsing never crashes a batch. An unexpected internal panic is recovered
//   and surfaced as an explicit error with zero items, so callers can tell
//   "empty input" apart from "parse failure" and log the latter.
//
// =============================================================================

package product

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ginjaninja78/order-print-pipeline/internal/config"
)

// =============================================================================
// LINE ITEM STRUCTURE
// =============================================================================

// LineItem is one itemized entry parsed from a product string.
// Line items are derived, never persisted; they are recomputed from the
// record's product field each time a document is assembled.
type LineItem struct {
	// Code is the vendor product code (e.g. "SB101").
	Code string

	// Variant is the free-text variant label (e.g. a color).
	Variant string

	// Quantity is the ordered quantity, at least 1.
	Quantity int

	// UnitPrice is the per-unit price in whole currency units, resolved
	// from the vendor price book.
	UnitPrice int

	// LineTotal is UnitPrice * Quantity.
	LineTotal int
}

// quantitySuffix matches a trailing "*<digits>" quantity multiplier on the
// variant section.
var quantitySuffix = regexp.MustCompile(`\*(\d+)$`)

// =============================================================================
// PARSER
// =============================================================================

// ParseItems parses a comma-separated product string into line items,
// resolving unit prices against the given price book.
//
// PARAMETERS:
//   - raw: The product cell value.
//   - book: The vendor price book used for price resolution.
//
// RETURNS:
//   - The ordered line items. An empty or blank input yields zero items and
//     a nil error.
//   - A non-nil error only when parsing failed internally; the item slice is
//     empty in that case and the caller decides how loudly to report it.
func ParseItems(raw string, book *config.PriceBook) (items []LineItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("product parsing failed for %q: %v", raw, r)
		}
	}()

	if strings.TrimSpace(raw) == "" {
		return []LineItem{}, nil
	}

	segments := strings.Split(raw, ",")
	items = make([]LineItem, 0, len(segments))

	for _, segment := range segments {
		items = append(items, parseSegment(strings.TrimSpace(segment), book))
	}

	return items, nil
}

// parseSegment parses a single "CODE|VARIANT[*QTY]" segment.
func parseSegment(segment string, book *config.PriceBook) LineItem {
	// Split on the first "|" into code and variant sections. A segment
	// without "|" is all code, empty variant.
	code, variant := segment, ""
	if idx := strings.Index(segment, "|"); idx >= 0 {
		code = strings.TrimSpace(segment[:idx])
		variant = strings.TrimSpace(segment[idx+1:])
	}

	quantity := 1
	if match := quantitySuffix.FindStringSubmatch(variant); match != nil {
		if parsed, convErr := strconv.Atoi(match[1]); convErr == nil {
			quantity = parsed
		}
		variant = strings.TrimSpace(quantitySuffix.ReplaceAllString(variant, ""))
	}

	unitPrice := book.PriceFor(code)

	return LineItem{
		Code:      code,
		Variant:   variant,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice * quantity,
	}
}
