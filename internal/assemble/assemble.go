// =============================================================================
// Order Print Pipeline - Document Assembler
// =============================================================================
//
// This module turns one validated record into a document-ready summary:
// itemized product lines plus invoice totals.
//
// TOTALS (fixed order of computation):
//   subtotal   = sum of line totals
//   shipping   = fixed per price book (100 for todaytrend, 0 for seetar)
//   cod        = numeric COD field, or 0
//   prepaid    = numeric PP field, or 0
//   discount   = max(0, subtotal - (cod + prepaid - shipping))
//   amountDue  = cod
//   grandTotal = subtotal - discount
//
// AmountDue is the courier-collected COD amount regardless of invoice
// arithmetic, so discount and amountDue do not reconcile against subtotal.
// That is the confirmed business rule; do not "fix" it here.
//
// =============================================================================

package assemble

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/order-print-pipeline/internal/config"
	"github.com/ginjaninja78/order-print-pipeline/internal/product"
	"github.com/ginjaninja78/order-print-pipeline/internal/sheet"
)

// =============================================================================
// DOCUMENT STRUCTURES
// =============================================================================

// Totals holds the per-document amounts, in whole currency units.
type Totals struct {
	Subtotal     int
	Discount     int
	ShippingCost int
	AmountDue    int
	GrandTotal   int
}

// Document is one assembled, print-ready document.
type Document struct {
	// Record is the source record, kept for label/address fields.
	Record sheet.Record

	// Items are the parsed product line items.
	Items []product.LineItem

	// Totals are the computed invoice amounts.
	Totals Totals

	// InvoiceNumber is the record's invoice number, or a generated
	// fallback.
	InvoiceNumber string

	// InvoiceDate is the record's invoice date, or today's date.
	InvoiceDate string

	// DueDate is the payment due date, 15 days out.
	DueDate string
}

// dueDays is the payment window printed on invoices.
const dueDays = 15

// dateLayout is the display format for invoice and due dates.
const dateLayout = "1/2/2006"

// =============================================================================
// ASSEMBLER
// =============================================================================

// Assembler builds documents for one vendor's price book.
type Assembler struct {
	book   *config.PriceBook
	logger *zap.Logger

	// now and randInt are swappable for tests.
	now     func() time.Time
	randInt func(n int) int
}

// New creates an Assembler for the given price book.
func New(book *config.PriceBook, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		book:    book,
		logger:  logger,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

// Assemble builds the document for a single record.
//
// A product parse failure degrades that one record to zero items and is
// logged; it never aborts the batch.
func (a *Assembler) Assemble(record sheet.Record) Document {
	items, err := product.ParseItems(record["PRODUCT"], a.book)
	if err != nil {
		a.logger.Warn("product parsing failed, document has no line items",
			zap.String("product", record["PRODUCT"]),
			zap.Error(err),
		)
		items = []product.LineItem{}
	}

	subtotal := 0
	for _, item := range items {
		subtotal += item.LineTotal
	}

	shipping := a.book.ShippingCost
	cod := numericOrZero(record["COD"])
	prepaid := numericOrZero(record["PP"])

	discount := subtotal - (cod + prepaid - shipping)
	if discount < 0 {
		discount = 0
	}

	totals := Totals{
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shipping,
		AmountDue:    cod,
		GrandTotal:   subtotal - discount,
	}

	return Document{
		Record:        record,
		Items:         items,
		Totals:        totals,
		InvoiceNumber: a.invoiceNumber(record),
		InvoiceDate:   a.invoiceDate(record),
		DueDate:       a.now().AddDate(0, 0, dueDays).Format(dateLayout),
	}
}

// AssembleAll builds documents for a record sequence in input order.
func (a *Assembler) AssembleAll(records []sheet.Record) []Document {
	docs := make([]Document, 0, len(records))
	for _, record := range records {
		docs = append(docs, a.Assemble(record))
	}
	return docs
}

// invoiceNumber returns the record's invoice number, or generates a display
// fallback: the book's prefix plus a random 6-digit numeral. Best-effort
// unique only; it is never persisted as a key, so no collision check.
func (a *Assembler) invoiceNumber(record sheet.Record) string {
	if number := record["INVOICE #"]; number != "" {
		return number
	}
	return fmt.Sprintf("%s%d", a.book.InvoicePrefix, 100000+a.randInt(900000))
}

// invoiceDate returns the record's invoice date, or today.
func (a *Assembler) invoiceDate(record sheet.Record) string {
	if date := record["INVOICE DATE"]; date != "" {
		return date
	}
	return a.now().Format(dateLayout)
}

// numericOrZero coerces a digit string to an int, defaulting to zero.
// Validation has already flagged non-numeric values; assembly stays total.
func numericOrZero(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
