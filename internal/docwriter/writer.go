// =============================================================================
// Order Print Pipeline - Page Manifest Writer
// =============================================================================
//
// This module serializes paginated documents into JSON page manifests for the
// rendering collaborators (label sheets, invoice runs, print preview). The
// manifest is the pipeline's only output artifact: an ordered list of pages,
// each carrying the documents assigned to one physical sheet plus the sheet's
// grid geometry.
//
// OUTPUT NAMING:
//   <medium>_<timestamp>_<uuid>.json in the output directory, so repeated
//   runs never collide and batches sort chronologically.
//
// =============================================================================

package docwriter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/order-print-pipeline/internal/assemble"
	"github.com/ginjaninja78/order-print-pipeline/internal/paginate"
	"github.com/ginjaninja78/order-print-pipeline/internal/sheet"
)

// =============================================================================
// MANIFEST STRUCTURES
// =============================================================================

// Batch is the top-level page manifest for one run.
type Batch struct {
	BatchID     string `json:"batchId"`
	GeneratedAt string `json:"generatedAt"`

	// Medium is "labels" or "invoices".
	Medium string `json:"medium"`

	// Style is the vendor / invoice style the batch was priced with.
	Style string `json:"style"`

	// LabelSize is the per-page label capacity; zero for invoice runs.
	LabelSize int `json:"labelSize,omitempty"`

	PageCount int    `json:"pageCount"`
	Pages     []Page `json:"pages"`
}

// Page is one physical sheet.
type Page struct {
	// Number is the 1-based page number.
	Number int `json:"number"`

	// Rows and Columns describe the physical grid of the sheet.
	Rows    int `json:"rows"`
	Columns int `json:"columns"`

	Documents []DocumentView `json:"documents"`
}

// DocumentView is the render-ready projection of one assembled document.
type DocumentView struct {
	Record        sheet.Record `json:"record"`
	Items         []ItemView   `json:"items"`
	Totals        TotalsView   `json:"totals"`
	InvoiceNumber string       `json:"invoiceNumber"`
	InvoiceDate   string       `json:"invoiceDate"`
	DueDate       string       `json:"dueDate"`
}

// ItemView is one line item with display-formatted amounts.
type ItemView struct {
	Code      string `json:"code"`
	Variant   string `json:"variant"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// TotalsView carries display-formatted invoice amounts.
type TotalsView struct {
	Subtotal     string `json:"subtotal"`
	Discount     string `json:"discount"`
	ShippingCost string `json:"shippingCost"`
	AmountDue    string `json:"amountDue"`
	GrandTotal   string `json:"grandTotal"`
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatCurrency renders a whole-unit amount in the invoice display form.
func FormatCurrency(amount int) string {
	return fmt.Sprintf("NPR.%.2f", float64(amount))
}

// =============================================================================
// BATCH ASSEMBLY
// =============================================================================

// NewBatch paginates assembled documents and builds the manifest.
//
// PARAMETERS:
//   - medium: "labels" or "invoices".
//   - style: The vendor / invoice style key.
//   - capacity: Documents per page (6 or 8 for labels, 1 for invoices).
//   - docs: The assembled documents, in record order.
func NewBatch(medium, style string, capacity int, docs []assemble.Document) *Batch {
	rows, cols := paginate.Grid(capacity)

	batch := &Batch{
		BatchID:     uuid.NewString(),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Medium:      medium,
		Style:       style,
		Pages:       []Page{},
	}
	if medium == "labels" {
		batch.LabelSize = capacity
	}

	for i, pageDocs := range paginate.Paginate(docs, capacity) {
		page := Page{
			Number:    i + 1,
			Rows:      rows,
			Columns:   cols,
			Documents: make([]DocumentView, 0, len(pageDocs)),
		}

		for _, doc := range pageDocs {
			page.Documents = append(page.Documents, newDocumentView(doc))
		}

		batch.Pages = append(batch.Pages, page)
	}

	batch.PageCount = len(batch.Pages)
	return batch
}

// newDocumentView projects one document into its render-ready form.
func newDocumentView(doc assemble.Document) DocumentView {
	items := make([]ItemView, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, ItemView{
			Code:      item.Code,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: FormatCurrency(item.UnitPrice),
			LineTotal: FormatCurrency(item.LineTotal),
		})
	}

	return DocumentView{
		Record: doc.Record,
		Items:  items,
		Totals: TotalsView{
			Subtotal:     FormatCurrency(doc.Totals.Subtotal),
			Discount:     FormatCurrency(doc.Totals.Discount),
			ShippingCost: FormatCurrency(doc.Totals.ShippingCost),
			AmountDue:    FormatCurrency(doc.Totals.AmountDue),
			GrandTotal:   FormatCurrency(doc.Totals.GrandTotal),
		},
		InvoiceNumber: doc.InvoiceNumber,
		InvoiceDate:   doc.InvoiceDate,
		DueDate:       doc.DueDate,
	}
}

// =============================================================================
// OUTPUT
// =============================================================================

// Write serializes the batch manifest into the output directory.
//
// RETURNS:
//   - The path of the written manifest.
//   - An error if the directory cannot be created or the file written.
func Write(outputDir string, batch *Batch) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.json",
		batch.Medium,
		time.Now().Format("20060102_150405"),
		batch.BatchID,
	)
	path := filepath.Join(outputDir, name)

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	return path, nil
}
