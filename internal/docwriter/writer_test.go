package docwriter

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/order-print-pipeline/internal/assemble"
	"github.com/ginjaninja78/order-print-pipeline/internal/config"
	"github.com/ginjaninja78/order-print-pipeline/internal/sheet"
)

func sampleDocs(t *testing.T, n int) []assemble.Document {
	t.Helper()
	book := config.BuiltinPriceBooks()["todaytrend"]
	assembler := assemble.New(book, nil)

	records := make([]sheet.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, sheet.Record{
			"CUSTOMER NAME": "Sita Sharma",
			"PRODUCT":       "SB101|Red*2",
			"COD":           "5000",
		})
	}
	return assembler.AssembleAll(records)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "NPR.3000.00", FormatCurrency(3000))
	assert.Equal(t, "NPR.0.00", FormatCurrency(0))
}

func TestNewBatchLabelPagination(t *testing.T) {
	batch := NewBatch("labels", "todaytrend", 6, sampleDocs(t, 9))

	assert.Equal(t, 2, batch.PageCount)
	assert.Equal(t, 6, batch.LabelSize)
	require.Len(t, batch.Pages, 2)

	assert.Equal(t, 1, batch.Pages[0].Number)
	assert.Equal(t, 3, batch.Pages[0].Rows)
	assert.Equal(t, 2, batch.Pages[0].Columns)
	assert.Len(t, batch.Pages[0].Documents, 6)
	assert.Len(t, batch.Pages[1].Documents, 3)
}

func TestNewBatchInvoiceRun(t *testing.T) {
	batch := NewBatch("invoices", "seetar", 1, sampleDocs(t, 3))

	assert.Equal(t, 3, batch.PageCount)
	assert.Zero(t, batch.LabelSize)
	for _, page := range batch.Pages {
		assert.Len(t, page.Documents, 1)
	}
}

func TestNewBatchEmptyInput(t *testing.T) {
	batch := NewBatch("labels", "todaytrend", 8, nil)

	assert.Equal(t, 0, batch.PageCount)
	assert.Empty(t, batch.Pages)
}

func TestNewBatchDocumentView(t *testing.T) {
	batch := NewBatch("invoices", "todaytrend", 1, sampleDocs(t, 1))

	require.Len(t, batch.Pages, 1)
	doc := batch.Pages[0].Documents[0]

	require.Len(t, doc.Items, 1)
	assert.Equal(t, "SB101", doc.Items[0].Code)
	assert.Equal(t, "NPR.3000.00", doc.Items[0].UnitPrice)
	assert.Equal(t, "NPR.6000.00", doc.Items[0].LineTotal)
	assert.Equal(t, "NPR.6000.00", doc.Totals.Subtotal)
	assert.Equal(t, "NPR.5000.00", doc.Totals.AmountDue)
	assert.Equal(t, "Sita Sharma", doc.Record["CUSTOMER NAME"])
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	batch := NewBatch("labels", "todaytrend", 8, sampleDocs(t, 2))

	path, err := Write(dir, batch)
	require.NoError(t, err)
	require.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	decoded := &Batch{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, batch.BatchID, decoded.BatchID)
	assert.Equal(t, 1, decoded.PageCount)
}
