// =============================================================================
// Order Print Pipeline - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full pipeline:
// ingest -> validate -> assemble -> paginate -> write page manifest.
//
// COMMAND USAGE:
//   orderprint process [flags]
//
// FLAGS:
//   --input       : Path to the order sheet (.xlsx, .xls, .csv)
//   --paste       : Read tab-separated rows from stdin instead of a file
//   --medium      : "labels" or "invoices"
//   --label-size  : Labels per sheet, 6 or 8 (labels medium only)
//   --style       : Vendor invoice style / price book key
//   --headerless  : Input has no header row; apply the default label headers
//   --force       : Write manifests even when validation errors exist
//
// PROCESSING PIPELINE:
//   1. Load configuration and vendor price books
//   2. Ingest the order sheet (file or pasted text)
//   3. Validate every record, printing the complete error report
//   4. Unless --force, refuse to write output while errors exist
//   5. Assemble documents (line items + totals) per record
//   6. Paginate to the medium's capacity and write the JSON page manifest
//   7. Archive the input file on success
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/order-print-pipeline/internal/assemble"
	"github.com/ginjaninja78/order-print-pipeline/internal/config"
	"github.com/ginjaninja78/order-print-pipeline/internal/docwriter"
	"github.com/ginjaninja78/order-print-pipeline/internal/paginate"
	"github.com/ginjaninja78/order-print-pipeline/internal/sheet"
	"github.com/ginjaninja78/order-print-pipeline/internal/validate"
	"github.com/ginjaninja78/order-print-pipeline/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputPath is the order sheet to process.
var inputPath string

// pasteInput reads tab-separated rows from stdin instead of a file.
var pasteInput bool

// medium selects the output document family: "labels" or "invoices".
var medium string

// labelSize is the labels-per-sheet capacity (6 or 8).
var labelSize int

// style selects the vendor price book / invoice style.
var style string

// headerless applies the default label header set instead of consuming the
// first input row as headers.
var headerless bool

// force writes manifests even when validation errors exist.
var force bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Ingest an order sheet and write printable page manifests",
	Long: `The process command ingests an order sheet (spreadsheet file or pasted
tab-separated text), validates every record against the order schema, and
writes a JSON page manifest laying the records out onto printable pages.

Validation errors never stop ingestion: the full record set and the full
error report are always produced. By default the command refuses to write a
manifest while errors exist; pass --force to override.

On success the input file is moved to the archive directory so the input
folder only ever holds unprocessed sheets.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&inputPath, "input", "", "Path to the order sheet (.xlsx, .xls, .csv)")
	processCmd.Flags().BoolVar(&pasteInput, "paste", false, "Read tab-separated rows from stdin")
	processCmd.Flags().StringVar(&medium, "medium", "labels", "Output medium: labels or invoices")
	processCmd.Flags().IntVar(&labelSize, "label-size", 0, "Labels per sheet, 6 or 8 (default from config)")
	processCmd.Flags().StringVar(&style, "style", "", "Vendor invoice style / price book key (default from config)")
	processCmd.Flags().BoolVar(&headerless, "headerless", false, "Input has no header row; use the default label headers")
	processCmd.Flags().BoolVar(&force, "force", false, "Write manifests even when validation errors exist")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess orchestrates the full pipeline.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== Order Print Pipeline ===")

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	logger := buildLogger(cfg.LogLevel)
	defer logger.Sync()

	books, err := config.LoadPriceBooks(cfg.PriceBooksDir)
	if err != nil {
		return fmt.Errorf("failed to load price books: %w", err)
	}

	if style == "" {
		style = cfg.DefaultStyle
	}
	book, ok := books[style]
	if !ok {
		return fmt.Errorf("unknown style %q; available price books: %s", style, bookKeys(books))
	}

	capacity, err := resolveCapacity(cfg)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("style", style),
		zap.String("medium", medium),
		zap.Int("capacity", capacity),
	)

	// =========================================================================
	// STEP 2: INGEST
	// =========================================================================

	records, err := ingest(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d record(s)\n", len(records))

	// =========================================================================
	// STEP 3: VALIDATE
	// =========================================================================

	schema, err := validate.NewOrderSchema(book.CodePattern)
	if err != nil {
		return fmt.Errorf("failed to build validation schema: %w", err)
	}

	validationErrors := schema.ValidateAll(records)
	printValidationReport(validationErrors)

	if len(validationErrors) > 0 && !force {
		return fmt.Errorf("%d validation error(s); fix the input or re-run with --force", len(validationErrors))
	}

	// =========================================================================
	// STEP 4: ASSEMBLE AND PAGINATE
	// =========================================================================

	assembler := assemble.New(book, logger)
	docs := assembler.AssembleAll(records)

	batch := docwriter.NewBatch(medium, style, capacity, docs)

	// =========================================================================
	// STEP 5: WRITE MANIFEST AND ARCHIVE INPUT
	// =========================================================================

	manifestPath, err := docwriter.Write(cfg.OutputDir, batch)
	if err != nil {
		return fmt.Errorf("failed to write page manifest: %w", err)
	}

	if !pasteInput {
		archived, err := utils.ArchiveFile(inputPath, cfg.InputArchiveDir)
		if err != nil {
			// The manifest is already written; archival failure is not fatal.
			logger.Warn("failed to archive input file", zap.String("input", inputPath), zap.Error(err))
		} else {
			logger.Debug("archived input file", zap.String("archived", archived))
		}
	}

	// =========================================================================
	// STEP 6: PRINT SUMMARY
	// =========================================================================

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Records:         %d\n", len(records))
	fmt.Printf("Pages:           %d (capacity %d)\n", batch.PageCount, capacity)
	fmt.Printf("Manifest:        %s\n", manifestPath)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// resolveCapacity determines documents-per-page for the selected medium.
func resolveCapacity(cfg *config.MainConfig) (int, error) {
	switch medium {
	case "labels":
		size := labelSize
		if size == 0 {
			size = cfg.DefaultLabelSize
		}
		if size != paginate.LabelSheetSix && size != paginate.LabelSheetEight {
			return 0, fmt.Errorf("label size must be 6 or 8, got %d", size)
		}
		return size, nil
	case "invoices":
		return paginate.InvoiceRun, nil
	default:
		return 0, fmt.Errorf("medium must be labels or invoices, got %q", medium)
	}
}

// ingest reads records from the selected input surface.
func ingest(cfg *config.MainConfig) ([]sheet.Record, error) {
	opts := sheet.Options{MinRequiredCells: cfg.MinRequiredCells}
	if headerless {
		opts.HeaderRow = sheet.DefaultLabelHeaders
	}

	if pasteInput {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read pasted input: %w", err)
		}
		records, err := sheet.ParsePasted(string(text), opts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pasted input: %w", err)
		}
		return records, nil
	}

	if inputPath == "" {
		return nil, fmt.Errorf("either --input or --paste is required")
	}

	return sheet.ParseFile(inputPath, opts)
}

// printValidationReport prints the operator-facing validation report.
func printValidationReport(errs []validate.ValidationError) {
	if len(errs) == 0 {
		fmt.Println("Validation:      OK")
		return
	}

	fmt.Printf("Validation:      %d error(s)\n", len(errs))
	for _, err := range errs {
		fmt.Printf("  ✗ row %d, %s: %s\n", err.RowIndex+1, err.Field, err.Message)
	}
}

// bookKeys lists the available price book keys for error messages.
func bookKeys(books map[string]*config.PriceBook) string {
	keys := ""
	for key := range books {
		if keys != "" {
			keys += ", "
		}
		keys += key
	}
	return keys
}
