// =============================================================================
// Order Print Pipeline - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which ingests an order sheet and
// prints the full validation report without writing any output or touching
// the input file. Operators use it to check a sheet before a print run.
//
// COMMAND USAGE:
//   orderprint validate --input orders.xlsx
//   orderprint validate --paste --headerless < orders.tsv
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/order-print-pipeline/internal/config"
	"github.com/ginjaninja78/order-print-pipeline/internal/validate"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an order sheet without writing output",
	Long: `The validate command runs ingestion and validation only. Every record is
checked against the order schema and the complete error report is printed.

The command exits non-zero when validation errors exist, so it can gate
automated print runs.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// init registers the validate command and its flags. The ingestion flags are
// shared with the process command.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&inputPath, "input", "", "Path to the order sheet (.xlsx, .xls, .csv)")
	validateCmd.Flags().BoolVar(&pasteInput, "paste", false, "Read tab-separated rows from stdin")
	validateCmd.Flags().StringVar(&style, "style", "", "Vendor invoice style / price book key (default from config)")
	validateCmd.Flags().BoolVar(&headerless, "headerless", false, "Input has no header row; use the default label headers")
}

// runValidate ingests and validates, printing the report.
func runValidate() error {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

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

	records, err := ingest(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d record(s)\n", len(records))

	schema, err := validate.NewOrderSchema(book.CodePattern)
	if err != nil {
		return fmt.Errorf("failed to build validation schema: %w", err)
	}

	validationErrors := schema.ValidateAll(records)
	printValidationReport(validationErrors)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%d validation error(s)", len(validationErrors))
	}

	return nil
}
