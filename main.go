// =============================================================================
// Order Print Pipeline - Main Entry Point
// =============================================================================
//
// This is the main entry point for the order print pipeline CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   orderprint process       - Ingest an order sheet and write page manifests
//   orderprint validate      - Validate an order sheet without writing output
//   orderprint version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core pipeline logic (not for external import)
//   - pkg/           : Shared utilities
//   - pricebooks/    : Vendor-specific YAML price books
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/order-print-pipeline/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
